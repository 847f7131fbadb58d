package application

import (
	"context"
	"log"
	"time"

	analytics "ispdesk/internal/analytics/domain"
	catalog "ispdesk/internal/catalog/domain"
	"ispdesk/internal/clients/application/events"
	clients "ispdesk/internal/clients/domain"
	"ispdesk/internal/observability/metrics"
)

// BonusDescription is the payment description used for bonus credits.
const BonusDescription = "bonus credit"

// Registry is the client collection the desk operates on.
type Registry interface {
	Add(c *clients.Client) (int, error)
	RemoveAt(index int) (*clients.Client, error)
	Get(index int) (*clients.Client, error)
	Len() int
	List() []*clients.Client
	Update(index int, fn func(*clients.Client) error) error
	UpdateAll(fn func(index int, c *clients.Client) error) error
}

// TariffCatalog is the ordered set of known tariffs.
type TariffCatalog interface {
	Append(t catalog.Tariff) (int, error)
	CalculatePrice(index, quantity int) (float64, error)
	List() []catalog.Tariff
}

// EventBus publishes desk events.
type EventBus interface {
	PublishClientRegistered(ctx context.Context, event events.ClientRegistered) error
	PublishClientRemoved(ctx context.Context, event events.ClientRemoved) error
	PublishPaymentRecorded(ctx context.Context, event events.PaymentRecorded) error
	PublishServiceSubscribed(ctx context.Context, event events.ServiceSubscribed) error
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// DeskService exposes the operations the presentation layer invokes.
// Every operation is synchronous and either succeeds or rejects without
// leaving partial state behind.
type DeskService struct {
	registry Registry
	tariffs  TariffCatalog
	bus      EventBus
	clock    Clock
	metrics  *metrics.Metrics
	logger   *log.Logger
}

// NewDeskService constructs the desk service. bus, metrics and logger
// may be nil.
func NewDeskService(registry Registry, tariffs TariffCatalog, bus EventBus, clock Clock, m *metrics.Metrics, logger *log.Logger) *DeskService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &DeskService{
		registry: registry,
		tariffs:  tariffs,
		bus:      bus,
		clock:    clock,
		metrics:  m,
		logger:   logger,
	}
}

// RegisterClient creates a client and appends it to the registry,
// returning its position.
func (s *DeskService) RegisterClient(ctx context.Context, name, email string, class clients.AccountClass) (int, error) {
	c, err := clients.NewClient(name, email, class)
	if err != nil {
		return 0, err
	}
	index, err := s.registry.Add(c)
	if err != nil {
		return 0, err
	}
	s.publishRegistered(ctx, events.ClientRegistered{
		Index:      index,
		Name:       name,
		Class:      string(class),
		OccurredAt: s.clock.Now(),
	})
	return index, nil
}

// RemoveClient removes the client at a position.
func (s *DeskService) RemoveClient(ctx context.Context, index int) error {
	removed, err := s.registry.RemoveAt(index)
	if err != nil {
		return err
	}
	s.publishRemoved(ctx, events.ClientRemoved{
		Index:      index,
		Name:       removed.Name(),
		OccurredAt: s.clock.Now(),
	})
	return nil
}

// UpdateClient changes name and email of the client at a position. Both
// fields are validated before either is applied.
func (s *DeskService) UpdateClient(ctx context.Context, index int, name, email string) error {
	_ = ctx
	return s.registry.Update(index, func(c *clients.Client) error {
		if name == "" {
			return clients.ErrEmptyName
		}
		if email == "" {
			return clients.ErrEmptyEmail
		}
		if err := c.Rename(name); err != nil {
			return err
		}
		return c.SetEmail(email)
	})
}

// SetActive toggles the active flag of the client at a position.
func (s *DeskService) SetActive(ctx context.Context, index int, active bool) error {
	_ = ctx
	return s.registry.Update(index, func(c *clients.Client) error {
		c.SetActive(active)
		return nil
	})
}

// AddService subscribes the client at a position to an offering.
func (s *DeskService) AddService(ctx context.Context, index int, svc catalog.Service) error {
	err := s.registry.Update(index, func(c *clients.Client) error {
		return c.AddService(svc)
	})
	if err != nil {
		return err
	}
	s.publishSubscribed(ctx, events.ServiceSubscribed{
		ClientIndex: index,
		Kind:        string(svc.Kind()),
		OccurredAt:  s.clock.Now(),
	})
	return nil
}

// RemoveFirstService removes the first subscribed service of the client
// at a position and returns it.
func (s *DeskService) RemoveFirstService(ctx context.Context, index int) (catalog.Service, error) {
	_ = ctx
	var removed catalog.Service
	err := s.registry.Update(index, func(c *clients.Client) error {
		svc, err := c.RemoveFirstService()
		if err != nil {
			return err
		}
		removed = svc
		return nil
	})
	if err != nil {
		return catalog.Service{}, err
	}
	return removed, nil
}

// RecordPayment appends a payment to the client at a position and adds
// its amount to the balance. Negative amounts are accepted and decrease
// the balance.
func (s *DeskService) RecordPayment(ctx context.Context, index int, amount float64, description string) error {
	now := s.clock.Now()
	record, err := clients.NewPaymentRecord(amount, now, description)
	if err != nil {
		return err
	}
	err = s.registry.Update(index, func(c *clients.Client) error {
		return c.AddPayment(record)
	})
	if err != nil {
		return err
	}
	s.metrics.RecordPayment()
	s.publishPayment(ctx, events.PaymentRecorded{
		ClientIndex: index,
		Amount:      amount,
		Description: description,
		OccurredAt:  now,
	})
	return nil
}

// CreditBonus records a bonus payment for the client at a position.
func (s *DeskService) CreditBonus(ctx context.Context, index int, amount float64) error {
	return s.RecordPayment(ctx, index, amount, BonusDescription)
}

// MassPayment credits every active client with the same amount and
// returns the number of clients credited. Inactive clients are skipped.
func (s *DeskService) MassPayment(ctx context.Context, amount float64, description string) (int, error) {
	now := s.clock.Now()
	record, err := clients.NewPaymentRecord(amount, now, description)
	if err != nil {
		return 0, err
	}

	var credited []int
	err = s.registry.UpdateAll(func(index int, c *clients.Client) error {
		if !c.Active() {
			return nil
		}
		if err := c.AddPayment(record); err != nil {
			return err
		}
		credited = append(credited, index)
		return nil
	})
	if err != nil {
		return len(credited), err
	}

	for _, index := range credited {
		s.metrics.RecordPayment()
		s.publishPayment(ctx, events.PaymentRecorded{
			ClientIndex: index,
			Amount:      amount,
			Description: description,
			OccurredAt:  now,
		})
	}
	return len(credited), nil
}

// Client returns a detached copy of the client at a position.
func (s *DeskService) Client(ctx context.Context, index int) (*clients.Client, error) {
	_ = ctx
	return s.registry.Get(index)
}

// Clients returns detached copies of all clients in insertion order.
func (s *DeskService) Clients(ctx context.Context) []*clients.Client {
	_ = ctx
	return s.registry.List()
}

// AddFixedTariff appends a runtime-created fixed tariff to the catalog
// and returns its position.
func (s *DeskService) AddFixedTariff(ctx context.Context, name string, price float64) (int, error) {
	_ = ctx
	t, err := catalog.NewFixedTariff(name, price)
	if err != nil {
		return 0, err
	}
	return s.tariffs.Append(t)
}

// QuoteTariff prices a quantity against the tariff at a position.
func (s *DeskService) QuoteTariff(ctx context.Context, tariffIndex, quantity int) (float64, error) {
	_ = ctx
	return s.tariffs.CalculatePrice(tariffIndex, quantity)
}

// Snapshot recomputes the registry statistics from scratch.
func (s *DeskService) Snapshot(ctx context.Context) analytics.Snapshot {
	_ = ctx
	return analytics.Compute(s.registry.List(), s.clock.Now())
}

func (s *DeskService) publishRegistered(ctx context.Context, event events.ClientRegistered) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishClientRegistered(ctx, event); err != nil && s.logger != nil {
		s.logger.Printf("publish client registered: %v", err)
	}
}

func (s *DeskService) publishRemoved(ctx context.Context, event events.ClientRemoved) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishClientRemoved(ctx, event); err != nil && s.logger != nil {
		s.logger.Printf("publish client removed: %v", err)
	}
}

func (s *DeskService) publishPayment(ctx context.Context, event events.PaymentRecorded) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishPaymentRecorded(ctx, event); err != nil && s.logger != nil {
		s.logger.Printf("publish payment recorded: %v", err)
	}
}

func (s *DeskService) publishSubscribed(ctx context.Context, event events.ServiceSubscribed) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishServiceSubscribed(ctx, event); err != nil && s.logger != nil {
		s.logger.Printf("publish service subscribed: %v", err)
	}
}
