package clients

import (
	catalog "ispdesk/internal/catalog/domain"
)

// Client is the subscriber aggregate.
// Invariants:
// 1) balance equals the sum of all payment amounts ever recorded; every
//    path that appends a payment also adds its amount to the balance.
// 2) payment history is append-only.
// 3) an operation either updates the aggregate fully or not at all.
type Client struct {
	name  string
	email string
	class AccountClass

	services []catalog.Service
	payments []PaymentRecord
	balance  float64
	active   bool
}

// NewClient creates a client. New clients start active with no services,
// no payments and a zero balance.
func NewClient(name, email string, class AccountClass) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !class.IsValid() {
		return nil, ErrUnknownClass
	}
	return &Client{name: name, email: email, class: class, active: true}, nil
}

// Name returns the client name.
func (c *Client) Name() string { return c.name }

// Email returns the client email.
func (c *Client) Email() string { return c.email }

// Class returns the account class.
func (c *Client) Class() AccountClass { return c.class }

// Active reports whether the client is active. The flag toggles freely
// in either direction; there are no transition restrictions.
func (c *Client) Active() bool { return c.active }

// Balance returns the running balance.
func (c *Client) Balance() float64 { return c.balance }

// DiscountPercent returns the fixed discount of the client's class.
func (c *Client) DiscountPercent() int { return c.class.DiscountPercent() }

// Services returns the subscribed services in subscription order.
func (c *Client) Services() []catalog.Service {
	return append([]catalog.Service(nil), c.services...)
}

// Payments returns the payment history in append order.
func (c *Client) Payments() []PaymentRecord {
	return append([]PaymentRecord(nil), c.payments...)
}

// AddService subscribes the client to an offering.
func (c *Client) AddService(s catalog.Service) error {
	if !s.Kind().IsValid() {
		return ErrInvalidService
	}
	c.services = append(c.services, s)
	return nil
}

// RemoveFirstService removes and returns the first service in
// subscription order. The desk UI removes position 0, not a
// caller-selected service; that behavior is kept as is.
func (c *Client) RemoveFirstService() (catalog.Service, error) {
	if len(c.services) == 0 {
		return catalog.Service{}, ErrNoServices
	}
	removed := c.services[0]
	c.services = c.services[1:]
	return removed, nil
}

// AddPayment appends the record to the history and adds its amount to
// the balance. Negative amounts decrease the balance.
func (c *Client) AddPayment(p PaymentRecord) error {
	if p.at.IsZero() {
		return ErrInvalidPayment
	}
	c.payments = append(c.payments, p)
	c.balance += p.amount
	return nil
}

// SetActive toggles the active flag.
func (c *Client) SetActive(active bool) { c.active = active }

// Rename changes the client name.
func (c *Client) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.name = name
	return nil
}

// SetEmail changes the client email.
func (c *Client) SetEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	c.email = email
	return nil
}

// Clone returns a detached copy.
func (c *Client) Clone() *Client {
	if c == nil {
		return nil
	}
	copy := *c
	copy.services = append([]catalog.Service(nil), c.services...)
	copy.payments = append([]PaymentRecord(nil), c.payments...)
	return &copy
}
