package catalog

// TariffKind is the pricing rule type of a tariff.
type TariffKind string

const (
	TariffHourly TariffKind = "HOURLY"
	TariffFixed  TariffKind = "FIXED"
)

// HourlyRate is the price per hour of the hourly tariff.
const HourlyRate = 15.0

// Tariff is an immutable named pricing rule applied independently of a
// specific client's services.
type Tariff struct {
	kind      TariffKind
	name      string
	flatPrice float64
}

// NewHourlyTariff creates the per-hour tariff.
func NewHourlyTariff() Tariff {
	return Tariff{kind: TariffHourly, name: "Hourly"}
}

// NewFixedTariff creates a flat monthly tariff. Fixed tariffs can be
// created at runtime and appended to the catalog.
func NewFixedTariff(name string, price float64) (Tariff, error) {
	if name == "" {
		return Tariff{}, ErrEmptyTariffName
	}
	if price < 0 {
		return Tariff{}, ErrNegativePrice
	}
	return Tariff{kind: TariffFixed, name: name, flatPrice: price}, nil
}

// Kind returns the pricing rule type.
func (t Tariff) Kind() TariffKind { return t.kind }

// Name returns the tariff name.
func (t Tariff) Name() string { return t.name }

// CalculatePrice returns the price for the given quantity. For hourly
// tariffs the quantity is the hour count. For fixed tariffs the result
// is constant in the argument: the flat price is returned whatever
// quantity the caller passes (call sites conventionally pass 1).
func (t Tariff) CalculatePrice(quantity int) (float64, error) {
	if quantity < 0 {
		return 0, ErrNegativeQuantity
	}
	switch t.kind {
	case TariffHourly:
		return float64(quantity) * HourlyRate, nil
	case TariffFixed:
		return t.flatPrice, nil
	default:
		return 0, ErrUnknownTariff
	}
}

// IsValid checks if the kind is one of the supported pricing rules.
func (k TariffKind) IsValid() bool {
	switch k {
	case TariffHourly, TariffFixed:
		return true
	default:
		return false
	}
}
