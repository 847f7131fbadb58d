package catalog

import "errors"

var (
	// ErrNegativeQuantity is returned when a price is requested for a negative quantity.
	ErrNegativeQuantity = errors.New("catalog: negative quantity")
	// ErrUnknownService is returned when a service has no valid kind.
	ErrUnknownService = errors.New("catalog: unknown service kind")
	// ErrUnknownTariff is returned when a tariff has no valid kind.
	ErrUnknownTariff = errors.New("catalog: unknown tariff kind")
	// ErrEmptyTariffName is returned when a fixed tariff is created without a name.
	ErrEmptyTariffName = errors.New("catalog: empty tariff name")
	// ErrNegativePrice is returned when a fixed tariff is created with a negative price.
	ErrNegativePrice = errors.New("catalog: negative price")
	// ErrTariffOutOfRange is returned when a tariff index is outside the catalog bounds.
	ErrTariffOutOfRange = errors.New("catalog: tariff index out of range")
)
