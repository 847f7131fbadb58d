package memory

import (
	"sync"

	catalog "ispdesk/internal/catalog/domain"
)

// TariffCatalog is the ordered in-memory set of known tariffs. The
// presentation layer addresses tariffs by list position, so insertion
// order is preserved.
type TariffCatalog struct {
	mu      sync.RWMutex
	tariffs []catalog.Tariff
}

// NewTariffCatalog constructs a catalog seeded with the hourly tariff.
func NewTariffCatalog() *TariffCatalog {
	return &TariffCatalog{tariffs: []catalog.Tariff{catalog.NewHourlyTariff()}}
}

// Append adds a tariff to the end of the catalog and returns its index.
func (c *TariffCatalog) Append(t catalog.Tariff) (int, error) {
	if !t.Kind().IsValid() {
		return 0, catalog.ErrUnknownTariff
	}
	c.mu.Lock()
	c.tariffs = append(c.tariffs, t)
	index := len(c.tariffs) - 1
	c.mu.Unlock()
	return index, nil
}

// Get returns the tariff at a position.
func (c *TariffCatalog) Get(index int) (catalog.Tariff, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.tariffs) {
		return catalog.Tariff{}, catalog.ErrTariffOutOfRange
	}
	return c.tariffs[index], nil
}

// Len returns the number of known tariffs.
func (c *TariffCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tariffs)
}

// List returns the tariffs in insertion order.
func (c *TariffCatalog) List() []catalog.Tariff {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]catalog.Tariff(nil), c.tariffs...)
}

// CalculatePrice resolves the tariff at a position and prices the quantity.
func (c *TariffCatalog) CalculatePrice(index, quantity int) (float64, error) {
	t, err := c.Get(index)
	if err != nil {
		return 0, err
	}
	return t.CalculatePrice(quantity)
}
