package catalog

import "fmt"

// ServiceKind is the offering type of a service.
type ServiceKind string

const (
	ServiceInternet ServiceKind = "INTERNET"
	ServiceTV       ServiceKind = "TV"
	ServicePhone    ServiceKind = "PHONE"
)

// Per-unit rates in currency minor-unit-agnostic decimals.
const (
	internetRatePerMbit = 2.5
	tvRatePerChannel    = 1.5
	phoneRatePerMinute  = 0.8
)

// Service is an immutable purchasable offering. The price is a pure
// function of the kind and the construction-time quantity.
type Service struct {
	kind  ServiceKind
	units int
}

// NewInternetService creates an internet offering priced by speed.
func NewInternetService(speedMbit int) (Service, error) {
	return newService(ServiceInternet, speedMbit)
}

// NewTVService creates a TV offering priced by channel count.
func NewTVService(channels int) (Service, error) {
	return newService(ServiceTV, channels)
}

// NewPhoneService creates a phone offering priced by included minutes.
func NewPhoneService(minutes int) (Service, error) {
	return newService(ServicePhone, minutes)
}

func newService(kind ServiceKind, units int) (Service, error) {
	if units < 0 {
		return Service{}, ErrNegativeQuantity
	}
	return Service{kind: kind, units: units}, nil
}

// Kind returns the offering type.
func (s Service) Kind() ServiceKind { return s.kind }

// Units returns the construction-time quantity (Mbit/s, channels or minutes).
func (s Service) Units() int { return s.units }

// Name returns the display name of the offering.
func (s Service) Name() string {
	switch s.kind {
	case ServiceInternet:
		return "Internet"
	case ServiceTV:
		return "TV"
	case ServicePhone:
		return "Phone"
	default:
		return ""
	}
}

// Description returns a human-readable summary of the offering.
func (s Service) Description() string {
	switch s.kind {
	case ServiceInternet:
		return fmt.Sprintf("Internet access, %d Mbit/s", s.units)
	case ServiceTV:
		return fmt.Sprintf("Television, %d channels", s.units)
	case ServicePhone:
		return fmt.Sprintf("Phone, %d minutes included", s.units)
	default:
		return ""
	}
}

// Price returns the monthly price: quantity times the per-unit rate.
func (s Service) Price() float64 {
	switch s.kind {
	case ServiceInternet:
		return float64(s.units) * internetRatePerMbit
	case ServiceTV:
		return float64(s.units) * tvRatePerChannel
	case ServicePhone:
		return float64(s.units) * phoneRatePerMinute
	default:
		return 0
	}
}

// IsValid checks if the kind is one of the supported offerings.
func (k ServiceKind) IsValid() bool {
	switch k {
	case ServiceInternet, ServiceTV, ServicePhone:
		return true
	default:
		return false
	}
}
