package catalog

import (
	"errors"
	"testing"
)

func TestServicePrices(t *testing.T) {
	cases := []struct {
		name  string
		build func() (Service, error)
		price float64
	}{
		{"internet 100", func() (Service, error) { return NewInternetService(100) }, 250.0},
		{"tv 40", func() (Service, error) { return NewTVService(40) }, 60.0},
		{"phone 200", func() (Service, error) { return NewPhoneService(200) }, 160.0},
		{"internet 0", func() (Service, error) { return NewInternetService(0) }, 0},
	}

	for _, tc := range cases {
		svc, err := tc.build()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got := svc.Price(); got != tc.price {
			t.Fatalf("%s: price mismatch: got=%v want=%v", tc.name, got, tc.price)
		}
	}
}

func TestServiceRejectsNegativeQuantity(t *testing.T) {
	if _, err := NewInternetService(-1); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("internet: expected ErrNegativeQuantity, got %v", err)
	}
	if _, err := NewTVService(-5); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("tv: expected ErrNegativeQuantity, got %v", err)
	}
	if _, err := NewPhoneService(-100); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("phone: expected ErrNegativeQuantity, got %v", err)
	}
}

func TestServiceNameAndDescription(t *testing.T) {
	svc, err := NewInternetService(100)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if svc.Name() != "Internet" {
		t.Fatalf("name mismatch: got=%q", svc.Name())
	}
	if svc.Description() == "" {
		t.Fatalf("empty description")
	}
	if svc.Kind() != ServiceInternet {
		t.Fatalf("kind mismatch: got=%q", svc.Kind())
	}
	if svc.Units() != 100 {
		t.Fatalf("units mismatch: got=%d", svc.Units())
	}
}

func TestZeroServiceIsInvalid(t *testing.T) {
	var zero Service
	if zero.Kind().IsValid() {
		t.Fatalf("zero service kind should be invalid")
	}
	if zero.Price() != 0 {
		t.Fatalf("zero service price should be 0")
	}
}
