package clients

import (
	"errors"
	"testing"
	"time"

	catalog "ispdesk/internal/catalog/domain"
)

func newTestClient(t *testing.T, class AccountClass) *Client {
	t.Helper()
	c, err := NewClient("Alice", "alice@example.com", class)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func paymentAt(t *testing.T, amount float64, at time.Time) PaymentRecord {
	t.Helper()
	p, err := NewPaymentRecord(amount, at, "test")
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	return p
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "a@b.c", ClassHome); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := NewClient("Alice", "", ClassHome); !errors.Is(err, ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
	if _, err := NewClient("Alice", "a@b.c", AccountClass("GOLD")); !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
}

func TestNewClientStartsActiveAndEmpty(t *testing.T) {
	c := newTestClient(t, ClassHome)
	if !c.Active() {
		t.Fatalf("new client must start active")
	}
	if c.Balance() != 0 {
		t.Fatalf("new client balance must be 0, got %v", c.Balance())
	}
	if len(c.Services()) != 0 || len(c.Payments()) != 0 {
		t.Fatalf("new client must have no services or payments")
	}
}

func TestDiscountIsPureFunctionOfClass(t *testing.T) {
	cases := map[AccountClass]int{
		ClassHome:     5,
		ClassBusiness: 15,
		ClassVIP:      25,
	}
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for class, want := range cases {
		c := newTestClient(t, class)
		if got := c.DiscountPercent(); got != want {
			t.Fatalf("class=%s: discount mismatch: got=%d want=%d", class, got, want)
		}
		// Mutations must not change the discount.
		c.SetActive(false)
		if err := c.AddPayment(paymentAt(t, 100, now)); err != nil {
			t.Fatalf("add payment: %v", err)
		}
		if got := c.DiscountPercent(); got != want {
			t.Fatalf("class=%s: discount changed after mutation: got=%d want=%d", class, got, want)
		}
	}
	if got := AccountClass("").DiscountPercent(); got != 0 {
		t.Fatalf("unknown class discount must be 0, got %d", got)
	}
}

func TestBalanceEqualsPaymentSum(t *testing.T) {
	c := newTestClient(t, ClassBusiness)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	amounts := []float64{100, 50.5, -30, 0, 19.5}
	var sum float64
	for i, amount := range amounts {
		if err := c.AddPayment(paymentAt(t, amount, now.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("add payment %d: %v", i, err)
		}
		sum += amount
		if c.Balance() != sum {
			t.Fatalf("after payment %d: balance mismatch: got=%v want=%v", i, c.Balance(), sum)
		}
	}
	if len(c.Payments()) != len(amounts) {
		t.Fatalf("history length mismatch: got=%d want=%d", len(c.Payments()), len(amounts))
	}
}

func TestNegativePaymentDecreasesBalance(t *testing.T) {
	c := newTestClient(t, ClassHome)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	if err := c.AddPayment(paymentAt(t, -25, now)); err != nil {
		t.Fatalf("add payment: %v", err)
	}
	if c.Balance() != -25 {
		t.Fatalf("balance mismatch: got=%v want=-25", c.Balance())
	}
}

func TestAddPaymentRejectsZeroRecord(t *testing.T) {
	c := newTestClient(t, ClassHome)
	if err := c.AddPayment(PaymentRecord{}); !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
	if c.Balance() != 0 || len(c.Payments()) != 0 {
		t.Fatalf("failed payment must leave the client unchanged")
	}
}

func TestRemoveFirstServiceOrder(t *testing.T) {
	c := newTestClient(t, ClassVIP)
	internet, err := catalog.NewInternetService(100)
	if err != nil {
		t.Fatalf("new internet service: %v", err)
	}
	tv, err := catalog.NewTVService(40)
	if err != nil {
		t.Fatalf("new tv service: %v", err)
	}
	if err := c.AddService(internet); err != nil {
		t.Fatalf("add internet: %v", err)
	}
	if err := c.AddService(tv); err != nil {
		t.Fatalf("add tv: %v", err)
	}

	removed, err := c.RemoveFirstService()
	if err != nil {
		t.Fatalf("remove first: %v", err)
	}
	if removed.Kind() != catalog.ServiceInternet {
		t.Fatalf("expected first-subscribed service removed, got %q", removed.Kind())
	}
	left := c.Services()
	if len(left) != 1 || left[0].Kind() != catalog.ServiceTV {
		t.Fatalf("remaining services mismatch: %+v", left)
	}
}

func TestRemoveFirstServiceEmpty(t *testing.T) {
	c := newTestClient(t, ClassHome)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	if err := c.AddPayment(paymentAt(t, 10, now)); err != nil {
		t.Fatalf("add payment: %v", err)
	}

	if _, err := c.RemoveFirstService(); !errors.Is(err, ErrNoServices) {
		t.Fatalf("expected ErrNoServices, got %v", err)
	}
	// The client is otherwise unchanged.
	if c.Balance() != 10 || len(c.Payments()) != 1 || !c.Active() {
		t.Fatalf("failed removal must leave the client unchanged")
	}
}

func TestAddServiceRejectsZeroService(t *testing.T) {
	c := newTestClient(t, ClassHome)
	if err := c.AddService(catalog.Service{}); !errors.Is(err, ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService, got %v", err)
	}
	if len(c.Services()) != 0 {
		t.Fatalf("failed add must leave the client unchanged")
	}
}

func TestRenameAndSetEmail(t *testing.T) {
	c := newTestClient(t, ClassHome)
	if err := c.Rename(""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if err := c.SetEmail(""); !errors.Is(err, ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
	if c.Name() != "Alice" || c.Email() != "alice@example.com" {
		t.Fatalf("failed update must leave the client unchanged")
	}
	if err := c.Rename("Bob"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if err := c.SetEmail("bob@example.com"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if c.Name() != "Bob" || c.Email() != "bob@example.com" {
		t.Fatalf("update not applied: name=%q email=%q", c.Name(), c.Email())
	}
}

func TestCloneIsDetached(t *testing.T) {
	c := newTestClient(t, ClassBusiness)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	if err := c.AddPayment(paymentAt(t, 100, now)); err != nil {
		t.Fatalf("add payment: %v", err)
	}

	clone := c.Clone()
	if err := c.AddPayment(paymentAt(t, 50, now.Add(time.Minute))); err != nil {
		t.Fatalf("add payment: %v", err)
	}
	if clone.Balance() != 100 {
		t.Fatalf("clone balance changed: got=%v want=100", clone.Balance())
	}
	if len(clone.Payments()) != 1 {
		t.Fatalf("clone history changed: got=%d want=1", len(clone.Payments()))
	}
}
