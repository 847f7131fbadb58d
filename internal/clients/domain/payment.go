package clients

import "time"

// PaymentRecord is an immutable entry in a client's payment history.
// Records are appended by payment, bonus and mass-payment operations and
// never mutated or removed afterwards.
type PaymentRecord struct {
	amount      float64
	at          time.Time
	description string
}

// NewPaymentRecord creates a payment record. Negative amounts are
// accepted and will decrease the client balance; the desk UI never
// validated the sign and callers rely on that.
func NewPaymentRecord(amount float64, at time.Time, description string) (PaymentRecord, error) {
	if at.IsZero() {
		return PaymentRecord{}, ErrInvalidPayment
	}
	return PaymentRecord{amount: amount, at: at, description: description}, nil
}

// Amount returns the payment amount.
func (p PaymentRecord) Amount() float64 { return p.amount }

// At returns the payment timestamp.
func (p PaymentRecord) At() time.Time { return p.at }

// Description returns the payment description.
func (p PaymentRecord) Description() string { return p.description }
