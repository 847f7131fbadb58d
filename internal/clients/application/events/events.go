package events

import "time"

// ClientRegistered is published after a client is added to the registry.
type ClientRegistered struct {
	Index      int
	Name       string
	Class      string
	OccurredAt time.Time
}

// ClientRemoved is published after a client is removed from the registry.
type ClientRemoved struct {
	Index      int
	Name       string
	OccurredAt time.Time
}

// PaymentRecorded is published after a payment, bonus or mass-payment
// credit is appended to a client's history.
type PaymentRecorded struct {
	ClientIndex int
	Amount      float64
	Description string
	OccurredAt  time.Time
}

// ServiceSubscribed is published after a service is added to a client.
type ServiceSubscribed struct {
	ClientIndex int
	Kind        string
	OccurredAt  time.Time
}
