package clients

import "errors"

var (
	// ErrEmptyName is returned when a client name is empty.
	ErrEmptyName = errors.New("clients: empty name")
	// ErrEmptyEmail is returned when a client email is empty.
	ErrEmptyEmail = errors.New("clients: empty email")
	// ErrUnknownClass is returned when the account class is not one of the known classes.
	ErrUnknownClass = errors.New("clients: unknown account class")
	// ErrInvalidService is returned when a service without a valid kind is subscribed.
	ErrInvalidService = errors.New("clients: invalid service")
	// ErrInvalidPayment is returned when a payment record has no timestamp.
	ErrInvalidPayment = errors.New("clients: invalid payment record")
	// ErrNoServices is returned when a removal is attempted on a client with no services.
	ErrNoServices = errors.New("clients: no services to remove")
	// ErrNilClient is returned when a nil client is added to the registry.
	ErrNilClient = errors.New("clients: nil client")
	// ErrIndexOutOfRange is returned when a client index is outside the registry bounds.
	ErrIndexOutOfRange = errors.New("clients: index out of range")
)
