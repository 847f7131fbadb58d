package clients

// AccountClass is the discount class of a client.
type AccountClass string

const (
	ClassHome     AccountClass = "HOME"
	ClassBusiness AccountClass = "BUSINESS"
	ClassVIP      AccountClass = "VIP"
)

// DiscountPercent returns the fixed discount of the class. The discount
// is a pure function of the class, never stored state.
func (c AccountClass) DiscountPercent() int {
	switch c {
	case ClassHome:
		return 5
	case ClassBusiness:
		return 15
	case ClassVIP:
		return 25
	default:
		return 0
	}
}

// IsValid checks if the class is one of the supported values.
func (c AccountClass) IsValid() bool {
	switch c {
	case ClassHome, ClassBusiness, ClassVIP:
		return true
	default:
		return false
	}
}
