package jejak

// CustomerProvider supplies the identity of the "current" customer for the
// implicit IdentifyCurrent / DeleteCurrent / TrackCurrent operations. It is
// consulted fresh on every implicit call and never cached, so the client
// always reflects the caller's current notion of the active customer.
//
// A provider returning an empty CustomerID makes the implicit operations
// silent no-ops, same as the explicit forms.
type CustomerProvider interface {
	// CustomerID returns the identifier of the active customer, or an empty
	// string when nobody is signed in.
	CustomerID() string

	// CustomerDetails returns the attribute map sent by IdentifyCurrent.
	// The client passes it through opaquely.
	CustomerDetails() map[string]interface{}
}

// StaticCustomerProvider is a CustomerProvider returning fixed values.
// Useful for single-user tools and tests.
type StaticCustomerProvider struct {
	ID      string
	Details map[string]interface{}
}

// CustomerID returns the fixed identifier.
func (p *StaticCustomerProvider) CustomerID() string { return p.ID }

// CustomerDetails returns the fixed attribute map.
func (p *StaticCustomerProvider) CustomerDetails() map[string]interface{} { return p.Details }
