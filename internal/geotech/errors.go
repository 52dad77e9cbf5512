package geotech

import "fmt"

// SelectorError reports an engineer or shape selector that is not valid
// for the calculator it was passed to.
type SelectorError struct {
	Selector string
	Context  string
	Allowed  string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("%q is not a valid %s selector: available choices are %s",
		e.Selector, e.Context, e.Allowed)
}

// DomainError reports an input outside the physical domain a formula was
// validated for, e.g. overburden pressure out of range for Gibbs-Holtz.
type DomainError struct {
	Value   float64
	Limit   float64
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: got %.2f, limit %.2f", e.Message, e.Value, e.Limit)
}

// SettlementError reports a requested settlement beyond the maximum a
// settlement-based allowable bearing capacity method was validated for.
type SettlementError struct {
	Actual float64
	Max    float64
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("allowable settlement exceeded: %.2f mm is beyond the validated maximum of %.2f mm",
		e.Actual, e.Max)
}
