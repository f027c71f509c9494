package types

import "fmt"

// LookupError: the geocoder could not resolve the text to a location.
type LookupError struct {
	Query string
	Err   error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not find location %q: %v", e.Query, e.Err)
	}
	return fmt.Sprintf("could not find location %q", e.Query)
}

func (e *LookupError) Unwrap() error { return e.Err }

// NotFoundError: no facilities of the category within the search radius.
type NotFoundError struct {
	Category     Category
	RadiusMeters float64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s services found within %.0fm", e.Category, e.RadiusMeters)
}

// RoutingError: routing service unreachable, misconfigured, or no path.
type RoutingError struct {
	Reason string
	Err    error
}

func (e *RoutingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routing failed: %s: %v", e.Reason, e.Err)
	}
	return "routing failed: " + e.Reason
}

func (e *RoutingError) Unwrap() error { return e.Err }

// DispatchError: the telephony service rejected the call placement.
// Never aborts the pipeline.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("call placement failed: %v", e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
