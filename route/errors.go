// Package route: sentinel errors for Route and RouteSet operations.
package route

import "errors"

var (
	// ErrEmptyRoute indicates an operation required a non-empty customer sequence.
	ErrEmptyRoute = errors.New("route: route must contain at least one customer")

	// ErrCustomerNotFound indicates Remove was called with a customer absent from the route.
	ErrCustomerNotFound = errors.New("route: customer not found in route")

	// ErrIndexOutOfRange indicates a Reverse bound fell outside [0, len(seq)].
	ErrIndexOutOfRange = errors.New("route: reverse index out of range")

	// ErrDepotInSequence indicates the depot (index 0) was found inside a customer sequence.
	ErrDepotInSequence = errors.New("route: depot must not appear in a route sequence")

	// ErrCustomerAlreadyOwned indicates RouteSet.Add was given a customer already
	// assigned to another route — the partition-of-customers invariant would break.
	ErrCustomerAlreadyOwned = errors.New("route: customer already owned by another route")

	// ErrUnknownSlot indicates a RouteSet slot index is stale or was never valid.
	ErrUnknownSlot = errors.New("route: unknown or removed route slot")
)
