// Package clarkewright: sentinel errors for the savings construction heuristic.
package clarkewright

import "errors"

var (
	// ErrReductionInfeasible indicates the route count could not be reduced to
	// the target vehicle count K under capacity — some customer could not be
	// relocated from any eliminated route into any remaining one. The caller
	// must raise K or accept more vehicles.
	ErrReductionInfeasible = errors.New("clarkewright: cannot reduce route count to K under capacity")

	// ErrTargetExceedsCustomers indicates K is larger than the number of
	// customers, making a valid non-empty-route partition impossible.
	ErrTargetExceedsCustomers = errors.New("clarkewright: vehicle count exceeds customer count")

	// ErrTargetNotPositive indicates K <= 0.
	ErrTargetNotPositive = errors.New("clarkewright: vehicle count must be positive")
)
