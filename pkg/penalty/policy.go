// Package penalty implements the prior work penalty transform applied to an
// item's repair cost counter.
//
// Every time an item is worked in an anvil the game grows its repair cost
// counter with the doubling rule c' = 2c + 1, so after n prior works the
// counter equals 2^n - 1. A Policy maps that counter to the value actually
// charged for the next operation.
package penalty

import (
	"github.com/cockroachdb/errors"
)

//go:generate go run github.com/dmarkham/enumer -type=Policy -trimprefix=Policy -transform=upper -text -output=policy_enumer.go

// Policy selects how prior work on an item affects future anvil costs.
type Policy int

const (
	// PolicyNone disables the penalty: the counter stays at 0.
	PolicyNone Policy = iota

	// PolicyVanilla keeps the counter unchanged, so the penalty doubles with
	// every operation.
	PolicyVanilla

	// PolicyLimited doubles the penalty like vanilla, but every increase is
	// capped at a configured maximum.
	PolicyLimited
)

// ErrInvalidArgument is returned when a caller passes a value outside the
// domain of the transform. It signals a caller bug, never a runtime condition.
var ErrInvalidArgument = errors.New("invalid argument")

// DecodePriorWorkCount reconstructs how many times an item has been worked
// from its repair cost counter by inverting the doubling rule.
//
// Negative counters decode to 0.
func DecodePriorWorkCount(counter int) int {
	if counter < 0 {
		return 0
	}

	// unsigned so that counter == math.MaxInt does not wrap on increment
	working := uint(counter) + 1
	priorWorks := 0

	for working >= 2 {
		working /= 2
		priorWorks++
	}

	return priorWorks
}

// LimitedCost returns the counter an item worked priorWorkCount times would
// carry if every increase were capped at maxIncrease.
//
// Each step adds min(acc+1, maxIncrease) using the accumulator value before
// the addition, so the curve follows vanilla doubling until the step reaches
// maxIncrease and grows linearly afterwards.
func LimitedCost(priorWorkCount, maxIncrease int) (int, error) {
	if priorWorkCount < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "prior work count %d is negative", priorWorkCount)
	}

	if maxIncrease < 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "maximum increase %d is less than 1", maxIncrease)
	}

	acc := 0
	for range priorWorkCount {
		acc += min(acc+1, maxIncrease)
	}

	return acc, nil
}

// Apply transforms a repair cost counter according to policy.
//
// maxIncrease is only consulted by PolicyLimited but is validated for every
// policy so that a misconfiguration surfaces regardless of the active one.
func Apply(policy Policy, counter, maxIncrease int) (int, error) {
	if counter < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "repair cost counter %d is negative", counter)
	}

	if maxIncrease < 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "maximum increase %d is less than 1", maxIncrease)
	}

	switch policy {
	case PolicyNone:
		return 0, nil
	case PolicyVanilla:
		return counter, nil
	case PolicyLimited:
		return LimitedCost(DecodePriorWorkCount(counter), maxIncrease)
	default:
		return 0, errors.Wrapf(ErrInvalidArgument, "unknown prior work penalty %s", policy)
	}
}

// ComputePenalizedCost returns the counter to use going forward for an item
// currently carrying currentCounter.
func ComputePenalizedCost(currentCounter int, policy Policy, maxIncrease int) (int, error) {
	return Apply(policy, currentCounter, maxIncrease)
}

// NextCounter applies one step of the vanilla growth rule.
func NextCounter(counter int) int {
	return counter*2 + 1
}

// VanillaCost returns the counter after priorWorkCount vanilla steps, 2^n - 1.
func VanillaCost(priorWorkCount int) int {
	counter := 0
	for range priorWorkCount {
		counter = NextCounter(counter)
	}

	return counter
}
