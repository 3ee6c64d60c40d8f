// Package doctor runs health checks over the anvilcost installation and its
// settings files.
package doctor

import (
	"context"
	"slices"
)

// Status is the outcome of a check.
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusSkipped
)

// Severity grades a failed check.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Category groups related checks in reports.
type Category string

const (
	CategoryConfig  Category = "Config"
	CategoryPenalty Category = "Penalty"
)

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name     string
	Category Category
	Status   Status
	Severity Severity
	Message  string
	Details  []string

	// FixID names the Fixer that can repair a failed check.
	FixID string
}

// Pass creates a passing result.
func Pass(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusPass, Message: message}
}

// FailError creates a failed result that makes the run unhealthy.
func FailError(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusFail, Severity: SeverityError, Message: message}
}

// FailWarning creates a failed result that does not make the run unhealthy.
func FailWarning(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusFail, Severity: SeverityWarning, Message: message}
}

// Skip creates a result for a check that did not apply.
func Skip(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusSkipped, Message: message}
}

// WithDetails appends detail lines shown in verbose reports.
func (r CheckResult) WithDetails(details ...string) CheckResult {
	r.Details = append(slices.Clone(r.Details), details...)

	return r
}

// WithFixID attaches the ID of a Fixer.
func (r CheckResult) WithFixID(id string) CheckResult {
	r.FixID = id

	return r
}

// HasFix reports whether a Fixer is attached.
func (r CheckResult) HasFix() bool {
	return r.FixID != ""
}

func (r CheckResult) IsPassed() bool {
	return r.Status == StatusPass
}

func (r CheckResult) IsError() bool {
	return r.Status == StatusFail && r.Severity == SeverityError
}

func (r CheckResult) IsWarning() bool {
	return r.Status == StatusFail && r.Severity == SeverityWarning
}

// Checker performs one health check.
type Checker interface {
	Name() string
	Category() Category
	Check(ctx context.Context) CheckResult
}

// Fixer repairs the problem reported by failed checks carrying its ID.
type Fixer interface {
	ID() string
	Description() string
	Fix(ctx context.Context) error
}

// HasErrors reports whether any result is an error.
func HasErrors(results []CheckResult) bool {
	return slices.ContainsFunc(results, CheckResult.IsError)
}
