package domain

import (
	"github.com/SscSPs/personal_finance_app/internal/apperrors"
)

// Void is the value type of results that carry no payload.
type Void = struct{}

// Outcome is the payload-independent view of a Result, so that results of
// different types can be combined.
type Outcome interface {
	IsSuccess() bool
	IsFailure() bool
	Error() string
}

// Result is either a success carrying a value or a failure carrying a message.
// The zero value is not a valid Result; use Ok, OkVoid or Fail.
type Result[T any] struct {
	ok    bool
	value T
	err   string
	built bool
}

// Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value, built: true}
}

// OkVoid returns a successful Result with no payload.
func OkVoid() Result[Void] {
	return Ok(Void{})
}

// Fail returns a failed Result. An empty message is a programming error.
func Fail[T any](message string) Result[T] {
	if message == "" {
		panic("domain: failed Result requires an error message")
	}
	return Result[T]{err: message, built: true}
}

// FailFrom re-types a failed Result. Passing a success is a programming error.
func FailFrom[T any](r Outcome) Result[T] {
	return Fail[T](r.Error())
}

// IsSuccess reports whether the result is a success.
func (r Result[T]) IsSuccess() bool {
	r.mustBeBuilt()
	return r.ok
}

// IsFailure reports whether the result is a failure.
func (r Result[T]) IsFailure() bool {
	r.mustBeBuilt()
	return !r.ok
}

// Value returns the success value. It panics on a failure.
func (r Result[T]) Value() T {
	r.mustBeBuilt()
	if !r.ok {
		panic("domain: cannot read the value of a failed Result: " + r.err)
	}
	return r.value
}

// Error returns the failure message. It panics on a success.
func (r Result[T]) Error() string {
	r.mustBeBuilt()
	if r.ok {
		panic("domain: cannot read the error of a successful Result")
	}
	return r.err
}

// Err converts the result into a Go error at the use-case boundary:
// nil on success, a DomainValidationError on failure.
func (r Result[T]) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return apperrors.NewDomainValidationError(r.err)
}

func (r Result[T]) mustBeBuilt() {
	if !r.built {
		panic("domain: Result must be constructed with Ok or Fail")
	}
}

// Combine returns the first failure in order, or a success when every
// result succeeded.
func Combine(results ...Outcome) Result[Void] {
	for _, r := range results {
		if r.IsFailure() {
			return Fail[Void](r.Error())
		}
	}
	return OkVoid()
}
