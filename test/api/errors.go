/*
Copyright 2026 the Energy Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrAssertion is matched by every failure attributable to the remote API:
	// an unexpected status, a wrong body field or a contract violation.
	ErrAssertion = errors.New("assertion failed")

	// ErrPrecondition is matched by local failures raised before or between
	// requests. These point at suite ordering problems, not API defects.
	ErrPrecondition = errors.New("precondition failed")

	// ErrInvalidConfig is returned when the configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// StatusError is returned when a response carries an unexpected status code.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code for %s %s: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrAssertion
}

// FieldError is returned when a response body field does not hold the
// expected value.
type FieldError struct {
	Field    string
	Expected any
	Actual   any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: expected %v, got %v", e.Field, e.Expected, e.Actual)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrAssertion
}

// SchemaError is returned when a response violates the API contract document.
type SchemaError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response to %s %s (status %d) violates the contract: %v", e.Method, e.Path, e.Status, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrAssertion
}

// PreconditionError is a local failure that stops a scenario before it can
// make meaningful assertions.
type PreconditionError struct {
	Scenario string
	Reason   string
}

func NewPreconditionError(scenario, format string, args ...any) *PreconditionError {
	return &PreconditionError{
		Scenario: scenario,
		Reason:   fmt.Sprintf(format, args...),
	}
}

func (e *PreconditionError) Error() string {
	if e.Scenario == "" {
		return "precondition failed: " + e.Reason
	}

	return fmt.Sprintf("precondition failed in %s: %s", e.Scenario, e.Reason)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// IsPrecondition reports whether err, or anything it wraps, is a local
// precondition failure.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
