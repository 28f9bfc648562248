// Copyright 2025 go-specfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sf holds the pieces shared by the special-function packages: the
// status taxonomy, the errors built from it, machine constants, and an
// optional warning sink for the value-only entry points.
package sf

import (
	"errors"
	"fmt"
)

// Status classifies the outcome of an evaluation.
type Status int

const (
	// Success means the value is valid to near machine precision.
	Success Status = iota
	// Domain means an argument was outside the function's domain.
	Domain
	// Underflow means the result is too small to represent; the value is 0.
	Underflow
	// MaxIter means an iterative method failed to converge.
	MaxIter
	// BadLength means a caller-supplied buffer was too short.
	BadLength
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Domain:
		return "domain error"
	case Underflow:
		return "underflow"
	case MaxIter:
		return "exceeded max number of iterations"
	case BadLength:
		return "bad buffer length"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Sentinel errors, one per non-success Status. Match with errors.Is.
var (
	ErrDomain    = errors.New("sf: domain error")
	ErrUnderflow = errors.New("sf: underflow")
	ErrMaxIter   = errors.New("sf: exceeded max number of iterations")
	ErrBadLength = errors.New("sf: bad buffer length")
)

func (s Status) sentinel() error {
	switch s {
	case Domain:
		return ErrDomain
	case Underflow:
		return ErrUnderflow
	case MaxIter:
		return ErrMaxIter
	case BadLength:
		return ErrBadLength
	default:
		return nil
	}
}

// Error reports a non-success Status together with the function that
// produced it.
type Error struct {
	Func   string
	Status Status
}

func (e *Error) Error() string {
	return e.Func + ": " + e.Status.String()
}

// Unwrap returns the sentinel error for e.Status.
func (e *Error) Unwrap() error {
	return e.Status.sentinel()
}

// Check converts a Status into an error. Success yields nil.
func Check(fn string, s Status) error {
	if s == Success {
		return nil
	}
	return &Error{Func: fn, Status: s}
}

// StatusOf extracts the Status carried by err. A nil error is Success and an
// error that is not from this package reports ok == false.
func StatusOf(err error) (s Status, ok bool) {
	if err == nil {
		return Success, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status, true
	}
	return Success, false
}
