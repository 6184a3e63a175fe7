// icon-cfg - ICON build configurator
// Copyright (C) 2025 The icon-cfg Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package cfgerr defines the failure categories of a configure run.
//
// Every step of the pipeline halts on its first failure. The error types
// here let callers tell a missing prerequisite from a checkout that points
// somewhere else, an unsupported option or a failing child process.
package cfgerr

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ExitGeneric        = 1
	ExitPrecondition   = 2
	ExitConflict       = 3
	ExitNotImplemented = 4
)

var ErrNotImplemented = errors.New("not implemented")

// PreconditionError reports something that has to be in place before
// the build can be configured: a package, a file, a compiler, a directory.
type PreconditionError struct {
	Subject string
	Reason  string
	// Hint is a command or action that fixes the problem, if known.
	Hint string
}

func (e *PreconditionError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Subject)
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Hint != "" {
		sb.WriteString(" [")
		sb.WriteString(e.Hint)
		sb.WriteString("]")
	}
	return sb.String()
}

func Precondition(subject, reason, hint string) *PreconditionError {
	return &PreconditionError{Subject: subject, Reason: reason, Hint: hint}
}

// ConflictError reports an existing checkout whose remote or branch
// differs from the requested one.
type ConflictError struct {
	Field     string
	Requested string
	Actual    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s mismatch: requested %q, found %q", e.Field, e.Requested, e.Actual)
}

type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return e.Feature + ": " + ErrNotImplemented.Error()
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// DownstreamError reports an external process or service that failed.
type DownstreamError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *DownstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s exited with code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *DownstreamError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to the process exit status for it.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var (
		pre  *PreconditionError
		conf *ConflictError
		ni   *NotImplementedError
		down *DownstreamError
	)

	switch {
	case errors.As(err, &pre):
		return ExitPrecondition
	case errors.As(err, &conf):
		return ExitConflict
	case errors.As(err, &ni):
		return ExitNotImplemented
	case errors.As(err, &down):
		if down.ExitCode > 0 && down.ExitCode < 256 {
			return down.ExitCode
		}
		return ExitGeneric
	}

	return ExitGeneric
}
