// Copyright (c) 2012-present The upper.io/db authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package returning

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds, use errors.Is to match them.
var (
	ErrDuplicateAlias  = errors.New(`duplicate alias in returning list`)
	ErrUnknownTable    = errors.New(`returning column requires a table which is otherwise not known in the statement`)
	ErrNotSelectable   = errors.New(`expression can't be used as a returning column`)
	ErrNotSerializable = errors.New(`expression can't be rendered by this backend`)
	ErrCapability      = errors.New(`operation is not supported by this backend`)
)

// Other error messages.
var (
	ErrReturningAlreadySet   = errors.New(`returning columns were already set`)
	ErrNoReturningColumns    = errors.New(`statement has no returning columns`)
	ErrInconsistentStatement = errors.New(`statement is inconsistent`)
	ErrUnexpectedNull        = errors.New(`unexpected NULL value in non-nullable column`)
	ErrShapeMismatch         = errors.New(`result set does not match the returning list`)
	ErrUnknownColumn         = errors.New(`unknown column`)
	ErrMissingValues         = errors.New(`number of values does not match the number of columns`)
	ErrUnsupportedClause     = errors.New(`clause is not supported by this statement type`)
	ErrWarnSlowQuery         = errors.New(`slow query`)
)

// DuplicateAliasError is returned when two returning columns share an alias.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("%v: %q", ErrDuplicateAlias, e.Alias)
}

func (e *DuplicateAliasError) Unwrap() error {
	return ErrDuplicateAlias
}

// UnknownTableError is returned when a returning column refers to tables that
// are not part of the statement.
type UnknownTableError struct {
	Alias  string
	Tables []string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("%v: %q requires %s", ErrUnknownTable, e.Alias, strings.Join(e.Tables, ", "))
}

func (e *UnknownTableError) Unwrap() error {
	return ErrUnknownTable
}

// NotSelectableError is returned for expressions that can't be a projection
// column.
type NotSelectableError struct {
	Alias  string
	Reason string
}

func (e *NotSelectableError) Error() string {
	if e.Alias == "" {
		return fmt.Sprintf("%v: %s", ErrNotSelectable, e.Reason)
	}
	return fmt.Sprintf("%v: %q: %s", ErrNotSelectable, e.Alias, e.Reason)
}

func (e *NotSelectableError) Unwrap() error {
	return ErrNotSelectable
}

// NotSerializableError is returned for expressions the backend grammar can't
// render.
type NotSerializableError struct {
	Alias   string
	Backend string
	Err     error
}

func (e *NotSerializableError) Error() string {
	return fmt.Sprintf("%v: %q (%s): %v", ErrNotSerializable, e.Alias, e.Backend, e.Err)
}

func (e *NotSerializableError) Unwrap() []error {
	return []error{ErrNotSerializable, e.Err}
}

// CapabilityError is returned when the backend can't perform an operation.
type CapabilityError struct {
	Backend   string
	Operation string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%v: %s (%s)", ErrCapability, e.Operation, e.Backend)
}

func (e *CapabilityError) Unwrap() error {
	return ErrCapability
}

// isBuildError reports whether err is one of the errors that leave a statement
// inconsistent.
func isBuildError(err error) bool {
	return errors.Is(err, ErrDuplicateAlias) ||
		errors.Is(err, ErrUnknownTable) ||
		errors.Is(err, ErrNotSelectable) ||
		errors.Is(err, ErrNotSerializable) ||
		errors.Is(err, ErrCapability)
}
