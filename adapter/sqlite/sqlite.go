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

// Package sqlite provides the SQLite backend, for SQLite 3.35 and later.
// RETURNING is accepted by every statement type and returning lists can grow
// after the statement is built. The JSON text operator is available, the
// "::" cast operator is not.
package sqlite

import (
	"github.com/upper/returning"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Adapter is the unique name that you can use to refer to this backend.
const Adapter = `sqlite`

// DriverName is the name of the database/sql driver registered by
// modernc.org/sqlite.
const DriverName = `sqlite`

// Backend describes SQLite.
var Backend = returning.NewBackend(Adapter,
	returning.WithDynamicColumns(),
	returning.WithReturning(
		returning.InsertStatement,
		returning.UpdateStatement,
		returning.DeleteStatement,
	),
	returning.WithFeatures(returning.FeatureJSONOperators),
	returning.WithScanTarget(scanTarget),
)

// scanTarget keeps timestamps as the driver returns them, SQLite stores them
// as text, numbers or time values depending on the column declaration.
func scanTarget(vt returning.ValueType) interface{} {
	if vt.Kind == returning.KindTime {
		return new(interface{})
	}
	return nil
}

// Insert creates an INSERT statement for SQLite.
func Insert(table string) *returning.Statement {
	return returning.Insert(Backend, table)
}

// Update creates an UPDATE statement for SQLite.
func Update(table string) *returning.Statement {
	return returning.Update(Backend, table)
}

// Delete creates a DELETE statement for SQLite.
func Delete(table string) *returning.Statement {
	return returning.Delete(Backend, table)
}
