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

// Package postgresql provides the PostgreSQL backend. Returning lists can grow
// after the statement is built, and every statement type accepts RETURNING.
package postgresql

import (
	"github.com/jackc/pgtype"
	"github.com/lib/pq"
	"github.com/upper/returning"
	"github.com/upper/returning/internal/exql"
)

// Adapter is the unique name that you can use to refer to this backend.
const Adapter = `postgresql`

// DriverName is the name of the database/sql driver registered by lib/pq.
const DriverName = `postgres`

// Backend describes PostgreSQL.
var Backend = returning.NewBackend(Adapter,
	returning.WithDynamicColumns(),
	returning.WithReturning(
		returning.InsertStatement,
		returning.UpdateStatement,
		returning.DeleteStatement,
	),
	returning.WithFeatures(returning.FeatureCastOperator|returning.FeatureJSONOperators),
	returning.WithIdentifierQuote(pq.QuoteIdentifier),
	returning.WithPlaceholders(exql.ReplaceWithDollarSign),
	returning.WithScanTarget(scanTarget),
)

// scanTarget decodes JSON documents, timestamps and arrays with pgtype, other
// kinds use the default destinations.
func scanTarget(vt returning.ValueType) interface{} {
	switch vt.Kind {
	case returning.KindJSON:
		return &JSONB{}
	case returning.KindTime:
		return &pgtype.Timestamptz{}
	case returning.KindTextArray:
		return &StringArray{}
	case returning.KindIntegerArray:
		return &Int64Array{}
	}
	return nil
}

// Insert creates an INSERT statement for PostgreSQL.
func Insert(table string) *returning.Statement {
	return returning.Insert(Backend, table)
}

// Update creates an UPDATE statement for PostgreSQL.
func Update(table string) *returning.Statement {
	return returning.Update(Backend, table)
}

// Delete creates a DELETE statement for PostgreSQL.
func Delete(table string) *returning.Statement {
	return returning.Delete(Backend, table)
}
