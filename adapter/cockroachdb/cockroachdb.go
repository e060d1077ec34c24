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

// Package cockroachdb provides the CockroachDB backend. It speaks the
// PostgreSQL grammar and is used through the pgx database/sql driver.
package cockroachdb

import (
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/upper/returning"
	"github.com/upper/returning/internal/exql"
)

// Adapter is the unique name that you can use to refer to this backend.
const Adapter = `cockroachdb`

// DriverName is the name of the database/sql driver registered by
// pgx/v5/stdlib.
const DriverName = `pgx`

// Backend describes CockroachDB.
var Backend = returning.NewBackend(Adapter,
	returning.WithDynamicColumns(),
	returning.WithReturning(
		returning.InsertStatement,
		returning.UpdateStatement,
		returning.DeleteStatement,
	),
	returning.WithFeatures(returning.FeatureCastOperator|returning.FeatureJSONOperators),
	returning.WithIdentifierQuote(quoteIdentifier),
	returning.WithPlaceholders(exql.ReplaceWithDollarSign),
)

func quoteIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// Insert creates an INSERT statement for CockroachDB.
func Insert(table string) *returning.Statement {
	return returning.Insert(Backend, table)
}

// Update creates an UPDATE statement for CockroachDB.
func Update(table string) *returning.Statement {
	return returning.Update(Backend, table)
}

// Delete creates a DELETE statement for CockroachDB.
func Delete(table string) *returning.Statement {
	return returning.Delete(Backend, table)
}
