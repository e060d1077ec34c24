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

// Package mssql provides the SQL Server backend. SQL Server has no RETURNING
// clause: statements can be executed but can't have returning columns.
package mssql

import (
	"strings"

	_ "github.com/denisenkom/go-mssqldb" // registers the "sqlserver" driver
	"github.com/upper/returning"
	"github.com/upper/returning/internal/exql"
)

// Adapter is the unique name that you can use to refer to this backend.
const Adapter = `mssql`

// DriverName is the name of the database/sql driver registered by
// go-mssqldb.
const DriverName = `sqlserver`

// Backend describes SQL Server.
var Backend = returning.NewBackend(Adapter,
	returning.WithIdentifierQuote(quoteIdentifier),
	returning.WithPlaceholders(replacePlaceholders),
)

func quoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func replacePlaceholders(query string) string {
	return exql.ReplacePlaceholders(query, "@p", exql.QuotePair{'[', ']'})
}

// Insert creates an INSERT statement for SQL Server.
func Insert(table string) *returning.Statement {
	return returning.Insert(Backend, table)
}

// Update creates an UPDATE statement for SQL Server.
func Update(table string) *returning.Statement {
	return returning.Update(Backend, table)
}

// Delete creates a DELETE statement for SQL Server.
func Delete(table string) *returning.Statement {
	return returning.Delete(Backend, table)
}
