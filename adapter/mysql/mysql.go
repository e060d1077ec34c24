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

// Package mysql provides the MySQL backend in its MariaDB flavour: INSERT and
// DELETE accept RETURNING, UPDATE does not, and returning lists are fixed once
// the statement is built.
package mysql

import (
	"strings"

	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver
	"github.com/upper/returning"
)

// Adapter is the unique name that you can use to refer to this backend.
const Adapter = `mysql`

// DriverName is the name of the database/sql driver registered by
// go-sql-driver/mysql.
const DriverName = `mysql`

// MariaDB has no DEFAULT VALUES clause.
const insertLayout = `{{if .With}}WITH {{.With}} {{end}}` +
	`INSERT INTO {{.Table}}` +
	`{{if .Columns}} ({{.Columns}}){{else}} (){{end}}` +
	`{{if .Values}} VALUES {{.Values}}{{else}} VALUES (){{end}}` +
	`{{if .Returning}} {{.Returning}}{{end}}`

// Backend describes MariaDB.
var Backend = returning.NewBackend(Adapter,
	returning.WithReturning(
		returning.InsertStatement,
		returning.DeleteStatement,
	),
	returning.WithIdentifierQuote(quoteIdentifier),
	returning.WithValueQuote(quoteValue),
	returning.WithLayout(returning.InsertStatement, insertLayout),
)

func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Backslashes are escapes unless NO_BACKSLASH_ESCAPES is set.
var valueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

func quoteValue(s string) string {
	return "'" + valueEscaper.Replace(s) + "'"
}

// Insert creates an INSERT statement for MariaDB.
func Insert(table string) *returning.Statement {
	return returning.Insert(Backend, table)
}

// Update creates an UPDATE statement for MariaDB.
func Update(table string) *returning.Statement {
	return returning.Update(Backend, table)
}

// Delete creates a DELETE statement for MariaDB.
func Delete(table string) *returning.Statement {
	return returning.Delete(Backend, table)
}
