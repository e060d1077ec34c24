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

package exql

import (
	"github.com/upper/returning/internal/cache"
)

const (
	defaultColumnSeparator     = `.`
	defaultIdentifierSeparator = `, `
	defaultIdentifierQuote     = `"{{.Value}}"`
	defaultValueSeparator      = `, `
	defaultValueQuote          = `'{{.}}'`
	defaultAssignmentOperator  = `=`
	defaultColumnValue         = `{{.Column}} {{.Operator}} {{.Value}}`
	defaultTableAliasLayout    = `{{.Name}}{{if .Alias}} AS {{.Alias}}{{end}}`
	defaultColumnAliasLayout   = `{{.Name}}{{if .Alias}} AS {{.Alias}}{{end}}`
	defaultFuncLayout          = `{{.Name}}({{.Args}})`
	defaultCastLayout          = `{{.Expr}}::{{.Type}}`
	defaultJSONFieldLayout     = `{{.Expr}}->>{{.Key}}`
	defaultCTELayout           = `{{.Alias}} AS ({{.Statement}})`
	defaultReturningSeparator  = `,`
	defaultReturningLayout     = `RETURNING {{.Columns}}`

	defaultInsertLayout = `{{if .With}}WITH {{.With}} {{end}}` +
		`INSERT INTO {{.Table}}` +
		`{{if .Columns}} ({{.Columns}}){{end}}` +
		`{{if .Values}} VALUES {{.Values}}{{else}} DEFAULT VALUES{{end}}` +
		`{{if .Returning}} {{.Returning}}{{end}}`

	defaultUpdateLayout = `{{if .With}}WITH {{.With}} {{end}}` +
		`UPDATE {{.Table}} SET {{.ColumnValues}}` +
		`{{if .From}} FROM {{.From}}{{end}}` +
		`{{if .Where}} {{.Where}}{{end}}` +
		`{{if .Returning}} {{.Returning}}{{end}}`

	defaultDeleteLayout = `{{if .With}}WITH {{.With}} {{end}}` +
		`DELETE FROM {{.Table}}` +
		`{{if .Using}} USING {{.Using}}{{end}}` +
		`{{if .Where}} {{.Where}}{{end}}` +
		`{{if .Returning}} {{.Returning}}{{end}}`
)

// DefaultTemplate returns a new template using ANSI-ish defaults. Each call
// returns a template with its own compile cache.
func DefaultTemplate() *Template {
	return &Template{
		AssignmentOperator:  defaultAssignmentOperator,
		CTELayout:           defaultCTELayout,
		CastLayout:          defaultCastLayout,
		ColumnAliasLayout:   defaultColumnAliasLayout,
		ColumnSeparator:     defaultColumnSeparator,
		ColumnValue:         defaultColumnValue,
		DeleteLayout:        defaultDeleteLayout,
		FuncLayout:          defaultFuncLayout,
		IdentifierQuote:     defaultIdentifierQuote,
		IdentifierSeparator: defaultIdentifierSeparator,
		InsertLayout:        defaultInsertLayout,
		JSONFieldLayout:     defaultJSONFieldLayout,
		ReturningLayout:     defaultReturningLayout,
		ReturningSeparator:  defaultReturningSeparator,
		TableAliasLayout:    defaultTableAliasLayout,
		UpdateLayout:        defaultUpdateLayout,
		ValueQuote:          defaultValueQuote,
		ValueSeparator:      defaultValueSeparator,
		Cache:               cache.NewCache(),
	}
}

var defaultTemplate = DefaultTemplate()
