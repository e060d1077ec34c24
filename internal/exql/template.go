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
	"bytes"
	"errors"
	"strings"
	"sync"
	"text/template"

	"github.com/upper/returning/internal/cache"
)

// Type is the type of SQL query the statement represents.
type Type uint

// Values for Type.
const (
	NoOp Type = iota

	Insert
	Update
	Delete

	SQL
)

func (t Type) String() string {
	switch t {
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	case SQL:
		return "SQL"
	}
	return "NOOP"
}

// Errors returned while compiling fragments.
var (
	ErrUnknownTemplateType = errors.New("unknown template type")
	ErrUnsupportedFragment = errors.New("fragment is not supported by this template")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrInvalidTypeName     = errors.New("invalid type name")
)

var templateCache = templateMap{M: make(map[string]*template.Template)}

// Template is an SQL template.
type Template struct {
	AssignmentOperator  string
	CTELayout           string
	CastLayout          string
	ColumnAliasLayout   string
	ColumnSeparator     string
	ColumnValue         string
	DeleteLayout        string
	FuncLayout          string
	IdentifierQuote     string
	IdentifierSeparator string
	InsertLayout        string
	JSONFieldLayout     string
	ReturningLayout     string
	ReturningSeparator  string
	TableAliasLayout    string
	UpdateLayout        string
	ValueQuote          string
	ValueSeparator      string

	// QuoteIdentifier, when set, replaces IdentifierQuote.
	QuoteIdentifier func(string) string

	// QuoteValue, when set, replaces ValueQuote for string literals.
	QuoteValue func(string) string

	*cache.Cache
}

// Quote quotes a single identifier (no separators).
func (layout *Template) Quote(name string) string {
	if layout.QuoteIdentifier != nil {
		return layout.QuoteIdentifier(name)
	}
	return mustParse(layout.IdentifierQuote, Raw{Value: strings.ReplaceAll(name, `"`, `""`)})
}

// Clone returns a copy of the template with an empty cache.
func (layout *Template) Clone() *Template {
	clone := *layout
	clone.Cache = cache.NewCache()
	return &clone
}

func mustParse(text string, data interface{}) string {
	var b bytes.Buffer

	v, ok := templateCache.Get(text)
	if !ok {
		v = template.Must(template.New("").Parse(text))
		templateCache.Set(text, v)
	}

	if err := v.Execute(&b, data); err != nil {
		panic("There was an error compiling the following template:\n" + text + "\nError was: " + err.Error())
	}

	return b.String()
}

type templateMap struct {
	sync.RWMutex
	M map[string]*template.Template
}

func (m *templateMap) Get(k string) (*template.Template, bool) {
	m.RLock()
	defer m.RUnlock()
	v, ok := m.M[k]
	return v, ok
}

func (m *templateMap) Set(k string, v *template.Template) {
	m.Lock()
	defer m.Unlock()
	m.M[k] = v
}
