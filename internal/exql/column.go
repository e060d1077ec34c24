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
	"fmt"
	"strings"
)

// Column represents a SQL column reference, optionally qualified with a table
// name ("table.column").
type Column struct {
	Name string
}

var _ = Fragment(&Column{})

// ColumnWithName creates and returns a Column with the given name.
func ColumnWithName(name string) *Column {
	return &Column{Name: name}
}

// Hash returns a unique identifier for the struct.
func (c *Column) Hash() uint64 {
	if c == nil {
		return hashNil
	}
	return quickHash(FragmentType_Column, c.Name)
}

// Compile transforms the Column into an equivalent SQL representation.
func (c *Column) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(c); ok {
		return z, nil
	}

	name := trimString(c.Name)
	if name == "" {
		return "", fmt.Errorf("%w: empty column name", ErrInvalidIdentifier)
	}

	chunks := strings.Split(name, layout.ColumnSeparator)
	for i := range chunks {
		chunk := trimString(chunks[i])
		if chunk == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, c.Name)
		}
		if chunk == "*" && i == len(chunks)-1 {
			chunks[i] = chunk
			continue
		}
		chunks[i] = layout.Quote(chunk)
	}

	compiled = strings.Join(chunks, layout.ColumnSeparator)

	layout.Write(c, compiled)
	return
}

// Alias renders Expr followed by an AS clause.
type Alias struct {
	Expr Fragment
	Name string
}

var _ = Fragment(&Alias{})

type aliasT struct {
	Name  string
	Alias string
}

// Hash returns a unique identifier for the struct.
func (a *Alias) Hash() uint64 {
	if a == nil {
		return hashNil
	}
	return quickHash(FragmentType_Alias, a.Expr, a.Name)
}

// Compile transforms the Alias into an equivalent SQL representation.
func (a *Alias) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(a); ok {
		return z, nil
	}

	data := aliasT{}
	if data.Name, err = compileOrEmpty(layout, a.Expr); err != nil {
		return "", err
	}
	if data.Name == "" {
		return "", fmt.Errorf("%w: alias %q has no expression", ErrInvalidIdentifier, a.Name)
	}
	if a.Name != "" {
		data.Alias = layout.Quote(a.Name)
	}

	compiled = mustParse(layout.ColumnAliasLayout, data)

	layout.Write(a, compiled)
	return
}
