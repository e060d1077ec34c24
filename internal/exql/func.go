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

// Func represents a SQL function call, like "lower(name)".
type Func struct {
	Name string
	Args []Fragment
}

var _ = Fragment(&Func{})

type funcT struct {
	Name string
	Args string
}

// Hash returns a unique identifier for the struct.
func (f *Func) Hash() uint64 {
	if f == nil {
		return hashNil
	}
	return quickHash(FragmentType_Func, f.Name, f.Args)
}

// Compile transforms the Func into an equivalent SQL representation.
func (f *Func) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(f); ok {
		return z, nil
	}

	if !IsIdentifier(f.Name) {
		return "", fmt.Errorf("%w: function name %q", ErrInvalidIdentifier, f.Name)
	}

	args := make([]string, len(f.Args))
	for i := range f.Args {
		if args[i], err = f.Args[i].Compile(layout); err != nil {
			return "", err
		}
	}

	compiled = mustParse(layout.FuncLayout, funcT{
		Name: f.Name,
		Args: strings.Join(args, layout.IdentifierSeparator),
	})

	layout.Write(f, compiled)
	return
}

// Cast represents a type cast using the cast operator, like "id::text".
type Cast struct {
	Expr Fragment
	Type string
}

var _ = Fragment(&Cast{})

type castT struct {
	Expr string
	Type string
}

// Hash returns a unique identifier for the struct.
func (c *Cast) Hash() uint64 {
	if c == nil {
		return hashNil
	}
	return quickHash(FragmentType_Cast, c.Expr, c.Type)
}

// Compile transforms the Cast into an equivalent SQL representation.
func (c *Cast) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(c); ok {
		return z, nil
	}

	if layout.CastLayout == "" {
		return "", fmt.Errorf("%w: cast operator", ErrUnsupportedFragment)
	}
	if !IsTypeName(c.Type) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTypeName, c.Type)
	}

	data := castT{Type: c.Type}
	if data.Expr, err = c.Expr.Compile(layout); err != nil {
		return "", err
	}

	compiled = mustParse(layout.CastLayout, data)

	layout.Write(c, compiled)
	return
}

// JSONField represents the extraction of a JSON object field as text, like
// "data->>'name'".
type JSONField struct {
	Expr Fragment
	Key  string
}

var _ = Fragment(&JSONField{})

type jsonFieldT struct {
	Expr string
	Key  string
}

// Hash returns a unique identifier for the struct.
func (j *JSONField) Hash() uint64 {
	if j == nil {
		return hashNil
	}
	return quickHash(FragmentType_JSONField, j.Expr, j.Key)
}

// Compile transforms the JSONField into an equivalent SQL representation.
func (j *JSONField) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(j); ok {
		return z, nil
	}

	if layout.JSONFieldLayout == "" {
		return "", fmt.Errorf("%w: JSON field operator", ErrUnsupportedFragment)
	}

	data := jsonFieldT{}
	if data.Expr, err = j.Expr.Compile(layout); err != nil {
		return "", err
	}
	if data.Key, err = NewValue(j.Key).Compile(layout); err != nil {
		return "", err
	}

	compiled = mustParse(layout.JSONFieldLayout, data)

	layout.Write(j, compiled)
	return
}
