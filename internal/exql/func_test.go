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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunc(t *testing.T) {
	{
		f := &Func{Name: "lower", Args: []Fragment{ColumnWithName("users.email")}}
		s, err := f.Compile(defaultTemplate)
		assert.NoError(t, err)
		assert.Equal(t, `lower("users"."email")`, s)
	}

	{
		f := &Func{Name: "now"}
		s, err := f.Compile(defaultTemplate)
		assert.NoError(t, err)
		assert.Equal(t, `now()`, s)
	}

	{
		f := &Func{Name: "coalesce", Args: []Fragment{ColumnWithName("a"), NewValue("n/a")}}
		s, err := f.Compile(defaultTemplate)
		assert.NoError(t, err)
		assert.Equal(t, `coalesce("a", 'n/a')`, s)
	}

	{
		f := &Func{Name: "drop table x; --"}
		_, err := f.Compile(defaultTemplate)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	}
}

func TestCast(t *testing.T) {
	{
		c := &Cast{Expr: ColumnWithName("id"), Type: "text"}
		s, err := c.Compile(defaultTemplate)
		assert.NoError(t, err)
		assert.Equal(t, `"id"::text`, s)
	}

	{
		c := &Cast{Expr: ColumnWithName("price"), Type: "numeric(10, 2)"}
		s, err := c.Compile(defaultTemplate)
		assert.NoError(t, err)
		assert.Equal(t, `"price"::numeric(10, 2)`, s)
	}

	{
		c := &Cast{Expr: ColumnWithName("id"), Type: "text; drop"}
		_, err := c.Compile(defaultTemplate)
		assert.ErrorIs(t, err, ErrInvalidTypeName)
	}

	{
		layout := DefaultTemplate()
		layout.CastLayout = ""

		c := &Cast{Expr: ColumnWithName("id"), Type: "text"}
		_, err := c.Compile(layout)
		assert.ErrorIs(t, err, ErrUnsupportedFragment)
	}
}

func TestJSONField(t *testing.T) {
	{
		j := &JSONField{Expr: ColumnWithName("data"), Key: "it's"}
		s, err := j.Compile(defaultTemplate)
		assert.NoError(t, err)
		assert.Equal(t, `"data"->>'it''s'`, s)
	}

	{
		layout := DefaultTemplate()
		layout.JSONFieldLayout = ""

		j := &JSONField{Expr: ColumnWithName("data"), Key: "name"}
		_, err := j.Compile(layout)
		assert.ErrorIs(t, err, ErrUnsupportedFragment)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		in  interface{}
		out string
	}{
		{nil, `NULL`},
		{true, `TRUE`},
		{12, `12`},
		{1.5, `1.5`},
		{"o'clock", `'o''clock'`},
		{RawValue("now()"), `now()`},
	}
	for _, test := range tests {
		s, err := NewValue(test.in).Compile(defaultTemplate)
		assert.NoError(t, err)
		assert.Equal(t, test.out, s)
	}
}

func TestValueQuoteFunc(t *testing.T) {
	layout := defaultTemplate.Clone()
	layout.QuoteValue = func(s string) string {
		return "E'" + strings.ReplaceAll(s, "'", "\\'") + "'"
	}

	s, err := NewValue("o'clock").Compile(layout)
	assert.NoError(t, err)
	assert.Equal(t, `E'o\'clock'`, s)

	s, err = NewValue(7).Compile(layout)
	assert.NoError(t, err)
	assert.Equal(t, `7`, s)
}

func TestIsTypeName(t *testing.T) {
	valid := []string{"int8", "double precision", "varchar(255)", "numeric(10,2)", "text[]"}
	for _, s := range valid {
		assert.True(t, IsTypeName(s), s)
	}

	invalid := []string{"", "int8)", "varchar(a)", "text;", "numeric(10,)"}
	for _, s := range invalid {
		assert.False(t, IsTypeName(s), s)
	}
}
