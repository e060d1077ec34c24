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

package returning

import (
	"strings"

	"github.com/upper/returning/internal/exql"
)

type exprClass uint8

const (
	classPlain exprClass = iota
	classAggregate
	classWildcard
)

// Expr is an immutable SQL expression that can be placed in a returning
// list. Methods that change an expression return a modified copy.
type Expr struct {
	fragment exql.Fragment
	name     string
	alias    string
	typ      ValueType
	tables   []string
	features Feature
	class    exprClass
	isColumn bool
}

// C returns a reference to a column, the name may be qualified with a table
// name, like "users.id" or "public.users.id".
func C(name string) Expr {
	name = strings.TrimSpace(name)

	e := Expr{
		fragment: exql.ColumnWithName(name),
		name:     name,
		typ:      ValueType{Kind: KindAny, Nullable: true},
		isColumn: true,
	}

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		e.tables = []string{name[:i]}
		e.name = name[i+1:]
	}

	if e.name == "*" {
		e.class = classWildcard
		e.name = ""
	}

	return e
}

// Raw returns an expression that is rendered as given. Since raw SQL can't be
// inspected, the tables it depends on must be declared by the caller and an
// alias must be set with As.
func Raw(sql string, tables ...string) Expr {
	return Expr{
		fragment: exql.RawValue(sql),
		typ:      ValueType{Kind: KindAny, Nullable: true},
		tables:   append([]string(nil), tables...),
	}
}

// Lit returns a literal value. Literals need an alias.
func Lit(v interface{}) Expr {
	return Expr{
		fragment: exql.NewValue(v),
		typ:      ValueType{Kind: kindOfValue(v), Nullable: v == nil},
	}
}

// Func returns a function call, the function name is used as the default
// alias.
func Func(name string, args ...Expr) Expr {
	e := Expr{
		name: strings.ToLower(name),
		typ:  ValueType{Kind: KindAny, Nullable: true},
	}

	fargs := make([]exql.Fragment, len(args))
	for i := range args {
		fargs[i] = args[i].fragment
		e.tables = appendTables(e.tables, args[i].tables...)
		e.features |= args[i].features
		if args[i].class == classAggregate {
			e.class = classAggregate
		}
	}

	e.fragment = &exql.Func{Name: name, Args: fargs}
	return e
}

// Agg returns an aggregate function call, like count(id). Aggregates can't be
// used in returning lists.
func Agg(name string, args ...Expr) Expr {
	e := Func(name, args...)
	e.class = classAggregate
	return e
}

// Star returns the "*" wildcard.
func Star() Expr {
	return Expr{
		fragment: &exql.Star{},
		typ:      ValueType{Kind: KindAny, Nullable: true},
		class:    classWildcard,
	}
}

// Default returns the DEFAULT keyword, which has no value.
func Default() Expr {
	return Expr{
		fragment: exql.RawValue("DEFAULT"),
		name:     "default",
		typ:      ValueType{Kind: KindNone},
	}
}

// Cast converts e into the given SQL type using the cast operator
// ("e::type").
func Cast(e Expr, sqlType string) Expr {
	c := e
	c.fragment = &exql.Cast{Expr: e.fragment, Type: sqlType}
	c.features |= FeatureCastOperator
	c.isColumn = false
	c.typ = ValueType{Kind: kindOfSQLType(sqlType), Nullable: e.typ.Nullable}
	return c
}

// JSONText extracts a JSON object field as text ("e->>'key'"). The key is
// used as the default alias.
func JSONText(e Expr, key string) Expr {
	j := e
	j.fragment = &exql.JSONField{Expr: e.fragment, Key: key}
	j.features |= FeatureJSONOperators
	j.isColumn = false
	j.name = key
	j.alias = ""
	j.typ = ValueType{Kind: KindText, Nullable: true}
	return j
}

// As returns a copy of the expression with the given alias.
func (e Expr) As(alias string) Expr {
	e.alias = strings.TrimSpace(alias)
	return e
}

// Type returns a copy of the expression with the given kind.
func (e Expr) Type(kind Kind) Expr {
	e.typ.Kind = kind
	return e
}

// NotNull returns a copy of the expression that is known to never be NULL.
func (e Expr) NotNull() Expr {
	e.typ.Nullable = false
	return e
}

// Alias returns the name the expression is returned as: the explicit alias if
// any, the natural name otherwise. An empty string means the expression
// can't be named.
func (e Expr) Alias() string {
	if e.alias != "" {
		return e.alias
	}
	return e.name
}

// ValueType returns the semantic type of the expression.
func (e Expr) ValueType() ValueType {
	return e.typ
}

// Tables returns the tables the expression refers to.
func (e Expr) Tables() []string {
	return append([]string(nil), e.tables...)
}

// named returns the fragment to be used in a projection.
func (e Expr) named() exql.Fragment {
	alias := e.Alias()
	if e.isColumn && alias == e.name {
		return e.fragment
	}
	return &exql.Alias{Expr: e.fragment, Name: alias}
}

func appendTables(dst []string, tables ...string) []string {
	for _, t := range tables {
		found := false
		for _, d := range dst {
			if d == t {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, t)
		}
	}
	return dst
}
