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
	"fmt"
	"strings"
)

// knownTables is the set of tables a statement can refer to.
type knownTables map[string]struct{}

func (k knownTables) add(tables ...string) {
	for _, t := range tables {
		name, alias := splitTable(t)
		if alias != "" {
			// An aliased table can only be referred to by its alias.
			k[alias] = struct{}{}
			continue
		}
		k[name] = struct{}{}
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			k[name[i+1:]] = struct{}{}
		}
	}
}

func (k knownTables) missing(tables []string) []string {
	var out []string
	for _, t := range tables {
		if _, ok := k[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// checkTables verifies that every table the column depends on is known.
func checkTables(known knownTables, alias string, tables []string) error {
	if missing := known.missing(tables); len(missing) > 0 {
		return &UnknownTableError{Alias: alias, Tables: missing}
	}
	return nil
}

// checkSelectable verifies that e can be used as a projection column.
func checkSelectable(e Expr) error {
	alias := e.Alias()
	switch {
	case e.fragment == nil:
		return &NotSelectableError{Reason: "empty expression"}
	case e.class == classAggregate:
		return &NotSelectableError{Alias: alias, Reason: "aggregate functions are not allowed"}
	case e.class == classWildcard:
		return &NotSelectableError{Alias: alias, Reason: "wildcards have no name"}
	case e.typ.Kind == KindNone:
		return &NotSelectableError{Alias: alias, Reason: "expression has no value"}
	case alias == "":
		return &NotSelectableError{Reason: "expression has no name, use As to set an alias"}
	}
	return nil
}

// checkSerializable verifies that the backend can render e.
func checkSerializable(b *Backend, e Expr) error {
	alias := e.Alias()

	if missing := e.features &^ b.features; missing != 0 {
		return &NotSerializableError{
			Alias:   alias,
			Backend: b.Name(),
			Err:     fmt.Errorf("missing features %s", missing),
		}
	}

	if _, err := b.compile(e.named()); err != nil {
		return &NotSerializableError{Alias: alias, Backend: b.Name(), Err: err}
	}

	return nil
}

// checkColumn runs the consistency checks over e, in order: known tables
// (unless skipped), selectability and serializability. Then the alias is
// compared against the ones already taken.
func checkColumn(b *Backend, known knownTables, taken map[string]struct{}, e Expr, tableCheck bool) (Column, error) {
	if tableCheck {
		if err := checkTables(known, e.Alias(), e.tables); err != nil {
			return Column{}, err
		}
	}

	if err := checkSelectable(e); err != nil {
		return Column{}, err
	}

	if err := checkSerializable(b, e); err != nil {
		return Column{}, err
	}

	alias := e.Alias()
	if _, ok := taken[alias]; ok {
		return Column{}, &DuplicateAliasError{Alias: alias}
	}

	return Column{
		alias:          alias,
		typ:            e.typ,
		tables:         e.Tables(),
		fragment:       e.named(),
		skipTableCheck: !tableCheck,
	}, nil
}
