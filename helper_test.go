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
	"github.com/upper/returning/internal/exql"
)

var (
	// testBackend can grow returning lists and render every feature.
	testBackend = NewBackend("test",
		WithDynamicColumns(),
		WithReturning(InsertStatement, UpdateStatement, DeleteStatement),
		WithFeatures(FeatureCastOperator|FeatureJSONOperators),
		WithPlaceholders(exql.ReplaceWithDollarSign),
	)

	// staticBackend only accepts RETURNING on INSERT and DELETE, and its
	// returning lists can't grow.
	staticBackend = NewBackend("static",
		WithReturning(InsertStatement, DeleteStatement),
	)
)

func mustReturning(stmt *Statement, exprs ...Expr) *List {
	l, err := stmt.Returning(exprs...)
	if err != nil {
		panic(err)
	}
	return l
}
