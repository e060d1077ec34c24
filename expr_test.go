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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpr(t *testing.T) {
	t.Run("column", func(t *testing.T) {
		e := C("public.users.id")
		assert.Equal(t, "id", e.Alias())
		assert.Equal(t, []string{"public.users"}, e.Tables())
		assert.Equal(t, ValueType{Kind: KindAny, Nullable: true}, e.ValueType())

		e = e.As("user_id").Type(KindInteger).NotNull()
		assert.Equal(t, "user_id", e.Alias())
		assert.Equal(t, ValueType{Kind: KindInteger}, e.ValueType())
	})

	t.Run("immutable", func(t *testing.T) {
		a := C("id")
		b := a.As("x")
		assert.Equal(t, "id", a.Alias())
		assert.Equal(t, "x", b.Alias())
	})

	t.Run("function", func(t *testing.T) {
		e := Func("COALESCE", C("users.nickname"), C("accounts.name"), Lit("n/a"))
		assert.Equal(t, "coalesce", e.Alias())
		assert.Equal(t, []string{"users", "accounts"}, e.Tables())
	})

	t.Run("cast", func(t *testing.T) {
		e := Cast(C("users.id"), "text")
		assert.Equal(t, "id", e.Alias())
		assert.Equal(t, KindText, e.ValueType().Kind)
		assert.True(t, e.ValueType().Nullable)
		assert.Equal(t, FeatureCastOperator, e.features)
	})

	t.Run("JSON field", func(t *testing.T) {
		e := JSONText(Cast(C("data"), "jsonb"), "nickname")
		assert.Equal(t, "nickname", e.Alias())
		assert.Equal(t, ValueType{Kind: KindText, Nullable: true}, e.ValueType())
		assert.Equal(t, FeatureCastOperator|FeatureJSONOperators, e.features)
		assert.Equal(t, "cast operator, JSON operators", e.features.String())
	})

	t.Run("literal", func(t *testing.T) {
		assert.Equal(t, "", Lit(1).Alias())
		assert.Equal(t, ValueType{Kind: KindInteger}, Lit(1).ValueType())
		assert.Equal(t, ValueType{Kind: KindAny, Nullable: true}, Lit(nil).ValueType())
	})

	t.Run("raw", func(t *testing.T) {
		e := Raw("count(*) OVER ()", "users")
		assert.Equal(t, "", e.Alias())
		assert.Equal(t, []string{"users"}, e.Tables())
	})
}

func TestBackend(t *testing.T) {
	assert.Equal(t, "test", testBackend.Name())
	assert.True(t, testBackend.DynamicCapable())
	assert.True(t, testBackend.SupportsReturning(UpdateStatement))
	assert.True(t, testBackend.Supports(FeatureCastOperator|FeatureJSONOperators))
	assert.Equal(t, "SELECT $1", testBackend.Placeholders("SELECT ?"))

	assert.False(t, staticBackend.DynamicCapable())
	assert.False(t, staticBackend.SupportsReturning(UpdateStatement))
	assert.False(t, staticBackend.Supports(FeatureCastOperator))
	assert.Equal(t, "SELECT ?", staticBackend.Placeholders("SELECT ?"))

	assert.Equal(t, "UPDATE", UpdateStatement.String())
	assert.Equal(t, "none", Feature(0).String())
}
