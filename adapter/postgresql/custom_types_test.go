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

package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONB(t *testing.T) {
	type profile struct {
		Nick string      `json:"nick"`
		V    interface{} `json:"v"`
		X    int         `json:"x"`
	}

	t.Run("value", func(t *testing.T) {
		v, err := JSONB{map[string]interface{}{"a": 1}}.Value()
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, v)
	})

	t.Run("scan generic", func(t *testing.T) {
		j := &JSONB{}
		require.NoError(t, j.Scan([]byte(`{"x": 5, "v": [1, "a"]}`)))
		assert.Equal(t, map[string]interface{}{
			"x": float64(5),
			"v": []interface{}{float64(1), "a"},
		}, j.Get())
	})

	t.Run("scan null", func(t *testing.T) {
		j := &JSONB{}
		require.NoError(t, j.Scan(nil))
		assert.Nil(t, j.Get())
	})

	t.Run("scan into struct", func(t *testing.T) {
		p := profile{}
		require.NoError(t, (&JSONB{&p}).Scan([]byte(`{"x": 5, "nick": "ada", "v": true}`)))
		assert.Equal(t, profile{Nick: "ada", V: true, X: 5}, p)
	})
}

func TestArrays(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		v, err := StringArray{"a", "b"}.Value()
		require.NoError(t, err)
		assert.Equal(t, `{a,b}`, v)

		var a StringArray
		require.NoError(t, a.Scan(`{a,"hello world"}`))
		assert.Equal(t, []string{"a", "hello world"}, a.Get())
	})

	t.Run("integers", func(t *testing.T) {
		v, err := Int64Array{1, 2, 3}.Value()
		require.NoError(t, err)
		assert.Equal(t, `{1,2,3}`, v)

		var a Int64Array
		require.NoError(t, a.Scan([]byte(`{4,5}`)))
		assert.Equal(t, []int64{4, 5}, a.Get())
	})

	t.Run("null", func(t *testing.T) {
		a := StringArray{"stale"}
		require.NoError(t, a.Scan(nil))
		assert.Nil(t, a.Get())

		b := Int64Array{1}
		require.NoError(t, b.Scan(nil))
		assert.Nil(t, b.Get())
	})
}
