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

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/upper/returning/internal/cache"
)

func addToHash(h uint64, value interface{}) uint64 {
	switch v := value.(type) {
	case string:
		h = fnv1a.AddString64(h, v)
	case int:
		h = fnv1a.AddUint64(h, uint64(v))
	case bool:
		if v {
			h = fnv1a.AddUint64(h, 1)
		} else {
			h = fnv1a.AddUint64(h, 2)
		}
	case uint64:
		h = fnv1a.AddUint64(h, v)
	case Type:
		h = fnv1a.AddUint64(h, uint64(v))
	case []Fragment:
		h = fnv1a.AddUint64(h, uint64(len(v)))
		for i := range v {
			h = addToHash(h, v[i])
		}
	case cache.Hashable:
		if isNil(v) {
			h = fnv1a.AddUint64(h, uint64(FragmentType_Nil))
		} else {
			h = fnv1a.AddUint64(h, v.Hash())
		}
	case nil:
		h = fnv1a.AddUint64(h, uint64(FragmentType_Nil))
	default:
		panic(fmt.Sprintf("hash: unexpected type %T", value))
	}
	return h
}

func quickHash(t FragmentType, values ...interface{}) uint64 {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(t))
	for i := range values {
		h = addToHash(h, values[i])
	}
	return h
}
