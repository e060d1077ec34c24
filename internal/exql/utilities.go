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
	"reflect"
	"strings"
)

func isSpace(in byte) bool {
	return in == ' ' || in == '\t' || in == '\r' || in == '\n'
}

func trimString(in string) string {
	start, end := 0, len(in)-1

	// Where do we start cutting?
	for ; start <= end; start++ {
		if !isSpace(in[start]) {
			break
		}
	}

	// Where do we end cutting?
	for ; end >= start; end-- {
		if !isSpace(in[end]) {
			break
		}
	}

	return in[start : end+1]
}

// Separates by spaces, ignoring spaces too.
func separateBySpace(in string) (out []string) {
	if len(in) == 0 {
		return []string{""}
	}

	pre := strings.Split(in, " ")
	out = make([]string, 0, len(pre))

	for i := range pre {
		pre[i] = trimString(pre[i])
		if pre[i] != "" {
			out = append(out, pre[i])
		}
	}

	return
}

func separateByAS(in string) (out []string) {
	out = []string{}

	if len(in) < 6 {
		// Min expression: "a AS b"
		return []string{in}
	}

	start, lim := 0, len(in)-1

	for start <= lim {
		var end int

		for end = start; end <= lim; end++ {
			if end > 3 && isSpace(in[end]) && isSpace(in[end-3]) {
				if (in[end-1] == 's' || in[end-1] == 'S') && (in[end-2] == 'a' || in[end-2] == 'A') {
					break
				}
			}
		}

		if end < lim {
			out = append(out, trimString(in[start:end-3]))
		} else {
			out = append(out, trimString(in[start:end]))
		}

		start = end + 1
	}

	return
}

// SplitTableName splits "name AS alias" or "name alias" into its parts. The
// alias is empty when not given.
func SplitTableName(in string) (name string, alias string) {
	in = trimString(in)

	chunks := separateByAS(in)
	if len(chunks) == 1 {
		chunks = separateBySpace(in)
	}

	name = chunks[0]
	if len(chunks) > 1 {
		alias = trimString(chunks[1])
	}
	return
}

// IsIdentifier reports whether s is a plain SQL identifier: a letter or
// underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// IsTypeName reports whether s looks like a SQL type name, such as "int8",
// "double precision", "varchar(255)", "numeric(10,2)" or "text[]".
func IsTypeName(s string) bool {
	s = strings.TrimSuffix(s, "[]")
	if i := strings.IndexByte(s, '('); i >= 0 {
		if !strings.HasSuffix(s, ")") {
			return false
		}
		for _, p := range strings.Split(s[i+1:len(s)-1], ",") {
			p = trimString(p)
			if p == "" {
				return false
			}
			for j := 0; j < len(p); j++ {
				if p[j] < '0' || p[j] > '9' {
					return false
				}
			}
		}
		s = trimString(s[:i])
	}
	words := separateBySpace(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !IsIdentifier(w) {
			return false
		}
	}
	return true
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func compileOrEmpty(layout *Template, f Fragment) (string, error) {
	if isNil(f) {
		return "", nil
	}
	return f.Compile(layout)
}
