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
	"strconv"
)

// ReplaceWithDollarSign turns a SQL statament with '?' placeholders into
// dollar placeholders, like $1, $2, ..., $n
func ReplaceWithDollarSign(in string) string {
	return ReplacePlaceholders(in, "$")
}

// QuotePair is an opening and a closing quote character.
type QuotePair [2]byte

var defaultQuotes = []QuotePair{{'\'', '\''}, {'"', '"'}}

// ReplacePlaceholders turns '?' placeholders into numbered placeholders with
// the given prefix ("$1", "@p1", ...). A double "??" is an escaped question
// mark and becomes a single "?". Question marks inside single or double
// quotes, or inside any of the extra quote pairs, are left alone.
func ReplacePlaceholders(in string, prefix string, quotes ...QuotePair) string {
	buf := []byte(in)
	out := make([]byte, 0, len(buf))

	quotes = append(quotes, defaultQuotes...)

	var closing byte
	i, j, k, t := 0, 1, 0, len(buf)

	for i < t {
		c := buf[i]
		if closing != 0 {
			if c == closing {
				if i+1 < t && buf[i+1] == closing {
					// escaped closing quote
					i++
				} else {
					closing = 0
				}
			}
			i++
			continue
		}
		if q, ok := openingQuote(quotes, c); ok {
			closing = q[1]
			i++
			continue
		}
		if c == '?' {
			out = append(out, buf[k:i]...)
			if i+1 < t && buf[i+1] == '?' {
				out = append(out, '?')
				i++
			} else {
				out = append(out, []byte(prefix+strconv.Itoa(j))...)
				j++
			}
			k = i + 1
		}
		i++
	}
	out = append(out, buf[k:i]...)

	return string(out)
}

func openingQuote(quotes []QuotePair, c byte) (QuotePair, bool) {
	for _, q := range quotes {
		if q[0] == c {
			return q, true
		}
	}
	return QuotePair{}, false
}
