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
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/upper/returning/internal/exql"
)

// Feature is a dialect-specific piece of expression grammar.
type Feature uint32

// Features that some backends can't render.
const (
	// FeatureCastOperator is the "expr::type" cast operator.
	FeatureCastOperator Feature = 1 << iota
	// FeatureJSONOperators is the "expr->>'key'" JSON operator.
	FeatureJSONOperators
)

func (f Feature) String() string {
	var names []string
	if f&FeatureCastOperator != 0 {
		names = append(names, "cast operator")
	}
	if f&FeatureJSONOperators != 0 {
		names = append(names, "JSON operators")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// StatementType identifies the kind of data-modification statement.
type StatementType uint8

// Statement types.
const (
	InsertStatement StatementType = iota + 1
	UpdateStatement
	DeleteStatement
)

func (t StatementType) exqlType() exql.Type {
	switch t {
	case InsertStatement:
		return exql.Insert
	case UpdateStatement:
		return exql.Update
	case DeleteStatement:
		return exql.Delete
	}
	return exql.NoOp
}

func (t StatementType) String() string {
	return t.exqlType().String()
}

// Backend describes the capabilities and the grammar of a target database.
// Backends are built with NewBackend and are safe to share.
type Backend struct {
	name         string
	dynamic      bool
	returning    map[StatementType]bool
	features     Feature
	template     *exql.Template
	placeholders func(string) string
	scanTarget   func(ValueType) interface{}
}

// BackendOption configures a Backend.
type BackendOption func(*Backend)

// WithDynamicColumns allows returning lists to grow after the statement was
// built.
func WithDynamicColumns() BackendOption {
	return func(b *Backend) {
		b.dynamic = true
	}
}

// WithReturning lists the statement types that accept a RETURNING clause.
func WithReturning(types ...StatementType) BackendOption {
	return func(b *Backend) {
		for _, t := range types {
			b.returning[t] = true
		}
	}
}

// WithFeatures enables dialect-specific grammar.
func WithFeatures(f Feature) BackendOption {
	return func(b *Backend) {
		b.features |= f
	}
}

// WithIdentifierQuote sets the function used to quote identifiers.
func WithIdentifierQuote(fn func(string) string) BackendOption {
	return func(b *Backend) {
		b.template.QuoteIdentifier = fn
	}
}

// WithValueQuote sets the function used to quote string literals.
func WithValueQuote(fn func(string) string) BackendOption {
	return func(b *Backend) {
		b.template.QuoteValue = fn
	}
}

// WithPlaceholders sets the function that rewrites "?" placeholders into the
// native ones.
func WithPlaceholders(fn func(string) string) BackendOption {
	return func(b *Backend) {
		b.placeholders = fn
	}
}

// WithScanTarget sets the function that returns a scan destination for a
// value type. Returning nil falls back to the default destination.
func WithScanTarget(fn func(ValueType) interface{}) BackendOption {
	return func(b *Backend) {
		b.scanTarget = fn
	}
}

// WithLayout replaces the text/template layout used to render statements of
// the given type.
func WithLayout(t StatementType, layout string) BackendOption {
	return func(b *Backend) {
		switch t {
		case InsertStatement:
			b.template.InsertLayout = layout
		case UpdateStatement:
			b.template.UpdateLayout = layout
		case DeleteStatement:
			b.template.DeleteLayout = layout
		}
	}
}

// NewBackend creates a backend descriptor.
func NewBackend(name string, opts ...BackendOption) *Backend {
	b := &Backend{
		name:      name,
		returning: make(map[StatementType]bool),
		template:  exql.DefaultTemplate(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if !b.Supports(FeatureCastOperator) {
		b.template.CastLayout = ""
	}
	if !b.Supports(FeatureJSONOperators) {
		b.template.JSONFieldLayout = ""
	}
	return b
}

// Name returns the name of the backend.
func (b *Backend) Name() string {
	return b.name
}

// DynamicCapable reports whether returning lists can grow at run time.
func (b *Backend) DynamicCapable() bool {
	return b.dynamic
}

// SupportsReturning reports whether statements of the given type accept a
// RETURNING clause.
func (b *Backend) SupportsReturning(t StatementType) bool {
	return b.returning[t]
}

// Supports reports whether all the given features are available.
func (b *Backend) Supports(f Feature) bool {
	return b.features&f == f
}

// Placeholders rewrites "?" placeholders in the query.
func (b *Backend) Placeholders(query string) string {
	if b.placeholders == nil {
		return query
	}
	return b.placeholders(query)
}

// ScanTarget returns a new scan destination for a value of the given type.
func (b *Backend) ScanTarget(vt ValueType) interface{} {
	if b.scanTarget != nil {
		if dst := b.scanTarget(vt); dst != nil {
			return dst
		}
	}
	return defaultScanTarget(vt)
}

func (b *Backend) compile(f exql.Fragment) (string, error) {
	return f.Compile(b.template)
}

func defaultScanTarget(vt ValueType) interface{} {
	switch vt.Kind {
	case KindInteger:
		return &sql.NullInt64{}
	case KindFloat:
		return &sql.NullFloat64{}
	case KindText:
		return &sql.NullString{}
	case KindBool:
		return &sql.NullBool{}
	case KindTime:
		return &sql.NullTime{}
	case KindBytes, KindJSON:
		return &[]byte{}
	case KindUUID:
		return &uuid.NullUUID{}
	}
	return new(interface{})
}
