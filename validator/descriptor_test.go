// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ValidDescriptors(t *testing.T) {
	tests := []struct {
		name       string
		descriptor any
		want       fieldRecord
	}{
		{
			name:       "bare name defaults to string body",
			descriptor: "email",
			want:       fieldRecord{name: "email", tag: TagString, kind: KindString, source: SourceBody},
		},
		{
			name:       "name-only list",
			descriptor: []any{"email"},
			want:       fieldRecord{name: "email", tag: TagString, kind: KindString, source: SourceBody},
		},
		{
			name:       "name and type",
			descriptor: []any{"age", "number"},
			want:       fieldRecord{name: "age", tag: TagNumber, kind: KindNumber, source: SourceBody},
		},
		{
			name:       "name type and source",
			descriptor: []any{"id", "number", "params"},
			want:       fieldRecord{name: "id", tag: TagNumber, kind: KindNumber, source: SourceParams},
		},
		{
			name:       "string list",
			descriptor: []string{"flag", "boolean", "query"},
			want:       fieldRecord{name: "flag", tag: TagBoolean, kind: KindBoolean, source: SourceQuery},
		},
		{
			name:       "unknown tag falls back to exact type",
			descriptor: []any{"user", "object"},
			want:       fieldRecord{name: "user", tag: "object", kind: KindExactType, source: SourceBody},
		},
		{
			name:       "typed Source in list",
			descriptor: []any{"q", Type("string"), SourceQuery},
			want:       fieldRecord{name: "q", tag: TagString, kind: KindString, source: SourceQuery},
		},
		{
			name:       "ByName",
			descriptor: ByName("password"),
			want:       fieldRecord{name: "password", tag: TagString, kind: KindString, source: SourceBody},
		},
		{
			name:       "ByNameAndType",
			descriptor: ByNameAndType("n", Type(TagNumber)),
			want:       fieldRecord{name: "n", tag: TagNumber, kind: KindNumber, source: SourceBody},
		},
		{
			name:       "ByNameTypeAndSource",
			descriptor: ByNameTypeAndSource("id", Type(TagNumber), SourceParams),
			want:       fieldRecord{name: "id", tag: TagNumber, kind: KindNumber, source: SourceParams},
		},
		{
			name:       "pointer to Field",
			descriptor: &Field{Name: "p", Source: SourceQuery},
			want:       fieldRecord{name: "p", tag: TagString, kind: KindString, source: SourceQuery},
		},
		{
			name:       "empty tag is an exact type check",
			descriptor: []any{"f", ""},
			want:       fieldRecord{name: "f", tag: "", kind: KindExactType, source: SourceBody},
		},
		{
			name:       "empty tag in string list",
			descriptor: []string{"f", "", "query"},
			want:       fieldRecord{name: "f", tag: "", kind: KindExactType, source: SourceQuery},
		},
		{
			name:       "explicit Type empty tag",
			descriptor: ByNameAndType("f", Type("")),
			want:       fieldRecord{name: "f", tag: "", kind: KindExactType, source: SourceBody},
		},
		{
			name:       "function tag without predicate is an exact type check",
			descriptor: []any{"cb", "function"},
			want:       fieldRecord{name: "cb", tag: TagFunction, kind: KindExactType, source: SourceBody},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize(tt.descriptor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_PredicateDescriptors(t *testing.T) {
	fn := func(v any) bool { return v != nil }

	descriptors := []any{
		[]any{"user", fn},
		[]any{"user", PredicateFunc(fn)},
		[]any{"user", Predicate(fn), "body"},
		ByNameAndType("user", Predicate(fn)),
	}

	for _, d := range descriptors {
		got, err := normalize(d)
		require.NoError(t, err)
		assert.Equal(t, "user", got.name)
		assert.Equal(t, TagFunction, got.tag)
		assert.Equal(t, KindPredicate, got.kind)
		assert.Equal(t, SourceBody, got.source)
		require.NotNil(t, got.pred)
		assert.True(t, got.pred("x"))
		assert.False(t, got.pred(nil))
	}
}

func TestNormalize_ConfigurationErrors(t *testing.T) {
	var nilFn func(any) bool

	tests := []struct {
		name       string
		descriptor any
		wantErr    error
	}{
		{name: "number", descriptor: 42, wantErr: ErrInvalidDescriptor},
		{name: "nil", descriptor: nil, wantErr: ErrInvalidDescriptor},
		{name: "map", descriptor: map[string]any{"name": "x"}, wantErr: ErrInvalidDescriptor},
		{name: "nil Field pointer", descriptor: (*Field)(nil), wantErr: ErrInvalidDescriptor},
		{name: "empty list", descriptor: []any{}, wantErr: ErrEmptyDescriptor},
		{name: "empty string list", descriptor: []string{}, wantErr: ErrEmptyDescriptor},
		{name: "too many elements", descriptor: []any{"f", "string", "body", "x"}, wantErr: ErrTooManyElements},
		{name: "empty bare name", descriptor: "", wantErr: ErrInvalidFieldName},
		{name: "non-string name", descriptor: []any{1, "string"}, wantErr: ErrInvalidFieldName},
		{name: "empty name in list", descriptor: []any{"", "string"}, wantErr: ErrInvalidFieldName},
		{name: "empty Field", descriptor: Field{}, wantErr: ErrInvalidFieldName},
		{name: "numeric rule", descriptor: []any{"f", 3}, wantErr: ErrInvalidRule},
		{name: "nil rule", descriptor: []any{"f", nil}, wantErr: ErrInvalidRule},
		{name: "nil predicate func", descriptor: []any{"f", nilFn}, wantErr: ErrInvalidRule},
		{name: "Predicate(nil)", descriptor: ByNameAndType("f", Predicate(nil)), wantErr: ErrInvalidRule},
		{name: "unknown source", descriptor: []any{"f", "string", "header"}, wantErr: ErrInvalidSource},
		{name: "nil source", descriptor: []any{"f", "string", nil}, wantErr: ErrInvalidSource},
		{name: "numeric source", descriptor: []any{"f", "string", 2}, wantErr: ErrInvalidSource},
		{name: "out of range Source", descriptor: Field{Name: "f", Source: Source(9)}, wantErr: ErrInvalidSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize(tt.descriptor)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSource(t *testing.T) {
	for in, want := range map[string]Source{"body": SourceBody, "query": SourceQuery, "params": SourceParams} {
		got, err := ParseSource(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	_, err := ParseSource("Body")
	assert.ErrorIs(t, err, ErrInvalidSource)
}
