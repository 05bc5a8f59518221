// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

// Field is a typed field descriptor. A zero Rule means Type("string") and a
// zero Source means SourceBody.
type Field struct {
	Name   string
	Rule   Rule
	Source Source
}

// ByName describes a string field read from the body.
func ByName(name string) Field {
	return Field{Name: name}
}

// ByNameAndType describes a field read from the body and checked by rule.
func ByNameAndType(name string, rule Rule) Field {
	return Field{Name: name, Rule: rule}
}

// ByNameTypeAndSource describes a field read from src and checked by rule.
func ByNameTypeAndSource(name string, rule Rule, src Source) Field {
	return Field{Name: name, Rule: rule, Source: src}
}

// fieldRecord is the canonical form of a descriptor.
type fieldRecord struct {
	name   string
	tag    string
	kind   Kind
	source Source
	pred   PredicateFunc
}

// normalize turns one descriptor into a fieldRecord. Accepted shapes are a
// field name, a Field, or a list of 1-3 elements
// [name, type-or-predicate, source] as []any or []string.
func normalize(d any) (fieldRecord, error) {
	switch v := d.(type) {
	case string:
		return normalizeField(Field{Name: v})
	case Field:
		return normalizeField(v)
	case *Field:
		if v == nil {
			return fieldRecord{}, ErrInvalidDescriptor
		}
		return normalizeField(*v)
	case []string:
		list := make([]any, len(v))
		for i := range v {
			list[i] = v[i]
		}
		return normalizeList(list)
	case []any:
		return normalizeList(v)
	default:
		return fieldRecord{}, ErrInvalidDescriptor
	}
}

func normalizeList(list []any) (fieldRecord, error) {
	if len(list) == 0 {
		return fieldRecord{}, ErrEmptyDescriptor
	}
	if len(list) > 3 {
		return fieldRecord{}, ErrTooManyElements
	}

	name, ok := list[0].(string)
	if !ok {
		return fieldRecord{}, ErrInvalidFieldName
	}
	field := Field{Name: name}

	if len(list) > 1 {
		rule, err := toRule(list[1])
		if err != nil {
			return fieldRecord{}, err
		}
		field.Rule = rule
	}

	if len(list) > 2 {
		src, err := toSource(list[2])
		if err != nil {
			return fieldRecord{}, err
		}
		field.Source = src
	}

	return normalizeField(field)
}

func normalizeField(f Field) (fieldRecord, error) {
	if f.Name == "" {
		return fieldRecord{}, ErrInvalidFieldName
	}

	src := f.Source
	if src == sourceUnset {
		src = SourceBody
	}
	if !src.valid() {
		return fieldRecord{}, ErrInvalidSource
	}

	if f.Rule.custom && f.Rule.pred == nil {
		return fieldRecord{}, ErrInvalidRule
	}

	return fieldRecord{
		name:   f.Name,
		tag:    f.Rule.Tag(),
		kind:   f.Rule.Kind(),
		source: src,
		pred:   f.Rule.pred,
	}, nil
}

func toRule(v any) (Rule, error) {
	switch r := v.(type) {
	case string:
		return Type(r), nil
	case Rule:
		return r, nil
	case PredicateFunc:
		if r == nil {
			return Rule{}, ErrInvalidRule
		}
		return Predicate(r), nil
	case func(any) bool:
		if r == nil {
			return Rule{}, ErrInvalidRule
		}
		return Predicate(r), nil
	default:
		return Rule{}, ErrInvalidRule
	}
}

func toSource(v any) (Source, error) {
	switch s := v.(type) {
	case string:
		return ParseSource(s)
	case Source:
		if !s.valid() {
			return sourceUnset, ErrInvalidSource
		}
		return s, nil
	default:
		return sourceUnset, ErrInvalidSource
	}
}
