// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

// Built-in type tags. Any other tag is compared against [TypeName].
const (
	TagString   = "string"
	TagNumber   = "number"
	TagBoolean  = "boolean"
	TagFunction = "function"
)

// PredicateFunc is a caller-supplied check for a single field value.
// Absent fields are passed as nil.
type PredicateFunc func(v any) bool

// Kind selects the predicate a compiled checker applies.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindPredicate
	KindExactType
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return TagString
	case KindNumber:
		return TagNumber
	case KindBoolean:
		return TagBoolean
	case KindPredicate:
		return TagFunction
	default:
		return "exact"
	}
}

// Rule is either a type check or a predicate check. The zero Rule is
// Type("string"); an explicit Type("") is an exact-type check that never
// matches.
type Rule struct {
	tag    string
	pred   PredicateFunc
	custom bool
	set    bool
}

// Type returns a rule checking the field against a type tag.
func Type(tag string) Rule {
	return Rule{tag: tag, set: true}
}

// Predicate returns a rule delegating to fn.
func Predicate(fn func(any) bool) Rule {
	return Rule{tag: TagFunction, pred: fn, custom: true, set: true}
}

// Tag returns the canonical type tag; "function" for predicate rules.
func (r Rule) Tag() string {
	if r.custom {
		return TagFunction
	}
	if !r.set {
		return TagString
	}
	return r.tag
}

// Kind maps the rule onto the closed set of checker kinds. Tags outside the
// built-in ones fall through to KindExactType.
func (r Rule) Kind() Kind {
	if r.custom {
		return KindPredicate
	}
	switch r.Tag() {
	case TagString:
		return KindString
	case TagNumber:
		return KindNumber
	case TagBoolean:
		return KindBoolean
	default:
		return KindExactType
	}
}
