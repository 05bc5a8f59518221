// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

// checker is the compiled form of one fieldRecord. It holds no request data
// and is safe for concurrent use.
type checker struct {
	field  string
	source Source
	test   func(v any, present bool) bool
}

func (c checker) run(req Request) bool {
	v, ok := req.Lookup(c.source, c.field)
	return c.test(v, ok)
}

func compile(rec fieldRecord) checker {
	c := checker{field: rec.name, source: rec.source}
	src := rec.source

	switch rec.kind {
	case KindString:
		c.test = func(v any, _ bool) bool { return IsString(v) }
	case KindNumber:
		c.test = func(v any, _ bool) bool { return IsNumber(v, src) }
	case KindBoolean:
		c.test = func(v any, _ bool) bool { return IsBoolean(v, src) }
	case KindPredicate:
		pred := rec.pred
		c.test = func(v any, _ bool) bool { return pred(v) }
	default:
		tag := rec.tag
		c.test = func(v any, present bool) bool { return IsExactType(v, present, tag) }
	}

	return c
}

// compileAll normalizes and compiles descriptors in declaration order.
func compileAll(descriptors []any) ([]checker, error) {
	if len(descriptors) == 0 {
		return nil, ErrNoDescriptors
	}

	checkers := make([]checker, 0, len(descriptors))
	for i, d := range descriptors {
		rec, err := normalize(d)
		if err != nil {
			return nil, &ConfigError{Index: i, Descriptor: d, Err: err}
		}
		checkers = append(checkers, compile(rec))
	}

	return checkers, nil
}
