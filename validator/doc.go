// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validator checks named request fields before a handler runs.
//
// A [Validator] carries the rejection settings (status code and message
// mode). [Validator.Configure] compiles field descriptors into a [Gate] once,
// at route declaration time; the gate is then reused for every request.
//
// Descriptors come in two flavours. Typed ones are built with [ByName],
// [ByNameAndType] and [ByNameTypeAndSource]:
//
//	gate := validator.New().MustConfigure(
//		validator.ByName("email"),
//		validator.ByNameAndType("user", validator.Type("object")),
//		validator.ByNameTypeAndSource("id", validator.Type(validator.TagNumber), validator.SourceParams),
//	)
//	router.With(gate.Middleware).Post("/users/{id}", h.createUser)
//
// Untyped ones mirror what route tables loaded from YAML or JSON contain: a
// field name, or a list [name, type-or-predicate, source]:
//
//	gate, err := validator.New(validator.WithStatusCode(422)).Configure(
//		"email",
//		[]any{"user", "object"},
//		[]any{"id", "number", "params"},
//	)
//
// Body values are JSON-typed, so "number" and "boolean" require native JSON
// numbers and booleans there. Query and path values are text: "42" passes
// "number" and "TRUE" passes "boolean". Any tag other than "string",
// "number" and "boolean" is compared against [TypeName].
//
// Checkers run in declaration order and the first failure wins; the
// rejection body is {"error": "<message>"}.
package validator
