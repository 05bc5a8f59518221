// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package routes loads declarative route tables and mounts them on a chi
// router behind validation gates.
//
// A table lists, per route, the HTTP method, the chi pattern, optional
// rejection overrides and the fields to validate:
//
//	routes:
//	  - method: POST
//	    pattern: /users/{id}
//	    status: 422
//	    fields:
//	      - email
//	      - [user, object]
//	      - [id, number, params]
//
// Every gate is configured while mounting, so a malformed field list stops
// the server before it accepts traffic.
package routes
