// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrEmptyAddress is returned for a prober without a server address.
	ErrEmptyAddress = errors.New("empty server address")
	// ErrInvalidAddress is returned when the address has no usable host.
	ErrInvalidAddress = errors.New("address must include host and scheme")
	// ErrUnexpectedStatus is returned by Version for a non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrDecodingResponse is returned when a response body is not the
	// expected JSON document.
	ErrDecodingResponse = errors.New("error decoding response")
)
