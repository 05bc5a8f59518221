// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-req-validator/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleTable = `
routes:
  - method: post
    pattern: /users/{id}
    fields:
      - email
      - [user, object]
      - [id, number, params]
  - method: GET
    pattern: /search
    status: 422
    message: bad search
    fields:
      - [q, string, query]
      - [page, number, query]
`

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func mountExample(t *testing.T) *chi.Mux {
	t.Helper()

	table, err := Parse([]byte(exampleTable))
	require.NoError(t, err)

	r := chi.NewRouter()
	require.NoError(t, table.Mount(r, validator.New(), okHandler))
	return r
}

func TestParse_MixedDescriptorShapes(t *testing.T) {
	table, err := Parse([]byte(exampleTable))
	require.NoError(t, err)
	require.Len(t, table.Routes, 2)

	first := table.Routes[0]
	assert.Equal(t, "/users/{id}", first.Pattern)
	require.Len(t, first.Fields, 3)
	assert.Equal(t, "email", first.Fields[0])
	assert.Equal(t, []any{"user", "object"}, first.Fields[1])
	assert.Equal(t, []any{"id", "number", "params"}, first.Fields[2])

	assert.Equal(t, 422, table.Routes[1].Status)
	assert.Equal(t, "bad search", table.Routes[1].Message)
}

func TestParse_JSON(t *testing.T) {
	table, err := Parse([]byte(`{"routes":[{"method":"POST","pattern":"/login","fields":["password",["remember","boolean"]]}]}`))
	require.NoError(t, err)
	require.Len(t, table.Routes, 1)
	assert.Equal(t, []any{"password", []any{"remember", "boolean"}}, table.Routes[0].Fields)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("routes: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(p, []byte(exampleTable), 0o600))

	table, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, table.Routes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMount_ServesAndRejects(t *testing.T) {
	r := mountExample(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "valid user",
			method:     http.MethodPost,
			target:     "/users/7",
			body:       `{"email":"a@b.c","user":{}}`,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "non-numeric id",
			method:     http.MethodPost,
			target:     "/users/abc",
			body:       `{"email":"a@b.c","user":{}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  validator.FieldMessage("id"),
		},
		{
			name:       "valid search",
			method:     http.MethodGet,
			target:     "/search?q=go&page=2",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "route overrides status and message",
			method:     http.MethodGet,
			target:     "/search?q=go&page=two",
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "bad search",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":`+quote(tt.wantError)+`}`, rr.Body.String())
			}
		})
	}
}

func TestMount_Errors(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr error
	}{
		{
			name:    "bad method",
			table:   Table{Routes: []Route{{Method: "FETCH", Pattern: "/", Fields: []any{"a"}}}},
			wantErr: ErrInvalidMethod,
		},
		{
			name:    "bad pattern",
			table:   Table{Routes: []Route{{Method: "GET", Pattern: "users", Fields: []any{"a"}}}},
			wantErr: ErrInvalidPattern,
		},
		{
			name: "duplicate route",
			table: Table{Routes: []Route{
				{Method: "GET", Pattern: "/a", Fields: []any{"a"}},
				{Method: "get", Pattern: "/a", Fields: []any{"b"}},
			}},
			wantErr: ErrDuplicateRoute,
		},
		{
			name:    "bad source",
			table:   Table{Routes: []Route{{Method: "GET", Pattern: "/a", Fields: []any{[]any{"a", "string", "cookie"}}}}},
			wantErr: validator.ErrInvalidSource,
		},
		{
			name:    "empty descriptor",
			table:   Table{Routes: []Route{{Method: "GET", Pattern: "/a", Fields: []any{[]any{}}}}},
			wantErr: validator.ErrEmptyDescriptor,
		},
		{
			name:    "no fields",
			table:   Table{Routes: []Route{{Method: "GET", Pattern: "/a"}}},
			wantErr: validator.ErrNoDescriptors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Mount(chi.NewRouter(), validator.New(), okHandler)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func TestLoad_ExampleFile(t *testing.T) {
	table, err := Load(filepath.Join("..", "..", "configs", "routes.example.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, table.Routes)

	require.NoError(t, table.Mount(chi.NewRouter(), validator.New(), okHandler))
}

func TestMount_EmptyTypeTagRejectsEverything(t *testing.T) {
	table, err := Parse([]byte(`
routes:
  - method: GET
    pattern: /strict
    fields:
      - [q, "", query]
`))
	require.NoError(t, err)
	assert.Equal(t, []any{"q", "", "query"}, table.Routes[0].Fields[0])

	r := chi.NewRouter()
	require.NoError(t, table.Mount(r, validator.New(), okHandler))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/strict?q=text", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
