// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// AssertStatusCode checks that the response status code matches expected.
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// LocalhostRequest creates an httptest request that appears to come from
// localhost, which tsweb debug routes require.
func LocalhostRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.RemoteAddr = "127.0.0.1:12345"
	return req
}

// UnitCube returns the box spanning [-1, 1] on every axis, the reference
// object for framing tests.
func UnitCube() r3.Box {
	return r3.Box{
		Min: r3.Vec{X: -1, Y: -1, Z: -1},
		Max: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}
