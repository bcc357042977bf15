package httputil

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestStandardClient_Wraps(t *testing.T) {
	customClient := &http.Client{}
	client := NewStandardClient(customClient)
	if client.Client != customClient {
		t.Error("expected custom client to be wrapped")
	}
	if NewStandardClient(nil).Client != http.DefaultClient {
		t.Error("expected nil to wrap http.DefaultClient")
	}
}

func TestMockHTTPClient_Get(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.AddResponse(http.StatusOK, `{"result": "success"}`)

	resp, err := mock.Get("http://example.com/api")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"result": "success"}` {
		t.Errorf("got body %q", string(body))
	}
	if mock.RequestCount() != 1 {
		t.Errorf("got %d requests, want 1", mock.RequestCount())
	}
}

func TestMockHTTPClient_PostRecordsBody(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.AddResponse(http.StatusCreated, `{}`)

	resp, err := mock.Post("http://example.com/api", "application/json", strings.NewReader(`{"name": "test"}`))
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	resp.Body.Close()

	req, body := mock.Request(0)
	if req.Method != http.MethodPost || req.Header.Get("Content-Type") != "application/json" {
		t.Errorf("unexpected request %s %v", req.Method, req.Header)
	}
	if body != `{"name": "test"}` {
		t.Errorf("body = %q", body)
	}
}

func TestMockHTTPClient_ErrorAndDefault(t *testing.T) {
	mock := NewMockHTTPClient()
	wantErr := errors.New("connection refused")
	mock.AddErrorResponse(wantErr)

	if _, err := mock.Get("http://example.com"); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	// Unqueued requests get an empty 200.
	resp, err := mock.Get("http://example.com")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("default response = %v, %v", resp, err)
	}
	if req, _ := mock.Request(5); req != nil {
		t.Error("out-of-range Request should be nil")
	}
}
