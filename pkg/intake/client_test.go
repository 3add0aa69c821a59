package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/contact"
)

func testSubmission() contact.Submission {
	return contact.Submission{
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "+919876543210",
		CompanyName: "Acme",
		Message:     "I would like a quote for gutter work.",
	}
}

func TestSubmit_PostsJSONBodyOnce(t *testing.T) {
	var calls int32
	var received contact.Submission
	var contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		contentType = r.Header.Get("Content-Type")
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()))
	if err := client.Submit(context.Background(), testSubmission()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type: %q", contentType)
	}
	if diff := cmp.Diff(testSubmission(), received); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_InvalidSubmissionSkipsNetwork(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()))
	sub := testSubmission()
	sub.Email = "not-an-email"

	err := client.Submit(context.Background(), sub)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !verr.Fields.Has("email") {
		t.Fatalf("expected email error, got %#v", verr.Fields)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("expected no network call, got %d", got)
	}
}

func TestSubmit_NonSuccessStatusIsGenericFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(WithEndpoint(server.URL), WithHTTPClient(server.Client()))
	err := client.Submit(context.Background(), testSubmission())
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestSubmit_TransportErrorIsGenericFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := New(WithEndpoint(server.URL))
	err := client.Submit(context.Background(), testSubmission())
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestSubmit_AppliesConfiguredHeaders(t *testing.T) {
	var agent, apiKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		apiKey = r.Header.Get("X-Api-Key")
	}))
	defer server.Close()

	client := New(
		WithEndpoint(server.URL),
		WithHTTPClient(server.Client()),
		WithUserAgent("contactform-test/1.0"),
		WithHeader("X-Api-Key", "secret"),
	)
	if err := client.Submit(context.Background(), testSubmission()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if agent != "contactform-test/1.0" {
		t.Fatalf("unexpected user agent: %q", agent)
	}
	if apiKey != "secret" {
		t.Fatalf("unexpected api key header: %q", apiKey)
	}
}

func TestNewOptions_Defaults(t *testing.T) {
	opts := NewOptions()
	if opts.Endpoint != DefaultEndpoint {
		t.Fatalf("unexpected endpoint: %q", opts.Endpoint)
	}
	if opts.HTTPClient == nil {
		t.Fatalf("expected a default http client")
	}
}
