package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestMessagesClient_Fetch_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[
			{"id":1,"timestamp":"2024-11-29T10:00:00Z","text":"hello"},
			{"id":2,"timestamp":"2024-11-29T10:05:00Z","text":"with report","report_id":"r-77"}
		]}`))
	}))
	defer srv.Close()

	c := NewMessagesClient(srv.URL, srv.Client(), zerolog.Nop())
	msgs, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].ID == nil || *msgs[0].ID != 1 {
		t.Fatalf("first message id = %v, want 1", msgs[0].ID)
	}
	if msgs[0].ReportID != nil {
		t.Fatalf("first message should have no report_id")
	}
	if msgs[1].ReportID == nil || *msgs[1].ReportID != "r-77" {
		t.Fatalf("second message report_id = %v, want r-77", msgs[1].ReportID)
	}
}

func TestMessagesClient_Fetch_MissingFieldsSurviveDecode(t *testing.T) {
	// Decoding must not invent required fields; validation happens in the
	// resolver, which needs to see the nil.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"messages":[{"id":3,"text":"no timestamp"}]}`))
	}))
	defer srv.Close()

	c := NewMessagesClient(srv.URL, srv.Client(), zerolog.Nop())
	msgs, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if msgs[0].Timestamp != nil {
		t.Fatalf("timestamp should be nil when absent, got %q", *msgs[0].Timestamp)
	}
}

func TestMessagesClient_Fetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewMessagesClient(srv.URL, srv.Client(), zerolog.Nop())
	if _, err := c.Fetch(context.Background()); !errors.Is(err, ErrFetchFailure) {
		t.Fatalf("got %v, want ErrFetchFailure", err)
	}
}

func TestMessagesClient_Fetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"messages": [`))
	}))
	defer srv.Close()

	c := NewMessagesClient(srv.URL, srv.Client(), zerolog.Nop())
	if _, err := c.Fetch(context.Background()); !errors.Is(err, ErrFetchFailure) {
		t.Fatalf("got %v, want ErrFetchFailure", err)
	}
}

func TestMessagesClient_Fetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	c := NewMessagesClient(srv.URL, nil, zerolog.Nop())
	if _, err := c.Fetch(context.Background()); !errors.Is(err, ErrFetchFailure) {
		t.Fatalf("got %v, want ErrFetchFailure", err)
	}
}
