package joke

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(h http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(h)
	c := &Client{Endpoint: srv.URL, HTTP: srv.Client()}
	return c, srv.Close
}

func TestClient_Get(t *testing.T) {
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Expected Accept application/json, got %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"general","setup":"Why did the chicken cross the road?","punchline":"To get to the other side.","id":7}`))
	})
	defer done()

	j, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if j != chicken {
		t.Errorf("Expected %+v, got %+v", chicken, j)
	}
}

func TestClient_GetErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"Server error", http.StatusInternalServerError, `{"setup":"a","punchline":"b"}`, ErrStatus},
		{"Not found", http.StatusNotFound, ``, ErrStatus},
		{"Not JSON", http.StatusOK, `<html>rate limited</html>`, ErrDecode},
		{"Array", http.StatusOK, `[{"setup":"a","punchline":"b"}]`, ErrDecode},
		{"Missing punchline", http.StatusOK, `{"setup":"a"}`, ErrIncomplete},
		{"Wrong types", http.StatusOK, `{"setup":1,"punchline":2}`, ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			defer done()

			_, err := c.Get(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClient_GetNetworkError(t *testing.T) {
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	done() // server closed before the request

	if _, err := c.Get(context.Background()); err == nil {
		t.Error("Expected error from closed server")
	}
}

func TestClient_FetchCallsDoneOnce(t *testing.T) {
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"setup":"s","punchline":"p"}`))
	})
	defer done()

	results := make(chan Joke, 2)
	c.Fetch(context.Background(), func(j Joke, err error) {
		if err != nil {
			t.Errorf("Fetch: %v", err)
		}
		results <- j
	})

	select {
	case j := <-results:
		if j.Setup != "s" || j.Punchline != "p" {
			t.Errorf("unexpected joke %+v", j)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Fetch never completed")
	}
}

func TestClient_FetchHonoursCancel(t *testing.T) {
	release := make(chan struct{})
	c, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer done()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	c.Fetch(ctx, func(_ Joke, err error) { errs <- err })
	cancel()

	select {
	case err := <-errs:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled Fetch never completed")
	}
}

func TestDecode_IgnoresExtraFields(t *testing.T) {
	j, err := Decode(strings.NewReader(`{"id":1,"type":"programming","setup":"s","punchline":"p"}`))
	if err != nil || j.Setup != "s" || j.Punchline != "p" {
		t.Errorf("Decode = %+v, %v", j, err)
	}
}
