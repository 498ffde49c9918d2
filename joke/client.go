// Package joke fetches jokes and reveals them on a fixed cadence.
package joke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint serves one random joke per GET.
const DefaultEndpoint = "https://official-joke-api.appspot.com/jokes/random"

// maxBody bounds the response size read from the joke service.
const maxBody = 64 << 10

var (
	// ErrStatus reports a non-2xx response.
	ErrStatus = errors.New("joke: unexpected status")
	// ErrDecode reports a body that is not a JSON joke object.
	ErrDecode = errors.New("joke: undecodable response")
	// ErrIncomplete reports a joke without setup or punchline.
	ErrIncomplete = errors.New("joke: missing setup or punchline")
)

// Joke is one setup/punchline pair.
type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// Source produces jokes. Fetch calls done exactly once, possibly from
// another goroutine.
type Source interface {
	Fetch(ctx context.Context, done func(Joke, error))
}

// Client fetches jokes over HTTP.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient returns a client for the default endpoint.
func NewClient() *Client {
	return &Client{
		Endpoint: DefaultEndpoint,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Get performs one request and decodes the joke.
func (c *Client) Get(ctx context.Context) (Joke, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return Joke{}, fmt.Errorf("joke: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return Joke{}, fmt.Errorf("joke: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Joke{}, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	return Decode(io.LimitReader(resp.Body, maxBody))
}

// Fetch implements Source by running Get on a goroutine.
func (c *Client) Fetch(ctx context.Context, done func(Joke, error)) {
	go func() {
		done(c.Get(ctx))
	}()
}

// Decode reads a joke object from r.
func Decode(r io.Reader) (Joke, error) {
	var j Joke
	if err := json.NewDecoder(r).Decode(&j); err != nil {
		return Joke{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if j.Setup == "" || j.Punchline == "" {
		return Joke{}, ErrIncomplete
	}
	return j, nil
}
