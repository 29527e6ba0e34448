// Package secrettest provides a cross-process testable secret.Store.
package secrettest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.abhg.dev/keyhold/internal/secret"
)

// Server is a test server for a secret.Store.
type Server struct {
	t    testing.TB
	mem  secret.Memory
	http *httptest.Server
}

// NewServer creates a new server for a secret store.
// It will automatically shut down when the test ends.
func NewServer(t testing.TB) *Server {
	srv := Server{t: t}

	mux := http.NewServeMux()
	mux.HandleFunc("/set", srv.set)
	mux.HandleFunc("/get", srv.get)
	mux.HandleFunc("/delete", srv.delete)

	srv.http = httptest.NewServer(mux)
	t.Cleanup(srv.http.Close)
	return &srv
}

// URL returns the URL at which the server is listening.
// Use [Client] to talk to this server.
func (s *Server) URL() string {
	return s.http.URL
}

// set is the HTTP handler for storing a secret.
func (s *Server) set(w http.ResponseWriter, r *http.Request) {
	service := r.FormValue("service")
	key := r.FormValue("key")
	value := r.FormValue("value")
	s.t.Logf("[secret] set(%q, %q, ***)", service, key)

	if err := s.mem.Set(service, key, value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// get is the HTTP handler for retrieving a secret.
func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	service := r.FormValue("service")
	key := r.FormValue("key")
	s.t.Logf("[secret] get(%q, %q)", service, key)

	value, err := s.mem.Get(service, key)
	if err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_, _ = io.WriteString(w, value)
}

// delete is the HTTP handler for deleting a secret.
func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	service := r.FormValue("service")
	key := r.FormValue("key")
	s.t.Logf("[secret] delete(%q, %q)", service, key)

	if err := s.mem.Delete(service, key); err != nil {
		if errors.Is(err, secret.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Client is a client for a secret store server.
// It is safe for concurrent use.
type Client struct {
	url *url.URL
}

var _ secret.Store = (*Client)(nil)

// NewClient creates a new client
// capable of talking to a secret store server.
//
// The server URL should be the base URL of the server.
func NewClient(srvURL string) (*Client, error) {
	u, err := url.Parse(srvURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	return &Client{url: u}, nil
}

// Set stores a secret on the server.
func (c *Client) Set(service, key, value string) error {
	q := url.Values{
		"service": []string{service},
		"key":     []string{key},
		"value":   []string{value},
	}
	u := c.url.JoinPath("/set")

	resp, err := http.PostForm(u.String(), q)
	if err != nil {
		return fmt.Errorf("set secret: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("set secret: %s", resp.Status)
	}

	return nil
}

// Get retrieves a secret from the server.
// It returns [secret.ErrNotFound] if no secret exists under the key.
func (c *Client) Get(service, key string) (string, error) {
	q := url.Values{
		"service": []string{service},
		"key":     []string{key},
	}
	u := c.url.JoinPath("/get")
	u.RawQuery = q.Encode()

	resp, err := http.Get(u.String())
	if err != nil {
		return "", fmt.Errorf("get secret: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return "", secret.ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get secret: %s", resp.Status)
	}

	value, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("get secret: %w", err)
	}

	return string(value), nil
}

// Delete removes a secret from the server.
// It returns [secret.ErrNotFound] if no secret exists under the key.
func (c *Client) Delete(service, key string) error {
	q := url.Values{
		"service": []string{service},
		"key":     []string{key},
	}
	u := c.url.JoinPath("/delete")

	resp, err := http.PostForm(u.String(), q)
	if err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return secret.ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete secret: %s", resp.Status)
	}

	return nil
}
