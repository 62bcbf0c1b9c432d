package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientResolvesBaseURLAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("User-Agent"); got != "UA" {
			t.Fatalf("expected User-Agent UA, got %q", got)
		}
		if got := r.Header.Get("X-Extra"); got != "1" {
			t.Fatalf("expected per-request header, got %q", got)
		}
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	}))
	defer srv.Close()

	c := NewRestyClient(Settings{
		BaseURL: srv.URL + "/",
		Headers: map[string]string{"User-Agent": "UA"},
		Timeout: 2 * time.Second,
	})

	resp, err := c.Get(context.Background(), "/users/octocat", map[string]string{"X-Extra": "1"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"login":"octocat"}` {
		t.Fatalf("unexpected body %q", resp.Body())
	}
	if resp.URL() != srv.URL+"/users/octocat" {
		t.Fatalf("unexpected url %q", resp.URL())
	}
}

func TestRestyClientDoesNotFailOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewRestyClient(Settings{Timeout: time.Second})
	resp, err := c.Get(context.Background(), srv.URL+"/missing", nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode())
	}
}

func TestRestyClientReportsConnectionErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewRestyClient(Settings{Timeout: time.Second})
	if _, err := c.Get(context.Background(), url, nil); err == nil {
		t.Fatalf("expected error for closed server")
	}
}
