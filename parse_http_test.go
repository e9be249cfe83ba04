package mdblock

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTTPParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# Remote\n\n- a\n- b\n"))
	}))
	defer srv.Close()

	blocks, err := HTTPParse(context.Background(), HTTPParseRequest{URL: srv.URL, Client: srv.Client()})
	if err != nil {
		t.Fatalf("HTTPParse: %v", err)
	}
	want := []Block{
		Heading{Level: 2, Spans: []Span{Plain("Remote")}},
		List{Items: [][]Span{{Plain("a")}, {Plain("b")}}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Fatalf("HTTPParse mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPParseErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/big" {
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
			return
		}
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := HTTPParse(context.Background(), HTTPParseRequest{}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if _, err := HTTPParse(context.Background(), HTTPParseRequest{URL: "ftp://example.com/a.md"}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
	_, err := HTTPParse(context.Background(), HTTPParseRequest{URL: srv.URL + "/missing"})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 status error, got %v", err)
	}
	_, err = HTTPParse(context.Background(), HTTPParseRequest{
		URL:     srv.URL + "/big",
		Options: []ParseOption{WithMaxBytes(16)},
	})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestHTTPParseHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := HTTPParse(ctx, HTTPParseRequest{URL: srv.URL}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
