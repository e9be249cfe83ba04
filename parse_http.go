package mdblock

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPParseRequest configures HTTPParse.
type HTTPParseRequest struct {
	URL     string
	Client  *http.Client
	Options []ParseOption
}

// HTTPParse fetches Markdown over HTTP(S) and classifies it into blocks.
func HTTPParse(ctx context.Context, req HTTPParseRequest) ([]Block, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("http parse: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("http parse: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("http parse: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http parse: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("http parse: status %s", resp.Status)
	}
	blocks, err := ParseReader(ParseRequest{Reader: resp.Body, Options: req.Options})
	if err != nil {
		return nil, fmt.Errorf("http parse: %w", err)
	}
	return blocks, nil
}
