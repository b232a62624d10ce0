package httpquery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goforj/lazystore/lazycore"
)

const defaultTimeout = 5 * time.Second

// Config configures an HTTP GET query source.
type Config struct {
	lazycore.BaseConfig
	// BaseURL is prepended to descriptor queries when set; otherwise
	// the query must be an absolute URL.
	BaseURL string
	Client  *http.Client
}

type source struct {
	base    string
	client  *http.Client
	timeout time.Duration
}

// New builds an HTTP-backed lazycore.QuerySource. The response body is
// decoded as a JSON document; a 404 means no data.
//
// Defaults:
// - Timeout: 5*time.Second when zero
// - Client: http.DefaultClient when nil
func New(cfg Config) lazycore.QuerySource {
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &source{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
		timeout: timeout,
	}
}

func (s *source) Driver() lazycore.Driver { return lazycore.DriverHTTP }

func (s *source) Fetch(ctx context.Context, desc lazycore.Descriptor) (lazycore.Document, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(desc.Query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http query returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return lazycore.DecodeDocument(body)
}

func (s *source) url(query string) string {
	if s.base == "" {
		return query
	}
	return s.base + "/" + strings.TrimLeft(query, "/")
}
