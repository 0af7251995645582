// Package scan talks to the remote dropshipping scoring collaborator.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"dropscout/internal/log"
	"dropscout/internal/model"
)

// Client issues one scoring request per page. There is no retry and no
// request deduplication; a failed scan is reported once and dropped.
type Client struct {
	endpoint string
	language string
	http     *http.Client
	cache    *gocache.Cache
}

// New builds a scoring client for the given endpoint. language selects the
// collaborator's locale ("fr" is the only one it supports today). A zero
// cacheTTL disables response caching, which keeps every page load fresh.
func New(endpoint, language string, timeout, cacheTTL time.Duration) *Client {
	c := &Client{
		endpoint: endpoint,
		language: language,
		http:     &http.Client{Timeout: timeout},
	}
	if cacheTTL > 0 {
		c.cache = gocache.New(cacheTTL, cacheTTL)
	}
	return c
}

// Scan submits pageURL for scoring and decodes the collaborator's report.
// Every response field is treated as optional; absent fields default rather
// than fail. Transport errors, non-2xx statuses and malformed JSON are
// returned as errors for the caller to contain.
func (c *Client) Scan(ctx context.Context, pageURL string) (*model.ScanReport, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(pageURL); ok {
			return cached.(*model.ScanReport), nil
		}
	}

	form := url.Values{}
	form.Set("lg", c.language)
	form.Set("url", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build scan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach scoring service: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Logger.Warn("failed to close scan response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected scoring status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan response: %w", err)
	}

	report := &model.ScanReport{}
	if err := json.Unmarshal(body, report); err != nil {
		return nil, fmt.Errorf("failed to decode scan response: %w", err)
	}

	log.Logger.Info("scan completed",
		zap.String("url", pageURL),
		zap.Float64("mark", report.Mark),
		zap.Int("technos", len(report.Website.Technos)),
		zap.Int("similar_articles", len(report.SimilarArticles)),
	)

	if c.cache != nil {
		c.cache.Set(pageURL, report, gocache.DefaultExpiration)
	}
	return report, nil
}
