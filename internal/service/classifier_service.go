package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"dropscout/internal/detect"
	"dropscout/internal/log"
	"dropscout/internal/model"
	"dropscout/internal/policy"
	"dropscout/internal/ui"
)

var classificationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dropscout_classifications_total",
		Help: "Classification outcomes by result",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(classificationsTotal)
}

// Scanner is the scoring collaborator as the classifier sees it.
type Scanner interface {
	Scan(ctx context.Context, pageURL string) (*model.ScanReport, error)
}

// Input is one page to classify. HTML and Storage come from the client's
// live document when present; an empty HTML triggers a server-side fetch of
// URL instead.
type Input struct {
	URL     string            `json:"url"`
	HTML    string            `json:"html,omitempty"`
	Storage map[string]string `json:"storage,omitempty"`
}

// Classifier runs the whole pipeline: detection, scoring, tier selection and
// view shaping. Scoring failures are contained here; the caller only ever
// sees "no warning", never a propagated scan error.
type Classifier struct {
	scanner    Scanner
	thresholds policy.Thresholds
	links      ui.Links
	fetch      *http.Client
}

func New(scanner Scanner, thresholds policy.Thresholds, links ui.Links, fetchTimeout time.Duration) *Classifier {
	return &Classifier{
		scanner:    scanner,
		thresholds: thresholds,
		links:      links,
		fetch:      &http.Client{Timeout: fetchTimeout},
	}
}

// Classify runs detection on the page and, only on a positive verdict, asks
// the scoring collaborator for a mark. The collaborator is never called for
// pages that are not e-commerce.
func (c *Classifier) Classify(ctx context.Context, in Input) (*model.Classification, error) {
	rawHTML := in.HTML
	if rawHTML == "" {
		fetched, err := c.fetchHTML(ctx, in.URL)
		if err != nil {
			classificationsTotal.WithLabelValues("fetch_failed").Inc()
			return nil, err
		}
		rawHTML = fetched
	}

	page, err := detect.NewPageContext(in.URL, rawHTML, in.Storage)
	if err != nil {
		classificationsTotal.WithLabelValues("parse_failed").Inc()
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	cls := &model.Classification{URL: in.URL}
	cls.Detection = detect.Detect(page)
	if !cls.Detection.IsEcommerce {
		classificationsTotal.WithLabelValues("not_ecommerce").Inc()
		return cls, nil
	}

	report, err := c.scanner.Scan(ctx, in.URL)
	if err != nil {
		// Contained per design: log and show nothing rather than surface an
		// error to the page.
		log.Logger.Error("scan failed",
			zap.String("url", in.URL),
			zap.Error(err),
		)
		classificationsTotal.WithLabelValues("scan_failed").Inc()
		return cls, nil
	}

	// A navigated-away client must never have a stale response applied.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if report.Mark == 0 {
		classificationsTotal.WithLabelValues("not_flagged").Inc()
		cls.Tier = model.TierSuppressed
		return cls, nil
	}

	cls.Probability = policy.Probability(report.Mark)
	cls.Tier = policy.SelectTier(cls.Probability, c.thresholds)

	switch cls.Tier {
	case model.TierBanner:
		// The banner carries the overlay too so escalation needs no second
		// round trip.
		cls.Banner = ui.BuildBanner(cls.Probability, report)
		cls.Overlay = ui.BuildOverlay(cls.Probability, report, c.links)
	case model.TierOverlay:
		cls.Overlay = ui.BuildOverlay(cls.Probability, report, c.links)
	}

	classificationsTotal.WithLabelValues(string(cls.Tier)).Inc()
	return cls, nil
}

// fetchHTML retrieves the page body for server-side classification.
func (c *Classifier) fetchHTML(ctx context.Context, targetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build page request: %w", err)
	}

	resp, err := c.fetch.Do(req)
	if err != nil {
		log.Logger.Error("failed to fetch URL",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		log.Logger.Warn("unexpected status code",
			zap.String("url", targetURL),
			zap.Int("status_code", resp.StatusCode),
		)
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
