package ui

import (
	"dropscout/internal/model"
)

const lastSearchLayout = "02 Jan 2006"

// Links shown in the overlay; both point at the scoring provider.
type Links struct {
	DisputeURL    string
	DisclaimerURL string
}

// BuildBanner shapes the non-blocking top-of-page strip: the probability and
// how much supporting evidence backs it.
func BuildBanner(probability float64, report *model.ScanReport) *model.BannerView {
	return &model.BannerView{
		Probability:  probability,
		TechnoCount:  len(report.Website.Technos),
		ArticleCount: len(report.SimilarArticles),
		CanEscalate:  true,
	}
}

// BuildOverlay shapes the full-viewport warning: technologies, similar
// articles grouped by apex domain, and the provider links.
func BuildOverlay(probability float64, report *model.ScanReport, links Links) *model.OverlayView {
	view := &model.OverlayView{
		Probability:   probability,
		Technos:       report.Website.Technos,
		ArticleGroups: GroupByApexDomain(report.SimilarArticles),
		DisputeURL:    links.DisputeURL,
		DisclaimerURL: links.DisclaimerURL,
	}
	if report.LastSearchDate != nil && !report.LastSearchDate.IsZero() {
		view.LastSearchDate = report.LastSearchDate.Format(lastSearchLayout)
	}
	return view
}
