package model

// Tier is the severity of the user-facing warning selected from the computed
// probability.
type Tier string

const (
	TierSuppressed Tier = "suppressed"
	TierBanner     Tier = "banner"
	TierOverlay    Tier = "overlay"
)

// Classification is the full outcome of one classify pass: the detection
// verdict, the derived probability and tier, and the view the thin client
// applies to its document. Banner and Overlay are nil unless their tier was
// selected.
type Classification struct {
	URL         string          `json:"url"`
	Detection   DetectionResult `json:"detection"`
	Probability float64         `json:"probability"`
	Tier        Tier            `json:"tier,omitempty"`
	Banner      *BannerView     `json:"banner,omitempty"`
	Overlay     *OverlayView    `json:"overlay,omitempty"`
}

// BannerView describes the dismissible top-of-page strip.
type BannerView struct {
	Probability  float64 `json:"probability"`
	TechnoCount  int     `json:"techno_count"`
	ArticleCount int     `json:"article_count"`
	CanEscalate  bool    `json:"can_escalate"`
}

// OverlayView describes the full-viewport warning modal.
type OverlayView struct {
	Probability    float64        `json:"probability"`
	Technos        []Techno       `json:"technos"`
	ArticleGroups  []ArticleGroup `json:"article_groups"`
	DisputeURL     string         `json:"dispute_url"`
	DisclaimerURL  string         `json:"disclaimer_url"`
	LastSearchDate string         `json:"last_search_date,omitempty"`
}

// ArticleGroup collects similar articles under one apex domain, preserving
// first-seen order of members.
type ArticleGroup struct {
	Domain   string           `json:"domain"`
	Articles []SimilarArticle `json:"articles"`
}
