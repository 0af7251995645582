package model

// DetectionResult is the outcome of one e-commerce detection pass over a page.
// It is built once per page and never mutated afterwards.
type DetectionResult struct {
	IsEcommerce bool     `json:"is_ecommerce"`
	Reasons     []string `json:"reasons"`
}
