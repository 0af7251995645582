// Package detect decides whether a page is an e-commerce storefront from a
// fixed set of independent page signals.
package detect

import (
	"dropscout/internal/model"
)

const (
	ReasonCheckoutForm   = "Checkout or cart form detected"
	ReasonProductListing = "Product listing detected"
	ReasonCartLink       = "Cart link detected"
	ReasonPrice          = "Price pattern detected"
	ReasonCartStorage    = "Cart data found in local storage"
	reasonPlatformPrefix = "E-commerce platform detected: "
)

// Detect runs the six detectors in their fixed order and combines them with
// logical OR. Each positive detector contributes one reason, in evaluation
// order. Detection never fails: a page without any signal is simply not
// e-commerce.
func Detect(page *PageContext) model.DetectionResult {
	result := model.DetectionResult{}

	checks := []struct {
		fire   func(*PageContext) bool
		reason string
	}{
		{hasCheckoutForm, ReasonCheckoutForm},
		{hasProductListing, ReasonProductListing},
		{hasCartLink, ReasonCartLink},
		{hasPricePattern, ReasonPrice},
		{hasCartInStorage, ReasonCartStorage},
	}

	for _, check := range checks {
		if check.fire(page) {
			result.IsEcommerce = true
			result.Reasons = append(result.Reasons, check.reason)
		}
	}

	if name := matchPlatform(page); name != "" {
		result.IsEcommerce = true
		result.Reasons = append(result.Reasons, PlatformReason(name))
	}

	return result
}

// PlatformReason builds the reason string for a matched platform name.
func PlatformReason(name string) string {
	return reasonPlatformPrefix + name
}
