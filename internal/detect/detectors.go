package detect

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Currency amounts for $, € and £ with standard grouping and decimal
// punctuation, symbol before or after the amount.
var pricePattern = regexp.MustCompile(
	`[$€£]\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{1,2})?|\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{1,2})?\s?[$€£]`)

// productGridClasses are class names commonly used for product grid cells.
var productGridClasses = []string{"product", "item", "product-card", "product-listing"}

const productGridMinCount = 3

// hasCheckoutForm reports whether any form's action attribute or visible text
// contains a checkout or cart keyword.
func hasCheckoutForm(page *PageContext) bool {
	checkout := conceptKeywords("checkout")

	found := false
	forEachElement(page.Document, "form", func(n *html.Node) {
		if found {
			return
		}
		haystack := strings.ToLower(attrValue(n, "action")) + " " + innerText(n)
		if containsAny(haystack, checkout) {
			found = true
		}
	})
	return found
}

// hasProductListing reports whether the page has more than three product-grid
// elements, or its visible text mentions a product keyword. The keyword half
// is deliberately broad; the original heuristic accepts the false positives.
func hasProductListing(page *PageContext) bool {
	count := 0
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, c := range classList(n) {
				if isProductGridClass(c) {
					count++
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(page.Document)

	if count > productGridMinCount {
		return true
	}
	return containsAny(page.BodyText(), conceptKeywords("product"))
}

// hasCartLink reports whether any anchor's visible text or href contains a
// cart or checkout keyword.
func hasCartLink(page *PageContext) bool {
	cart := conceptKeywords("cart")

	found := false
	forEachElement(page.Document, "a", func(n *html.Node) {
		if found {
			return
		}
		haystack := innerText(n) + " " + strings.ToLower(attrValue(n, "href"))
		if containsAny(haystack, cart) {
			found = true
		}
	})
	return found
}

// hasPricePattern reports whether the page's visible text contains a currency
// amount.
func hasPricePattern(page *PageContext) bool {
	return pricePattern.MatchString(page.BodyText())
}

// hasCartInStorage reports whether any known cart key exists in the page's
// local storage snapshot.
func hasCartInStorage(page *PageContext) bool {
	for _, key := range cartStorageKeys {
		if _, ok := page.Storage[key]; ok {
			return true
		}
	}
	return false
}

func isProductGridClass(class string) bool {
	for _, c := range productGridClasses {
		if strings.EqualFold(class, c) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
