package detect

import (
	"strings"

	"golang.org/x/net/html"
)

// platformSignature fingerprints one hosted e-commerce platform from page
// markup: meta generator content, script src substrings, and body classes.
type platformSignature struct {
	Name      string
	MetaGen   []string
	ScriptSrc []string
	BodyClass []string
}

// platformSignatures covers the hosted platforms dropshipping storefronts are
// typically built on. Order fixes which name wins when several match.
var platformSignatures = []platformSignature{
	{
		Name:      "Shopify",
		ScriptSrc: []string{"cdn.shopify.com", "shopifycdn"},
		MetaGen:   []string{"shopify"},
	},
	{
		Name:      "WooCommerce",
		ScriptSrc: []string{"wp-content/plugins/woocommerce"},
		MetaGen:   []string{"woocommerce"},
		BodyClass: []string{"woocommerce"},
	},
	{
		Name:      "Magento",
		ScriptSrc: []string{"mage/", "/static/frontend/"},
		MetaGen:   []string{"magento"},
		BodyClass: []string{"catalog-product-view", "checkout-cart-index"},
	},
	{
		Name:      "PrestaShop",
		ScriptSrc: []string{"prestashop"},
		MetaGen:   []string{"prestashop"},
		BodyClass: []string{"prestashop"},
	},
	{
		Name:      "BigCommerce",
		ScriptSrc: []string{"bigcommerce.com"},
		MetaGen:   []string{"bigcommerce"},
	},
	{
		Name:      "Wix Stores",
		ScriptSrc: []string{"static.parastorage.com"},
		MetaGen:   []string{"wix.com"},
	},
	{
		Name:      "Squarespace Commerce",
		ScriptSrc: []string{"static1.squarespace.com"},
		MetaGen:   []string{"squarespace"},
	},
}

// matchPlatform returns the first platform whose signature matches the page,
// or an empty string when none does.
func matchPlatform(page *PageContext) string {
	generators := metaGenerators(page.Document)
	sources := scriptSources(page.Document)
	classes := bodyClasses(page.Document)

	for _, sig := range platformSignatures {
		if matchesAny(generators, sig.MetaGen) ||
			matchesAny(sources, sig.ScriptSrc) ||
			hasAnyClass(classes, sig.BodyClass) {
			return sig.Name
		}
	}
	return ""
}

func metaGenerators(root *html.Node) []string {
	var values []string
	forEachElement(root, "meta", func(n *html.Node) {
		if strings.EqualFold(attrValue(n, "name"), "generator") {
			values = append(values, strings.ToLower(attrValue(n, "content")))
		}
	})
	return values
}

func scriptSources(root *html.Node) []string {
	var sources []string
	forEachElement(root, "script", func(n *html.Node) {
		if src := attrValue(n, "src"); src != "" {
			sources = append(sources, strings.ToLower(src))
		}
	})
	return sources
}

func bodyClasses(root *html.Node) map[string]bool {
	classes := map[string]bool{}
	forEachElement(root, "body", func(n *html.Node) {
		for _, c := range classList(n) {
			classes[strings.ToLower(c)] = true
		}
	})
	return classes
}

func matchesAny(values, substrings []string) bool {
	for _, v := range values {
		for _, s := range substrings {
			if s != "" && strings.Contains(v, s) {
				return true
			}
		}
	}
	return false
}

func hasAnyClass(classes map[string]bool, wanted []string) bool {
	for _, c := range wanted {
		if classes[c] {
			return true
		}
	}
	return false
}
