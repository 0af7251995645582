package detect

import (
	"reflect"
	"testing"
)

func mustPage(t *testing.T, rawHTML string, storage map[string]string) *PageContext {
	t.Helper()
	page, err := NewPageContext("https://shop.example.com/", rawHTML, storage)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return page
}

const neutralHTML = `<html><body>
	<h1>Hello</h1>
	<p>Welcome to my travel diary. Photos from the coast.</p>
	<a href="/about">About me</a>
</body></html>`

func TestDetectorsOnNeutralPage(t *testing.T) {
	page := mustPage(t, neutralHTML, nil)

	detectors := []struct {
		name string
		fire func(*PageContext) bool
	}{
		{"checkout form", hasCheckoutForm},
		{"product listing", hasProductListing},
		{"cart link", hasCartLink},
		{"price pattern", hasPricePattern},
		{"cart in storage", hasCartInStorage},
	}

	for _, d := range detectors {
		if d.fire(page) {
			t.Errorf("%s detector fired on neutral page", d.name)
		}
	}
	if name := matchPlatform(page); name != "" {
		t.Errorf("platform detector matched %q on neutral page", name)
	}
}

func TestDetectorIndependence(t *testing.T) {
	tests := []struct {
		name     string
		rawHTML  string
		storage  map[string]string
		expected []string
	}{
		{
			name:     "Checkout form via action attribute",
			rawHTML:  `<html><body><form action="/checkout"></form></body></html>`,
			expected: []string{ReasonCheckoutForm},
		},
		{
			name:     "Checkout form via localized action",
			rawHTML:  `<html><body><form action="/panier"></form></body></html>`,
			expected: []string{ReasonCheckoutForm},
		},
		{
			name: "Product listing via grid classes",
			rawHTML: `<html><body>
				<div class="product"></div><div class="product"></div>
				<div class="product"></div><div class="product"></div>
			</body></html>`,
			expected: []string{ReasonProductListing},
		},
		{
			name:     "Product listing via keyword",
			rawHTML:  `<html><body><p>Ce produit vous plaira</p></body></html>`,
			expected: []string{ReasonProductListing},
		},
		{
			name:     "Cart link via href",
			rawHTML:  `<html><body><a href="/cart">My bag</a></body></html>`,
			expected: []string{ReasonCartLink},
		},
		{
			name:     "Price in dollars",
			rawHTML:  `<html><body><span>$19.99</span></body></html>`,
			expected: []string{ReasonPrice},
		},
		{
			name:     "Price in euros, symbol after",
			rawHTML:  `<html><body><span>1.299,00 €</span></body></html>`,
			expected: []string{ReasonPrice},
		},
		{
			name:     "Cart key in storage",
			rawHTML:  `<html><body><p>hello</p></body></html>`,
			storage:  map[string]string{"cart": "[]"},
			expected: []string{ReasonCartStorage},
		},
		{
			name:     "Localized cart key in storage",
			rawHTML:  `<html><body><p>hello</p></body></html>`,
			storage:  map[string]string{"warenkorb": "{}"},
			expected: []string{ReasonCartStorage},
		},
		{
			name:     "Platform via script source",
			rawHTML:  `<html><head><script src="https://cdn.shopify.com/s/theme.js"></script></head><body></body></html>`,
			expected: []string{PlatformReason("Shopify")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := mustPage(t, tt.rawHTML, tt.storage)
			result := Detect(page)
			if !result.IsEcommerce {
				t.Fatal("Detect() = not e-commerce, want positive verdict")
			}
			if !reflect.DeepEqual(result.Reasons, tt.expected) {
				t.Errorf("Detect() reasons = %v, want %v", result.Reasons, tt.expected)
			}
		})
	}
}

func TestDetectReasonsInEvaluationOrder(t *testing.T) {
	rawHTML := `<html>
	<head><script src="https://cdn.shopify.com/s/theme.js"></script></head>
	<body>
		<form action="/checkout"></form>
		<div class="product"></div><div class="product"></div>
		<div class="product"></div><div class="product"></div>
		<a href="/cart">Cart</a>
		<span>$9.99</span>
	</body></html>`

	page := mustPage(t, rawHTML, map[string]string{"cartItems": "[]"})
	result := Detect(page)

	expected := []string{
		ReasonCheckoutForm,
		ReasonProductListing,
		ReasonCartLink,
		ReasonPrice,
		ReasonCartStorage,
		PlatformReason("Shopify"),
	}
	if !reflect.DeepEqual(result.Reasons, expected) {
		t.Errorf("Detect() reasons = %v, want %v", result.Reasons, expected)
	}
}

func TestDetectNegativeVerdict(t *testing.T) {
	page := mustPage(t, neutralHTML, nil)
	result := Detect(page)

	if result.IsEcommerce {
		t.Errorf("Detect() = e-commerce with reasons %v, want negative verdict", result.Reasons)
	}
	if len(result.Reasons) != 0 {
		t.Errorf("Detect() reasons = %v, want none", result.Reasons)
	}
}

func TestHasCheckoutFormViaVisibleText(t *testing.T) {
	page := mustPage(t, `<html><body>
		<form action="/submit"><button>In den Warenkorb</button></form>
	</body></html>`, nil)

	if !hasCheckoutForm(page) {
		t.Error("hasCheckoutForm() = false, want true for German add-to-cart button")
	}
}

func TestHasProductListingCountBoundary(t *testing.T) {
	// Exactly three grid elements is not enough; the rule wants more than three.
	page := mustPage(t, `<html><body>
		<div class="item"></div><div class="item"></div><div class="item"></div>
	</body></html>`, nil)

	if hasProductListing(page) {
		t.Error("hasProductListing() = true with exactly 3 grid elements, want false")
	}
}

func TestHasCartLinkViaText(t *testing.T) {
	page := mustPage(t, `<html><body><a href="/bag">Voir le panier</a></body></html>`, nil)
	if !hasCartLink(page) {
		t.Error("hasCartLink() = false, want true for French cart link text")
	}
}

func TestHasPricePattern(t *testing.T) {
	tests := []struct {
		name     string
		rawHTML  string
		expected bool
	}{
		{"Pound with decimals", `<p>£5.00</p>`, true},
		{"Euro no space", `<p>12,99€</p>`, true},
		{"Grouped dollars", `<p>$1,299.00</p>`, true},
		{"Bare number", `<p>1299</p>`, false},
		{"Price inside script is invisible", `<script>var p = "$9.99";</script>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := mustPage(t, "<html><body>"+tt.rawHTML+"</body></html>", nil)
			if got := hasPricePattern(page); got != tt.expected {
				t.Errorf("hasPricePattern() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHasCartInStorageExactKeys(t *testing.T) {
	page := mustPage(t, neutralHTML, map[string]string{"CART": "[]", "mycart": "x"})
	if hasCartInStorage(page) {
		t.Error("hasCartInStorage() = true for non-exact keys, want false")
	}
}

func TestMatchPlatform(t *testing.T) {
	tests := []struct {
		name     string
		rawHTML  string
		expected string
	}{
		{
			name:     "WooCommerce via body class",
			rawHTML:  `<html><body class="home woocommerce"></body></html>`,
			expected: "WooCommerce",
		},
		{
			name:     "PrestaShop via meta generator",
			rawHTML:  `<html><head><meta name="generator" content="PrestaShop"></head><body></body></html>`,
			expected: "PrestaShop",
		},
		{
			name:     "Magento via script source",
			rawHTML:  `<html><head><script src="/static/frontend/Acme/theme/en_US/mage/bootstrap.js"></script></head><body></body></html>`,
			expected: "Magento",
		},
		{
			name:     "BigCommerce via CDN",
			rawHTML:  `<html><head><script src="https://cdn11.bigcommerce.com/s-abc/stencil.js"></script></head><body></body></html>`,
			expected: "BigCommerce",
		},
		{
			name:     "Squarespace via meta generator",
			rawHTML:  `<html><head><meta name="generator" content="Squarespace"></head><body></body></html>`,
			expected: "Squarespace Commerce",
		},
		{
			name:     "No platform",
			rawHTML:  `<html><head><meta name="generator" content="Hugo 0.118"></head><body></body></html>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := mustPage(t, tt.rawHTML, nil)
			if got := matchPlatform(page); got != tt.expected {
				t.Errorf("matchPlatform() = %q, want %q", got, tt.expected)
			}
		})
	}
}
