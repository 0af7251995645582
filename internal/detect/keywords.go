package detect

// One shared keyword table for every keyword-based detector, keyed by concept
// then locale. Earlier revisions of these lists were duplicated per detector
// and drifted apart; keeping them in one place avoids that.
var keywords = map[string]map[string][]string{
	"checkout": {
		"en": {"checkout", "add to cart", "buy now", "shopping cart"},
		"fr": {"panier", "commander", "ajouter au panier", "paiement"},
		"de": {"warenkorb", "zur kasse", "in den warenkorb"},
		"es": {"carrito", "comprar", "añadir al carrito", "cesta"},
		"it": {"carrello", "acquista", "aggiungi al carrello"},
	},
	"cart": {
		"en": {"cart", "checkout", "basket"},
		"fr": {"panier", "commande"},
		"de": {"warenkorb", "kasse"},
		"es": {"carrito", "cesta"},
		"it": {"carrello", "cassa"},
	},
	"product": {
		"en": {"product", "add to basket", "in stock"},
		"fr": {"produit", "ajouter au panier", "en stock"},
		"de": {"produkt", "auf lager"},
		"es": {"producto", "disponible"},
		"it": {"prodotto", "disponibile"},
	},
}

// cartStorageKeys are the local-storage keys e-commerce frontends commonly use
// to persist the cart, including localized variants. Matched as exact keys.
var cartStorageKeys = []string{
	"cart", "shoppingCart", "cartItems",
	"panier", "warenkorb", "carrito", "carrello",
}

// localeOrder keeps flattened keyword lists deterministic.
var localeOrder = []string{"en", "fr", "de", "es", "it"}

// conceptKeywords flattens one concept's per-locale lists in a fixed order.
func conceptKeywords(concept string) []string {
	byLocale := keywords[concept]
	var flat []string
	for _, locale := range localeOrder {
		flat = append(flat, byLocale[locale]...)
	}
	return flat
}
