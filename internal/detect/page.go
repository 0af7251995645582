package detect

import (
	"strings"

	"golang.org/x/net/html"
)

// PageContext is the read-only page state the detectors run against: the
// parsed document, the page URL, and the host's local-storage keys. It is
// built once per page load and injected explicitly so detection stays
// deterministic without a live browser document.
type PageContext struct {
	URL      string
	Document *html.Node
	Storage  map[string]string

	bodyText string
}

// NewPageContext parses rawHTML and builds the detection input for one page.
// storage may be nil when the caller has no local-storage snapshot.
func NewPageContext(pageURL, rawHTML string, storage map[string]string) (*PageContext, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}
	return FromDocument(pageURL, root, storage), nil
}

// FromDocument wraps an already parsed document.
func FromDocument(pageURL string, doc *html.Node, storage map[string]string) *PageContext {
	if storage == nil {
		storage = map[string]string{}
	}
	return &PageContext{
		URL:      pageURL,
		Document: doc,
		Storage:  storage,
		bodyText: innerText(doc),
	}
}

// BodyText returns the page's visible text, lowercased once at construction
// since every keyword detector scans it.
func (p *PageContext) BodyText() string {
	return p.bodyText
}

// innerText extracts all visible text content inside a node, lowercased.
// Script and style contents are skipped since they are not visible text.
func innerText(node *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(node)
	return strings.ToLower(sb.String())
}

// forEachElement visits every element node with the given tag name.
func forEachElement(root *html.Node, tag string, visit func(*html.Node)) {
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			visit(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(root)
}

// attrValue returns the value of the named attribute, or an empty string.
func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// classList splits an element's class attribute into individual class names.
func classList(node *html.Node) []string {
	return strings.Fields(attrValue(node, "class"))
}
