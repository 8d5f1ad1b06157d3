package catalog

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/shopkit/storefront/pkg/cart"
)

// Category groups products for browsing.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry as served by the backend.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"` // markdown
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// CartProduct converts the catalog entry to the cart's product shape.
func (p Product) CartProduct() cart.Product {
	return cart.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

var (
	mdOnce   sync.Once
	md       goldmark.Markdown
	mdPolicy *bluemonday.Policy
)

func initMarkdown() {
	mdOnce.Do(func() {
		md = goldmark.New()

		// Backend descriptions may embed raw HTML; allow basic formatting
		// only and strip everything executable.
		mdPolicy = bluemonday.NewPolicy()
		mdPolicy.AllowStandardURLs()
		mdPolicy.AllowElements(
			"p", "br",
			"h1", "h2", "h3",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		mdPolicy.AllowAttrs("href").OnElements("a")
		mdPolicy.RequireNoFollowOnLinks(true)
	})
}

// DescriptionHTML renders the markdown description to sanitized HTML.
// A description that fails to render yields the sanitized raw text.
func (p Product) DescriptionHTML() string {
	initMarkdown()

	var buf bytes.Buffer
	if err := md.Convert([]byte(p.Description), &buf); err != nil {
		return mdPolicy.Sanitize(p.Description)
	}
	return mdPolicy.Sanitize(buf.String())
}
