package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopkit/storefront/pkg/catalog"
)

// productListResponse is the paginated list envelope the backend uses for
// collection endpoints.
type productListResponse struct {
	Data []catalog.Product `json:"data"`
}

// Products fetches the full product list.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	var resp productListResponse
	if err := c.do(ctx, http.MethodGet, "/products", nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Product fetches a single product by ID.
func (c *Client) Product(ctx context.Context, id int64) (catalog.Product, error) {
	var p catalog.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &p, false); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

// Categories fetches all categories.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var resp struct {
		Data []catalog.Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

var _ catalog.Source = (*Client)(nil)
