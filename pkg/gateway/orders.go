package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopkit/storefront/pkg/checkout"
)

// CreateOrder creates an order for the authenticated user.
func (c *Client) CreateOrder(ctx context.Context, req checkout.OrderRequest) (checkout.Order, error) {
	var order checkout.Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order, true); err != nil {
		return checkout.Order{}, err
	}
	return order, nil
}

// CreatePayment creates a payment against an order.
func (c *Client) CreatePayment(ctx context.Context, req checkout.PaymentRequest) (checkout.Payment, error) {
	var payment checkout.Payment
	if err := c.do(ctx, http.MethodPost, "/payments", req, &payment, true); err != nil {
		return checkout.Payment{}, err
	}
	return payment, nil
}

type confirmPaymentRequest struct {
	PaymentToken string `json:"paymentToken"`
}

// ConfirmPayment finalizes a created payment.
func (c *Client) ConfirmPayment(ctx context.Context, paymentToken string) error {
	return c.do(ctx, http.MethodPost, "/payments/confirm-payment", confirmPaymentRequest{PaymentToken: paymentToken}, nil, true)
}

// OrderByCode looks up an order by its customer-facing tracking code.
func (c *Client) OrderByCode(ctx context.Context, code string) (checkout.Order, error) {
	var order checkout.Order
	if err := c.do(ctx, http.MethodGet, "/orders/code/"+url.PathEscape(code), nil, &order, true); err != nil {
		return checkout.Order{}, err
	}
	return order, nil
}

var _ checkout.Gateway = (*Client)(nil)
