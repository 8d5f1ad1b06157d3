package checkout

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopkit/storefront/pkg/cart"
	"github.com/shopkit/storefront/pkg/session"
)

// ShippingAddress is the delivery address collected at checkout.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// OrderItem is one ordered line, by product ID.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderRequest is the payload for creating an order.
type OrderRequest struct {
	UserUUID string          `json:"userUuid"`
	Shipping ShippingAddress `json:"shippingAddress"`
	Items    []OrderItem     `json:"items"`
}

// Order is the backend's view of a placed order. Code is the customer-facing
// tracking reference emailed after confirmation.
type Order struct {
	ID     int64   `json:"id"`
	Code   string  `json:"orderCode"`
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

// PaymentRequest is the payload for creating a payment against an order.
type PaymentRequest struct {
	OrderID    int64  `json:"orderId"`
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
}

// Payment is the backend's response to a created payment.
type Payment struct {
	ID           int64  `json:"id"`
	PaymentToken string `json:"paymentToken"`
}

// Gateway is the remote orders/payments backend.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
	CreatePayment(ctx context.Context, req PaymentRequest) (Payment, error)
	ConfirmPayment(ctx context.Context, paymentToken string) error
}

// Service places orders from the current cart and session.
type Service struct {
	gateway Gateway
	cart    *cart.Store
	session *session.Store
	taxRate float64
	log     *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithTaxRate overrides DefaultTaxRate.
func WithTaxRate(rate float64) ServiceOption {
	return func(s *Service) {
		if rate > 0 {
			s.taxRate = rate
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a checkout service over the given stores and gateway.
func NewService(gateway Gateway, cartStore *cart.Store, sessionStore *session.Store, opts ...ServiceOption) *Service {
	s := &Service{
		gateway: gateway,
		cart:    cartStore,
		session: sessionStore,
		taxRate: DefaultTaxRate,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary derives the current totals from the cart.
func (s *Service) Summary() Summary {
	return Totals(s.cart.Snapshot().Subtotal, s.taxRate)
}

// PlaceOrder runs the checkout flow: create the order from the cart lines,
// create a card payment for it, confirm the payment, then clear the cart.
// The cart is left untouched when any step fails, so the shopper can retry.
func (s *Service) PlaceOrder(ctx context.Context, shipping ShippingAddress, cardNumber string) (Order, error) {
	snap := s.session.Snapshot()
	if !snap.IsAuthenticated() || snap.User == nil {
		return Order{}, ErrNotAuthenticated
	}
	if strings.TrimSpace(cardNumber) == "" {
		return Order{}, ErrCardRequired
	}

	items := s.cart.Snapshot()
	if items.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	req := OrderRequest{
		UserUUID: snap.User.UUID,
		Shipping: shipping,
		Items:    make([]OrderItem, 0, len(items.Items)),
	}
	for _, it := range items.Items {
		req.Items = append(req.Items, OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		return Order{}, err
	}

	payment, err := s.gateway.CreatePayment(ctx, PaymentRequest{
		OrderID:    order.ID,
		Method:     "CREDIT_CARD",
		CardNumber: cardNumber,
	})
	if err != nil {
		return Order{}, err
	}

	if err := s.gateway.ConfirmPayment(ctx, payment.PaymentToken); err != nil {
		return Order{}, err
	}

	s.cart.Clear(ctx)

	s.log.InfoContext(ctx, "order placed",
		slog.Int64("order_id", order.ID),
		slog.String("user", snap.User.UUID))

	return order, nil
}
