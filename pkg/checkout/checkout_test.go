package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/shopkit/storefront/pkg/cart"
	"github.com/shopkit/storefront/pkg/checkout"
	"github.com/shopkit/storefront/pkg/kvstore"
	"github.com/shopkit/storefront/pkg/session"
	"github.com/shopkit/storefront/pkg/token"
)

func TestTotals(t *testing.T) {
	t.Parallel()

	t.Run("applies the tax rate without rounding", func(t *testing.T) {
		t.Parallel()

		// 2×10.00 + 1×5.50
		sum := checkout.Totals(25.50, 0.24)
		require.InDelta(t, 25.50, sum.Subtotal, 1e-9)
		require.InDelta(t, 6.12, sum.Tax, 1e-9)
		require.InDelta(t, 31.62, sum.GrandTotal, 1e-9)
	})

	t.Run("non-positive rate falls back to default", func(t *testing.T) {
		t.Parallel()

		sum := checkout.Totals(100, 0)
		require.InDelta(t, 24.0, sum.Tax, 1e-9)
		require.InDelta(t, 124.0, sum.GrandTotal, 1e-9)
	})

	t.Run("zero subtotal yields zero totals", func(t *testing.T) {
		t.Parallel()

		sum := checkout.Totals(0, 0.24)
		require.Zero(t, sum.Tax)
		require.Zero(t, sum.GrandTotal)
	})
}

func TestFormatter_Price(t *testing.T) {
	t.Parallel()

	t.Run("greek locale uses comma decimals", func(t *testing.T) {
		t.Parallel()

		f := checkout.NewFormatter(language.Greek)
		require.Equal(t, "6,12", f.Price(6.12))
		require.Equal(t, "25,50", f.Price(25.5))
	})

	t.Run("english locale uses point decimals", func(t *testing.T) {
		t.Parallel()

		f := checkout.NewFormatter(language.English)
		require.Equal(t, "25.50", f.Price(25.5))
		require.Equal(t, "1,234.50", f.Price(1234.5))
	})

	t.Run("rounds to two digits on display only", func(t *testing.T) {
		t.Parallel()

		f := checkout.NewFormatter(language.English)
		require.Equal(t, "0.13", f.Price(0.125001))
	})
}

// --- PlaceOrder ---

type authGateway struct{}

func (authGateway) Login(context.Context, string, string) (session.Challenge, error) {
	return session.Challenge{Token: "challenge", DeliveryMethod: "EMAIL"}, nil
}

func (authGateway) VerifyTwoFactor(context.Context, string, string) (session.Verification, error) {
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))
	if err != nil {
		return session.Verification{}, err
	}
	return session.Verification{Token: raw, Role: session.RoleUser, UUID: "u-42"}, nil
}

type orderGateway struct {
	gotOrder   checkout.OrderRequest
	gotPayment checkout.PaymentRequest
	gotConfirm string

	orderErr   error
	paymentErr error
	confirmErr error
}

func (g *orderGateway) CreateOrder(_ context.Context, req checkout.OrderRequest) (checkout.Order, error) {
	g.gotOrder = req
	if g.orderErr != nil {
		return checkout.Order{}, g.orderErr
	}
	return checkout.Order{ID: 9, Code: "ORD-9"}, nil
}

func (g *orderGateway) CreatePayment(_ context.Context, req checkout.PaymentRequest) (checkout.Payment, error) {
	g.gotPayment = req
	if g.paymentErr != nil {
		return checkout.Payment{}, g.paymentErr
	}
	return checkout.Payment{ID: 1, PaymentToken: "pay-token"}, nil
}

func (g *orderGateway) ConfirmPayment(_ context.Context, paymentToken string) error {
	g.gotConfirm = paymentToken
	return g.confirmErr
}

func authenticatedSession(t *testing.T) *session.Store {
	t.Helper()

	ctx := context.Background()
	s := session.New(authGateway{}, token.NewJWT(), kvstore.NewMemory())
	_, err := s.Login(ctx, "a@b.c", "secret")
	require.NoError(t, err)
	_, err = s.VerifyChallenge(ctx, "123456")
	require.NoError(t, err)
	return s
}

func seededCart(ctx context.Context) *cart.Store {
	c := cart.New(kvstore.NewMemory())
	c.AddItem(ctx, cart.Product{ID: 1, Name: "Widget", Price: 10}, 2)
	c.AddItem(ctx, cart.Product{ID: 2, Name: "Gadget", Price: 5.5}, 1)
	return c
}

func TestService_PlaceOrder(t *testing.T) {
	t.Parallel()

	shipping := checkout.ShippingAddress{Street: "Main 1", City: "Athens", Zipcode: "11111", Country: "GR"}

	t.Run("happy path clears the cart", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		c := seededCart(ctx)
		gw := &orderGateway{}
		svc := checkout.NewService(gw, c, authenticatedSession(t))

		order, err := svc.PlaceOrder(ctx, shipping, "6666000000000000")
		require.NoError(t, err)
		require.Equal(t, int64(9), order.ID)
		require.Equal(t, "ORD-9", order.Code)

		require.Equal(t, "u-42", gw.gotOrder.UserUUID)
		require.Equal(t, shipping, gw.gotOrder.Shipping)
		require.Equal(t, []checkout.OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		}, gw.gotOrder.Items)

		require.Equal(t, int64(9), gw.gotPayment.OrderID)
		require.Equal(t, "CREDIT_CARD", gw.gotPayment.Method)
		require.Equal(t, "pay-token", gw.gotConfirm)

		require.True(t, c.Snapshot().IsEmpty())
	})

	t.Run("anonymous session is rejected", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		c := seededCart(ctx)
		anon := session.New(authGateway{}, token.NewJWT(), kvstore.NewMemory())
		svc := checkout.NewService(&orderGateway{}, c, anon)

		_, err := svc.PlaceOrder(ctx, shipping, "6666000000000000")
		require.ErrorIs(t, err, checkout.ErrNotAuthenticated)
		require.False(t, c.Snapshot().IsEmpty())
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := checkout.NewService(&orderGateway{}, cart.New(kvstore.NewMemory()), authenticatedSession(t))

		_, err := svc.PlaceOrder(ctx, shipping, "6666000000000000")
		require.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("blank card number is rejected", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := checkout.NewService(&orderGateway{}, seededCart(ctx), authenticatedSession(t))

		_, err := svc.PlaceOrder(ctx, shipping, "   ")
		require.ErrorIs(t, err, checkout.ErrCardRequired)
	})

	t.Run("failed payment keeps the cart", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		c := seededCart(ctx)
		gw := &orderGateway{paymentErr: errors.New("card declined")}
		svc := checkout.NewService(gw, c, authenticatedSession(t))

		_, err := svc.PlaceOrder(ctx, shipping, "6666000000000000")
		require.ErrorContains(t, err, "card declined")
		require.Equal(t, 3, c.Snapshot().TotalItems)
	})

	t.Run("failed confirmation keeps the cart", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		c := seededCart(ctx)
		gw := &orderGateway{confirmErr: errors.New("payment token expired")}
		svc := checkout.NewService(gw, c, authenticatedSession(t))

		_, err := svc.PlaceOrder(ctx, shipping, "6666000000000000")
		require.ErrorContains(t, err, "payment token expired")
		require.False(t, c.Snapshot().IsEmpty())
	})
}

func TestService_Summary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := checkout.NewService(&orderGateway{}, seededCart(ctx), authenticatedSession(t))

	sum := svc.Summary()
	require.InDelta(t, 25.50, sum.Subtotal, 1e-9)
	require.InDelta(t, 6.12, sum.Tax, 1e-9)
	require.InDelta(t, 31.62, sum.GrandTotal, 1e-9)
}
