package gateway

import (
	"context"
	"net/http"

	"github.com/shopkit/storefront/pkg/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type challengeResponse struct {
	TwoFactorToken string `json:"twoFactorToken"`
	DeliveryMethod string `json:"deliveryMethod"`
	Message        string `json:"message"`
}

type verifyRequest struct {
	TwoFactorToken string `json:"twoFactorToken"`
	Code           string `json:"code"`
}

type verifyResponse struct {
	Token     string `json:"token"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Role      string `json:"role"`
	UUID      string `json:"uuid"`
}

// Login exchanges credentials for a two-factor challenge.
func (c *Client) Login(ctx context.Context, email, password string) (session.Challenge, error) {
	var resp challengeResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp, false); err != nil {
		return session.Challenge{}, err
	}

	return session.Challenge{
		Token:          resp.TwoFactorToken,
		DeliveryMethod: resp.DeliveryMethod,
		Message:        resp.Message,
	}, nil
}

// VerifyTwoFactor exchanges the challenge token and code for a bearer token
// and user identity.
func (c *Client) VerifyTwoFactor(ctx context.Context, challengeToken, code string) (session.Verification, error) {
	var resp verifyResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-2fa", verifyRequest{TwoFactorToken: challengeToken, Code: code}, &resp, false); err != nil {
		return session.Verification{}, err
	}

	return session.Verification{
		Token:     resp.Token,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Role:      session.Role(resp.Role),
		UUID:      resp.UUID,
	}, nil
}

var _ session.AuthGateway = (*Client)(nil)

// Registration is the payload for creating a customer account. PhoneNumber
// is optional.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

type registerRequest struct {
	FirstName   string  `json:"firstname"`
	LastName    string  `json:"lastname"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
}

// Register creates a customer account. The backend sends a verification
// email; the account stays inactive for sign-in until VerifyEmail is called
// with the emailed token.
func (c *Client) Register(ctx context.Context, reg Registration) (session.User, error) {
	req := registerRequest{
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		Password:  reg.Password,
		Role:      string(session.RoleUser),
		IsActive:  true,
	}
	if reg.PhoneNumber != "" {
		req.PhoneNumber = &reg.PhoneNumber
	}

	var user session.User
	if err := c.do(ctx, http.MethodPost, "/users", req, &user, false); err != nil {
		return session.User{}, err
	}
	return user, nil
}

type emailTokenRequest struct {
	Token string `json:"token"`
}

// VerifyEmail confirms a newly registered account with the token from the
// verification email.
func (c *Client) VerifyEmail(ctx context.Context, emailToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify-email", emailTokenRequest{Token: emailToken}, nil, false)
}

type resetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset asks the backend to email a password reset token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/password-reset/request", resetRequest{Email: email}, nil, false)
}

type resetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword sets a new password using the token from the reset email.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/auth/password-reset/confirm", resetConfirmRequest{Token: resetToken, NewPassword: newPassword}, nil, false)
}
