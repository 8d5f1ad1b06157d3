package session

import "context"

// State identifies where the session is in the authentication flow.
type State int

const (
	// Anonymous means no valid token is held.
	Anonymous State = iota
	// TwoFactorPending means credentials were accepted and a two-factor
	// challenge is awaiting verification.
	TwoFactorPending
	// Authenticated means a valid, unexpired token is held.
	Authenticated
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case TwoFactorPending:
		return "two_factor_pending"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Role is the backend-assigned user role.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the identity decoded from a successful verification.
type User struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Role      Role   `json:"role"`
	UUID      string `json:"uuid"`
}

// Challenge describes a pending two-factor challenge. Token is the
// short-lived challenge token the gateway expects back alongside the code;
// DeliveryMethod and Message are for display.
type Challenge struct {
	Token          string
	DeliveryMethod string
	Message        string
}

// Verification is the gateway response to a correct two-factor code.
type Verification struct {
	Token     string
	FirstName string
	LastName  string
	Role      Role
	UUID      string
}

// AuthGateway is the remote authentication backend.
type AuthGateway interface {
	// Login exchanges credentials for a two-factor challenge.
	Login(ctx context.Context, email, password string) (Challenge, error)

	// VerifyTwoFactor exchanges a challenge token and code for a bearer
	// token and user identity.
	VerifyTwoFactor(ctx context.Context, challengeToken, code string) (Verification, error)
}

// Snapshot is a point-in-time, copy-safe view of the session for rendering.
type Snapshot struct {
	State     State
	Token     string
	User      *User      // nil unless Authenticated
	Challenge *Challenge // nil unless TwoFactorPending
}

// IsAuthenticated reports whether the snapshot holds a valid session.
func (s Snapshot) IsAuthenticated() bool {
	return s.State == Authenticated
}
