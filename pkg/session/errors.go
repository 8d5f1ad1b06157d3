package session

import "errors"

// Session errors.
var (
	// ErrAuth is returned when the gateway rejects the login credentials.
	// The joined gateway error carries the human-readable description.
	ErrAuth = errors.New("session: authentication failed")

	// ErrVerification is returned when the two-factor code is rejected.
	// The pending challenge is retained so the caller can retry.
	ErrVerification = errors.New("session: verification failed")

	// ErrNoPendingChallenge is returned when VerifyChallenge is called
	// without a prior successful Login. This is caller misuse, not a
	// recoverable auth failure.
	ErrNoPendingChallenge = errors.New("session: no pending two-factor challenge")
)
