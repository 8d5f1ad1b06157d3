// Package session owns client-side authentication state: the bearer token,
// the decoded user identity, and an in-progress two-factor challenge.
//
// The store is a three-state machine:
//
//	Anonymous ──Login──▶ TwoFactorPending ──VerifyChallenge──▶ Authenticated
//
// Logout returns to Anonymous from any state. Restore hydrates an
// Authenticated session directly from a persisted, still-valid token at
// startup.
//
// Every transition that sets or clears the token mirrors it to the
// configured key-value store before returning, so a process restart never
// observes a token the store did not have in memory. Persistence failures
// are logged and swallowed: the session degrades to per-run scope instead of
// failing the login.
package session
