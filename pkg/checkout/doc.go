// Package checkout computes order totals and drives order placement.
//
// Totals is a pure function: tax and grand total are derived from the cart
// subtotal without intermediate rounding — rounding happens only when a
// value is formatted for display. Service orchestrates the remote flow
// (create order → create payment → confirm payment) against the orders
// gateway and clears the cart only after the payment is confirmed.
package checkout
