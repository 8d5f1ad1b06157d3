// Package gateway implements the REST backend clients behind the domain
// ports: session.AuthGateway, catalog.Source, and checkout.Gateway.
//
// All requests and responses are JSON. Authorized calls carry the bearer
// token obtained from the configured [TokenSource] (normally the session
// store). Backend failures arrive as an error envelope
//
//	{"code": "...", "description": "..."}
//
// whose description is preserved in the returned error so views can show it
// to the user verbatim.
package gateway
