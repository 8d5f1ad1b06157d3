// Package config loads storefront application configuration from a YAML
// file with environment variable overrides for deployment secrets.
package config
