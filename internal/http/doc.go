// Package http provides the HTTP client used to fetch imgur album pages.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Optional timeout handling
//   - Mapping network failures and non-2xx responses to TransportError
//
// # Basic Usage
//
//	client := http.NewClient(http.DefaultUserAgent, 0)
//
//	// Fetch album HTML
//	html, err := client.GetString(ctx, "https://imgur.com/a/Xk3fQ9z")
//
// No retries are performed. A failed fetch is reported once.
package http
