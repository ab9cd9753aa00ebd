// Package log provides the slog setup for imgscan.
//
// The SecureHandler wraps any slog.Handler and masks sensitive values
// before they reach the output:
//   - attribute keys that carry credentials (cookie, authorization, token)
//   - values that look like bearer/basic credentials or JWTs
//   - query parameters of URL values that sign or authorize a request
//     (token, signature, X-Amz-Signature, ...), which image CDNs hand out
//     routinely
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("accepted", "url", "https://cdn.test/a.png?token=abc")
//	// url=https://cdn.test/a.png?token=***REDACTED***
package log
