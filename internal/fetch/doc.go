// Package fetch is the HTTP facility shared by every network call of a
// run: the page GET, the content-type probe, the validation request and
// the preview byte fetch.
//
// All calls use one Client so they share the timeout, the identifying
// User-Agent, extra headers and the optional proxy. There are no retries.
package fetch
