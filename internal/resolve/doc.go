// Package resolve turns raw image references pulled from markup into
// absolute http(s) URLs relative to the scanned page.
//
// Resolution is deliberately simpler than RFC 3986. The first matching rule
// wins:
//
//   - "//host/path" becomes "https://host/path"
//   - "/path" becomes scheme://host/path of the page
//   - "http://..." and "https://..." are returned unchanged
//   - anything else is joined to scheme://host/<first page path segment>/
//
// Path-relative references never climb more than one segment and ".." is
// not interpreted.
package resolve
