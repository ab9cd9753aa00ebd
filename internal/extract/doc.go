// Package extract pulls raw image references out of page markup.
//
// Extractor applies three pattern rules to the raw text: img src
// attributes, srcset candidate lists and CSS background url() calls. It
// never parses the document, so malformed markup simply yields fewer
// candidates. MetaExtractor is an optional second source that walks the
// parsed DOM for references the pattern rules do not cover, such as
// og:image or lazy-loading data-src attributes.
package extract
