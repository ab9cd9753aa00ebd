// Package pipeline runs one scan as a fixed sequence of steps.
//
// FetchStep retrieves the page, ExtractStep collects and normalizes raw
// candidates, and SelectStep takes each candidate through resolution,
// deduplication, classification and optional validation. Every step
// receives the same *model.Scan and adds its part to it.
//
// Execution is single-threaded. Each candidate is finished before the next
// one starts, so no two network calls overlap.
package pipeline
