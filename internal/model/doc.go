// Package model defines the data shared by the pipeline steps and the
// report writers.
//
// This package contains the following main types:
//   - Scan: the state of one run, from page markup to accepted images
//   - Image: one accepted image URL and how it was classified
//   - ResultSet: accepted images in first-seen order, without repeats
//   - Stats: counters for every candidate outcome
//
// The types are serializable to JSON for report output.
package model
