// Package getlinks extracts absolute https link targets from raw HTML.
// It scans anchor tags, normalizes each href by cutting query strings,
// fragments and parameters, keeps only well-formed https URLs and caps
// the result size.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, goquery/, bloom/).
package getlinks
