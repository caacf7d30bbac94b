// Package render holds renderer-agnostic helpers shared by the Bootstrap
// template filters: layout parsing, attribute rendering, active-link
// detection, help text sanitising and request-time form preparation.
package render
