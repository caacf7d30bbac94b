// Package widgets maps form field widgets onto the input type hint the
// Bootstrap field template switches on (text, checkbox, multicheckbox,
// radioset, default). Resolve is the closed mapping; Registry layers
// prioritised custom matchers on top of it.
package widgets
