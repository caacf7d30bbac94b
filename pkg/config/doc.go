// Package config holds the explicit settings the Bootstrap renderer reads:
// asset URLs, the string emitted for invalid as_bootstrap input, the default
// pagination window and the default form layout.
//
// Values come from functional options, a JSON or YAML file (Load, Parse) or a
// go-theme selection (FromTheme).
package config
