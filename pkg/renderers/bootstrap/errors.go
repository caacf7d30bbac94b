package bootstrap

import "errors"

var (
	// ErrUnsupportedValue is returned when a helper receives a value that is
	// not the form, field or pager it expects.
	ErrUnsupportedValue = errors.New("bootstrap: unsupported value")
	// ErrNotInstalled is returned by template filters evaluated before any
	// renderer was installed.
	ErrNotInstalled = errors.New("bootstrap: no renderer installed")
)
