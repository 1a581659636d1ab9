package core

import "errors"

// ErrNotImplemented is returned by Generate on a proxy constructed without a
// concrete generation strategy. It marks a programming error: every usable
// endpoint variant must supply its own Generate.
var ErrNotImplemented = errors.New("generate not implemented")

// ErrNotRegistered is returned when an endpoint name cannot be resolved in a
// registry at call time.
var ErrNotRegistered = errors.New("endpoint not registered")
