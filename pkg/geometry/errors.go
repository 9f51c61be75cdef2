package geometry

import "errors"

// ErrInvalidArgument is returned when a measurement is requested for
// something that cannot be measured against a parent (the viewport, the
// root node, a detached node) or when a value falls outside a fixed
// enumerated domain.
var ErrInvalidArgument = errors.New("invalid argument")
