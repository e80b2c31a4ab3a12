package domain

import "errors"

// ErrUnsupported is returned when the engine meets a construct it refuses to
// evaluate, such as a Relabel reached during synchronization search.
var ErrUnsupported = errors.New("unsupported construct")
