package leaf

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrTopology    = errors.New("mesh topology violated")
	ErrBadDelta    = errors.New("time delta must be finite and non-negative")
	ErrBadParams   = errors.New("bad growth parameters")
	ErrBadVertex   = errors.New("bad vertex")
	ErrBadEdge     = errors.New("bad edge")
	ErrBadSeed     = errors.New("bad seed mesh")
	ErrUnknownSeed = errors.New("unknown seed")
)

// TopologyError reports an edge that does not border exactly one or two faces.
type TopologyError struct {
	Edge  int
	A, B  int
	Count int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("edge %d (%d,%d) borders %d faces, expected 1 or 2", e.Edge, e.A, e.B, e.Count)
}

func (e *TopologyError) Unwrap() error { return ErrTopology }
