package cones

import "errors"

var (
	// ErrUnsupportedCone indicates a descriptor kind with no concrete
	// implementation (e.g. the hidden placeholder variant).
	ErrUnsupportedCone = errors.New("cones: unsupported cone kind")
	// ErrBadDimension indicates a descriptor dimension below the minimum
	// for its kind.
	ErrBadDimension = errors.New("cones: cone dimension out of range")
)
