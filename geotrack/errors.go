package geotrack

import "errors"

var (
	// ErrParse indicates malformed track input.
	ErrParse = errors.New("malformed track data")

	// ErrEmptyTrack indicates well-formed input without a single
	// elevation-bearing point.
	ErrEmptyTrack = errors.New("no track points with elevation")
)
