package ply

import "errors"

var (
	ErrByteOrder  = errors.New("format must start with '<' or '>'")
	ErrFormatCode = errors.New("unknown format code")
	ErrValueCount = errors.New("value count does not match format")
	ErrValueRange = errors.New("value out of range for field")
	ErrSource     = errors.New("invalid point-cloud source")
)
