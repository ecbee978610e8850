package glb

import "errors"

var (
	ErrInvalidMagic       = errors.New("invalid glTF signature")
	ErrUnsupportedVersion = errors.New("unsupported glTF version")
	ErrUnexpectedChunk    = errors.New("unexpected GLB chunk")
	ErrCorruptFile        = errors.New("corrupt GLB file")
	ErrTooLarge           = errors.New("GLB length overflow")
)
