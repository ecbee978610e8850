package gltf

import "errors"

var (
	ErrInvalidJSON          = errors.New("invalid glTF JSON")
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrMultipleBuffers      = errors.New("expected exactly one buffer")
	ErrImageSource          = errors.New("image must reference exactly one of bufferView or uri")
	ErrUnknownMIMEType      = errors.New("unknown MIME type")
	ErrUnsupportedExtension = errors.New("unsupported file type")
	ErrImageOrder           = errors.New("image buffer views must follow all other buffer views")
	ErrOutOfRange           = errors.New("buffer view out of range")
	ErrInvalidDataURI       = errors.New("invalid data URI")
	ErrImageMissing         = errors.New("image does not exist")
	ErrNoLoader             = errors.New("no loader for external uri")
)
