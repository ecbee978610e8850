package ico

import "errors"

var (
	ErrFileName      = errors.New("file name does not encode <W>x<H>")
	ErrTooManyImages = errors.New("too many images for icon container")
	ErrTooLarge      = errors.New("icon container exceeds 4 GiB")
	ErrInvalidHeader = errors.New("invalid icon header")
	ErrCorruptFile   = errors.New("corrupt icon file")
)
