package ico

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// <name><digits>x<digits>.<ext>; the name part is matched lazily so that
// "icon16x16.png" yields 16 and not 6.
var sizePattern = regexp.MustCompile(`^(.*?)(\d+)x(\d+)\.[^.]+$`)

// ParseSize extracts the width and height encoded in a file name.
func ParseSize(path string) (width, height int, err error) {
	base := filepath.Base(path)
	m := sizePattern.FindStringSubmatch(base)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrFileName, base)
	}
	width, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrFileName, base, err)
	}
	height, err = strconv.Atoi(m[3])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrFileName, base, err)
	}
	return width, height, nil
}

// LoadImage reads path and takes the pixel size from its file name.
func LoadImage(path string) (Image, error) {
	w, h, err := ParseSize(path)
	if err != nil {
		return Image{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, err
	}
	return Image{Name: filepath.Base(path), Width: w, Height: h, Data: data}, nil
}
