package gltf

import (
	"fmt"
	"path"
	"strings"
)

const (
	MIMEJPEG   = "image/jpeg"
	MIMEPNG    = "image/png"
	MIMEBasis  = "image/x-basis"
	MIMEKTX2   = "image/ktx2"
	MIMEWebP   = "image/webp"
	MIMEBinary = "application/octet-stream"
)

var mimeExtensions = map[string]string{
	MIMEJPEG:  ".jpg",
	MIMEPNG:   ".png",
	MIMEBasis: ".basis",
	MIMEKTX2:  ".ktx2",
	MIMEWebP:  ".webp",
}

var extensionMIMEs = map[string]string{
	".jpg":   MIMEJPEG,
	".jpeg":  MIMEJPEG,
	".png":   MIMEPNG,
	".basis": MIMEBasis,
	".ktx2":  MIMEKTX2,
	".webp":  MIMEWebP,
}

// ExtensionForMIME picks the file extension for an image payload. The generic
// application/octet-stream type takes the extension from name instead.
func ExtensionForMIME(mime, name string) (string, error) {
	if ext, ok := mimeExtensions[mime]; ok {
		return ext, nil
	}
	if mime == MIMEBinary {
		ext := strings.ToLower(path.Ext(name))
		if _, ok := extensionMIMEs[ext]; ok {
			return ext, nil
		}
		return "", fmt.Errorf("%w: %s with image name %q", ErrUnknownMIMEType, mime, name)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMIMEType, mime)
}

// MIMEForPath infers the MIME type of an image file from its extension.
func MIMEForPath(p string) (string, error) {
	ext := strings.ToLower(path.Ext(p))
	if mime, ok := extensionMIMEs[ext]; ok {
		return mime, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedExtension, p)
}
