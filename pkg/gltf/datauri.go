package gltf

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const dataScheme = "data:"

// IsDataURI reports whether uri embeds its content.
func IsDataURI(uri string) bool {
	return strings.HasPrefix(uri, dataScheme)
}

// EncodeDataURI embeds data as a base64 data URI.
func EncodeDataURI(mime string, data []byte) string {
	return dataScheme + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI returns the media type and content of a data URI. Both the
// base64 and the percent-encoded forms are accepted.
func DecodeDataURI(uri string) (mime string, data []byte, err error) {
	if !IsDataURI(uri) {
		return "", nil, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURI)
	}
	meta, payload, ok := strings.Cut(uri[len(dataScheme):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing comma", ErrInvalidDataURI)
	}

	isBase64 := false
	if m, found := strings.CutSuffix(meta, ";base64"); found {
		meta = m
		isBase64 = true
	}
	mime, _, _ = strings.Cut(meta, ";")

	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
		return mime, data, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return mime, []byte(s), nil
}

// LoadFunc returns the bytes an external, relative URI refers to.
type LoadFunc func(uri string) ([]byte, error)

// DirLoader resolves URIs relative to dir, undoing percent-encoding.
func DirLoader(dir string) LoadFunc {
	return func(uri string) ([]byte, error) {
		p, err := url.PathUnescape(uri)
		if err != nil {
			return nil, fmt.Errorf("gltf: uri %q: %w", uri, err)
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, filepath.FromSlash(p))
		}
		return os.ReadFile(p)
	}
}

// resolve returns the content behind a URI that is either embedded or external.
func resolve(uri string, load LoadFunc) (mime string, data []byte, err error) {
	if IsDataURI(uri) {
		return DecodeDataURI(uri)
	}
	data, err = loadExternal(load, uri)
	return "", data, err
}

// loadExternal reads an external uri through load.
func loadExternal(load LoadFunc, uri string) ([]byte, error) {
	if load == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoLoader, uri)
	}
	return load(uri)
}
