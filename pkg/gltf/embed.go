package gltf

import (
	"fmt"
	"path"
	"strings"
)

type EmbedOptions struct {
	Load LoadFunc
	// SkipBuffers leaves external buffer URIs alone.
	SkipBuffers bool
	// SkipImages leaves external image URIs alone.
	SkipImages bool
}

// embedMIME is the media type used when inlining an image file. Basis files
// are labelled application/octet-stream because importers with a MIME
// allowlist reject image/x-basis in data URIs.
func embedMIME(uri string) (string, error) {
	switch strings.ToLower(path.Ext(uri)) {
	case ".png":
		return MIMEPNG, nil
	case ".jpg", ".jpeg":
		return MIMEJPEG, nil
	case ".basis":
		return MIMEBinary, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedExtension, uri)
}

// Embed returns a copy of doc with external buffers and images inlined as
// base64 data URIs.
func Embed(doc *Document, opts EmbedOptions) (*Document, error) {
	doc, err := doc.Clone()
	if err != nil {
		return nil, err
	}

	if !opts.SkipBuffers {
		buffers, err := doc.Buffers()
		if err != nil {
			return nil, err
		}
		for i, b := range buffers {
			uri, ok, err := stringField(b, "uri")
			if err != nil {
				return nil, fmt.Errorf("buffers[%d]: %w", i, err)
			}
			if !ok || IsDataURI(uri) {
				continue
			}
			data, err := loadExternal(opts.Load, uri)
			if err != nil {
				return nil, fmt.Errorf("buffers[%d]: %w", i, err)
			}
			b["uri"] = EncodeDataURI(MIMEBinary, data)
		}
	}

	if !opts.SkipImages {
		images, err := doc.Images()
		if err != nil {
			return nil, err
		}
		for i, img := range images {
			uri, ok, err := stringField(img, "uri")
			if err != nil {
				return nil, fmt.Errorf("images[%d]: %w", i, err)
			}
			if !ok || IsDataURI(uri) {
				continue
			}
			mime, err := embedMIME(uri)
			if err != nil {
				return nil, fmt.Errorf("images[%d]: %w", i, err)
			}
			data, err := loadExternal(opts.Load, uri)
			if err != nil {
				return nil, fmt.Errorf("images[%d]: %w", i, err)
			}
			img["uri"] = EncodeDataURI(mime, data)
		}
	}
	return doc, nil
}
