package gltf

import (
	"fmt"
	"path"
	"strings"
)

// TextureVariant names a texture extension that wraps an image source.
type TextureVariant struct {
	Extension string
	FileExt   string
	MIME      string
}

var (
	GoogleTextureBasis = TextureVariant{Extension: "GOOGLE_texture_basis", FileExt: ".basis", MIME: MIMEBasis}
	KHRTextureBasisu   = TextureVariant{Extension: "KHR_texture_basisu", FileExt: ".ktx2", MIME: MIMEKTX2}
)

// TextureVariants lists the supported variants by extension name.
var TextureVariants = map[string]TextureVariant{
	GoogleTextureBasis.Extension: GoogleTextureBasis,
	KHRTextureBasisu.Extension:   KHRTextureBasisu,
}

type WrapOptions struct {
	Variant TextureVariant
	// Exists reports whether a rewritten image uri points at a real file.
	Exists func(uri string) bool
}

// WrapTextures returns a copy of doc where every image points at its
// compressed counterpart and every texture references its image through the
// variant's extension object instead of a direct source.
func WrapTextures(doc *Document, opts WrapOptions) (*Document, error) {
	if opts.Variant.Extension == "" {
		opts.Variant = GoogleTextureBasis
	}
	doc, err := doc.Clone()
	if err != nil {
		return nil, err
	}

	images, err := doc.Images()
	if err != nil {
		return nil, err
	}
	for i, img := range images {
		where := fmt.Sprintf("images[%d]", i)
		if _, hasView := img["bufferView"]; hasView {
			return nil, fmt.Errorf("%w: %s has a bufferView", ErrImageSource, where)
		}
		uri, ok, err := stringField(img, "uri")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s.uri", ErrMissingField, where)
		}
		uri = strings.TrimSuffix(uri, path.Ext(uri)) + opts.Variant.FileExt
		if opts.Exists != nil && !opts.Exists(uri) {
			return nil, fmt.Errorf("%w: %s", ErrImageMissing, uri)
		}
		img["uri"] = uri
		img["mimeType"] = opts.Variant.MIME
	}

	textures, err := doc.Textures()
	if err != nil {
		return nil, err
	}
	for i, tex := range textures {
		src, ok := tex["source"]
		if !ok {
			return nil, fmt.Errorf("%w: textures[%d].source", ErrMissingField, i)
		}
		exts, _ := tex["extensions"].(Object)
		if exts == nil {
			exts = Object{}
		}
		exts[opts.Variant.Extension] = Object{"source": src}
		tex["extensions"] = exts
		delete(tex, "source")
	}
	if len(textures) > 0 {
		doc.addExtensionUsed(opts.Variant.Extension)
	}
	return doc, nil
}
