package gltf

import (
	"fmt"
)

type ToGLBOptions struct {
	// Load resolves external buffer and image URIs.
	Load LoadFunc
	// BundleImages appends every image file to the binary buffer.
	BundleImages bool
}

// ToGLB prepares doc for a GLB container. It returns the compact JSON chunk
// and the BIN chunk payload, which is empty when the scene has no binary data.
// doc itself is left untouched.
func ToGLB(doc *Document, opts ToGLBOptions) (jsonChunk, bin []byte, err error) {
	doc, err = doc.Clone()
	if err != nil {
		return nil, nil, err
	}

	buffers, err := doc.Buffers()
	if err != nil {
		return nil, nil, err
	}
	if len(buffers) > 1 {
		return nil, nil, fmt.Errorf("%w: found %d", ErrMultipleBuffers, len(buffers))
	}

	var buffer Object
	if len(buffers) == 1 {
		buffer = buffers[0]
		uri, ok, err := stringField(buffer, "uri")
		if err != nil {
			return nil, nil, fmt.Errorf("buffers[0]: %w", err)
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: buffers[0].uri", ErrMissingField)
		}
		if _, bin, err = resolve(uri, opts.Load); err != nil {
			return nil, nil, fmt.Errorf("buffers[0]: %w", err)
		}
		delete(buffer, "uri")
	}

	if opts.BundleImages {
		if bin, err = bundleImages(doc, bin, opts.Load); err != nil {
			return nil, nil, err
		}
	}

	if len(bin) > 0 {
		if buffer == nil {
			buffer = Object{}
		}
		buffer["byteLength"] = len(bin)
		doc.SetObjects(keyBuffers, []Object{buffer})
	} else {
		doc.Delete(keyBuffers)
	}

	if err := doc.ValidateReferences(len(bin)); err != nil {
		return nil, nil, err
	}
	jsonChunk, err = doc.Encode()
	if err != nil {
		return nil, nil, err
	}
	return jsonChunk, bin, nil
}

// bundleImages turns every uri image into a buffer view appended to bin.
func bundleImages(doc *Document, bin []byte, load LoadFunc) ([]byte, error) {
	images, err := doc.Images()
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return bin, nil
	}
	views, err := doc.BufferViews()
	if err != nil {
		return nil, err
	}

	for i, img := range images {
		where := fmt.Sprintf("images[%d]", i)
		if err := checkImageSource(img, i); err != nil {
			return nil, err
		}
		uri, _, err := stringField(img, "uri")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		mime, hasMIME, err := stringField(img, "mimeType")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}

		dataMIME, data, err := resolve(uri, load)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		if !hasMIME {
			if dataMIME != "" {
				mime = dataMIME
			} else if mime, err = MIMEForPath(uri); err != nil {
				return nil, fmt.Errorf("%s: %w", where, err)
			}
		}

		bin = appendAligned(bin, data)
		views = append(views, Object{
			"buffer":     0,
			"byteOffset": len(bin) - len(data),
			"byteLength": len(data),
		})
		delete(img, "uri")
		img["bufferView"] = len(views) - 1
		img["mimeType"] = mime
	}

	doc.SetObjects(keyBufferViews, views)
	return bin, nil
}
