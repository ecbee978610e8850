package gltf

import "fmt"

// ValidateReferences checks that every buffer view lies inside its buffer
// and that every image references exactly one of a buffer view or a URI.
// bufferLens gives the actual byte length of each buffer; when a buffer has
// no entry its declared byteLength is used.
func (d *Document) ValidateReferences(bufferLens ...int) error {
	buffers, err := d.Buffers()
	if err != nil {
		return err
	}
	lens := make([]int, len(buffers))
	for i, b := range buffers {
		if i < len(bufferLens) {
			lens[i] = bufferLens[i]
			continue
		}
		if lens[i], err = requireInt(b, fmt.Sprintf("buffers[%d]", i), "byteLength"); err != nil {
			return err
		}
	}

	views, err := d.BufferViews()
	if err != nil {
		return err
	}
	for i, v := range views {
		where := fmt.Sprintf("bufferViews[%d]", i)
		buf, off, n, err := viewRange(v, where)
		if err != nil {
			return err
		}
		if buf >= len(lens) {
			return fmt.Errorf("%w: %s references buffer %d of %d", ErrOutOfRange, where, buf, len(lens))
		}
		if off+n > lens[buf] {
			return fmt.Errorf("%w: %s [%d, %d) exceeds buffer %d length %d", ErrOutOfRange, where, off, off+n, buf, lens[buf])
		}
	}

	images, err := d.Images()
	if err != nil {
		return err
	}
	for i, img := range images {
		if err := checkImageSource(img, i); err != nil {
			return err
		}
		if view, ok, err := intField(img, "bufferView"); err != nil {
			return fmt.Errorf("images[%d]: %w", i, err)
		} else if ok && view >= len(views) {
			return fmt.Errorf("%w: images[%d] references bufferView %d of %d", ErrOutOfRange, i, view, len(views))
		}
	}
	return nil
}

func checkImageSource(img Object, i int) error {
	_, hasView := img["bufferView"]
	_, hasURI := img["uri"]
	if hasView == hasURI {
		return fmt.Errorf("%w: images[%d]", ErrImageSource, i)
	}
	return nil
}
