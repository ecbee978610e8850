package gltf

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/samcharles93/fixturetool/pkg/glb"
)

type FromGLBOptions struct {
	// BinaryURI replaces the buffer's uri when the container has a BIN chunk.
	BinaryURI string
	// ExtractImages moves every buffer-view image out into its own file.
	// A container without a BIN chunk has nothing to extract; it is accepted
	// only when no image references a buffer view.
	ExtractImages bool
}

// ExtractedImage is an image payload pulled out of the binary buffer.
type ExtractedImage struct {
	URI  string
	Data []byte
}

type FromGLBResult struct {
	Document *Document
	// Binary is the content of the external buffer file, nil when no buffer remains.
	Binary []byte
	Images []ExtractedImage
}

// FromGLB converts a parsed GLB container into a glTF document plus its
// external binary buffer. The returned slices do not alias the container.
func FromGLB(c *glb.Container, opts FromGLBOptions) (*FromGLBResult, error) {
	doc, err := Decode(bytes.TrimRight(c.JSON, " \t\r\n\x00"))
	if err != nil {
		return nil, err
	}
	res := &FromGLBResult{Document: doc}
	if !c.HasBIN() {
		if opts.ExtractImages {
			if err := requireNoViewImages(doc); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	buffers, err := doc.Buffers()
	if err != nil {
		return nil, err
	}
	if len(buffers) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleBuffers, len(buffers))
	}
	n, err := requireInt(buffers[0], "buffers[0]", "byteLength")
	if err != nil {
		return nil, err
	}
	if n > len(c.BIN) {
		return nil, fmt.Errorf("%w: buffers[0].byteLength %d exceeds BIN chunk of %d bytes", ErrOutOfRange, n, len(c.BIN))
	}
	bin := bytes.Clone(c.BIN[:n])
	if opts.BinaryURI != "" {
		buffers[0]["uri"] = opts.BinaryURI
	}

	if opts.ExtractImages {
		bin, res.Images, err = extractImages(doc, bin)
		if err != nil {
			return nil, err
		}
		if len(bin) == 0 && !doc.Has(keyBufferViews) {
			doc.Delete(keyBuffers)
			return res, nil
		}
		buffers[0]["byteLength"] = len(bin)
	}

	if err := doc.ValidateReferences(len(bin)); err != nil {
		return nil, err
	}
	res.Binary = bin
	return res, nil
}

func requireNoViewImages(doc *Document) error {
	images, err := doc.Images()
	if err != nil {
		return err
	}
	for i, img := range images {
		if _, ok := img["bufferView"]; ok {
			return fmt.Errorf("%w: images[%d] references a bufferView but the container has no BIN chunk", ErrImageSource, i)
		}
	}
	return nil
}

// extractImages replaces every buffer-view image with a file URI, drops the
// image buffer views and rebuilds the binary from the remaining views.
//
// This only works when every other buffer view ends before the earliest image
// byte. That holds for files written by ToGLB, which appends images last, and
// is checked rather than assumed.
func extractImages(doc *Document, bin []byte) ([]byte, []ExtractedImage, error) {
	images, err := doc.Images()
	if err != nil {
		return nil, nil, err
	}
	if len(images) == 0 {
		return bin, nil, nil
	}
	views, err := doc.BufferViews()
	if err != nil {
		return nil, nil, err
	}

	removed := make([]bool, len(views))
	earliest := len(bin)
	out := make([]ExtractedImage, 0, len(images))
	for i, img := range images {
		where := fmt.Sprintf("images[%d]", i)
		if err := checkImageSource(img, i); err != nil {
			return nil, nil, err
		}
		viewIdx, err := requireInt(img, where, "bufferView")
		if err != nil {
			return nil, nil, err
		}
		if viewIdx >= len(views) {
			return nil, nil, fmt.Errorf("%w: %s references bufferView %d of %d", ErrOutOfRange, where, viewIdx, len(views))
		}
		mime, _, err := stringField(img, "mimeType")
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", where, err)
		}
		name, _, err := stringField(img, "name")
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", where, err)
		}
		ext, err := ExtensionForMIME(mime, name)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", where, err)
		}

		buf, off, n, err := viewRange(views[viewIdx], fmt.Sprintf("bufferViews[%d]", viewIdx))
		if err != nil {
			return nil, nil, err
		}
		if buf != 0 {
			return nil, nil, fmt.Errorf("%w: %s bufferView %d is in buffer %d", ErrOutOfRange, where, viewIdx, buf)
		}
		if off+n > len(bin) {
			return nil, nil, fmt.Errorf("%w: %s range [%d, %d) exceeds %d bytes", ErrOutOfRange, where, off, off+n, len(bin))
		}
		earliest = min(earliest, off)

		uri := imageFileName(name, ext, i)
		out = append(out, ExtractedImage{URI: uri, Data: bytes.Clone(bin[off : off+n])})
		removed[viewIdx] = true
		delete(img, "bufferView")
		img["uri"] = uri
	}

	// shift[i] is the number of removed views below index i.
	shift := make([]int, len(views))
	kept := make([]Object, 0, len(views))
	dropped := 0
	for i, v := range views {
		shift[i] = dropped
		if removed[i] {
			dropped++
			continue
		}
		_, off, n, err := viewRange(v, fmt.Sprintf("bufferViews[%d]", i))
		if err != nil {
			return nil, nil, err
		}
		if off+n > earliest {
			return nil, nil, fmt.Errorf("%w: bufferViews[%d] [%d, %d) overlaps image data starting at %d", ErrImageOrder, i, off, off+n, earliest)
		}
		kept = append(kept, v)
	}

	if err := renumberAccessorViews(doc, removed, shift); err != nil {
		return nil, nil, err
	}

	// Each view keeps its offset modulo 4 so accessor alignment survives.
	rebuilt := make([]byte, 0, earliest)
	for _, v := range kept {
		_, off, n, _ := viewRange(v, "")
		rebuilt = appendAt(rebuilt, bin[off:off+n], off%4)
		v["byteOffset"] = len(rebuilt) - n
	}
	doc.SetObjects(keyBufferViews, kept)
	return rebuilt, out, nil
}

// renumberAccessorViews rewrites accessor bufferView indices after removal.
func renumberAccessorViews(doc *Document, removed []bool, shift []int) error {
	accessors, err := doc.Accessors()
	if err != nil {
		return err
	}
	fix := func(obj Object, where string) error {
		idx, ok, err := intField(obj, "bufferView")
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if !ok {
			return nil
		}
		if idx >= len(removed) {
			return fmt.Errorf("%w: %s references bufferView %d of %d", ErrOutOfRange, where, idx, len(removed))
		}
		if removed[idx] {
			return fmt.Errorf("%w: %s references image bufferView %d", ErrImageOrder, where, idx)
		}
		obj["bufferView"] = idx - shift[idx]
		return nil
	}

	for i, a := range accessors {
		where := fmt.Sprintf("accessors[%d]", i)
		if err := fix(a, where); err != nil {
			return err
		}
		sparse, ok := a["sparse"].(Object)
		if !ok {
			continue
		}
		for _, part := range []string{"indices", "values"} {
			if p, ok := sparse[part].(Object); ok {
				if err := fix(p, where+".sparse."+part); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// imageFileName derives the output file for an extracted image.
func imageFileName(name, ext string, index int) string {
	stem := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if stem == "." || stem == "/" || stem == "" {
		stem = fmt.Sprintf("image%d", index)
	}
	if strings.EqualFold(path.Ext(stem), ext) {
		return stem
	}
	return stem + ext
}

// appendAligned pads dst with zeros to a 4-byte boundary and appends p.
func appendAligned(dst, p []byte) []byte {
	return appendAt(dst, p, 0)
}

// appendAt pads dst with zeros until its length is phase modulo 4, then appends p.
func appendAt(dst, p []byte, phase int) []byte {
	if pad := (phase - len(dst)%4 + 4) % 4; pad > 0 {
		dst = append(dst, make([]byte, pad)...)
	}
	return append(dst, p...)
}
