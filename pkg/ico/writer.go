package ico

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Entries computes the directory for images in order.
func Entries(images []Image) ([]Entry, error) {
	if len(images) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyImages, len(images))
	}
	entries := make([]Entry, len(images))
	offset := uint64(DataOffset(len(images)))
	for i, img := range images {
		size := uint64(len(img.Data))
		if offset+size > math.MaxUint32 {
			return nil, fmt.Errorf("%w: at image %d", ErrTooLarge, i)
		}
		entries[i] = Entry{
			Width:  uint8(img.Width % 256),
			Height: uint8(img.Height % 256),
			Size:   uint32(size),
			Offset: uint32(offset),
		}
		offset += size
	}
	return entries, nil
}

// Encode writes the header, the directory and the payloads of images to w.
func Encode(w io.Writer, images []Image) error {
	entries, err := Entries(images)
	if err != nil {
		return err
	}

	buf := make([]byte, DataOffset(len(images)))
	encodeHeader(buf, Header{Type: TypeIcon, Count: uint16(len(images))})
	for i, e := range entries {
		encodeEntry(buf[HeaderSize+i*EntrySize:], e)
	}
	if _, err := w.Write(buf); err != nil {
		return err
	}
	for _, img := range images {
		if _, err := w.Write(img.Data); err != nil {
			return err
		}
	}
	return nil
}

// Pack loads every path in order and writes the icon container to out.
func Pack(paths []string, out string) error {
	images := make([]Image, 0, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			return err
		}
		images = append(images, img)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := Encode(f, images); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encodeHeader(dst []byte, h Header) {
	binary.LittleEndian.PutUint16(dst[0:2], h.Reserved)
	binary.LittleEndian.PutUint16(dst[2:4], h.Type)
	binary.LittleEndian.PutUint16(dst[4:6], h.Count)
}

func encodeEntry(dst []byte, e Entry) {
	dst[0] = e.Width
	dst[1] = e.Height
	dst[2] = e.Colors
	dst[3] = e.Reserved
	binary.LittleEndian.PutUint16(dst[4:6], e.Planes)
	binary.LittleEndian.PutUint16(dst[6:8], e.BitCount)
	binary.LittleEndian.PutUint32(dst[8:12], e.Size)
	binary.LittleEndian.PutUint32(dst[12:16], e.Offset)
}
