// Package ico packs square bitmaps into a multi-image icon container.
//
// The container is a 6-byte header, one 16-byte directory entry per image and
// the raw image payloads concatenated in directory order. Payloads are stored
// as-is; nothing checks that they are valid bitmaps.
package ico

const (
	HeaderSize = 6
	EntrySize  = 16

	// TypeIcon is the image-type tag for icons (2 would be cursors).
	TypeIcon uint16 = 1
)

type Header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// Entry is one directory record. Width and Height hold the pixel size modulo 256.
type Entry struct {
	Width    uint8
	Height   uint8
	Colors   uint8
	Reserved uint8
	Planes   uint16
	BitCount uint16
	Size     uint32
	Offset   uint32
}

// Image is a payload to be packed along with its pixel size.
type Image struct {
	Name   string
	Width  int
	Height int
	Data   []byte
}

// DataOffset returns the absolute file offset of the first payload in a
// container holding n images.
func DataOffset(n int) int {
	return HeaderSize + EntrySize*n
}
