package ico

import (
	"encoding/binary"
	"fmt"
)

// File is a decoded icon container. Payloads alias the input data.
type File struct {
	Header   Header
	Entries  []Entry
	Payloads [][]byte
}

// Decode parses the header and directory of an icon container and checks
// that every payload lies inside data.
func Decode(data []byte) (*File, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorruptFile, len(data))
	}
	h := Header{
		Reserved: binary.LittleEndian.Uint16(data[0:2]),
		Type:     binary.LittleEndian.Uint16(data[2:4]),
		Count:    binary.LittleEndian.Uint16(data[4:6]),
	}
	if h.Reserved != 0 || h.Type != TypeIcon {
		return nil, fmt.Errorf("%w: reserved %d, type %d", ErrInvalidHeader, h.Reserved, h.Type)
	}
	n := int(h.Count)
	if len(data) < DataOffset(n) {
		return nil, fmt.Errorf("%w: directory of %d entries truncated", ErrCorruptFile, n)
	}

	f := &File{Header: h, Entries: make([]Entry, n), Payloads: make([][]byte, n)}
	for i := range n {
		src := data[HeaderSize+i*EntrySize:]
		e := Entry{
			Width:    src[0],
			Height:   src[1],
			Colors:   src[2],
			Reserved: src[3],
			Planes:   binary.LittleEndian.Uint16(src[4:6]),
			BitCount: binary.LittleEndian.Uint16(src[6:8]),
			Size:     binary.LittleEndian.Uint32(src[8:12]),
			Offset:   binary.LittleEndian.Uint32(src[12:16]),
		}
		end := uint64(e.Offset) + uint64(e.Size)
		if uint64(e.Offset) < uint64(DataOffset(n)) || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d payload [%d, %d) out of bounds", ErrCorruptFile, i, e.Offset, end)
		}
		f.Entries[i] = e
		f.Payloads[i] = data[e.Offset:end]
	}
	return f, nil
}
