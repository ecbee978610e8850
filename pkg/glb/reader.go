package glb

import (
	"fmt"
	"io"
	"os"
)

// Container is a parsed GLB file. JSON and BIN alias Data.
type Container struct {
	Data   []byte
	Header Header
	JSON   []byte
	BIN    []byte

	hasBIN  bool
	mmapped bool
}

// Open maps a GLB file read-only and validates its structure.
// If mmap is unavailable, it falls back to ReadAt-based loading.
// The returned container must be closed to release any mapping.
func Open(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		return nil, ErrCorruptFile
	}
	size := int(size64)
	if size < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorruptFile, size)
	}

	data, err := mapFile(f, size)
	if err == nil {
		c, parseErr := parse(data, true)
		if parseErr != nil {
			_ = unmapFile(data)
			return nil, parseErr
		}
		return c, nil
	}

	data, err = readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return parse(data, false)
}

// OpenReaderAt loads and validates a GLB from a random-access reader without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*Container, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, ErrCorruptFile
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return parse(data, false)
}

// Parse validates data as a GLB container. The returned slices alias data.
func Parse(data []byte) (*Container, error) {
	return parse(data, false)
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrCorruptFile
	}
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

func parse(data []byte, mmapped bool) (*Container, error) {
	hdr, ok := decodeHeader(data)
	if !ok {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorruptFile, len(data))
	}
	if !hdr.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, hdr.Magic[:])
	}
	if !hdr.Compatible() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	if uint64(hdr.Length) != uint64(len(data)) {
		return nil, fmt.Errorf("%w: header length %d, file is %d bytes", ErrCorruptFile, hdr.Length, len(data))
	}

	c := &Container{Data: data, Header: hdr, mmapped: mmapped}
	rest := data[HeaderSize:]

	payload, typ, rest, err := nextChunk(rest)
	if err != nil {
		return nil, err
	}
	if typ != ChunkJSON {
		return nil, fmt.Errorf("%w: first chunk is %#08x, want JSON", ErrUnexpectedChunk, uint32(typ))
	}
	c.JSON = payload

	if len(rest) == 0 {
		return c, nil
	}
	payload, typ, rest, err = nextChunk(rest)
	if err != nil {
		return nil, err
	}
	if typ != ChunkBIN {
		return nil, fmt.Errorf("%w: second chunk is %#08x, want BIN", ErrUnexpectedChunk, uint32(typ))
	}
	c.BIN = payload
	c.hasBIN = true

	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after BIN chunk", ErrUnexpectedChunk, len(rest))
	}
	return c, nil
}

func nextChunk(data []byte) (payload []byte, typ ChunkType, rest []byte, err error) {
	ch, ok := decodeChunkHeader(data)
	if !ok {
		return nil, 0, nil, fmt.Errorf("%w: truncated chunk header", ErrCorruptFile)
	}
	data = data[ChunkHeaderSize:]
	if uint64(ch.Length) > uint64(len(data)) {
		return nil, 0, nil, fmt.Errorf("%w: chunk length %d exceeds remaining %d bytes", ErrCorruptFile, ch.Length, len(data))
	}
	n := int(ch.Length)
	return data[:n], ChunkType(ch.Type), data[n:], nil
}

// HasBIN reports whether the container carries a BIN chunk.
func (c *Container) HasBIN() bool {
	return c != nil && c.hasBIN
}

// Chunks returns the chunk headers in file order.
func (c *Container) Chunks() []ChunkHeader {
	if c == nil {
		return nil
	}
	out := []ChunkHeader{{Length: uint32(len(c.JSON)), Type: uint32(ChunkJSON)}}
	if c.hasBIN {
		out = append(out, ChunkHeader{Length: uint32(len(c.BIN)), Type: uint32(ChunkBIN)})
	}
	return out
}

// Close releases the container and any mmap backing.
// Slices obtained from the container must not be used afterwards.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var err error
	if c.Data != nil && c.mmapped {
		err = unmapFile(c.Data)
	}
	c.Data = nil
	c.JSON = nil
	c.BIN = nil
	c.hasBIN = false
	c.mmapped = false
	return err
}
