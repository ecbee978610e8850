package glb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Size returns the total container length Encode produces for a JSON chunk of
// jsonLen bytes and a BIN chunk of binLen bytes, padding included.
// A zero binLen means the BIN chunk is omitted.
func Size(jsonLen, binLen int) uint64 {
	n := uint64(HeaderSize) + ChunkHeaderSize + uint64(jsonLen+padLen(jsonLen))
	if binLen > 0 {
		n += ChunkHeaderSize + uint64(binLen+padLen(binLen))
	}
	return n
}

// Encode writes a GLB container holding json and bin to w.
//
// The JSON chunk is padded with spaces and the BIN chunk with zeros. The BIN
// chunk is omitted entirely when bin is empty.
func Encode(w io.Writer, json, bin []byte) error {
	if w == nil {
		return errors.New("glb: nil writer")
	}
	if len(json) == 0 {
		return fmt.Errorf("%w: empty JSON chunk", ErrCorruptFile)
	}

	total := Size(len(json), len(bin))
	if total > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, total)
	}

	var hdr Header
	copy(hdr.Magic[:], Magic)
	hdr.Version = Version
	hdr.Length = uint32(total)

	var hdrBuf [HeaderSize]byte
	if !encodeHeader(hdrBuf[:], hdr) {
		return errors.New("glb: encode header failed")
	}
	if err := writeFull(w, hdrBuf[:]); err != nil {
		return err
	}

	if err := writeChunk(w, ChunkJSON, json, ' '); err != nil {
		return err
	}
	if len(bin) == 0 {
		return nil
	}
	return writeChunk(w, ChunkBIN, bin, 0)
}

func writeChunk(w io.Writer, typ ChunkType, payload []byte, pad byte) error {
	n := padLen(len(payload))

	var chBuf [ChunkHeaderSize]byte
	if !encodeChunkHeader(chBuf[:], ChunkHeader{Length: uint32(len(payload) + n), Type: uint32(typ)}) {
		return errors.New("glb: encode chunk header failed")
	}
	if err := writeFull(w, chBuf[:]); err != nil {
		return err
	}
	if err := writeFull(w, payload); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return writeFull(w, bytes.Repeat([]byte{pad}, n))
}

// Create encodes a GLB container into the file at path, truncating it first.
func Create(path string, json, bin []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, json, bin); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
