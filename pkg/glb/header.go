package glb

import "encoding/binary"

func (h *Header) Valid() bool {
	return string(h.Magic[:]) == Magic
}

func (h *Header) Compatible() bool {
	return h.Version == Version
}

func encodeHeader(dst []byte, h Header) bool {
	if len(dst) < HeaderSize {
		return false
	}
	copy(dst[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(dst[4:8], h.Version)
	binary.LittleEndian.PutUint32(dst[8:12], h.Length)
	return true
}

func decodeHeader(src []byte) (Header, bool) {
	var h Header
	if len(src) < HeaderSize {
		return h, false
	}
	copy(h.Magic[:], src[0:4])
	h.Version = binary.LittleEndian.Uint32(src[4:8])
	h.Length = binary.LittleEndian.Uint32(src[8:12])
	return h, true
}

func encodeChunkHeader(dst []byte, c ChunkHeader) bool {
	if len(dst) < ChunkHeaderSize {
		return false
	}
	binary.LittleEndian.PutUint32(dst[0:4], c.Length)
	binary.LittleEndian.PutUint32(dst[4:8], c.Type)
	return true
}

func decodeChunkHeader(src []byte) (ChunkHeader, bool) {
	var c ChunkHeader
	if len(src) < ChunkHeaderSize {
		return c, false
	}
	c.Length = binary.LittleEndian.Uint32(src[0:4])
	c.Type = binary.LittleEndian.Uint32(src[4:8])
	return c, true
}
