// Package glb implements the binary glTF container.
//
// A GLB file is a 12-byte header followed by one JSON chunk and at most one
// BIN chunk. Every chunk is length-prefixed, type-tagged and padded to four
// bytes. This package only moves bytes in and out of that framing; the scene
// description inside the JSON chunk is handled by package gltf.
package glb

// GLB global constants must never change.
const (
	// Magic is the file magic for all GLB containers.
	Magic = "glTF"

	// Version is the only container version this package reads or writes.
	Version uint32 = 2

	HeaderSize      = 12
	ChunkHeaderSize = 8

	// Chunk payloads are padded to this many bytes.
	Align = 4
)

type ChunkType uint32

const (
	ChunkJSON ChunkType = 0x4E4F534A // "JSON"
	ChunkBIN  ChunkType = 0x004E4942 // "BIN\0"
)

func (t ChunkType) String() string {
	switch t {
	case ChunkJSON:
		return "JSON"
	case ChunkBIN:
		return "BIN"
	default:
		return "unknown"
	}
}

type Header struct {
	Magic   [4]byte
	Version uint32
	Length  uint32
}

type ChunkHeader struct {
	Length uint32
	Type   uint32
}
