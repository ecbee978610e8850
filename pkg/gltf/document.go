// Package gltf rewrites glTF 2.0 scene documents for fixture generation.
//
// A Document is kept as a generic JSON tree so that every field this package
// does not touch (meshes, materials, extensions, number spellings) survives a
// decode/encode cycle. Numbers are decoded as json.Number.
package gltf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/tiendc/go-deepcopy"
)

// Top-level keys the rewrites operate on.
const (
	keyBuffers        = "buffers"
	keyBufferViews    = "bufferViews"
	keyImages         = "images"
	keyTextures       = "textures"
	keyAccessors      = "accessors"
	keyExtensionsUsed = "extensionsUsed"
)

// Object is one JSON object inside a document.
type Object = map[string]any

type Document struct {
	root Object
}

// New wraps an already decoded JSON object.
func New(root Object) *Document {
	if root == nil {
		root = Object{}
	}
	return &Document{root: root}
}

// Decode parses a glTF JSON document.
func Decode(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	obj, ok := root.(Object)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidJSON)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after top-level object", ErrInvalidJSON)
	}
	return &Document{root: obj}, nil
}

// Root exposes the underlying tree.
func (d *Document) Root() Object {
	return d.root
}

// Encode serializes the document compactly. Object keys are sorted, so
// equal documents always produce equal bytes.
func (d *Document) Encode() ([]byte, error) {
	return json.Marshal(d.root)
}

// EncodeIndent serializes the document with indent spaces per level.
// An indent of zero or less is the same as Encode.
func (d *Document) EncodeIndent(indent int) ([]byte, error) {
	if indent <= 0 {
		return d.Encode()
	}
	return json.MarshalIndent(d.root, "", string(bytes.Repeat([]byte{' '}, indent)))
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() (*Document, error) {
	var root Object
	if err := deepcopy.Copy(&root, d.root); err != nil {
		return nil, fmt.Errorf("gltf: clone document: %w", err)
	}
	return New(root), nil
}

// Has reports whether the top-level key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.root[key]
	return ok
}

// Delete removes a top-level key.
func (d *Document) Delete(key string) {
	delete(d.root, key)
}

// Objects returns the top-level array under key as objects. A missing key is
// an empty list.
func (d *Document) Objects(key string) ([]Object, error) {
	v, ok := d.root[key]
	if !ok || v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", ErrInvalidField, key)
	}
	out := make([]Object, len(arr))
	for i, e := range arr {
		obj, ok := e.(Object)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrInvalidField, key, i)
		}
		out[i] = obj
	}
	return out, nil
}

// SetObjects replaces the top-level array under key. An empty list removes
// the key, since glTF forbids empty top-level arrays.
func (d *Document) SetObjects(key string, objs []Object) {
	if len(objs) == 0 {
		delete(d.root, key)
		return
	}
	arr := make([]any, len(objs))
	for i, o := range objs {
		arr[i] = o
	}
	d.root[key] = arr
}

func (d *Document) Buffers() ([]Object, error)     { return d.Objects(keyBuffers) }
func (d *Document) BufferViews() ([]Object, error) { return d.Objects(keyBufferViews) }
func (d *Document) Images() ([]Object, error)      { return d.Objects(keyImages) }
func (d *Document) Textures() ([]Object, error)    { return d.Objects(keyTextures) }
func (d *Document) Accessors() ([]Object, error)   { return d.Objects(keyAccessors) }

// addExtensionUsed appends name to extensionsUsed unless already listed.
func (d *Document) addExtensionUsed(name string) {
	list, _ := d.root[keyExtensionsUsed].([]any)
	for _, v := range list {
		if s, ok := v.(string); ok && s == name {
			return
		}
	}
	d.root[keyExtensionsUsed] = append(list, name)
}
