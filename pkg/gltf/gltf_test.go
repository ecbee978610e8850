package gltf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/samcharles93/fixturetool/pkg/glb"
)

func mustDecode(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Decode([]byte(s))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

// generic decodes JSON into plain Go values for semantic comparison.
func generic(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	return v
}

func mapLoader(files map[string][]byte) LoadFunc {
	return func(uri string) ([]byte, error) {
		data, ok := files[uri]
		if !ok {
			return nil, os.ErrNotExist
		}
		return data, nil
	}
}

func pack(t *testing.T, jsonChunk, bin []byte) *glb.Container {
	t.Helper()
	var buf bytes.Buffer
	if err := glb.Encode(&buf, jsonChunk, bin); err != nil {
		t.Fatalf("glb encode: %v", err)
	}
	c, err := glb.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("glb parse: %v", err)
	}
	return c
}

const sceneJSON = `{
  "asset": {"version": "2.0", "generator": "test"},
  "buffers": [{"uri": "scene.bin", "byteLength": 10, "name": "main"}],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 6},
    {"buffer": 0, "byteOffset": 6, "byteLength": 4}
  ],
  "accessors": [
    {"bufferView": 0, "componentType": 5121, "count": 6, "type": "SCALAR"},
    {"bufferView": 1, "componentType": 5126, "count": 1, "type": "SCALAR", "min": [0.5], "max": [1.25]}
  ]
}`

func TestDecodeEncodePreservesUnknownFields(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, sceneJSON)
	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !reflect.DeepEqual(generic(t, out), generic(t, []byte(sceneJSON))) {
		t.Fatalf("document changed across decode/encode: %s", out)
	}
	if bytes.Contains(out, []byte("\n")) {
		t.Fatalf("compact encoding contains newlines: %s", out)
	}

	indented, err := doc.EncodeIndent(2)
	if err != nil {
		t.Fatalf("encode indent: %v", err)
	}
	if !bytes.Contains(indented, []byte("\n  \"accessors\"")) {
		t.Fatalf("indented encoding missing two-space indent: %s", indented)
	}

	if _, err := Decode([]byte(`[1,2]`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON for array root, got %v", err)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := mustDecode(t, sceneJSON).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := mustDecode(t, sceneJSON).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("encoding not deterministic:\n%s\n%s", a, b)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, sceneJSON)
	clone, err := doc.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	buffers, err := clone.Buffers()
	if err != nil {
		t.Fatalf("buffers: %v", err)
	}
	buffers[0]["uri"] = "changed.bin"

	orig, err := doc.Buffers()
	if err != nil {
		t.Fatalf("buffers: %v", err)
	}
	if orig[0]["uri"] != "scene.bin" {
		t.Fatalf("clone mutation leaked into original: %v", orig[0]["uri"])
	}
}

func TestGLTFToGLBRoundTrip(t *testing.T) {
	t.Parallel()

	bin := []byte{0, 1, 2, 3, 4, 5, 0, 0, 0xA0, 0x3F} // 10 bytes, BIN chunk pads to 12
	doc := mustDecode(t, sceneJSON)

	jsonChunk, outBin, err := ToGLB(doc, ToGLBOptions{Load: mapLoader(map[string][]byte{"scene.bin": bin})})
	if err != nil {
		t.Fatalf("to glb: %v", err)
	}
	if !bytes.Equal(outBin, bin) {
		t.Fatalf("binary mismatch: %v", outBin)
	}
	if bytes.Contains(jsonChunk, []byte("scene.bin")) {
		t.Fatalf("GLB JSON still references the external buffer: %s", jsonChunk)
	}
	if b, _ := doc.Buffers(); b[0]["uri"] != "scene.bin" {
		t.Fatalf("ToGLB mutated its input document")
	}

	c := pack(t, jsonChunk, outBin)
	if len(c.BIN) != 12 {
		t.Fatalf("BIN chunk not padded: %d", len(c.BIN))
	}

	res, err := FromGLB(c, FromGLBOptions{BinaryURI: "roundtrip.bin"})
	if err != nil {
		t.Fatalf("from glb: %v", err)
	}
	if !bytes.Equal(res.Binary, bin) {
		t.Fatalf("round-trip binary mismatch: got %v want %v", res.Binary, bin)
	}

	got, err := res.Document.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	gotTree := generic(t, got)
	wantTree := generic(t, []byte(sceneJSON))
	gotTree["buffers"].([]any)[0].(map[string]any)["uri"] = "scene.bin"
	if !reflect.DeepEqual(gotTree, wantTree) {
		t.Fatalf("round-trip JSON mismatch:\n got %v\nwant %v", gotTree, wantTree)
	}
}

func TestToGLBDataURIBuffer(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{"asset":{"version":"2.0"},"buffers":[{"uri":"data:application/octet-stream;base64,AQIDBA==","byteLength":4}]}`)
	_, bin, err := ToGLB(doc, ToGLBOptions{})
	if err != nil {
		t.Fatalf("to glb: %v", err)
	}
	if !bytes.Equal(bin, []byte{1, 2, 3, 4}) {
		t.Fatalf("data uri not decoded: %v", bin)
	}
}

func TestToGLBWithoutBuffer(t *testing.T) {
	t.Parallel()

	jsonChunk, bin, err := ToGLB(mustDecode(t, `{"asset":{"version":"2.0"}}`), ToGLBOptions{})
	if err != nil {
		t.Fatalf("to glb: %v", err)
	}
	if len(bin) != 0 {
		t.Fatalf("expected no binary payload, got %d bytes", len(bin))
	}
	c := pack(t, jsonChunk, bin)
	if c.HasBIN() {
		t.Fatalf("expected no BIN chunk")
	}

	res, err := FromGLB(c, FromGLBOptions{BinaryURI: "x.bin"})
	if err != nil {
		t.Fatalf("from glb: %v", err)
	}
	if res.Binary != nil || res.Document.Has("buffers") {
		t.Fatalf("expected no buffer reference, got %v", res.Document.Root()["buffers"])
	}
}

func TestToGLBMultipleBuffers(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{"buffers":[{"uri":"a.bin","byteLength":1},{"uri":"b.bin","byteLength":1}]}`)
	if _, _, err := ToGLB(doc, ToGLBOptions{}); !errors.Is(err, ErrMultipleBuffers) {
		t.Fatalf("expected ErrMultipleBuffers, got %v", err)
	}
}

func TestBundleThenExtractImages(t *testing.T) {
	t.Parallel()

	bin := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	png := []byte("\x89PNG fake png payload")
	jpg := []byte("fake jpeg!")
	files := map[string][]byte{"scene.bin": bin, "tex/diffuse.png": png, "normal.jpg": jpg}

	doc := mustDecode(t, `{
	  "asset": {"version": "2.0"},
	  "buffers": [{"uri": "scene.bin", "byteLength": 10}],
	  "bufferViews": [
	    {"buffer": 0, "byteOffset": 0, "byteLength": 6},
	    {"buffer": 0, "byteOffset": 6, "byteLength": 4}
	  ],
	  "accessors": [{"bufferView": 1, "componentType": 5126, "count": 1, "type": "SCALAR"}],
	  "images": [{"uri": "tex/diffuse.png", "name": "diffuse"}, {"uri": "normal.jpg"}],
	  "textures": [{"source": 0}, {"source": 1}]
	}`)

	jsonChunk, outBin, err := ToGLB(doc, ToGLBOptions{Load: mapLoader(files), BundleImages: true})
	if err != nil {
		t.Fatalf("to glb: %v", err)
	}
	bundled := mustDecode(t, string(jsonChunk))
	views, _ := bundled.BufferViews()
	if len(views) != 4 {
		t.Fatalf("expected 4 buffer views after bundling, got %d", len(views))
	}
	for i, v := range views[2:] {
		off, err := requireInt(v, "view", "byteOffset")
		if err != nil {
			t.Fatalf("offset: %v", err)
		}
		if off%4 != 0 {
			t.Fatalf("image view %d not 4-byte aligned: %d", i, off)
		}
	}
	images, _ := bundled.Images()
	if images[0]["mimeType"] != MIMEPNG || images[1]["mimeType"] != MIMEJPEG {
		t.Fatalf("mime types not inferred: %v", images)
	}
	if _, ok := images[0]["uri"]; ok {
		t.Fatalf("bundled image kept its uri")
	}

	res, err := FromGLB(pack(t, jsonChunk, outBin), FromGLBOptions{BinaryURI: "out.bin", ExtractImages: true})
	if err != nil {
		t.Fatalf("from glb: %v", err)
	}
	if len(res.Images) != 2 {
		t.Fatalf("expected 2 extracted images, got %d", len(res.Images))
	}
	if res.Images[0].URI != "diffuse.png" || !bytes.Equal(res.Images[0].Data, png) {
		t.Fatalf("first image mismatch: %q %q", res.Images[0].URI, res.Images[0].Data)
	}
	if res.Images[1].URI != "image1.jpg" || !bytes.Equal(res.Images[1].Data, jpg) {
		t.Fatalf("second image mismatch: %q %q", res.Images[1].URI, res.Images[1].Data)
	}
	if !bytes.Equal(res.Binary, bin) {
		t.Fatalf("rebuilt binary mismatch: %v", res.Binary)
	}

	outViews, _ := res.Document.BufferViews()
	if len(outViews) != 2 {
		t.Fatalf("image buffer views not removed: %d", len(outViews))
	}
	buffers, _ := res.Document.Buffers()
	if n, _ := requireInt(buffers[0], "buffer", "byteLength"); n != len(bin) {
		t.Fatalf("buffer byteLength not updated: %d", n)
	}
	outImages, _ := res.Document.Images()
	if outImages[0]["uri"] != "diffuse.png" {
		t.Fatalf("image uri not rewritten: %v", outImages[0])
	}
	if _, ok := outImages[0]["bufferView"]; ok {
		t.Fatalf("image still references a buffer view")
	}
}

func TestExtractRenumbersAccessors(t *testing.T) {
	t.Parallel()

	// View 1 is the image, views 0 and 2 are geometry packed before it.
	bin := []byte{1, 1, 1, 1, 2, 2, 2, 2, 9, 9, 9}
	doc := `{
	  "buffers": [{"byteLength": 11}],
	  "bufferViews": [
	    {"buffer": 0, "byteOffset": 0, "byteLength": 3},
	    {"buffer": 0, "byteOffset": 8, "byteLength": 3},
	    {"buffer": 0, "byteOffset": 4, "byteLength": 4}
	  ],
	  "accessors": [
	    {"bufferView": 0, "count": 3},
	    {"bufferView": 2, "count": 1, "sparse": {"count": 1, "indices": {"bufferView": 2}, "values": {"bufferView": 0}}}
	  ],
	  "images": [{"bufferView": 1, "mimeType": "image/png", "name": "img"}]
	}`

	res, err := FromGLB(pack(t, []byte(doc), bin), FromGLBOptions{BinaryURI: "o.bin", ExtractImages: true})
	if err != nil {
		t.Fatalf("from glb: %v", err)
	}
	accessors, _ := res.Document.Accessors()
	if n, _ := requireInt(accessors[1], "a", "bufferView"); n != 1 {
		t.Fatalf("accessor view not renumbered: %d", n)
	}
	sparse := accessors[1]["sparse"].(Object)
	if n, _ := requireInt(sparse["indices"].(Object), "s", "bufferView"); n != 1 {
		t.Fatalf("sparse indices view not renumbered: %d", n)
	}
	if n, _ := requireInt(sparse["values"].(Object), "s", "bufferView"); n != 0 {
		t.Fatalf("sparse values view changed: %d", n)
	}

	views, _ := res.Document.BufferViews()
	if off, _ := requireInt(views[1], "v", "byteOffset"); off != 4 {
		t.Fatalf("retained view not relocated to aligned offset: %d", off)
	}
	want := []byte{1, 1, 1, 0, 2, 2, 2, 2}
	if !bytes.Equal(res.Binary, want) {
		t.Fatalf("rebuilt binary mismatch: got %v want %v", res.Binary, want)
	}
	if !bytes.Equal(res.Images[0].Data, []byte{9, 9, 9}) {
		t.Fatalf("image data mismatch: %v", res.Images[0].Data)
	}
}

func TestExtractOrderingViolation(t *testing.T) {
	t.Parallel()

	bin := []byte{9, 9, 9, 9, 1, 1, 1, 1}
	doc := `{
	  "buffers": [{"byteLength": 8}],
	  "bufferViews": [
	    {"buffer": 0, "byteOffset": 0, "byteLength": 4},
	    {"buffer": 0, "byteOffset": 4, "byteLength": 4}
	  ],
	  "images": [{"bufferView": 0, "mimeType": "image/png"}]
	}`
	_, err := FromGLB(pack(t, []byte(doc), bin), FromGLBOptions{BinaryURI: "o.bin", ExtractImages: true})
	if !errors.Is(err, ErrImageOrder) {
		t.Fatalf("expected ErrImageOrder, got %v", err)
	}
}

func TestExtractAccessorOnImageView(t *testing.T) {
	t.Parallel()

	doc := `{
	  "buffers": [{"byteLength": 4}],
	  "bufferViews": [{"buffer": 0, "byteLength": 4}],
	  "accessors": [{"bufferView": 0, "count": 1}],
	  "images": [{"bufferView": 0, "mimeType": "image/png"}]
	}`
	_, err := FromGLB(pack(t, []byte(doc), []byte{1, 2, 3, 4}), FromGLBOptions{ExtractImages: true})
	if !errors.Is(err, ErrImageOrder) {
		t.Fatalf("expected ErrImageOrder, got %v", err)
	}
}

func TestExtractUnknownMIME(t *testing.T) {
	t.Parallel()

	doc := `{
	  "buffers": [{"byteLength": 4}],
	  "bufferViews": [{"buffer": 0, "byteLength": 4}],
	  "images": [{"bufferView": 0, "mimeType": "image/gif"}]
	}`
	_, err := FromGLB(pack(t, []byte(doc), []byte{1, 2, 3, 4}), FromGLBOptions{ExtractImages: true})
	if !errors.Is(err, ErrUnknownMIMEType) {
		t.Fatalf("expected ErrUnknownMIMEType, got %v", err)
	}
}

func TestExtractEverythingDropsBuffer(t *testing.T) {
	t.Parallel()

	doc := `{
	  "buffers": [{"byteLength": 4}],
	  "bufferViews": [{"buffer": 0, "byteLength": 4}],
	  "images": [{"bufferView": 0, "mimeType": "application/octet-stream", "name": "tex.basis"}]
	}`
	res, err := FromGLB(pack(t, []byte(doc), []byte{1, 2, 3, 4}), FromGLBOptions{BinaryURI: "o.bin", ExtractImages: true})
	if err != nil {
		t.Fatalf("from glb: %v", err)
	}
	if res.Binary != nil || res.Document.Has("buffers") || res.Document.Has("bufferViews") {
		t.Fatalf("expected no buffers left: %v", res.Document.Root())
	}
	if res.Images[0].URI != "tex.basis" {
		t.Fatalf("generic MIME type should keep the name's extension, got %q", res.Images[0].URI)
	}
}

func TestFromGLBRequiresSingleBuffer(t *testing.T) {
	t.Parallel()

	doc := `{"buffers":[{"byteLength":4},{"byteLength":4}]}`
	_, err := FromGLB(pack(t, []byte(doc), []byte{1, 2, 3, 4}), FromGLBOptions{})
	if !errors.Is(err, ErrMultipleBuffers) {
		t.Fatalf("expected ErrMultipleBuffers, got %v", err)
	}
}

func TestFromGLBWithoutBINExtract(t *testing.T) {
	t.Parallel()

	withView := `{"images":[{"bufferView":0,"mimeType":"image/png"}],"bufferViews":[{"buffer":0,"byteLength":4}]}`
	_, err := FromGLB(pack(t, []byte(withView), nil), FromGLBOptions{ExtractImages: true})
	if !errors.Is(err, ErrImageSource) {
		t.Fatalf("expected ErrImageSource, got %v", err)
	}

	withURI := `{"images":[{"uri":"a.png"}]}`
	res, err := FromGLB(pack(t, []byte(withURI), nil), FromGLBOptions{ExtractImages: true})
	if err != nil {
		t.Fatalf("from glb: %v", err)
	}
	if res.Binary != nil || len(res.Images) != 0 {
		t.Fatalf("expected nothing extracted, got %d images", len(res.Images))
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`{} x`, `{}{}`, `{"a":1} [1]`} {
		if _, err := Decode([]byte(in)); !errors.Is(err, ErrInvalidJSON) {
			t.Fatalf("Decode(%q) err = %v, want ErrInvalidJSON", in, err)
		}
	}
	if _, err := Decode([]byte("{\"a\":1} \n\t")); err != nil {
		t.Fatalf("trailing whitespace should be accepted: %v", err)
	}
}

func TestExternalURIWithoutLoader(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{"buffers":[{"uri":"scene.bin","byteLength":1}],"images":[{"uri":"a.png"}]}`)
	if _, err := Embed(doc, EmbedOptions{}); !errors.Is(err, ErrNoLoader) {
		t.Fatalf("Embed err = %v, want ErrNoLoader", err)
	}
	if _, err := Embed(doc, EmbedOptions{SkipBuffers: true}); !errors.Is(err, ErrNoLoader) {
		t.Fatalf("Embed images err = %v, want ErrNoLoader", err)
	}
	if _, _, err := ToGLB(doc, ToGLBOptions{}); !errors.Is(err, ErrNoLoader) {
		t.Fatalf("ToGLB err = %v, want ErrNoLoader", err)
	}
}

func TestValidateReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"ok", `{"buffers":[{"byteLength":8}],"bufferViews":[{"buffer":0,"byteOffset":4,"byteLength":4}],"images":[{"uri":"a.png"}]}`, nil},
		{"view past end", `{"buffers":[{"byteLength":8}],"bufferViews":[{"buffer":0,"byteOffset":6,"byteLength":4}]}`, ErrOutOfRange},
		{"missing buffer", `{"bufferViews":[{"buffer":0,"byteLength":4}]}`, ErrOutOfRange},
		{"image both", `{"buffers":[{"byteLength":4}],"bufferViews":[{"buffer":0,"byteLength":4}],"images":[{"uri":"a.png","bufferView":0}]}`, ErrImageSource},
		{"image neither", `{"images":[{"name":"x"}]}`, ErrImageSource},
		{"missing length", `{"buffers":[{"byteLength":4}],"bufferViews":[{"buffer":0}]}`, ErrMissingField},
		{"negative", `{"buffers":[{"byteLength":-1}]}`, ErrInvalidField},
	}

	for _, tc := range tests {
		err := mustDecode(t, tc.doc).ValidateReferences()
		if tc.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	uri := EncodeDataURI(MIMEPNG, []byte("hello"))
	if uri != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("unexpected data uri: %s", uri)
	}
	mime, data, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mime != MIMEPNG || string(data) != "hello" {
		t.Fatalf("decode mismatch: %s %q", mime, data)
	}

	mime, data, err = DecodeDataURI("data:text/plain;charset=utf-8,a%20b")
	if err != nil {
		t.Fatalf("decode percent: %v", err)
	}
	if mime != "text/plain" || string(data) != "a b" {
		t.Fatalf("percent decode mismatch: %s %q", mime, data)
	}

	for _, bad := range []string{"file.bin", "data:nocomma", "data:;base64,@@@"} {
		if _, _, err := DecodeDataURI(bad); !errors.Is(err, ErrInvalidDataURI) {
			t.Errorf("DecodeDataURI(%q): expected ErrInvalidDataURI, got %v", bad, err)
		}
	}
}

func TestMIMETables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mime, name, ext string
	}{
		{MIMEJPEG, "", ".jpg"},
		{MIMEPNG, "x", ".png"},
		{MIMEBasis, "", ".basis"},
		{MIMEBinary, "foo.basis", ".basis"},
		{MIMEBinary, "foo.KTX2", ".ktx2"},
	}
	for _, tc := range tests {
		ext, err := ExtensionForMIME(tc.mime, tc.name)
		if err != nil || ext != tc.ext {
			t.Errorf("ExtensionForMIME(%q, %q): got %q, %v want %q", tc.mime, tc.name, ext, err, tc.ext)
		}
	}
	if _, err := ExtensionForMIME(MIMEBinary, "noext"); !errors.Is(err, ErrUnknownMIMEType) {
		t.Errorf("expected ErrUnknownMIMEType for generic type without name, got %v", err)
	}

	if m, err := MIMEForPath("a/b.JPEG"); err != nil || m != MIMEJPEG {
		t.Errorf("MIMEForPath jpeg: got %q, %v", m, err)
	}
	if _, err := MIMEForPath("a.tga"); !errors.Is(err, ErrUnsupportedExtension) {
		t.Errorf("expected ErrUnsupportedExtension, got %v", err)
	}
}

func TestEmbed(t *testing.T) {
	t.Parallel()

	files := map[string][]byte{"a.bin": {1, 2}, "b.png": {3}, "c.basis": {4}}
	doc := mustDecode(t, `{
	  "buffers": [{"uri": "a.bin", "byteLength": 2}],
	  "images": [{"uri": "b.png"}, {"uri": "c.basis"}, {"bufferView": 0}]
	}`)

	out, err := Embed(doc, EmbedOptions{Load: mapLoader(files)})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	buffers, _ := out.Buffers()
	if buffers[0]["uri"] != "data:application/octet-stream;base64,AQI=" {
		t.Fatalf("buffer not embedded: %v", buffers[0]["uri"])
	}
	images, _ := out.Images()
	if images[0]["uri"] != "data:image/png;base64,Aw==" {
		t.Fatalf("png not embedded: %v", images[0]["uri"])
	}
	if images[1]["uri"] != "data:application/octet-stream;base64,BA==" {
		t.Fatalf("basis not embedded: %v", images[1]["uri"])
	}

	skipped, err := Embed(doc, EmbedOptions{Load: mapLoader(files), SkipBuffers: true})
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if b, _ := skipped.Buffers(); b[0]["uri"] != "a.bin" {
		t.Fatalf("buffer embedded despite SkipBuffers: %v", b[0]["uri"])
	}

	bad := mustDecode(t, `{"images":[{"uri":"x.tga"}]}`)
	if _, err := Embed(bad, EmbedOptions{Load: mapLoader(files)}); !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("expected ErrUnsupportedExtension, got %v", err)
	}
}

func TestWrapTextures(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{
	  "images": [{"uri": "tex/a.png"}],
	  "textures": [{"source": 0, "sampler": 1}],
	  "extensionsUsed": ["KHR_materials_unlit"]
	}`)
	exists := func(uri string) bool { return uri == "tex/a.basis" }

	out, err := WrapTextures(doc, WrapOptions{Exists: exists})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	images, _ := out.Images()
	if images[0]["uri"] != "tex/a.basis" || images[0]["mimeType"] != MIMEBasis {
		t.Fatalf("image not rewritten: %v", images[0])
	}
	textures, _ := out.Textures()
	if _, ok := textures[0]["source"]; ok {
		t.Fatalf("texture still has a direct source")
	}
	ext := textures[0]["extensions"].(Object)["GOOGLE_texture_basis"].(Object)
	if n, _ := requireInt(ext, "ext", "source"); n != 0 {
		t.Fatalf("extension source mismatch: %v", ext)
	}
	used := out.Root()["extensionsUsed"].([]any)
	if len(used) != 2 || used[1] != "GOOGLE_texture_basis" {
		t.Fatalf("extensionsUsed mismatch: %v", used)
	}

	if _, err := WrapTextures(doc, WrapOptions{Exists: func(string) bool { return false }}); !errors.Is(err, ErrImageMissing) {
		t.Fatalf("expected ErrImageMissing, got %v", err)
	}

	ktx, err := WrapTextures(doc, WrapOptions{Variant: KHRTextureBasisu})
	if err != nil {
		t.Fatalf("wrap ktx2: %v", err)
	}
	if images, _ := ktx.Images(); images[0]["uri"] != "tex/a.ktx2" {
		t.Fatalf("ktx2 uri mismatch: %v", images[0]["uri"])
	}
}

func TestDirLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "my file.bin"), []byte{7}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := DirLoader(dir)("my%20file.bin")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(data, []byte{7}) {
		t.Fatalf("load mismatch: %v", data)
	}
}
