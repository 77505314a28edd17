package tl_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/RealityNet/teleparser/internal/tl"
	"github.com/RealityNet/teleparser/testutil"
)

// Two small registries mimicking consecutive app releases: the newer one
// knows constructor 0xabcd1234, the older one does not.
const testTag uint32 = 0xabcd1234

func testRegistry() *tl.Registry {
	reg := tl.NewRegistry()
	reg.Register("5.6.2", map[uint32]*tl.Recipe{
		testTag: {Name: "note", Fields: []tl.FieldDef{
			{Name: "text", Kind: tl.KindBytes},
			{Name: "date", Kind: tl.KindInt32},
		}},
	})
	reg.Register("5.5.0", map[uint32]*tl.Recipe{})
	return reg
}

func mustDecoder(t *testing.T, reg *tl.Registry, version string) *tl.Decoder {
	t.Helper()
	dec, err := tl.NewDecoder(reg, version)
	if err != nil {
		t.Fatalf("NewDecoder(%s) failed: %v", version, err)
	}
	return dec
}

func TestDecodeKnownConstructor(t *testing.T) {
	blob := testutil.NewBlob().Tag(testTag).String("hi").Int32(1600000000).Bytes()
	dec := mustDecoder(t, testRegistry(), "5.6.2")

	tree, err := dec.DecodeBlob(blob)
	if err != nil {
		t.Fatalf("DecodeBlob() failed: %v", err)
	}
	if tree.Name != "note" || tree.Tag != testTag {
		t.Errorf("decoded %s (0x%08x), want note (0x%08x)", tree.Name, tree.Tag, testTag)
	}
	if text, _ := tree.GetString("text"); text != "hi" {
		t.Errorf("text = %q, want \"hi\"", text)
	}
	if date, _ := tree.GetInt("date"); date != 1600000000 {
		t.Errorf("date = %d, want 1600000000", date)
	}

	rendered := tree.String()
	if !strings.Contains(rendered, "text: hi") || !strings.Contains(rendered, "date: 1600000000") {
		t.Errorf("rendering missing fields:\n%s", rendered)
	}
}

func TestDecodeSameBlobUnderOlderVersion(t *testing.T) {
	blob := testutil.NewBlob().Tag(testTag).String("hi").Int32(1600000000).Bytes()
	dec := mustDecoder(t, testRegistry(), "5.5.0")

	_, err := dec.DecodeBlob(blob)
	var unknown *tl.UnknownConstructorError
	if !errors.As(err, &unknown) {
		t.Fatalf("DecodeBlob() error = %v, want UnknownConstructorError", err)
	}
	if unknown.Version != "5.5.0" || unknown.Tag != testTag {
		t.Errorf("error context = {%s, 0x%08x}, want {5.5.0, 0x%08x}", unknown.Version, unknown.Tag, testTag)
	}
}

func TestDecodeUnregisteredVersion(t *testing.T) {
	_, err := tl.NewDecoder(testRegistry(), "9.9.9")
	var unknown *tl.UnknownConstructorError
	if !errors.As(err, &unknown) {
		t.Fatalf("NewDecoder error = %v, want UnknownConstructorError", err)
	}
	if unknown.Version != "9.9.9" {
		t.Errorf("error version = %q, want \"9.9.9\"", unknown.Version)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	blob := testutil.NewBlob().Tag(testTag).String("hi").Int32(1).Raw([]byte{0x00}).Bytes()
	dec := mustDecoder(t, testRegistry(), "5.6.2")

	_, err := dec.DecodeBlob(blob)
	var trailing *tl.TrailingBytesError
	if !errors.As(err, &trailing) {
		t.Fatalf("DecodeBlob() error = %v, want TrailingBytesError", err)
	}
	if trailing.Remaining != 1 {
		t.Errorf("Remaining = %d, want 1", trailing.Remaining)
	}
}

func TestDecodeTruncationAlwaysFails(t *testing.T) {
	blob := testutil.NewBlob().Tag(testTag).String("hello").Int32(1600000000).Bytes()
	dec := mustDecoder(t, testRegistry(), "5.6.2")

	if _, err := dec.DecodeBlob(blob); err != nil {
		t.Fatalf("full blob should decode: %v", err)
	}
	for cut := 0; cut < len(blob); cut++ {
		_, err := dec.DecodeBlob(blob[:cut])
		var eob *tl.EndOfBufferError
		var invalid *tl.InvalidLengthError
		if !errors.As(err, &eob) && !errors.As(err, &invalid) {
			t.Errorf("truncation at %d: error = %v, want EndOfBufferError or InvalidLengthError", cut, err)
		}
	}
}

func TestDecodeVector(t *testing.T) {
	reg := tl.NewRegistry()
	reg.Register("v", map[uint32]*tl.Recipe{
		0x01: {Name: "ids", Fields: []tl.FieldDef{
			{Name: "values", Kind: tl.KindVector, Elem: tl.KindInt32},
		}},
	})
	dec := mustDecoder(t, reg, "v")

	blob := testutil.NewBlob().Tag(0x01).VectorHeader(3).Int32(7).Int32(8).Int32(9).Bytes()
	tree, err := dec.DecodeBlob(blob)
	if err != nil {
		t.Fatalf("DecodeBlob() failed: %v", err)
	}
	vec, ok := tree.Get("values").(*tl.Vector)
	if !ok || len(vec.Items) != 3 {
		t.Fatalf("values = %#v, want 3-element vector", tree.Get("values"))
	}
	if vec.Items[2] != tl.Int32(9) {
		t.Errorf("values[2] = %v, want 9", vec.Items[2])
	}

	// A count larger than the remaining bytes could ever hold is rejected
	// before any element is read.
	huge := testutil.NewBlob().Tag(0x01).VectorHeader(1 << 20).Int32(7).Bytes()
	_, err = dec.DecodeBlob(huge)
	var invalid *tl.InvalidLengthError
	if !errors.As(err, &invalid) {
		t.Errorf("oversized vector count: error = %v, want InvalidLengthError", err)
	}

	// A wrong marker tag is an unknown constructor.
	badMarker := testutil.NewBlob().Tag(0x01).Tag(0xdeadbeef).Int32(0).Bytes()
	_, err = dec.DecodeBlob(badMarker)
	var unknown *tl.UnknownConstructorError
	if !errors.As(err, &unknown) {
		t.Errorf("bad vector marker: error = %v, want UnknownConstructorError", err)
	}
}

func TestDecodeBareVectorElements(t *testing.T) {
	pair := &tl.Recipe{Name: "pair", Fields: []tl.FieldDef{
		{Name: "a", Kind: tl.KindInt32},
		{Name: "b", Kind: tl.KindInt32},
	}}
	reg := tl.NewRegistry()
	reg.Register("v", map[uint32]*tl.Recipe{
		0x02: {Name: "pairs", Fields: []tl.FieldDef{
			{Name: "items", Kind: tl.KindVector, Elem: tl.KindBare, Bare: pair},
		}},
	})
	dec := mustDecoder(t, reg, "v")

	blob := testutil.NewBlob().Tag(0x02).VectorHeader(2).
		Int32(1).Int32(2).
		Int32(3).Int32(4).
		Bytes()
	tree, err := dec.DecodeBlob(blob)
	if err != nil {
		t.Fatalf("DecodeBlob() failed: %v", err)
	}
	vec := tree.Get("items").(*tl.Vector)
	second, ok := vec.Items[1].(*tl.Object)
	if !ok {
		t.Fatalf("items[1] = %#v, want bare object", vec.Items[1])
	}
	if a, _ := second.GetInt("a"); a != 3 {
		t.Errorf("items[1].a = %d, want 3", a)
	}
	if second.Tag != 0 {
		t.Errorf("bare object Tag = 0x%08x, want 0", second.Tag)
	}
}

func TestDecodeBoolField(t *testing.T) {
	reg := tl.NewRegistry()
	reg.Register("v", map[uint32]*tl.Recipe{
		0x03: {Name: "flags", Fields: []tl.FieldDef{
			{Name: "on", Kind: tl.KindBool},
		}},
	})
	dec := mustDecoder(t, reg, "v")

	tree, err := dec.DecodeBlob(testutil.NewBlob().Tag(0x03).Bool(false).Bytes())
	if err != nil {
		t.Fatalf("DecodeBlob() failed: %v", err)
	}
	if on, ok := tree.Get("on").(tl.Bool); !ok || bool(on) {
		t.Errorf("on = %#v, want false", tree.Get("on"))
	}

	// Any non-bool tag in a bool position is an unknown constructor.
	_, err = dec.DecodeBlob(testutil.NewBlob().Tag(0x03).Tag(0x11111111).Bytes())
	var unknown *tl.UnknownConstructorError
	if !errors.As(err, &unknown) {
		t.Errorf("non-bool tag: error = %v, want UnknownConstructorError", err)
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	reg := tl.NewRegistry()
	reg.Register("v", map[uint32]*tl.Recipe{
		0x04: {Name: "box", Fields: []tl.FieldDef{
			{Name: "inner", Kind: tl.KindObject},
		}},
	})
	dec := mustDecoder(t, reg, "v")

	b := testutil.NewBlob()
	for i := 0; i < 80; i++ {
		b.Tag(0x04)
	}
	_, err := dec.DecodeBlob(b.Bytes())
	var invalid *tl.InvalidLengthError
	if !errors.As(err, &invalid) {
		t.Fatalf("deep nesting: error = %v, want InvalidLengthError", err)
	}
}

func TestDefaultRegistryVersions(t *testing.T) {
	for _, version := range []string{tl.Version550, tl.Version562} {
		if _, err := tl.NewDecoder(tl.Default(), version); err != nil {
			t.Errorf("built-in version %s not registered: %v", version, err)
		}
	}
	if _, err := tl.NewDecoder(tl.Default(), "4.8.11"); err == nil {
		t.Error("untested version 4.8.11 should be rejected")
	}

	// The 5.6.2 table carries constructors 5.5.0 does not know.
	if _, err := tl.Default().Resolve(tl.Version562, 0x938458c1); err != nil {
		t.Errorf("user constructor missing from 5.6.2 table: %v", err)
	}
	var unknown *tl.UnknownConstructorError
	if _, err := tl.Default().Resolve(tl.Version550, 0x938458c1); !errors.As(err, &unknown) {
		t.Errorf("5.5.0 resolve of 5.6.2-only tag = %v, want UnknownConstructorError", err)
	}
}

func TestDecodeFixtureMessage(t *testing.T) {
	dec := mustDecoder(t, tl.Default(), tl.Version562)

	tree, err := dec.DecodeBlob(testutil.EncodeTextMessage(1, 100, 200, 1600000000, "hi"))
	if err != nil {
		t.Fatalf("DecodeBlob() failed: %v", err)
	}
	if tree.Name != "message" {
		t.Fatalf("decoded %s, want message", tree.Name)
	}
	if text, _ := tree.GetString("message"); text != "hi" {
		t.Errorf("message = %q, want \"hi\"", text)
	}
	if uid, ok := tree.LookupInt("to_id.user_id"); !ok || uid != 200 {
		t.Errorf("to_id.user_id = %d, want 200", uid)
	}

	doc := testutil.EncodeDocumentMessage(2, 200, 100, 1600000100, 777, "application/pdf", "report.pdf", 2048)
	tree, err = dec.DecodeBlob(doc)
	if err != nil {
		t.Fatalf("DecodeBlob(document message) failed: %v", err)
	}
	if mime, ok := tree.GetObject("media").GetObject("document").GetString("mime_type"); !ok || mime != "application/pdf" {
		t.Errorf("document mime_type = %q, want application/pdf", mime)
	}
}
