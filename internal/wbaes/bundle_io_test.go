package wbaes

import (
	"testing"

	"github.com/AeonDave/wbaes/internal/keyschedule"
	"github.com/AeonDave/wbaes/internal/rng"
)

func TestSerializeDeserializeRoundTrips(t *testing.T) {
	key := [16]byte{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32}
	drbg, err := rng.New([]byte("wbaes-serialize-roundtrip"))
	if err != nil {
		t.Fatalf("rng.New: %v", err)
	}
	w := keyschedule.Expand(key)
	bundle, ext, err := GenerateEncryptionTable(w, drbg)
	if err != nil {
		t.Fatalf("GenerateEncryptionTable: %v", err)
	}

	data := bundle.Serialize()
	if len(data) != BundleSize {
		t.Fatalf("Serialize produced %d bytes, want %d", len(data), BundleSize)
	}

	var restored EncryptionTable
	if err := restored.Deserialize(data); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	var pt [16]byte
	for i := range pt {
		pt[i] = byte(i * 17)
	}
	want := runBundle(bundle, ext, pt)
	got := runBundle(&restored, ext, pt)
	if got != want {
		t.Fatalf("round-tripped bundle disagrees: got %x, want %x", got, want)
	}
}

func TestDeserializeRejectsWrongLength(t *testing.T) {
	var table EncryptionTable
	table.LastBox[0][0] = 0xAB // sentinel

	err := table.Deserialize(make([]byte, BundleSize-1))
	if err == nil {
		t.Fatal("expected error for short input, got nil")
	}
	if table.LastBox[0][0] != 0xAB {
		t.Fatal("Deserialize mutated the destination despite rejecting the input")
	}
}
