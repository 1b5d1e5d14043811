package hashing_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/keirancc/nekohash/hashing"
)

// mustHex decodes a hex golden vector or fails the test.
func mustHex(tb testing.TB, s string) []byte {
	tb.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		tb.Fatalf("bad golden vector %q: %v", s, err)
	}
	return b
}

// ──────────────────────────────────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────────────────────────────────

func TestNewKawaiiHash_Defaults(t *testing.T) {
	h := hashing.NewKawaiiHash()
	if h.Size() != hashing.DefaultKawaiiSize {
		t.Errorf("Size() = %d, want %d", h.Size(), hashing.DefaultKawaiiSize)
	}
	if h.Seed() != hashing.DefaultKawaiiSeed {
		t.Errorf("Seed() = %#x, want %#x", h.Seed(), hashing.DefaultKawaiiSeed)
	}
	if h.Name() != "KawaiiHash" {
		t.Errorf("Name() = %q", h.Name())
	}
}

func TestNewKawaiiHashWithSize_RejectsNegative(t *testing.T) {
	_, err := hashing.NewKawaiiHashWithSize(-1)
	if !errors.Is(err, hashing.ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
}

func TestNewKawaiiHashWithSize_AllowsZero(t *testing.T) {
	h, err := hashing.NewKawaiiHashWithSize(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := h.Hash([]byte("anything")); len(got) != 0 {
		t.Errorf("len(Hash()) = %d, want 0", len(got))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Digest properties
// ──────────────────────────────────────────────────────────────────────────────

func TestKawaiiHash_OutputLengthMatchesSize(t *testing.T) {
	inputs := [][]byte{nil, {}, []byte("a"), []byte("Hello, Neko World!"), bytes.Repeat([]byte{0xFF}, 1000)}
	for _, size := range []int{1, 7, 8, 16, 32, 64, 100} {
		h, err := hashing.NewKawaiiHashWithSize(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		for _, in := range inputs {
			if got := h.Hash(in); len(got) != size {
				t.Errorf("size %d, input len %d: len(Hash()) = %d", size, len(in), len(got))
			}
			if h.Size() != size {
				t.Errorf("Size() = %d, want %d", h.Size(), size)
			}
		}
	}
}

func TestKawaiiHash_Deterministic(t *testing.T) {
	h := hashing.NewKawaiiHash()
	data := []byte("Hello, Kawaii World!")
	first := h.Hash(data)
	for i := 0; i < 10; i++ {
		if !bytes.Equal(h.Hash(data), first) {
			t.Fatalf("call %d produced a different digest", i+2)
		}
	}
}

func TestKawaiiHash_SeedChangesDigest(t *testing.T) {
	a, _ := hashing.NewKawaiiHashWithSeed(32, 1)
	b, _ := hashing.NewKawaiiHashWithSeed(32, 2)
	data := []byte("same input")
	if bytes.Equal(a.Hash(data), b.Hash(data)) {
		t.Error("different seeds produced identical digests")
	}
}

func TestKawaiiHash_GoldenVectors(t *testing.T) {
	msg := []byte("Hello, Neko World!")
	tests := []struct {
		name string
		size int
		seed uint64
		data []byte
		want string
	}{
		{"default 32 bytes", 32, hashing.DefaultKawaiiSeed, msg,
			"6b6f79f4d7184424c21e5c0367bf1ff63a84a5f31bd6a0553cbc9a4841cc1124"},
		{"empty input", 32, hashing.DefaultKawaiiSeed, nil,
			"d056ae660c190b99c5f6d2ba6639ebf7916ffd3cea2c7d163e3ef52e96ae4c75"},
		{"16-byte digest", 16, hashing.DefaultKawaiiSeed, msg,
			"6b6f79f4d7184424c21e5c0367bf1ff6"},
		{"custom seed", 24, 0x4E656B6F, msg,
			"eab6436940efe84da31fd12d8c725f53a36c0723be543c6a"},
		{"single byte digest", 1, hashing.DefaultKawaiiSeed, msg, "6b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := hashing.NewKawaiiHashWithSeed(tt.size, tt.seed)
			if err != nil {
				t.Fatal(err)
			}
			if got := h.Hash(tt.data); !bytes.Equal(got, mustHex(t, tt.want)) {
				t.Errorf("Hash() = %x, want %s", got, tt.want)
			}
		})
	}
}

func TestKawaiiHash_ConcurrentUse(t *testing.T) {
	h := hashing.NewKawaiiHash()
	data := []byte("shared instance")
	want := h.Hash(data)

	done := make(chan []byte, 16)
	for i := 0; i < 16; i++ {
		go func() { done <- h.Hash(data) }()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; !bytes.Equal(got, want) {
			t.Fatal("concurrent Hash call diverged")
		}
	}
}
