package hashing_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/keirancc/nekohash/hashing"
)

// ──────────────────────────────────────────────────────────────────────────────
// NewDefaultManager
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDefaultManager_AllAlgorithmsRegistered(t *testing.T) {
	m := hashing.NewDefaultManager()
	for _, a := range []hashing.Algorithm{hashing.AlgorithmKawaii, hashing.AlgorithmMagical, hashing.AlgorithmTsundere} {
		if !m.Has(a) {
			t.Errorf("algorithm %q not registered", a)
		}
	}
	if m.Default() != hashing.AlgorithmKawaii {
		t.Errorf("default = %q, want kawaii", m.Default())
	}
}

func TestManager_HashMatchesDirectCall(t *testing.T) {
	m := hashing.NewDefaultManager()
	data := []byte("Hello, Neko World!")

	tests := []struct {
		algo   hashing.Algorithm
		direct hashing.Hasher
	}{
		{hashing.AlgorithmKawaii, hashing.NewKawaiiHash()},
		{hashing.AlgorithmMagical, hashing.NewMagicalHash()},
		{hashing.AlgorithmTsundere, hashing.NewTsundereHash()},
	}
	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			got, err := m.HashWith(tt.algo, data)
			if err != nil {
				t.Fatal(err)
			}
			if want := tt.direct.Hash(data); !bytes.Equal(got, want) {
				t.Errorf("HashWith(%q) = %x, want %x", tt.algo, got, want)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / SetDefault
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_Register_RejectsInvalidInputs(t *testing.T) {
	m := hashing.NewManager(hashing.AlgorithmKawaii)

	if err := m.Register("", hashing.NewKawaiiHash()); !errors.Is(err, hashing.ErrEmptyAlgorithmName) {
		t.Errorf("empty name: err = %v, want ErrEmptyAlgorithmName", err)
	}
	if err := m.Register("custom", nil); !errors.Is(err, hashing.ErrNilHasher) {
		t.Errorf("nil hasher: err = %v, want ErrNilHasher", err)
	}
}

func TestManager_UnregisteredAlgorithm(t *testing.T) {
	m := hashing.NewManager(hashing.AlgorithmKawaii)

	if _, err := m.Hash([]byte("x")); !errors.Is(err, hashing.ErrAlgorithmNotFound) {
		t.Errorf("Hash: err = %v, want ErrAlgorithmNotFound", err)
	}
	if _, err := m.HashWith("nope", []byte("x")); !errors.Is(err, hashing.ErrAlgorithmNotFound) {
		t.Errorf("HashWith: err = %v, want ErrAlgorithmNotFound", err)
	}
	if err := m.SetDefault("nope"); !errors.Is(err, hashing.ErrAlgorithmNotFound) {
		t.Errorf("SetDefault: err = %v, want ErrAlgorithmNotFound", err)
	}
}

func TestManager_SetDefault_SwitchesDispatch(t *testing.T) {
	m := hashing.NewDefaultManager()
	if err := m.SetDefault(hashing.AlgorithmMagical); err != nil {
		t.Fatal(err)
	}

	got, err := m.Hash([]byte("neko"))
	if err != nil {
		t.Fatal(err)
	}
	if want := hashing.NewMagicalHash().Hash([]byte("neko")); !bytes.Equal(got, want) {
		t.Error("default dispatch did not switch to magical")
	}
}

func TestManager_ConcurrentUse(t *testing.T) {
	m := hashing.NewDefaultManager()
	data := []byte("concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				_, _ = m.Hash(data)
			case 1:
				_, _ = m.HashWith(hashing.AlgorithmTsundere, data)
			default:
				_ = m.Register("custom", hashing.NewMagicalHash())
			}
		}(i)
	}
	wg.Wait()
}
