package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe algorithm registry and dispatcher.
//
// Register one or more named [Hasher] implementations, nominate a default
// algorithm, and then call [Manager.Hash] / [Manager.HashWith] through the
// Manager wherever the construction is selected at runtime.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (Register, SetDefault) while allowing
// concurrent reads (Hash, HashWith, Hasher).
type Manager struct {
	mu         sync.RWMutex
	algorithms map[Algorithm]Hasher
	def        Algorithm
}

// NewManager creates an empty Manager with the given default algorithm name.
// Hashers must be registered with [Manager.Register] before any hashing
// operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant that registers
// all three built-in constructions.
func NewManager(defaultAlgorithm Algorithm) *Manager {
	return &Manager{
		algorithms: make(map[Algorithm]Hasher),
		def:        defaultAlgorithm,
	}
}

// NewDefaultManager creates a Manager with all three built-in constructions
// pre-registered using their default configurations.  The default algorithm
// is [AlgorithmKawaii].
func NewDefaultManager() *Manager {
	m := NewManager(AlgorithmKawaii)
	_ = m.Register(AlgorithmKawaii, NewKawaiiHash())
	_ = m.Register(AlgorithmMagical, NewMagicalHash())
	_ = m.Register(AlgorithmTsundere, NewTsundereHash())
	return m
}

// Register adds or replaces a named hasher in the Manager.
// It is safe to call Register while other goroutines are using the Manager.
//
// Custom constructions only need to implement the [Hasher] interface:
//
//	m.Register("my-algo", &MyHasher{})
func (m *Manager) Register(name Algorithm, h Hasher) error {
	if name == "" {
		return ErrEmptyAlgorithmName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.algorithms[name] = h
	return nil
}

// Hasher returns the [Hasher] registered under name, or
// [ErrAlgorithmNotFound] if no such algorithm has been registered.
func (m *Manager) Hasher(name Algorithm) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, name)
	}
	return h, nil
}

// SetDefault changes the algorithm used by [Manager.Hash].  The named
// algorithm must already be registered.
func (m *Manager) SetDefault(name Algorithm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.algorithms[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call Register first",
			ErrAlgorithmNotFound, name)
	}
	m.def = name
	return nil
}

// Default returns the name of the currently configured default algorithm.
func (m *Manager) Default() Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// Has reports whether an algorithm with the given name is registered.
func (m *Manager) Has(name Algorithm) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.algorithms[name]
	return ok
}

// Hash computes the digest of data using the default algorithm.
func (m *Manager) Hash(data []byte) ([]byte, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return nil, err
	}
	return h.Hash(data), nil
}

// HashWith computes the digest of data using the named algorithm.
func (m *Manager) HashWith(name Algorithm, data []byte) ([]byte, error) {
	h, err := m.Hasher(name)
	if err != nil {
		return nil, err
	}
	return h.Hash(data), nil
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.algorithms[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default algorithm %q has not been registered",
			ErrAlgorithmNotFound, m.def)
	}
	return h, nil
}
