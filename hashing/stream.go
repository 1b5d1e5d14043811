package hashing

import "encoding/binary"

// stream is a deterministic pseudo-random source built on the splitmix64
// step function.  Every construction in this package draws its mixing bytes
// from a stream seeded only by construction-time configuration, which is what
// makes the hashes reproducible: same seed, same stream, same digest.
//
// A stream is single-use and not safe for concurrent access; callers create
// one per Hash invocation.
type stream struct {
	state uint64
	buf   [8]byte
	off   int
}

func newStream(seed uint64) *stream {
	// off starts past the end of buf so the first nextByte call refills it.
	return &stream{state: seed, off: 8}
}

// next64 returns the next 64-bit value of the sequence.
func (s *stream) next64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// nextByte returns the next byte of the sequence, consuming the little-endian
// bytes of successive next64 outputs in order.
func (s *stream) nextByte() byte {
	if s.off == len(s.buf) {
		binary.LittleEndian.PutUint64(s.buf[:], s.next64())
		s.off = 0
	}
	b := s.buf[s.off]
	s.off++
	return b
}
