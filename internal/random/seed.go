// Package random provides seed generation for the coefficient sampler.
//
// It uses crypto/rand to pick a high-entropy seed and hands back an
// explicitly seeded math/rand generator, so a run can be replayed by
// passing the same seed again.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"

	"github.com/pkg/errors"
)

// Entropy is the source NewSeed reads from.
var Entropy io.Reader = crand.Reader

// NewSeed generates a nonzero random seed.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := io.ReadFull(Entropy, b[:]); err != nil {
			return 0, errors.Wrap(err, "read random seed")
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// New returns a generator seeded with seed, or with a fresh seed when seed
// is 0. The seed actually used is returned alongside.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
