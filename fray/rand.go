package fray

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// CreateRandomSeed builds a PCG seeded from the OS entropy source, so two
// battles started in the same instant still diverge.
func CreateRandomSeed() rand.PCG {
	var seed [16]byte
	if _, err := cryptoRand.Read(seed[:]); err != nil {
		// the crypto/rand docs promise Read never fails
		panic(err)
	}

	hi := binary.LittleEndian.Uint64(seed[:8])
	lo := binary.LittleEndian.Uint64(seed[8:])

	return *rand.NewPCG(hi, lo)
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}
