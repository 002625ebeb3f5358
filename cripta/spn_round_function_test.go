package cripta

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	state := Quad{0x01234567, 0x89abcdef, 0x00000000, 0xffffffff}
	got := substitute(state, 0)
	assert.Equal(t, Quad{0x38f1a65b, 0xed42709c, 0x33333333, 0xcccccccc}, got)
	assert.Equal(t, state, inverseSubstitute(got, 0))
}

func TestSubstituteRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for box := 0; box < 8; box++ {
		for i := 0; i < 100; i++ {
			state := Quad{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}
			assert.Equal(t, state, inverseSubstitute(substitute(state, box), box), "box %d", box)
		}
	}
}

func TestRoundFunction_InvertUndoesApply(t *testing.T) {
	rf := NewSPNRoundFunction()
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < Rounds; round++ {
		state := Quad{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}
		key := Quad{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}
		assert.Equal(t, state, rf.Invert(rf.Apply(state, round, key), round, key), "round %d", round)
	}
}

func TestRoundFunction_FinalRoundSkipsPermutation(t *testing.T) {
	rf := NewSPNRoundFunction()
	state := Quad{0x01234567, 0x89abcdef, 0xdeadbeef, 0x0badf00d}
	key := Quad{0x11111111, 0x22222222, 0x33333333, 0x44444444}

	last := Rounds - 1
	assert.Equal(t, xorQuad(substitute(state, last%8), key), rf.Apply(state, last, key))
	assert.Equal(t, permute(xorQuad(substitute(state, 0), key)), rf.Apply(state, 0, key))
}

// encryptPermutingEveryRound drops the final-round exception
func encryptPermutingEveryRound(rk RoundKeys, state Quad) Quad {
	state = xorQuad(state, rk[0])
	for round := 0; round < Rounds; round++ {
		state = substitute(state, round%8)
		state = xorQuad(state, rk[round+1])
		state = permute(state)
	}
	return state
}

func TestFinalRoundPermutationIsRequiredForRoundTrip(t *testing.T) {
	c, err := NewSPNCipher(testKey)
	require.NoError(t, err)

	plain := loadWords([]uint8("Test data for substitution net!!")[:BlockSize], binary.BigEndian)
	assert.Equal(t, plain, c.decrypt(c.encrypt(plain)))

	broken := encryptPermutingEveryRound(c.RoundKeys(), plain)
	assert.NotEqual(t, plain, c.decrypt(broken))
}
