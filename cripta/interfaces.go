package cripta

// Quad - 128-битное состояние (или раундовый ключ) как четыре 32-битных слова.
// Слово 0 содержит биты 0..31, слово 3 - биты 96..127.
type Quad [4]uint32

// RoundKeys - раундовые ключи: отбеливание плюс по одному ключу на раунд.
type RoundKeys [Rounds + 1]Quad

type IKeySchedule interface {
	GenerateRoundKeys(masterKey []uint8) (RoundKeys, error)
}

type IRoundFunction interface {
	Apply(state Quad, round int, roundKey Quad) Quad
	Invert(state Quad, round int, roundKey Quad) Quad
}

type ISymmetricCipher interface {
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
}
