package cripta

import (
	"encoding/binary"
	"math/bits"

	"github.com/go-errors/errors"
)

// phi - дробная часть золотого сечения
const phi = 0x9E3779B9

// SPNKeySchedule расширяет 256-битный мастер-ключ в Rounds+1 раундовых ключей
type SPNKeySchedule struct{}

func NewSPNKeySchedule() *SPNKeySchedule {
	return &SPNKeySchedule{}
}

// GenerateRoundKeys генерирует раундовые ключи
func (ks *SPNKeySchedule) GenerateRoundKeys(masterKey []uint8) (RoundKeys, error) {
	if len(masterKey) != KeySize {
		return RoundKeys{}, errors.Errorf("%w: got %d bytes, need %d", ErrInvalidKeyLength, len(masterKey), KeySize)
	}

	// 8 слов ключа и по 4 слова на каждый из Rounds+1 ключей
	var w [8 + 4*(Rounds+1)]uint32

	for i := 0; i < 8; i++ {
		w[i] = loadWord(masterKey[i*4:], binary.LittleEndian)
	}

	// Счётчик i-8 ломает самоподобие соседних слов
	for i := 8; i < len(w); i++ {
		temp := w[i-8] ^ w[i-5] ^ w[i-3] ^ w[i-1] ^ phi ^ uint32(i-8)
		w[i] = bits.RotateLeft32(temp, 11)
	}

	var roundKeys RoundKeys
	for round := 0; round <= Rounds; round++ {
		quad := Quad{w[round*4+8], w[round*4+9], w[round*4+10], w[round*4+11]}
		roundKeys[round] = substitute(quad, (Rounds+3-round)%8)
	}

	return roundKeys, nil
}
