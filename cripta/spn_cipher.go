package cripta

import (
	"crypto/cipher"
	"encoding/binary"

	"github.com/go-errors/errors"
	"github.com/rs/zerolog"
)

const (
	BlockSize = 16 // байт
	KeySize   = 32 // байт
	Rounds    = 32
	BlockBits = BlockSize * 8
)

var _ cipher.Block = (*SPNCipher)(nil)
var _ ISymmetricCipher = (*SPNCipher)(nil)

// SPNCipher - 128-битная SP-сеть с 256-битным ключом.
// После создания не изменяется, поэтому один экземпляр можно
// использовать из нескольких горутин без блокировок.
type SPNCipher struct {
	keySchedule   IKeySchedule
	roundFunction IRoundFunction
	order         binary.ByteOrder
	logger        zerolog.Logger
	roundKeys     RoundKeys
}

type Option func(*SPNCipher)

// WithByteOrder задаёт порядок байт слов блока (по умолчанию big-endian).
// binary.LittleEndian даёт раскладку исходной реализации на C.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(c *SPNCipher) {
		if order != nil {
			c.order = order
		}
	}
}

// WithLogger подключает логгер для отладочных сообщений о расширении ключа
func WithLogger(logger zerolog.Logger) Option {
	return func(c *SPNCipher) {
		c.logger = logger
	}
}

// NewSPNCipher создает шифр и сразу вычисляет раундовые ключи
func NewSPNCipher(key []uint8, opts ...Option) (*SPNCipher, error) {
	c := &SPNCipher{
		keySchedule:   NewSPNKeySchedule(),
		roundFunction: NewSPNRoundFunction(),
		order:         binary.BigEndian,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	roundKeys, err := c.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return nil, err
	}
	c.roundKeys = roundKeys

	c.logger.Debug().
		Int("rounds", Rounds).
		Int("round_keys", len(roundKeys)).
		Stringer("byte_order", c.order).
		Msg("round keys expanded")

	return c, nil
}

// EncryptBlock шифрует блок данных
func (c *SPNCipher) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	if len(plainBlock) != BlockSize {
		return nil, errors.Errorf("%w: got %d bytes, need %d", ErrInvalidBlockLength, len(plainBlock), BlockSize)
	}
	out := make([]uint8, BlockSize)
	storeWords(out, c.encrypt(loadWords(plainBlock, c.order)), c.order)
	return out, nil
}

// DecryptBlock расшифровывает блок данных
func (c *SPNCipher) DecryptBlock(cipherBlock []uint8) ([]uint8, error) {
	if len(cipherBlock) != BlockSize {
		return nil, errors.Errorf("%w: got %d bytes, need %d", ErrInvalidBlockLength, len(cipherBlock), BlockSize)
	}
	out := make([]uint8, BlockSize)
	storeWords(out, c.decrypt(loadWords(cipherBlock, c.order)), c.order)
	return out, nil
}

func (c *SPNCipher) BlockSize() int {
	return BlockSize
}

// Encrypt реализует cipher.Block. dst и src могут совпадать.
func (c *SPNCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("cripta: input not full block")
	}
	if len(dst) < BlockSize {
		panic("cripta: output not full block")
	}
	storeWords(dst, c.encrypt(loadWords(src, c.order)), c.order)
}

// Decrypt реализует cipher.Block. dst и src могут совпадать.
func (c *SPNCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("cripta: input not full block")
	}
	if len(dst) < BlockSize {
		panic("cripta: output not full block")
	}
	storeWords(dst, c.decrypt(loadWords(src, c.order)), c.order)
}

func (c *SPNCipher) encrypt(state Quad) Quad {
	// Начальное отбеливание
	state = xorQuad(state, c.roundKeys[0])
	for round := 0; round < Rounds; round++ {
		state = c.roundFunction.Apply(state, round, c.roundKeys[round+1])
	}
	return state
}

func (c *SPNCipher) decrypt(state Quad) Quad {
	for round := Rounds - 1; round >= 0; round-- {
		state = c.roundFunction.Invert(state, round, c.roundKeys[round+1])
	}
	return xorQuad(state, c.roundKeys[0])
}

// RoundKeys возвращает копию раундовых ключей
func (c *SPNCipher) RoundKeys() RoundKeys {
	return c.roundKeys
}

// GetByteOrder возвращает порядок байт слов блока
func (c *SPNCipher) GetByteOrder() binary.ByteOrder {
	return c.order
}
