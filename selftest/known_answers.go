package selftest

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/go-errors/errors"

	"github.com/nPaBwaYT/spn128/cripta"
)

var ErrKnownAnswer = errors.New("selftest: known answer mismatch")

// KnownAnswer is a pinned (key, plaintext, ciphertext) triple, all hex encoded.
type KnownAnswer struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
	Order      binary.ByteOrder
}

var KnownAnswers = []KnownAnswer{
	{
		Name:       "reference vector",
		Key:        hex.EncodeToString([]byte("This is a 256-bit secret key!!!!")),
		Plaintext:  hex.EncodeToString([]byte("Test data for su")),
		Ciphertext: "cf2dd8c3594f0b9b05892a979726726f",
		Order:      binary.BigEndian,
	},
	{
		Name:       "reference vector, little-endian words",
		Key:        hex.EncodeToString([]byte("This is a 256-bit secret key!!!!")),
		Plaintext:  hex.EncodeToString([]byte("Test data for su")),
		Ciphertext: "a78b0a4bfdd1d841cc67f2ecfc363839",
		Order:      binary.LittleEndian,
	},
	{
		Name:       "zero key, zero block",
		Key:        "0000000000000000000000000000000000000000000000000000000000000000",
		Plaintext:  "00000000000000000000000000000000",
		Ciphertext: "70f7113f1a15a3fd5224286a462f2ba3",
		Order:      binary.BigEndian,
	},
	{
		Name:       "sequential key and block",
		Key:        "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		Plaintext:  "000102030405060708090a0b0c0d0e0f",
		Ciphertext: "2cb17c39101d22518831add7370b9c9c",
		Order:      binary.BigEndian,
	},
}

// Check encrypts and decrypts the triple and compares both directions.
func (ka KnownAnswer) Check() error {
	key, err := hex.DecodeString(ka.Key)
	if err != nil {
		return errors.Errorf("%s: bad key: %w", ka.Name, err)
	}
	plain, err := hex.DecodeString(ka.Plaintext)
	if err != nil {
		return errors.Errorf("%s: bad plaintext: %w", ka.Name, err)
	}
	want, err := hex.DecodeString(ka.Ciphertext)
	if err != nil {
		return errors.Errorf("%s: bad ciphertext: %w", ka.Name, err)
	}

	c, err := cripta.NewSPNCipher(key, cripta.WithByteOrder(ka.Order))
	if err != nil {
		return errors.Errorf("%s: %w", ka.Name, err)
	}

	got, err := c.EncryptBlock(plain)
	if err != nil {
		return errors.Errorf("%s: %w", ka.Name, err)
	}
	if !bytes.Equal(want, got) {
		return errors.Errorf("%w: %s: encrypt got %x, want %x", ErrKnownAnswer, ka.Name, got, want)
	}

	back, err := c.DecryptBlock(want)
	if err != nil {
		return errors.Errorf("%s: %w", ka.Name, err)
	}
	if !bytes.Equal(plain, back) {
		return errors.Errorf("%w: %s: decrypt got %x, want %x", ErrKnownAnswer, ka.Name, back, plain)
	}
	return nil
}

// CheckKnownAnswers runs every pinned triple and stops at the first failure.
func CheckKnownAnswers(answers []KnownAnswer) error {
	for _, ka := range answers {
		if err := ka.Check(); err != nil {
			return err
		}
	}
	return nil
}
