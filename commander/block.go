package commander

import (
	"encoding/hex"
	"fmt"

	"github.com/nPaBwaYT/spn128/cripta"
)

type EncryptCmd struct {
	CipherFlags
	Block string `required:"" help:"Plaintext block as 32 hex characters"`
}

func (cmd *EncryptCmd) Run(env *Env) error {
	c, err := cmd.newCipher(env.Logger)
	if err != nil {
		return err
	}
	block, err := decodeHex("block", cmd.Block)
	if err != nil {
		return err
	}
	out, err := c.EncryptBlock(block)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, hex.EncodeToString(out))
	return err
}

type DecryptCmd struct {
	CipherFlags
	Block string `required:"" help:"Ciphertext block as 32 hex characters"`
}

func (cmd *DecryptCmd) Run(env *Env) error {
	c, err := cmd.newCipher(env.Logger)
	if err != nil {
		return err
	}
	block, err := decodeHex("block", cmd.Block)
	if err != nil {
		return err
	}
	out, err := c.DecryptBlock(block)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, hex.EncodeToString(out))
	return err
}

type KeygenCmd struct{}

func (cmd *KeygenCmd) Run(env *Env) error {
	key := make([]byte, cripta.KeySize)
	if _, err := cripta.GenerateRandomBytes(key); err != nil {
		return err
	}
	_, err := fmt.Fprintln(env.Out, hex.EncodeToString(key))
	return err
}
