package cripta

import (
	"github.com/go-errors/errors"
)

var (
	ErrInvalidKeyLength   = errors.New("cripta: invalid key length")
	ErrInvalidBlockLength = errors.New("cripta: invalid block length")
)
