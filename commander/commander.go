package commander

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"time"

	"github.com/go-errors/errors"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/nPaBwaYT/spn128/cripta"
)

var (
	ErrInvalidHex       = errors.New("commander: invalid hex input")
	ErrInvalidByteOrder = errors.New("commander: unknown byte order")
)

// Env carries the collaborators every command runs with.
type Env struct {
	Logger *zerolog.Logger
	Out    io.Writer
	Clock  clockwork.Clock
}

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error"       env:"SPN_LOG_LEVEL"  help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stderr,json"      env:"SPN_LOG_OUTPUT" help:"Specifies the format for log output"`
}

type CLI struct {
	Globals

	Encrypt  EncryptCmd  `cmd:"" help:"Encrypt a single 16-byte block"`
	Decrypt  DecryptCmd  `cmd:"" help:"Decrypt a single 16-byte block"`
	Keygen   KeygenCmd   `cmd:"" help:"Generate a random 256-bit key"`
	Selftest SelftestCmd `cmd:"" help:"Check known answers and concurrent round trips"`
	Bench    BenchCmd    `cmd:"" help:"Measure single-block encryption throughput"`
	Version  VersionCmd  `cmd:"" help:"Display the app version and exit"`
}

type CipherFlags struct {
	Key       string `required:"" env:"SPN_KEY" help:"256-bit key as 64 hex characters"`
	ByteOrder string `default:"big" enum:"big,little" help:"Byte order of 32-bit words within a block"`
}

func (f CipherFlags) newCipher(logger *zerolog.Logger) (*cripta.SPNCipher, error) {
	key, err := decodeHex("key", f.Key)
	if err != nil {
		return nil, err
	}
	order, err := parseByteOrder(f.ByteOrder)
	if err != nil {
		return nil, err
	}
	return cripta.NewSPNCipher(key, cripta.WithByteOrder(order), cripta.WithLogger(*logger))
}

func parseByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "big", "":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	default:
		return nil, errors.Errorf("%w: %q", ErrInvalidByteOrder, name)
	}
}

func decodeHex(what, value string) ([]byte, error) {
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %v", ErrInvalidHex, what, err)
	}
	return data, nil
}

func durationOrDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
