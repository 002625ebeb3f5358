package commander_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nPaBwaYT/spn128/commander"
	"github.com/nPaBwaYT/spn128/cripta"
)

var (
	vectorKey   = hex.EncodeToString([]byte("This is a 256-bit secret key!!!!"))
	vectorBlock = hex.EncodeToString([]byte("Test data for su"))
)

func run(t *testing.T, clock clockwork.Clock, args ...string) (string, error) {
	t.Helper()
	var cli commander.CLI
	parser, err := kong.New(&cli, kong.Name("spn"))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	logger := zerolog.Nop()
	env := &commander.Env{Logger: &logger, Out: &out, Clock: clock}
	err = kctx.Run(env)
	return out.String(), err
}

func TestEncryptDecrypt(t *testing.T) {
	tests := []struct {
		name   string
		order  string
		cipher string
	}{
		{"big-endian words", "big", "cf2dd8c3594f0b9b05892a979726726f"},
		{"little-endian words", "little", "a78b0a4bfdd1d841cc67f2ecfc363839"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, clockwork.NewFakeClock(),
				"encrypt", "--key", vectorKey, "--block", vectorBlock, "--byte-order", tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.cipher+"\n", out)

			out, err = run(t, clockwork.NewFakeClock(),
				"decrypt", "--key", vectorKey, "--block", tt.cipher, "--byte-order", tt.order)
			require.NoError(t, err)
			assert.Equal(t, vectorBlock+"\n", out)
		})
	}
}

func TestEncrypt_DefaultByteOrder(t *testing.T) {
	out, err := run(t, clockwork.NewFakeClock(), "encrypt", "--key", vectorKey, "--block", vectorBlock)
	require.NoError(t, err)
	assert.Equal(t, "cf2dd8c3594f0b9b05892a979726726f\n", out)
}

func TestEncrypt_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			"key is not hex",
			[]string{"encrypt", "--key", "xyz", "--block", vectorBlock},
			commander.ErrInvalidHex,
		},
		{
			"block is not hex",
			[]string{"encrypt", "--key", vectorKey, "--block", "nothex"},
			commander.ErrInvalidHex,
		},
		{
			"key too short",
			[]string{"encrypt", "--key", vectorKey[:62], "--block", vectorBlock},
			cripta.ErrInvalidKeyLength,
		},
		{
			"key too long",
			[]string{"encrypt", "--key", vectorKey + "00", "--block", vectorBlock},
			cripta.ErrInvalidKeyLength,
		},
		{
			"block too short",
			[]string{"encrypt", "--key", vectorKey, "--block", vectorBlock[:30]},
			cripta.ErrInvalidBlockLength,
		},
		{
			"block too long",
			[]string{"decrypt", "--key", vectorKey, "--block", vectorBlock + "00"},
			cripta.ErrInvalidBlockLength,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, clockwork.NewFakeClock(), tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestEncrypt_RejectsUnknownByteOrder(t *testing.T) {
	_, err := run(t, clockwork.NewFakeClock(),
		"encrypt", "--key", vectorKey, "--block", vectorBlock, "--byte-order", "middle")
	assert.Error(t, err)
}

func TestLogOutput_StdoutRejected(t *testing.T) {
	_, err := run(t, clockwork.NewFakeClock(),
		"--log-output", "stdout", "encrypt", "--key", vectorKey, "--block", vectorBlock)
	assert.Error(t, err)

	out, err := run(t, clockwork.NewFakeClock(),
		"--log-output", "stderr", "encrypt", "--key", vectorKey, "--block", vectorBlock)
	require.NoError(t, err)
	assert.Equal(t, "cf2dd8c3594f0b9b05892a979726726f\n", out)
}

func TestKeygen(t *testing.T) {
	first, err := run(t, clockwork.NewFakeClock(), "keygen")
	require.NoError(t, err)
	second, err := run(t, clockwork.NewFakeClock(), "keygen")
	require.NoError(t, err)

	key, err := hex.DecodeString(strings.TrimSpace(first))
	require.NoError(t, err)
	assert.Len(t, key, cripta.KeySize)
	assert.NotEqual(t, first, second)
}

func TestSelftest(t *testing.T) {
	out, err := run(t, clockwork.NewFakeClock(), "selftest", "--workers", "4", "--blocks", "256")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = run(t, clockwork.NewFakeClock(), "selftest", "--key", vectorKey, "--blocks", "16")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestSelftest_InvalidWorkers(t *testing.T) {
	_, err := run(t, clockwork.NewFakeClock(), "selftest", "--workers", "0")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := run(t, clockwork.NewRealClock(), "bench", "--key", vectorKey, "--duration", "10ms")
	require.NoError(t, err)
	assert.Contains(t, out, "blocks in")
	assert.Contains(t, out, "MB/s")
}

func TestVersion(t *testing.T) {
	out, err := run(t, clockwork.NewFakeClock(), "version")
	require.NoError(t, err)
	assert.Equal(t, "Version: dev (none) built at unknown\n", out)
}
