package commander

import (
	"context"
	"fmt"
	"time"

	"github.com/nPaBwaYT/spn128/cripta"
	"github.com/nPaBwaYT/spn128/selftest"
)

type SelftestCmd struct {
	Key     string `env:"SPN_KEY" help:"256-bit key as 64 hex characters, random when omitted"`
	Workers int    `default:"8"    help:"Number of goroutines sharing one cipher"`
	Blocks  int    `default:"4096" help:"Number of distinct blocks to round-trip"`
}

func (cmd *SelftestCmd) Run(env *Env) error {
	if err := selftest.CheckKnownAnswers(selftest.KnownAnswers); err != nil {
		return err
	}
	env.Logger.Info().Int("vectors", len(selftest.KnownAnswers)).Msg("known answers match")

	key, err := keyOrRandom(cmd.Key)
	if err != nil {
		return err
	}
	c, err := cripta.NewSPNCipher(key, cripta.WithLogger(*env.Logger))
	if err != nil {
		return err
	}
	runner, err := selftest.NewRunner(c, env.Clock, env.Logger, selftest.Config{
		Workers: cmd.Workers,
		Blocks:  cmd.Blocks,
	})
	if err != nil {
		return err
	}

	report, err := runner.Verify(context.Background())
	if err != nil {
		return err
	}
	env.Logger.Info().
		Int("workers", report.Workers).
		Int("blocks", report.Blocks).
		Dur("elapsed", report.Elapsed).
		Msg("round trips match")

	_, err = fmt.Fprintln(env.Out, "ok")
	return err
}

type BenchCmd struct {
	CipherFlags
	Duration time.Duration `default:"2s" help:"How long to keep encrypting"`
}

func (cmd *BenchCmd) Run(env *Env) error {
	c, err := cmd.newCipher(env.Logger)
	if err != nil {
		return err
	}
	runner, err := selftest.NewRunner(c, env.Clock, env.Logger, selftest.Config{Workers: 1, Blocks: 1})
	if err != nil {
		return err
	}

	result, err := runner.Bench(context.Background(), durationOrDefault(cmd.Duration, 2*time.Second))
	if err != nil {
		return err
	}
	env.Logger.Info().
		Int("blocks", result.Blocks).
		Dur("elapsed", result.Elapsed).
		Msg("benchmark finished")

	_, err = fmt.Fprintf(env.Out, "%d blocks in %s, %.2f MB/s\n",
		result.Blocks, result.Elapsed, result.BytesPerSecond/1e6)
	return err
}

func keyOrRandom(value string) ([]byte, error) {
	if value != "" {
		return decodeHex("key", value)
	}
	key := make([]byte, cripta.KeySize)
	if _, err := cripta.GenerateRandomBytes(key); err != nil {
		return nil, err
	}
	return key, nil
}
