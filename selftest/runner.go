package selftest

import (
	"bytes"
	"context"
	"encoding/binary"
	"time"

	"github.com/go-errors/errors"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/nPaBwaYT/spn128/cripta"
)

var (
	ErrRoundTrip     = errors.New("selftest: round trip mismatch")
	ErrInvalidConfig = errors.New("selftest: invalid config")
)

const benchBatch = 1024

type Config struct {
	Workers int
	Blocks  int
}

type Report struct {
	Workers int
	Blocks  int
	Elapsed time.Duration
}

type BenchResult struct {
	Blocks         int
	Elapsed        time.Duration
	BytesPerSecond float64
}

// Runner drives one cipher from several goroutines at once.
// The cipher is shared read-only, there is no locking around it.
type Runner struct {
	cipher *cripta.SPNCipher
	clock  clockwork.Clock
	logger *zerolog.Logger
	cfg    Config
}

func NewRunner(
	cipher *cripta.SPNCipher,
	clock clockwork.Clock,
	logger *zerolog.Logger,
	cfg Config,
) (*Runner, error) {
	if cipher == nil {
		return nil, errors.Errorf("%w: cipher cannot be nil", ErrInvalidConfig)
	}
	if cfg.Workers <= 0 {
		return nil, errors.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, cfg.Workers)
	}
	if cfg.Blocks <= 0 {
		return nil, errors.Errorf("%w: blocks must be positive, got %d", ErrInvalidConfig, cfg.Blocks)
	}
	return &Runner{
		cipher: cipher,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Verify round-trips cfg.Blocks distinct blocks, spread over cfg.Workers goroutines.
func (r *Runner) Verify(ctx context.Context) (Report, error) {
	started := r.clock.Now()
	blocks := lo.Times(r.cfg.Blocks, testBlock)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < r.cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(blocks); i += r.cfg.Workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := r.roundTrip(i, blocks[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		Workers: r.cfg.Workers,
		Blocks:  r.cfg.Blocks,
		Elapsed: r.clock.Since(started),
	}
	r.logger.Debug().
		Int("workers", report.Workers).
		Int("blocks", report.Blocks).
		Dur("elapsed", report.Elapsed).
		Msg("round trip verified")
	return report, nil
}

func (r *Runner) roundTrip(idx int, block []byte) error {
	encrypted, err := r.cipher.EncryptBlock(block)
	if err != nil {
		return err
	}
	decrypted, err := r.cipher.DecryptBlock(encrypted)
	if err != nil {
		return err
	}
	if !bytes.Equal(block, decrypted) {
		return errors.Errorf("%w: block %d: got %x, want %x", ErrRoundTrip, idx, decrypted, block)
	}
	return nil
}

// Bench encrypts batches of chained blocks until d elapses on the runner's clock.
// At least one batch is always processed.
func (r *Runner) Bench(ctx context.Context, d time.Duration) (BenchResult, error) {
	started := r.clock.Now()
	timer := r.clock.NewTimer(d)
	defer timer.Stop()

	block := testBlock(0)
	processed := 0
	for {
		for i := 0; i < benchBatch; i++ {
			var err error
			if block, err = r.cipher.EncryptBlock(block); err != nil {
				return BenchResult{}, err
			}
		}
		processed += benchBatch

		select {
		case <-ctx.Done():
			return BenchResult{}, ctx.Err()
		case <-timer.Chan():
			elapsed := r.clock.Since(started)
			result := BenchResult{
				Blocks:  processed,
				Elapsed: elapsed,
			}
			if elapsed > 0 {
				result.BytesPerSecond = float64(processed*cripta.BlockSize) / elapsed.Seconds()
			}
			r.logger.Debug().
				Int("blocks", result.Blocks).
				Dur("elapsed", result.Elapsed).
				Float64("bytes_per_second", result.BytesPerSecond).
				Msg("benchmark finished")
			return result, nil
		default:
		}
	}
}

// testBlock derives a distinct block from its index
func testBlock(idx int) []byte {
	block := make([]byte, cripta.BlockSize)
	binary.BigEndian.PutUint64(block[0:], uint64(idx))
	binary.BigEndian.PutUint64(block[8:], ^uint64(idx)*0x9E3779B97F4A7C15)
	return block
}
