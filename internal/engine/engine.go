// Package engine runs the generate-score-accept loop and exposes the
// generation contract shared by the CLI and HTTP front ends.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rcliao/uaforge/internal/assemble"
	"github.com/rcliao/uaforge/internal/corpus"
	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/randutil"
	"github.com/rcliao/uaforge/internal/score"
	"github.com/rcliao/uaforge/internal/store"
)

const (
	// DefaultThreshold is the minimum score for a candidate to be accepted.
	DefaultThreshold = 90.0
	// DefaultMaxAttempts is the number of drafts before the loop gives up.
	DefaultMaxAttempts = 5

	batchRunsPerResult = 50
)

// ErrBatchIncomplete is returned by GenerateBatch when it cannot find enough
// distinct strings within its run budget.
var ErrBatchIncomplete = errors.New("batch incomplete")

// Storage is the persistence the engine needs: the reference corpus plus
// the ledger. *store.SQLiteStore implements it.
type Storage interface {
	EnsureSeeded(ctx context.Context) (*store.SeedReport, error)
	LoadCorpus(ctx context.Context) (*corpus.Corpus, error)
	Record(ctx context.Context, text string, dt model.DeviceType) (bool, error)
	CountByDeviceType(ctx context.Context) (map[model.DeviceType]int, error)
}

// Options configures an Engine. Zero values select the defaults; a
// threshold must be positive to take effect.
type Options struct {
	Threshold   float64
	MaxAttempts int
	Rand        *rand.Rand
	Logger      *slog.Logger

	// OnTransition, if set, observes every state change of the loop.
	OnTransition func(from, to State, attempt int)
}

// Stats is the ledger count per device type.
type Stats struct {
	Android int `json:"android"`
	IOS     int `json:"ios"`
}

// Engine generates user agents. One Engine serves concurrent callers; each
// call runs its own independent loop.
type Engine struct {
	storage   Storage
	threshold float64
	maxTries  int
	rng       *rand.Rand
	asm       *assemble.Assembler
	log       *slog.Logger
	observe   func(from, to State, attempt int)
}

// New returns an Engine over storage.
func New(storage Storage, opts Options) *Engine {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Rand == nil {
		opts.Rand = randutil.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{
		storage:   storage,
		threshold: opts.Threshold,
		maxTries:  opts.MaxAttempts,
		rng:       opts.Rand,
		asm:       assemble.New(opts.Rand),
		log:       opts.Logger,
		observe:   opts.OnTransition,
	}
}

// Threshold returns the acceptance threshold in use.
func (e *Engine) Threshold() float64 { return e.threshold }

// MaxAttempts returns the attempt budget in use.
func (e *Engine) MaxAttempts() int { return e.maxTries }

// EnsureSeeded populates any empty reference table from the built-in corpus.
func (e *Engine) EnsureSeeded(ctx context.Context) (*store.SeedReport, error) {
	return e.storage.EnsureSeeded(ctx)
}

// Generate runs the acceptance loop once and records the outcome. A
// candidate that never reaches the threshold is still returned; only
// corpus and storage failures are errors.
func (e *Engine) Generate(ctx context.Context, pref model.Preference) (model.Result, error) {
	c, err := e.storage.LoadCorpus(ctx)
	if err != nil {
		return model.Result{}, err
	}
	return e.generate(ctx, c, e.scorerFor(c), pref)
}

// scorerFor checks manufacturers against the corpus being drafted from, so
// a store seeded with other devices still scores its own output.
func (e *Engine) scorerFor(c *corpus.Corpus) *score.Scorer {
	return score.NewWithManufacturers(e.rng, corpus.Manufacturers(c.Android.Rows()))
}

func (e *Engine) generate(ctx context.Context, c *corpus.Corpus, scorer *score.Scorer, pref model.Preference) (model.Result, error) {
	out, err := e.run(ctx, c, pref, scorer)
	if err != nil {
		return model.Result{}, err
	}

	if _, err := e.storage.Record(ctx, out.text, out.deviceType); err != nil {
		return model.Result{}, err
	}

	res := model.Result{
		Text:       out.text,
		Score:      score.Round(out.score),
		DeviceType: out.deviceType,
		Attempts:   out.attempts,
		Accepted:   out.state == Accepted,
	}
	if !res.Accepted {
		e.log.Warn("attempt budget exhausted",
			"device_type", res.DeviceType, "attempts", res.Attempts, "score", res.Score)
	}
	return res, nil
}

// GenerateBatch returns n results with pairwise distinct text. It stops
// after n*50 loop runs and returns what it has with ErrBatchIncomplete.
func (e *Engine) GenerateBatch(ctx context.Context, n int, pref model.Preference) ([]model.Result, error) {
	if n <= 0 {
		return nil, nil
	}
	c, err := e.storage.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	scorer := e.scorerFor(c)
	results := make([]model.Result, 0, n)
	seen := make(map[string]bool, n)
	budget := n * batchRunsPerResult
	for runs := 0; len(results) < n; runs++ {
		if runs == budget {
			return results, fmt.Errorf("%w: %d of %d distinct after %d runs", ErrBatchIncomplete, len(results), n, runs)
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r, err := e.generate(ctx, c, scorer, pref)
		if err != nil {
			return results, err
		}
		if seen[r.Text] {
			continue
		}
		seen[r.Text] = true
		results = append(results, r)
	}
	return results, nil
}

// Stats returns the ledger count per device type.
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	counts, err := e.storage.CountByDeviceType(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Android: counts[model.Android], IOS: counts[model.IOS]}, nil
}
