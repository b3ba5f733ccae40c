package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algokit/internal/config"
)

// Status is the outcome of one case.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// Result records one executed case.
type Result struct {
	Case    string
	Solver  string
	Output  string // JSON rendering of the solver result
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Runner executes cases concurrently.
type Runner struct {
	logger   *zap.Logger
	workers  int
	failFast bool
}

// New returns a Runner configured from cfg. A nil logger is replaced by a
// no-op logger.
func New(cfg config.Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Runner{logger: logger, workers: workers, failFast: cfg.FailFast}
}

// Run executes cases with at most the configured number in flight and
// returns one Result per case, in input order.
//
// With fail-fast set, the first solver error cancels the batch: cases not yet
// started are reported as skipped and the error is returned. Cancelling ctx
// has the same effect and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, cases []*Case) ([]Result, error) {
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run_id", runID))
	log.Info("run started", zap.Int("cases", len(cases)), zap.Int("workers", r.workers))

	results := make([]Result, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = Result{Case: c.Name, Solver: c.Solver, Status: StatusSkipped}
				return nil
			}
			results[i] = execute(c)
			res := &results[i]
			log.Debug("case finished",
				zap.String("case", c.Name),
				zap.String("solver", c.Solver),
				zap.String("status", string(res.Status)),
				zap.Duration("elapsed", res.Elapsed),
			)
			if res.Status == StatusError {
				log.Warn("case error", zap.String("case", c.Name), zap.Error(res.Err))
				if r.failFast {
					return fmt.Errorf("runner: case %q: %w", c.Name, res.Err)
				}
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	log.Info("run finished", zap.Bool("ok", err == nil))

	return results, err
}

// execute runs one case and classifies its outcome. A panicking solver is
// reported as an error result.
func execute(c *Case) (res Result) {
	res = Result{Case: c.Name, Solver: c.Solver}
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
		if p := recover(); p != nil {
			res.Status, res.Err, res.Output = StatusError, fmt.Errorf("runner: solver panic: %v", p), ""
		}
	}()

	solve, ok := registry[c.Solver]
	if !ok {
		res.Status, res.Err = StatusError, fmt.Errorf("%w: %q", ErrUnknownSolver, c.Solver)
		return res
	}
	out, err := solve(c)
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}
	rendered, err := render(out)
	if err != nil {
		res.Status, res.Err = StatusError, fmt.Errorf("runner: render result: %w", err)
		return res
	}
	res.Output = string(rendered)

	res.Status = compare(rendered, c.Expect)
	return res
}

// render encodes v as compact JSON without HTML escaping, so string results
// read the same as the expect text written in case files.
func render(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// compare matches a rendered result against the expected JSON text by
// value: whitespace and string escapes in expect are insignificant, numbers
// compare by their literal text. Invalid JSON never matches.
func compare(rendered []byte, expect *string) Status {
	if expect == nil {
		return StatusDone
	}
	want, err := decodeJSON([]byte(*expect))
	if err != nil {
		return StatusFail
	}
	got, err := decodeJSON(rendered)
	if err != nil {
		return StatusFail
	}
	if cmp.Equal(got, want) {
		return StatusPass
	}

	return StatusFail
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("runner: trailing data after JSON value")
	}

	return v, nil
}
