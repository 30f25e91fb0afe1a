package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/vecexpr"
	"github.com/hupe1980/vecexpr/internal/conv"
	"github.com/hupe1980/vecexpr/internal/cpuinfo"
)

var (
	// ErrInvalidIterations is returned when the iteration count is not positive.
	ErrInvalidIterations = errors.New("iterations must be positive")

	// ErrUnsupportedDimension is the cause of *vecexpr.ErrInvalidDimension
	// returned by RunDim for sizes without a predeclared Dim.
	ErrUnsupportedDimension = errors.New("no predeclared dimension of that size")
)

// ctxCheckInterval is how many iterations run between context checks.
const ctxCheckInterval = 1024

// Result is the outcome of one strategy.
type Result struct {
	RunID      string        `json:"run_id"`
	Strategy   Strategy      `json:"strategy"`
	Dimension  int           `json:"dimension"`
	Iterations int           `json:"iterations"`
	Depth      int           `json:"depth"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	NsPerOp    float64       `json:"ns_per_op"`
	First      float64       `json:"first"`
	Checksum   float64       `json:"checksum"`
}

// Report collects the results of all strategies of a run.
type Report struct {
	CPU     cpuinfo.Features `json:"cpu"`
	Results []Result         `json:"results"`
}

// Expected returns the value every element of sum holds after iterations
// accumulations.
func Expected(iterations int) float64 {
	return 1 + 3*float64(iterations)
}

// SupportedDimensions lists the sizes accepted by RunDim.
func SupportedDimensions() []int {
	return []int{1, 2, 3, 4, 8, 16, 32, 64, 128, 256, 512, 1024}
}

// RunDim runs the benchmark for a dimension chosen at runtime.
// Only the predeclared vecexpr dimensions are supported.
func RunDim(ctx context.Context, dim int, optFns ...Option) (*Report, error) {
	r, err := runnerFor(dim)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, optFns...)
}

// Evaluate applies strategy s iterations times to the workload of the given
// dimension and returns the resulting sum vector.
func Evaluate(dim int, s Strategy, iterations int) ([]float64, error) {
	if _, err := conv.PositiveInt(iterations, "iterations"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIterations, err)
	}
	r, err := runnerFor(dim)
	if err != nil {
		return nil, err
	}
	return r.evaluate(s, iterations)
}

type dimRunner interface {
	run(ctx context.Context, optFns ...Option) (*Report, error)
	evaluate(s Strategy, iterations int) ([]float64, error)
}

type runner[D vecexpr.Dim] struct{}

func (runner[D]) run(ctx context.Context, optFns ...Option) (*Report, error) {
	return Run[D](ctx, optFns...)
}

func (runner[D]) evaluate(s Strategy, iterations int) ([]float64, error) {
	w := newWorkload[D]()
	step, _, err := w.stepFor(s)
	if err != nil {
		return nil, err
	}
	for range iterations {
		step()
	}
	return w.sum.Values(), nil
}

func runnerFor(dim int) (dimRunner, error) {
	switch dim {
	case 1:
		return runner[vecexpr.D1]{}, nil
	case 2:
		return runner[vecexpr.D2]{}, nil
	case 3:
		return runner[vecexpr.D3]{}, nil
	case 4:
		return runner[vecexpr.D4]{}, nil
	case 8:
		return runner[vecexpr.D8]{}, nil
	case 16:
		return runner[vecexpr.D16]{}, nil
	case 32:
		return runner[vecexpr.D32]{}, nil
	case 64:
		return runner[vecexpr.D64]{}, nil
	case 128:
		return runner[vecexpr.D128]{}, nil
	case 256:
		return runner[vecexpr.D256]{}, nil
	case 512:
		return runner[vecexpr.D512]{}, nil
	case 1024:
		return runner[vecexpr.D1024]{}, nil
	default:
		return nil, vecexpr.NewErrInvalidDimension(dim, ErrUnsupportedDimension)
	}
}

// Run times every configured strategy for dimension D.
// Strategies run one after another on the calling goroutine.
func Run[D vecexpr.Dim](ctx context.Context, optFns ...Option) (*Report, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if _, err := conv.PositiveInt(o.iterations, "iterations"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIterations, err)
	}

	dim := vecexpr.Len[D]()
	logger := o.logger.WithDimension(dim)

	report := &Report{
		CPU:     cpuinfo.Detect(),
		Results: make([]Result, 0, len(o.strategies)),
	}

	for _, s := range o.strategies {
		runID := o.newRunID()
		log := logger.WithRunID(runID)

		res, err := runStrategy[D](ctx, s, &o, log)
		if err != nil {
			o.metricsCollector.RecordRun(string(s), o.iterations, 0, err)
			log.LogRun(ctx, string(s), o.iterations, 0, err)
			return nil, err
		}

		res.RunID = runID
		o.metricsCollector.RecordRun(string(s), res.Iterations, res.Elapsed, nil)
		log.LogRun(ctx, string(s), res.Iterations, res.Elapsed, nil)

		report.Results = append(report.Results, res)
	}

	return report, nil
}

func runStrategy[D vecexpr.Dim](ctx context.Context, s Strategy, o *options, log *vecexpr.Logger) (Result, error) {
	w := newWorkload[D]()

	step, depth, err := w.stepFor(s)
	if err != nil {
		return Result{}, err
	}

	log.LogExpression(ctx, string(s), depth)

	if o.recordEach {
		inner := step
		step = func() {
			start := time.Now()
			inner()
			o.metricsCollector.RecordAccumulate(string(s), w.sum.Len(), time.Since(start))
		}
	}

	start := time.Now()
	for i := range o.iterations {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		step()
	}
	elapsed := time.Since(start)

	return Result{
		Strategy:   s,
		Dimension:  w.sum.Len(),
		Iterations: o.iterations,
		Depth:      depth,
		Elapsed:    elapsed,
		NsPerOp:    float64(elapsed.Nanoseconds()) / float64(o.iterations),
		First:      w.sum.At(0),
		Checksum:   checksum(w.sum),
	}, nil
}

type workload[D vecexpr.Dim] struct {
	sum        *vecexpr.Vector[float64, D]
	a, b, c, d *vecexpr.Vector[float64, D]
}

func newWorkload[D vecexpr.Dim]() *workload[D] {
	return &workload[D]{
		sum: vecexpr.Ones[float64, D](),
		a:   vecexpr.Ones[float64, D](),
		b:   vecexpr.Ones[float64, D](),
		c:   vecexpr.Ones[float64, D](),
		d:   vecexpr.Zeros[float64, D](),
	}
}

// stepFor returns one iteration of strategy s and the depth of its expression.
func (w *workload[D]) stepFor(s Strategy) (func(), int, error) {
	switch s {
	case StrategyEager:
		return w.eager, 3, nil // Sum(Sum(Sum(a, b), c), d)
	case StrategyLazy:
		return w.lazy, vecexpr.Add(w.a.Add(w.b), w.c.Add(w.d)).Depth(), nil
	case StrategyProgram:
		p, err := w.program()
		if err != nil {
			return nil, 0, fmt.Errorf("build program: %w", err)
		}
		return func() { vecexpr.Accumulate(w.sum, p) }, p.Depth(), nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (w *workload[D]) eager() {
	w.sum.AddAssign(vecexpr.Sum(vecexpr.Sum(vecexpr.Sum(w.a, w.b), w.c), w.d))
}

func (w *workload[D]) lazy() {
	vecexpr.Accumulate(w.sum, vecexpr.Add(w.a.Add(w.b), w.c.Add(w.d)))
}

func (w *workload[D]) program() (*vecexpr.Program[float64, D], error) {
	bld := vecexpr.NewBuilder[float64, D](7)

	var leaves [4]vecexpr.Handle
	for i, v := range []*vecexpr.Vector[float64, D]{w.a, w.b, w.c, w.d} {
		h, err := bld.Leaf(v)
		if err != nil {
			return nil, err
		}
		leaves[i] = h
	}

	ab, err := bld.Add(leaves[0], leaves[1])
	if err != nil {
		return nil, err
	}
	cd, err := bld.Add(leaves[2], leaves[3])
	if err != nil {
		return nil, err
	}
	root, err := bld.Add(ab, cd)
	if err != nil {
		return nil, err
	}

	return bld.Program(root)
}

func checksum[D vecexpr.Dim](v *vecexpr.Vector[float64, D]) float64 {
	var total float64
	for i := range v.Len() {
		total += v.At(i)
	}
	return total
}
