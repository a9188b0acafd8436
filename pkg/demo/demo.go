package demo

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/wildfunctions/exprfold/pkg/expr"
	"github.com/wildfunctions/exprfold/pkg/gen"
)

// Runner builds expression trees, runs the transforms over them, and
// collects per-tree reports.
type Runner struct {
	cfg     Config
	profile gen.Profile
	rng     *rand.Rand
	log     *zap.Logger
}

// New creates a runner from the given config.
func New(cfg Config) (*Runner, error) {
	p, err := gen.Get(cfg.Profile)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	log := zap.NewNop()
	if cfg.Verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}

	return &Runner{
		cfg:     cfg,
		profile: p,
		rng:     rand.New(rand.NewSource(seed)),
		log:     log,
	}, nil
}

// Scenarios runs the three classic demonstration trees: a quotient of
// opposite literals, a fully foldable abs/sqrt tree, and the same tree
// with an unbound variable blocking the fold.
func (r *Runner) Scenarios() (FinalReport, error) {
	trees, err := scenarioTrees()
	if err != nil {
		return FinalReport{}, err
	}
	return r.run(trees), nil
}

// Random generates Count random trees from the configured profile and
// reports on each.
func (r *Runner) Random() FinalReport {
	trees := make([]expr.Expr, r.cfg.Count)
	for i := range trees {
		trees[i] = r.profile.RandomTree(r.rng, r.cfg.MaxDepth)
	}
	return r.run(trees)
}

func (r *Runner) run(trees []expr.Expr) FinalReport {
	reports := make([]Report, 0, len(trees))
	for _, tree := range trees {
		reports = append(reports, r.report(tree))
	}
	return FinalReport{Config: r.cfg, Reports: reports}
}

func (r *Runner) report(tree expr.Expr) Report {
	folded := expr.Fold(tree)
	_, fullyFolded := folded.(*expr.Literal)

	rep := Report{
		Input:       tree.String(),
		Value:       formatValue(tree.Evaluate()),
		Folded:      folded.String(),
		FoldedValue: formatValue(folded.Evaluate()),
		NodesBefore: tree.NodeCount(),
		NodesAfter:  folded.NodeCount(),
		FullyFolded: fullyFolded,
	}

	r.log.Info("folded expression",
		zap.String("input", rep.Input),
		zap.String("folded", rep.Folded),
		zap.Int("nodes_before", rep.NodesBefore),
		zap.Int("nodes_after", rep.NodesAfter),
		zap.Bool("fully_folded", rep.FullyFolded),
	)
	return rep
}

// scenarioTrees builds the original driver's expressions.
func scenarioTrees() ([]expr.Expr, error) {
	quotient, err := expr.NewBinaryOp(expr.NewLiteral(1.234), expr.OpDiv, expr.NewLiteral(-1.234))
	if err != nil {
		return nil, err
	}

	foldable, err := absMulSqrt(expr.NewLiteral(2))
	if err != nil {
		return nil, err
	}

	blocked, err := absMulSqrt(expr.NewVariable("var"))
	if err != nil {
		return nil, err
	}

	return []expr.Expr{quotient, foldable, blocked}, nil
}

// absMulSqrt builds abs(leaf * sqrt(32-16)).
func absMulSqrt(leaf expr.Expr) (expr.Expr, error) {
	sub, err := expr.NewBinaryOp(expr.NewLiteral(32), expr.OpSub, expr.NewLiteral(16))
	if err != nil {
		return nil, err
	}
	sqrt, err := expr.NewCall("sqrt", sub)
	if err != nil {
		return nil, err
	}
	mul, err := expr.NewBinaryOp(leaf, expr.OpMul, sqrt)
	if err != nil {
		return nil, err
	}
	return expr.NewCall("abs", mul)
}
