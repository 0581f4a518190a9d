package compose

import (
	"context"
	"fmt"
	"runtime/debug"

	"goa.design/clue/log"

	"mixin-generator/internal/capability"
	"mixin-generator/internal/common"
	"mixin-generator/internal/decl"
	"mixin-generator/internal/diagnostic"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
)

// Processor runs rounds.
type Processor struct {
	registry *capability.Registry
	renderer gen.Renderer
	sink     gen.Sink
	strategy Strategy
	contract model.TypeID
}

// Option configures a Processor.
type Option func(*Processor)

// WithStrategy sets the strategy used for per-target work.
func WithStrategy(s Strategy) Option {
	return func(p *Processor) {
		if s != nil {
			p.strategy = s
		}
	}
}

// WithContractMarker sets the marker recognizing contract interfaces.
func WithContractMarker(id model.TypeID) Option {
	return func(p *Processor) {
		if !id.IsZero() {
			p.contract = id
		}
	}
}

// NewProcessor creates a Processor. It runs targets sequentially and
// recognizes contracts by the default contract marker unless configured
// otherwise.
func NewProcessor(registry *capability.Registry, renderer gen.Renderer, sink gen.Sink, opts ...Option) *Processor {
	p := &Processor{
		registry: registry,
		renderer: renderer,
		sink:     sink,
		strategy: Sequential{},
		contract: capability.DefaultMarkers().Contract,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process runs one round. Failures never escape: they are reported as error
// diagnostics in the returned report.
func (p *Processor) Process(ctx context.Context, round *Round) (report *Report) {
	report = &Report{RoundID: round.ID}

	if round.Over || round.Table == nil || !boundMarkers(round.Table, round.ActiveMarkers) {
		return report
	}

	log.Info(ctx, log.KV{K: "msg", V: "round started"}, roundKV(round),
		log.KV{K: "markers", V: len(round.ActiveMarkers)})

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("round panicked: %v", r)
			log.Error(ctx, err, roundKV(round))
			report.Diagnostics.AddFailure(diagnostic.CodeRoundFailed, err, "", string(debug.Stack()))
		}
	}()

	refl := decl.NewReflection(round.Table)

	found, err := p.discover(ctx, round, refl)
	if err != nil {
		log.Error(ctx, err, roundKV(round))
		report.Diagnostics.AddFailure(diagnostic.CodeRoundFailed, err, "", string(debug.Stack()))

		return report
	}

	report.Diagnostics.Merge(found.diagnostics)

	groups := groupByTarget(found.components, found.failed)
	outcomes := make([]targetOutcome, len(groups))

	runErr := p.strategy.Run(ctx, len(groups), func(ctx context.Context, i int) {
		outcomes[i] = p.safeProcessTarget(ctx, round, refl, groups[i])
	})

	for i, o := range outcomes {
		if o.result.Outcome == OutcomePending {
			o.result = TargetResult{Target: groups[i].target, Outcome: OutcomeSkipped, Reason: "canceled"}
		}

		report.Results = append(report.Results, o.result)
		report.Diagnostics.Merge(o.diagnostics)
	}

	for _, target := range found.failed {
		report.Results = append(report.Results, TargetResult{
			Target:  target,
			Outcome: OutcomeFailed,
			Reason:  "generator failed",
		})
	}

	if runErr != nil {
		log.Warn(ctx, log.KV{K: "msg", V: "round interrupted"}, roundKV(round), log.KV{K: "err", V: runErr.Error()})
	}

	log.Info(ctx, log.KV{K: "msg", V: "round finished"}, roundKV(round),
		log.KV{K: "emitted", V: report.Count(OutcomeEmitted)},
		log.KV{K: "skipped", V: report.Count(OutcomeSkipped)},
		log.KV{K: "failed", V: report.Count(OutcomeFailed)})

	return report
}

// targetOutcome is the result slot of one target.
type targetOutcome struct {
	result      TargetResult
	diagnostics diagnostic.Diagnostics
}

func (p *Processor) safeProcessTarget(ctx context.Context, round *Round, refl *decl.Reflection, g group) (out targetOutcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("processing %s: %v", g.target, r)
			log.Error(ctx, err, roundKV(round), log.KV{K: "target", V: g.target.String()})

			out = targetOutcome{result: TargetResult{Target: g.target, Outcome: OutcomeFailed, Reason: err.Error()}}
			out.diagnostics.AddFailure(diagnostic.CodeTargetFailed, err, g.target.String(), string(debug.Stack()))
		}
	}()

	return p.processTarget(ctx, round, refl, g)
}

// processTarget selects the contract of a target, assembles the mixin and
// emits it.
func (p *Processor) processTarget(ctx context.Context, round *Round, refl *decl.Reflection, g group) targetOutcome {
	out := targetOutcome{result: TargetResult{Target: g.target}}

	fail := func(code string, err error) targetOutcome {
		log.Error(ctx, err, roundKV(round), log.KV{K: "target", V: g.target.String()})
		out.result.Outcome = OutcomeFailed
		out.result.Reason = err.Error()
		out.diagnostics.AddFailure(code, err, g.target.String(), string(debug.Stack()))

		return out
	}

	target, ok := refl.Type(g.target)
	if !ok {
		return fail(diagnostic.CodeTargetFailed, fmt.Errorf("unknown target %s", g.target))
	}

	m, n := p.assemble(refl, target, g.components)
	if m == nil {
		out.result.Outcome = OutcomeSkipped
		out.result.Reason = fmt.Sprintf("%d contract interfaces", n)
		log.Debug(ctx, log.KV{K: "msg", V: "target skipped"}, roundKV(round),
			log.KV{K: "target", V: g.target.String()}, log.KV{K: "contracts", V: n})

		return out
	}

	src, err := gen.RenderMixin(p.renderer, m)
	if err != nil {
		return fail(diagnostic.CodeTargetFailed, fmt.Errorf("rendering %s: %w", m.QualifiedName(), err))
	}

	if err := gen.Emit(p.sink, m.QualifiedName(), target.ID(), []byte(src)); err != nil {
		return fail(diagnostic.CodeEmitFailed, err)
	}

	log.Info(ctx, log.KV{K: "msg", V: "artifact emitted"}, roundKV(round),
		log.KV{K: "target", V: g.target.String()}, log.KV{K: "artifact", V: m.QualifiedName()})

	out.result.Outcome = OutcomeEmitted
	out.result.Artifact = m.QualifiedName()

	return out
}

// assemble builds the mixin of target. It returns nil and the number of
// contract interfaces found unless there is exactly one.
func (p *Processor) assemble(refl *decl.Reflection, target *decl.TypeDeclaration, components []gen.Component) (*gen.Mixin, int) {
	contracts := p.contracts(refl, target)
	if !common.IsSingle(contracts) {
		return nil, len(contracts)
	}

	contract := contracts[0]

	m := &gen.Mixin{
		Package:        target.Package(),
		Name:           artifactName(contract),
		Target:         target.ID(),
		Contract:       contract,
		TypeParameters: target.TypeParameters().Select(contractParamNames(contract)),
		SuperMixins:    p.superMixins(refl, target),
		Components:     components,
	}
	m.Imports = gen.ComputeImports(m.Package, m.References())

	return m, 1
}
