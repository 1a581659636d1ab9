package proxy

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/agentrelay/core"
)

// ChainProxyOptions configures a ChainProxy. Both flags are fixed at
// construction and never changed afterwards.
type ChainProxyOptions struct {
	BaseProxyOptions

	// ContinueWithFinal is reserved for host-level continuation with the
	// chain's final endpoint after the chain completes. Generate itself does
	// not interpret it.
	ContinueWithFinal bool

	// Cumulative selects the transcript-building composition mode instead of
	// the default strict pipeline.
	Cumulative bool
}

// ChainProxy composes an ordered sequence of endpoint names into a single
// conceptual endpoint. Names are resolved through the registry lazily at
// call time, so a chain may be constructed before the endpoints it names are
// registered.
//
// Two composition modes exist. Sequential (the default) is a strict
// pipeline: each stage receives only its immediate predecessor's output.
// Cumulative grows a tagged transcript of every stage's output and feeds
// later stages the whole transcript, for pipelines where a stage needs all
// earlier reasoning rather than just the latest conclusion.
type ChainProxy struct {
	BaseProxy
	sequence          []string
	registry          *Registry
	continueWithFinal bool
	cumulative        bool
}

// NewChainProxy creates a chain over the given endpoint names. The sequence
// may name endpoints not yet registered; they must resolve by the time
// Generate runs. ContinueWithFinal defaults to true and Cumulative to false.
func NewChainProxy(host core.Host, name string, sequence []string, registry *Registry, optFns ...func(o *ChainProxyOptions)) *ChainProxy {
	opts := ChainProxyOptions{
		ContinueWithFinal: true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	p := &ChainProxy{
		BaseProxy: NewBaseProxy(host, name, func(o *BaseProxyOptions) {
			if opts.Logger != nil {
				o.Logger = opts.Logger
			}
		}),
		sequence:          append([]string(nil), sequence...),
		registry:          registry,
		continueWithFinal: opts.ContinueWithFinal,
		cumulative:        opts.Cumulative,
	}
	p.bind(p)

	return p
}

// Sequence returns a copy of the configured endpoint names.
func (p *ChainProxy) Sequence() []string {
	return append([]string(nil), p.sequence...)
}

// ContinueWithFinal reports whether the host should keep interacting with
// the chain's final endpoint after the chain completes.
func (p *ChainProxy) ContinueWithFinal() bool { return p.continueWithFinal }

// Cumulative reports whether the chain runs in cumulative transcript mode.
func (p *ChainProxy) Cumulative() bool { return p.cumulative }

// Generate runs the chain. An empty sequence is an identity pass-through.
// The first step always receives the original message together with the full
// call-time options, so a chain's entry point behaves exactly like a plain
// single-endpoint call; later steps never receive the options. A failure
// from any step aborts the chain immediately with that step's error; prior
// steps' backend side effects are not rolled back.
func (p *ChainProxy) Generate(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	if len(p.sequence) == 0 {
		return message, nil
	}

	firstName := p.sequence[0]

	first, err := p.registry.Resolve(firstName)
	if err != nil {
		return "", err
	}

	p.logger.Debug("chain step", "chain", p.name, "step", firstName, "position", 0)

	firstResponse, err := first.Generate(ctx, message, optFns...)
	if err != nil {
		return "", err
	}

	if len(p.sequence) == 1 {
		return firstResponse, nil
	}

	if p.cumulative {
		return p.generateCumulative(ctx, firstName, firstResponse)
	}

	return p.generateSequential(ctx, firstResponse)
}

// generateSequential feeds each remaining step only its predecessor's raw
// output and returns the final step's output.
func (p *ChainProxy) generateSequential(ctx context.Context, firstResponse string) (string, error) {
	current := firstResponse

	for i, stepName := range p.sequence[1:] {
		step, err := p.registry.Resolve(stepName)
		if err != nil {
			return "", err
		}

		p.logger.Debug("chain step", "chain", p.name, "step", stepName, "position", i+1)

		current, err = step.Generate(ctx, current)
		if err != nil {
			return "", err
		}
	}

	return current, nil
}

// generateCumulative feeds each remaining step the entire transcript built
// so far and returns the full transcript, so the caller receives the whole
// annotated history rather than just the last step's answer.
func (p *ChainProxy) generateCumulative(ctx context.Context, firstName, firstResponse string) (string, error) {
	var transcript strings.Builder
	transcript.WriteString(taggedBlock(firstName, firstResponse))

	for i, stepName := range p.sequence[1:] {
		step, err := p.registry.Resolve(stepName)
		if err != nil {
			return "", err
		}

		p.logger.Debug("chain step", "chain", p.name, "step", stepName, "position", i+1)

		response, err := step.Generate(ctx, transcript.String())
		if err != nil {
			return "", err
		}

		transcript.WriteString("\n\n")
		transcript.WriteString(taggedBlock(stepName, response))
	}

	return transcript.String(), nil
}

// taggedBlock wraps a step's output in a paired tag named after the step.
func taggedBlock(name, response string) string {
	return fmt.Sprintf("<%s>\n%s\n</%s>", name, response, name)
}
