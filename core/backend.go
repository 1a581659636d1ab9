package core

import "context"

// Agent is an LLM-bound backend able to produce a reply directly from its
// underlying model. Both the LLM leaf proxy and the router's post-routing
// delegation call this contract.
type Agent interface {
	Name() string

	// GenerateFromModel forwards the message and all options to the agent's
	// underlying model call.
	GenerateFromModel(ctx context.Context, message string, optFns ...func(o *RequestOptions)) (string, error)
}

// Workflow is a self-contained backend that satisfies generation directly.
// It is opaque to the proxy layer; internally it may run a multi-step
// pipeline of its own.
type Workflow interface {
	Generate(ctx context.Context, message string, optFns ...func(o *RequestOptions)) (string, error)
}

// Router is a backend able to classify a message against a fixed set of
// candidate destinations.
type Router interface {
	// Classify scores candidates for the message and returns results ordered
	// by descending confidence. An empty slice is a normal outcome meaning no
	// candidate fit. Classify does not take per-call request options; routing
	// is option-agnostic while post-routing execution is not.
	Classify(ctx context.Context, message string) ([]RouteResult, error)
}

// RouteResult is one candidate destination produced by a Router's
// classification pass.
type RouteResult struct {
	// Result is the routed target: an Agent for agent destinations, a plain
	// string identifier for non-agent destinations, or any other value a
	// custom router emits.
	Result any

	// Confidence is the router's score for this candidate, higher is better.
	Confidence float64

	// Reasoning explains why the router chose this candidate.
	Reasoning string
}
