// Package agent provides the standard LLM-bound agent: a named backend that
// turns a message into a reply through a model.Model, optionally under a
// system instruction. It is the concrete core.Agent used by LLM agent
// proxies and by router delegation.
package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/logging"
	"github.com/hupe1980/agentrelay/model"
)

// Options configures an Agent instance.
type Options struct {
	// Instruction is the system instruction sent with every model call.
	Instruction string

	// Description summarizes the agent's purpose. Routers include it in
	// candidate listings when classifying messages.
	Description string

	// Logger receives per-call diagnostics. Defaults to logging.NoOpLogger.
	Logger logging.Logger
}

// Agent is a model-backed implementation of core.Agent.
type Agent struct {
	name        string
	llm         model.Model
	instruction string
	description string
	logger      logging.Logger
}

// New creates an agent with sensible defaults: a generic assistant
// instruction derived from the name and no logging.
func New(name string, llm model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Instruction: fmt.Sprintf("You are %s, a helpful AI assistant.", name),
		Description: fmt.Sprintf("Agent %s", name),
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Agent{
		name:        name,
		llm:         llm,
		instruction: opts.Instruction,
		description: opts.Description,
		logger:      opts.Logger,
	}
}

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// Description returns a summary of the agent's purpose.
func (a *Agent) Description() string { return a.description }

// Instruction returns the system instruction sent with every model call.
func (a *Agent) Instruction() string { return a.instruction }

// GenerateFromModel implements core.Agent. It resolves the per-call options
// and issues a single model call. Model errors propagate unchanged.
func (a *Agent) GenerateFromModel(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	opts := core.NewRequestOptions(optFns...)

	a.logger.Debug("model call", "agent", a.name, "model", a.llm.Info().Name)

	return a.llm.GenerateText(ctx, model.Request{
		Instruction: a.instruction,
		Message:     message,
		Options:     opts,
	})
}
