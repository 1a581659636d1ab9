// Package router provides routing backends implementing core.Router. The
// LLMRouter asks a model to pick the best candidate agent for a message and
// returns the choice as a confidence-ordered result list.
package router

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/logging"
	"github.com/hupe1980/agentrelay/model"
)

const classifyInstruction = `You are a router that assigns requests to the single best suited agent.
Reply with one line per plausible agent, best first, in the exact form:
name|confidence|reasoning
where confidence is a number between 0 and 1. Reply with NONE if no agent fits.`

// Candidate is one destination an LLMRouter can route to. Exactly one of
// Agent or Destination is set; destinations name non-agent targets such as
// external services.
type Candidate struct {
	Agent       core.Agent
	Destination string
	Description string
}

// LLMRouterOptions configures an LLMRouter.
type LLMRouterOptions struct {
	// Logger receives classification diagnostics. Defaults to logging.NoOpLogger.
	Logger logging.Logger
}

// LLMRouter implements core.Router by asking a model to score the configured
// candidates against the incoming message.
type LLMRouter struct {
	llm        model.Model
	candidates []Candidate
	logger     logging.Logger
}

// NewLLMRouter creates a router over the given candidates.
func NewLLMRouter(llm model.Model, candidates []Candidate, optFns ...func(o *LLMRouterOptions)) *LLMRouter {
	opts := LLMRouterOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &LLMRouter{
		llm:        llm,
		candidates: candidates,
		logger:     opts.Logger,
	}
}

// Classify implements core.Router. It lists the candidates to the model,
// parses the scored reply and returns results ordered by descending
// confidence. Lines the model emits for unknown candidates are dropped; a
// NONE or unparseable reply yields an empty result list, which the proxy
// layer reports as a no-route outcome rather than an error.
func (r *LLMRouter) Classify(ctx context.Context, message string) ([]core.RouteResult, error) {
	reply, err := r.llm.GenerateText(ctx, model.Request{
		Instruction: r.instruction(),
		Message:     message,
	})
	if err != nil {
		return nil, err
	}

	results := r.parseReply(reply)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	r.logger.Debug("classification completed", "candidates", len(r.candidates), "results", len(results))

	return results, nil
}

// instruction renders the classification system prompt including the
// candidate listing.
func (r *LLMRouter) instruction() string {
	var sb strings.Builder
	sb.WriteString(classifyInstruction)
	sb.WriteString("\n\nAgents:\n")

	for _, c := range r.candidates {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", candidateName(c), c.Description))
	}

	return sb.String()
}

func (r *LLMRouter) parseReply(reply string) []core.RouteResult {
	var results []core.RouteResult

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "NONE") {
			continue
		}

		fields := strings.SplitN(line, "|", 3)
		if len(fields) < 2 {
			continue
		}

		confidence, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			continue
		}

		reasoning := ""
		if len(fields) == 3 {
			reasoning = strings.TrimSpace(fields[2])
		}

		target, ok := r.lookup(strings.TrimSpace(fields[0]))
		if !ok {
			continue
		}

		results = append(results, core.RouteResult{
			Result:     target,
			Confidence: confidence,
			Reasoning:  reasoning,
		})
	}

	return results
}

// lookup maps a candidate name from the model reply back to its routed
// target: the agent itself, or the plain destination identifier.
func (r *LLMRouter) lookup(name string) (any, bool) {
	for _, c := range r.candidates {
		if candidateName(c) == name {
			if c.Agent != nil {
				return c.Agent, true
			}
			return c.Destination, true
		}
	}
	return nil, false
}

func candidateName(c Candidate) string {
	if c.Agent != nil {
		return c.Agent.Name()
	}
	return c.Destination
}
