package proxy

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrelay/core"
)

// Router outcome strings. Unroutable messages are normal results rather than
// errors; callers detect "nothing happened" by reading the text.
const (
	// NoRouteFoundMessage is returned when classification yields no candidates.
	NoRouteFoundMessage = "No appropriate route found for the request."

	// ToolRouteUnsupportedMessage is returned when the top candidate is a
	// plain destination identifier rather than an agent. Calling such
	// destinations directly is a capability this layer does not have yet.
	ToolRouteUnsupportedMessage = "Tool call requested by router - not yet supported"
)

// RouterProxy wraps a routing backend that scores candidate destinations
// against a message and delegates to the best one. It never returns an error
// for an unroutable message; every routing outcome is representable as a
// successful string result.
type RouterProxy struct {
	BaseProxy
	backend core.Router
}

// NewRouterProxy creates a proxy around the given routing backend.
func NewRouterProxy(host core.Host, name string, backend core.Router, optFns ...func(o *BaseProxyOptions)) *RouterProxy {
	p := &RouterProxy{
		BaseProxy: NewBaseProxy(host, name, optFns...),
		backend:   backend,
	}
	p.bind(p)
	return p
}

// Generate classifies the message and forwards to the highest-confidence
// target. Only the post-routing delegation call receives the call-time
// options; the classification call itself is option-agnostic.
//
// Outcomes:
//   - no candidates: NoRouteFoundMessage
//   - agent target: the agent's model reply, one hop, no retry with the
//     second-best candidate on failure
//   - plain destination identifier: ToolRouteUnsupportedMessage
//   - any other target shape: a descriptive fallback string
func (p *RouterProxy) Generate(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	results, err := p.backend.Classify(ctx, message)
	if err != nil {
		return "", err
	}

	if len(results) == 0 {
		p.logger.Debug("no route found", "endpoint", p.name)
		return NoRouteFoundMessage, nil
	}

	top := results[0]

	switch target := top.Result.(type) {
	case core.Agent:
		p.logger.Debug("routing to agent", "endpoint", p.name, "agent", target.Name(), "confidence", top.Confidence)
		return target.GenerateFromModel(ctx, message, optFns...)
	case string:
		p.logger.Debug("route targets non-agent destination", "endpoint", p.name, "destination", target)
		return ToolRouteUnsupportedMessage, nil
	default:
		return fmt.Sprintf("Routed to: %v (%v): %s", top.Result, top.Confidence, top.Reasoning), nil
	}
}
