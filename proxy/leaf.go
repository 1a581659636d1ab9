package proxy

import (
	"context"

	"github.com/hupe1980/agentrelay/core"
)

// AgentProxy is the legacy leaf adapter. It forwards only the message string
// through the host application's generic per-name send path. Call-time
// options are intentionally discarded: callers written against the old
// generic contract get silently ignored options, not an error. This is a
// documented backward-compatibility behavior, not a bug.
type AgentProxy struct {
	BaseProxy
}

// NewAgentProxy creates a legacy adapter for the given endpoint name. The
// host must have a generic handler registered under the same name.
func NewAgentProxy(host core.Host, name string, optFns ...func(o *BaseProxyOptions)) *AgentProxy {
	p := &AgentProxy{BaseProxy: NewBaseProxy(host, name, optFns...)}
	p.bind(p)
	return p
}

// Generate forwards the message to the host's generic send operation,
// dropping any options. Backend errors propagate unchanged.
func (p *AgentProxy) Generate(ctx context.Context, message string, _ ...func(o *core.RequestOptions)) (string, error) {
	return p.host.Send(ctx, p.name, message)
}

// LLMAgentProxy forwards to an LLM-bound agent's underlying model call.
type LLMAgentProxy struct {
	BaseProxy
	agent core.Agent
}

// NewLLMAgentProxy creates a proxy forwarding to the given agent.
func NewLLMAgentProxy(host core.Host, name string, agent core.Agent, optFns ...func(o *BaseProxyOptions)) *LLMAgentProxy {
	p := &LLMAgentProxy{
		BaseProxy: NewBaseProxy(host, name, optFns...),
		agent:     agent,
	}
	p.bind(p)
	return p
}

// Agent returns the wrapped agent backend.
func (p *LLMAgentProxy) Agent() core.Agent { return p.agent }

// Generate forwards the message and all options verbatim to the agent's
// model call. Backend errors propagate unchanged.
func (p *LLMAgentProxy) Generate(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	return p.agent.GenerateFromModel(ctx, message, optFns...)
}

// WorkflowProxy forwards to a self-contained workflow object. The workflow
// is opaque to this layer; it may run a whole multi-step pipeline internally
// as long as it accepts a message plus options and returns a string.
type WorkflowProxy struct {
	BaseProxy
	workflow core.Workflow
}

// NewWorkflowProxy creates a proxy forwarding to the given workflow.
func NewWorkflowProxy(host core.Host, name string, workflow core.Workflow, optFns ...func(o *BaseProxyOptions)) *WorkflowProxy {
	p := &WorkflowProxy{
		BaseProxy: NewBaseProxy(host, name, optFns...),
		workflow:  workflow,
	}
	p.bind(p)
	return p
}

// Generate forwards the message and all options verbatim to the workflow.
// Backend errors propagate unchanged.
func (p *WorkflowProxy) Generate(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	return p.workflow.Generate(ctx, message, optFns...)
}
