// Package agentrelay provides a uniform dispatch surface over heterogeneous
// conversational endpoints. Plain agents, LLM-bound agents, self-contained
// workflows, intent routers and sequential chains are all reachable through
// one contract (core.Endpoint), so callers send a message to a name without
// knowing which concrete kind answers it. Most applications interact with
// this package by:
//  1. Creating an App via New() (optionally supplying a logger and an
//     interactive prompt function)
//  2. Registering endpoints (RegisterHandler, RegisterAgent,
//     RegisterWorkflow, RegisterRouter, RegisterChain)
//  3. Invoking endpoints by name (Invoke)
//
// The App owns the endpoint registry and implements the host contract that
// proxies call back into for generic sends and interactive prompt fallback.
package agentrelay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/logging"
	"github.com/hupe1980/agentrelay/proxy"
)

// HandlerFunc is a generic per-name send handler registered with the host.
// Legacy endpoints forward their messages here.
type HandlerFunc func(ctx context.Context, message string) (string, error)

// PromptFunc supplies an interactively provided message for an endpoint,
// falling back to defaultText. The default implementation returns
// defaultText unchanged; interactive hosts plug in their own input
// mechanism.
type PromptFunc func(ctx context.Context, endpointName, defaultText string) (string, error)

// Options configures the App instance.
type Options struct {
	// Logger receives invocation diagnostics. Defaults to logging.NoOpLogger.
	Logger logging.Logger

	// Prompt supplies interactive input for Prompt calls. Defaults to
	// returning the supplied default text.
	Prompt PromptFunc
}

// App is the host application façade. It owns the endpoint registry,
// dispatches generic sends to registered handlers and supplies the
// interactive prompt fallback. It implements core.Host.
type App struct {
	mu       sync.RWMutex
	registry *proxy.Registry
	handlers map[string]HandlerFunc
	logger   logging.Logger
	prompt   PromptFunc
}

// New creates an App with an empty registry.
func New(optFns ...func(o *Options)) *App {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Prompt: func(_ context.Context, _, defaultText string) (string, error) {
			return defaultText, nil
		},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &App{
		registry: proxy.NewRegistry(),
		handlers: make(map[string]HandlerFunc),
		logger:   opts.Logger,
		prompt:   opts.Prompt,
	}
}

// Registry returns the endpoint registry. Chains constructed outside the
// App's registration helpers resolve their step names through it.
func (a *App) Registry() *proxy.Registry { return a.registry }

// Send implements core.Host by dispatching to the handler registered under
// endpointName.
func (a *App) Send(ctx context.Context, endpointName, message string) (string, error) {
	a.mu.RLock()
	handler, ok := a.handlers[endpointName]
	a.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("no handler for endpoint %q", endpointName)
	}

	return handler(ctx, message)
}

// Prompt implements core.Host via the configured prompt function.
func (a *App) Prompt(ctx context.Context, endpointName, defaultText string) (string, error) {
	return a.prompt(ctx, endpointName, defaultText)
}

// RegisterHandler registers a generic handler and a legacy endpoint of the
// same name forwarding to it.
func (a *App) RegisterHandler(name string, fn HandlerFunc) (*proxy.AgentProxy, error) {
	a.mu.Lock()
	a.handlers[name] = fn
	a.mu.Unlock()

	p := proxy.NewAgentProxy(a, name, a.proxyOptions)
	if err := a.registry.Register(p); err != nil {
		return nil, err
	}

	return p, nil
}

// RegisterAgent registers an LLM-bound endpoint forwarding to the given
// agent, under the agent's own name.
func (a *App) RegisterAgent(agent core.Agent) (*proxy.LLMAgentProxy, error) {
	p := proxy.NewLLMAgentProxy(a, agent.Name(), agent, a.proxyOptions)
	if err := a.registry.Register(p); err != nil {
		return nil, err
	}

	return p, nil
}

// RegisterWorkflow registers an endpoint forwarding to the given workflow.
func (a *App) RegisterWorkflow(name string, workflow core.Workflow) (*proxy.WorkflowProxy, error) {
	p := proxy.NewWorkflowProxy(a, name, workflow, a.proxyOptions)
	if err := a.registry.Register(p); err != nil {
		return nil, err
	}

	return p, nil
}

// RegisterRouter registers an endpoint that classifies messages through the
// given routing backend and delegates to the best destination.
func (a *App) RegisterRouter(name string, backend core.Router) (*proxy.RouterProxy, error) {
	p := proxy.NewRouterProxy(a, name, backend, a.proxyOptions)
	if err := a.registry.Register(p); err != nil {
		return nil, err
	}

	return p, nil
}

// RegisterChain registers a chain over the given endpoint names. The names
// need not be registered yet; they must resolve when the chain runs.
func (a *App) RegisterChain(name string, sequence []string, optFns ...func(o *proxy.ChainProxyOptions)) (*proxy.ChainProxy, error) {
	optFns = append([]func(o *proxy.ChainProxyOptions){func(o *proxy.ChainProxyOptions) {
		o.Logger = a.logger
	}}, optFns...)

	p := proxy.NewChainProxy(a, name, sequence, a.registry, optFns...)
	if err := a.registry.Register(p); err != nil {
		return nil, err
	}

	return p, nil
}

// Endpoint resolves a registered endpoint by name.
func (a *App) Endpoint(name string) (core.Endpoint, error) {
	return a.registry.Resolve(name)
}

// Invoke resolves the named endpoint and sends the message to it. Every
// invocation is tagged with a fresh id and logged with its outcome and
// duration.
func (a *App) Invoke(ctx context.Context, name, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	e, err := a.registry.Resolve(name)
	if err != nil {
		return "", err
	}

	invocationID := uuid.NewString()
	start := time.Now()

	a.logger.Debug("invocation started", "invocation_id", invocationID, "endpoint", name)

	response, err := e.Send(ctx, message, optFns...)
	if err != nil {
		a.logger.Error("invocation failed", "invocation_id", invocationID, "endpoint", name, "duration", time.Since(start), "error", err)
		return "", err
	}

	a.logger.Info("invocation completed", "invocation_id", invocationID, "endpoint", name, "duration", time.Since(start))

	return response, nil
}

// proxyOptions propagates the App logger into proxy construction.
func (a *App) proxyOptions(o *proxy.BaseProxyOptions) {
	o.Logger = a.logger
}
