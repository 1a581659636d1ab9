package proxy

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/logging"
)

// BaseProxyOptions configures the shared proxy behavior.
type BaseProxyOptions struct {
	// Logger receives per-call diagnostics. Defaults to logging.NoOpLogger.
	Logger logging.Logger
}

// BaseProxy bundles the operations every endpoint variant shares: Invoke's
// delegation to Prompt or Send, Send's delegation to Generate, and Prompt's
// call into the host application. Embed it in concrete proxies and supply a
// Generate method; the embedding proxy must call bind so that Send reaches
// the concrete Generate instead of the base one.
//
// BaseProxy's own Generate fails with core.ErrNotImplemented. A proxy
// constructed without a concrete generation strategy must fail loudly rather
// than silently no-op.
type BaseProxy struct {
	host   core.Host
	name   string
	self   core.Endpoint
	logger logging.Logger
}

// NewBaseProxy constructs the shared proxy state for the given host and
// endpoint name.
func NewBaseProxy(host core.Host, name string, optFns ...func(o *BaseProxyOptions)) BaseProxy {
	opts := BaseProxyOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return BaseProxy{
		host:   host,
		name:   name,
		logger: opts.Logger,
	}
}

// bind records the concrete proxy so that Send and Invoke dispatch to its
// Generate. Called by every constructor in this package.
func (b *BaseProxy) bind(self core.Endpoint) { b.self = self }

// Name returns the endpoint's registry key.
func (b *BaseProxy) Name() string { return b.name }

// Logger returns the logger attached to this proxy.
func (b *BaseProxy) Logger() logging.Logger { return b.logger }

// Invoke sends an optional message to the endpoint. Without a message it
// falls back to Prompt with an empty default; otherwise it behaves exactly
// like Send.
func (b *BaseProxy) Invoke(ctx context.Context, message ...string) (string, error) {
	if len(message) == 0 {
		return b.Prompt(ctx, "")
	}
	return b.Send(ctx, message[0])
}

// Send delegates to the concrete variant's Generate.
func (b *BaseProxy) Send(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	return b.generator().Generate(ctx, message, optFns...)
}

// Prompt asks the host application for an interactively supplied message for
// this endpoint name, falling back to defaultText.
func (b *BaseProxy) Prompt(ctx context.Context, defaultText string) (string, error) {
	return b.host.Prompt(ctx, b.name, defaultText)
}

// Generate fails with core.ErrNotImplemented. Concrete variants shadow this
// with their own forwarding strategy.
func (b *BaseProxy) Generate(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	return "", fmt.Errorf("endpoint %q: %w", b.name, core.ErrNotImplemented)
}

// generator returns the bound concrete endpoint, or the base itself when no
// concrete variant was bound, in which case Generate fails loudly.
func (b *BaseProxy) generator() core.Endpoint {
	if b.self != nil {
		return b.self
	}
	return b
}
