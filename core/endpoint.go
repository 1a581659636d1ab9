package core

import "context"

// RequestOptions carries per-call generation parameters forwarded to a
// backend. The zero value means "use the backend's defaults". Pointer fields
// distinguish "not set" from an explicit zero.
type RequestOptions struct {
	// Model overrides the backend's configured model identifier.
	Model string
	// Temperature overrides the sampling temperature.
	Temperature *float64
	// MaxTokens caps the completion length.
	MaxTokens *int64
	// Metadata carries opaque key/value pairs for backends that accept them.
	Metadata map[string]any
}

// NewRequestOptions applies the given functional options to a zero
// RequestOptions and returns the result.
func NewRequestOptions(optFns ...func(o *RequestOptions)) RequestOptions {
	opts := RequestOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Endpoint is the uniform dispatch contract satisfied by every proxy.
//
// Callers send a message to an endpoint without knowing whether it is backed
// by a single agent, a workflow, a router, or a whole chain of other
// endpoints. All operations are synchronous from the caller's perspective and
// block on the underlying backend; pass a cancellable context to bound calls.
//
// Invoke with no message delegates to Prompt; Send delegates to Generate.
// Generate is the kind-specific forwarding operation each variant supplies.
type Endpoint interface {
	// Name returns the endpoint's registry key.
	Name() string

	// Invoke sends an optional message. Without a message it falls back to
	// Prompt with an empty default.
	Invoke(ctx context.Context, message ...string) (string, error)

	// Send delegates to Generate with the given message and options.
	Send(ctx context.Context, message string, optFns ...func(o *RequestOptions)) (string, error)

	// Prompt asks the host application for an interactively supplied message
	// for this endpoint, falling back to defaultText.
	Prompt(ctx context.Context, defaultText string) (string, error)

	// Generate produces a reply for the message using the endpoint's concrete
	// forwarding strategy.
	Generate(ctx context.Context, message string, optFns ...func(o *RequestOptions)) (string, error)
}

// Host is the contract the embedding application provides to proxies. It
// owns the interactive-input mechanism and the generic per-name send path
// used by legacy endpoints.
type Host interface {
	// Send dispatches a message to the host's generic handler registered
	// under endpointName.
	Send(ctx context.Context, endpointName, message string) (string, error)

	// Prompt obtains an interactively supplied message for endpointName,
	// returning defaultText when no interactive input is available.
	Prompt(ctx context.Context, endpointName, defaultText string) (string, error)
}
