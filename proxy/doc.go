// Package proxy implements the concrete endpoint variants behind the uniform
// core.Endpoint contract: a legacy adapter forwarding through the host's
// generic send path, an LLM-bound adapter, a workflow adapter, a router proxy
// selecting the best destination for a message, and a chain proxy composing
// named endpoints into a sequential or cumulative pipeline. A Registry maps
// endpoint names to proxies and is the indirection that lets chains reference
// endpoints registered after the chain itself.
//
// Proxies are created once during application setup and are safe for
// concurrent use afterwards; none of them holds mutable state across calls.
package proxy
