// Package core defines the contracts shared by every package in AgentRelay:
// the Endpoint interface that all proxies satisfy, the per-call RequestOptions
// forwarded to backends, the Host contract supplied by the embedding
// application, and the backend contracts (Agent, Workflow, Router) that the
// concrete proxies forward to. It intentionally contains no implementations
// beyond small value types so that implementation packages never import each
// other, only core.
package core
