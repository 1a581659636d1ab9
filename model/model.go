// Package model defines the minimal text-generation interface agents are
// built on, plus a deterministic in-memory implementation for tests and
// examples. Provider adapters live in subpackages (openai, anthropic).
package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentrelay/core"
)

// Request captures the normalized model input produced by agents: a single
// user message, an optional system instruction and the resolved per-call
// options.
type Request struct {
	Instruction string
	Message     string
	Options     core.RequestOptions
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required to drive single-turn text
// generation.
type Model interface {
	GenerateText(ctx context.Context, req Request) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
type MockModel struct {
	info      Info
	responses map[string]string
	err       error
}

// NewMockModel constructs a MockModel identified by name.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input message.
func (m *MockModel) AddResponse(message, response string) { m.responses[message] = response }

// FailWith makes every subsequent GenerateText call return err.
func (m *MockModel) FailWith(err error) { m.err = err }

// GenerateText implements Model. Unknown messages get a stable synthetic
// reply so tests do not need to register every input.
func (m *MockModel) GenerateText(ctx context.Context, req Request) (string, error) {
	if m.err != nil {
		return "", m.err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if response, ok := m.responses[req.Message]; ok {
		return response, nil
	}

	return fmt.Sprintf("Mock response to: %s", req.Message), nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
