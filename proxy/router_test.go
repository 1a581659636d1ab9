package proxy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hupe1980/agentrelay/core"
)

func TestRouterProxy_NoRouteFound(t *testing.T) {
	host := &mockHost{}
	backend := &mockRouter{}
	backend.On("Classify", mock.Anything, "hello").Return([]core.RouteResult{}, nil)

	p := NewRouterProxy(host, "router", backend)

	out, err := p.Generate(context.Background(), "hello")

	assert.NoError(t, err)
	assert.Equal(t, "No appropriate route found for the request.", out)
	backend.AssertExpectations(t)
}

func TestRouterProxy_DelegatesToTopAgent(t *testing.T) {
	host := &mockHost{}
	top := newMockAgent("researcher")
	runnerUp := newMockAgent("writer")
	top.On("GenerateFromModel", mock.Anything, "hello", optionCount(1)).Return("agent reply", nil)

	backend := &mockRouter{}
	backend.On("Classify", mock.Anything, "hello").Return([]core.RouteResult{
		{Result: top, Confidence: 0.9, Reasoning: "research question"},
		{Result: runnerUp, Confidence: 0.4, Reasoning: "could summarize"},
	}, nil)

	p := NewRouterProxy(host, "router", backend)

	out, err := p.Generate(context.Background(), "hello", func(o *core.RequestOptions) {
		o.Model = "gpt-4o"
	})

	assert.NoError(t, err)
	assert.Equal(t, "agent reply", out)
	top.AssertExpectations(t)
	runnerUp.AssertNotCalled(t, "GenerateFromModel")
}

func TestRouterProxy_TopAgentErrorPropagatesWithoutRetry(t *testing.T) {
	host := &mockHost{}
	top := newMockAgent("researcher")
	runnerUp := newMockAgent("writer")
	top.On("GenerateFromModel", mock.Anything, "hello", optionCount(0)).Return("", assert.AnError)

	backend := &mockRouter{}
	backend.On("Classify", mock.Anything, "hello").Return([]core.RouteResult{
		{Result: top, Confidence: 0.9},
		{Result: runnerUp, Confidence: 0.8},
	}, nil)

	p := NewRouterProxy(host, "router", backend)

	_, err := p.Generate(context.Background(), "hello")

	// One hop deep only: the second-best candidate is never attempted.
	assert.ErrorIs(t, err, assert.AnError)
	runnerUp.AssertNotCalled(t, "GenerateFromModel")
}

func TestRouterProxy_DestinationTargetUnsupported(t *testing.T) {
	host := &mockHost{}
	backend := &mockRouter{}
	backend.On("Classify", mock.Anything, "hello").Return([]core.RouteResult{
		{Result: "billing-service", Confidence: 0.8, Reasoning: "billing request"},
	}, nil)

	p := NewRouterProxy(host, "router", backend)

	out, err := p.Generate(context.Background(), "hello")

	assert.NoError(t, err)
	assert.Equal(t, "Tool call requested by router - not yet supported", out)
}

func TestRouterProxy_UnknownTargetShapeFallback(t *testing.T) {
	host := &mockHost{}
	backend := &mockRouter{}
	backend.On("Classify", mock.Anything, "hello").Return([]core.RouteResult{
		{Result: 42, Confidence: 0.5, Reasoning: "because"},
	}, nil)

	p := NewRouterProxy(host, "router", backend)

	out, err := p.Generate(context.Background(), "hello")

	assert.NoError(t, err)
	assert.Equal(t, "Routed to: 42 (0.5): because", out)
}

func TestRouterProxy_ClassifyErrorPropagates(t *testing.T) {
	host := &mockHost{}
	backend := &mockRouter{}
	backend.On("Classify", mock.Anything, "hello").Return(nil, assert.AnError)

	p := NewRouterProxy(host, "router", backend)

	_, err := p.Generate(context.Background(), "hello")

	assert.ErrorIs(t, err, assert.AnError)
}
