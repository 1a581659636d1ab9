package proxy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hupe1980/agentrelay/core"
)

// mockHost implements core.Host for testing proxy forwarding.
type mockHost struct {
	mock.Mock
}

func (m *mockHost) Send(ctx context.Context, endpointName, message string) (string, error) {
	args := m.Called(ctx, endpointName, message)
	return args.String(0), args.Error(1)
}

func (m *mockHost) Prompt(ctx context.Context, endpointName, defaultText string) (string, error) {
	args := m.Called(ctx, endpointName, defaultText)
	return args.String(0), args.Error(1)
}

// mockAgent implements core.Agent.
type mockAgent struct {
	mock.Mock
	name string
}

func newMockAgent(name string) *mockAgent {
	return &mockAgent{name: name}
}

func (m *mockAgent) Name() string { return m.name }

func (m *mockAgent) GenerateFromModel(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	args := m.Called(ctx, message, optFns)
	return args.String(0), args.Error(1)
}

// mockWorkflow implements core.Workflow.
type mockWorkflow struct {
	mock.Mock
}

func (m *mockWorkflow) Generate(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	args := m.Called(ctx, message, optFns)
	return args.String(0), args.Error(1)
}

// mockRouter implements core.Router.
type mockRouter struct {
	mock.Mock
}

func (m *mockRouter) Classify(ctx context.Context, message string) ([]core.RouteResult, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.RouteResult), args.Error(1)
}

// stubCall records a single Generate invocation on a stubEndpoint.
type stubCall struct {
	message     string
	optionCount int
}

// stubEndpoint is a scripted core.Endpoint for chain tests. It records every
// Generate call and optionally appends its name to a shared execution log so
// tests can assert cross-endpoint ordering.
type stubEndpoint struct {
	name   string
	output string
	err    error
	calls  []stubCall
	log    *[]string
}

func (s *stubEndpoint) Name() string { return s.name }

func (s *stubEndpoint) Invoke(ctx context.Context, message ...string) (string, error) {
	if len(message) == 0 {
		return s.Prompt(ctx, "")
	}
	return s.Send(ctx, message[0])
}

func (s *stubEndpoint) Send(ctx context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	return s.Generate(ctx, message, optFns...)
}

func (s *stubEndpoint) Prompt(_ context.Context, defaultText string) (string, error) {
	return defaultText, nil
}

func (s *stubEndpoint) Generate(_ context.Context, message string, optFns ...func(o *core.RequestOptions)) (string, error) {
	s.calls = append(s.calls, stubCall{message: message, optionCount: len(optFns)})
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}
