package agentrelay

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentrelay/agent"
	"github.com/hupe1980/agentrelay/core"
	"github.com/hupe1980/agentrelay/model"
)

func TestApp_RegisterHandlerAndInvoke(t *testing.T) {
	app := New()

	_, err := app.RegisterHandler("upper", func(_ context.Context, message string) (string, error) {
		return strings.ToUpper(message), nil
	})
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), "upper", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "HELLO", out)
}

func TestApp_RegisterAgentAndInvoke(t *testing.T) {
	llm := model.NewMockModel("test-model")
	llm.AddResponse("hello", "hi there")

	app := New()

	_, err := app.RegisterAgent(agent.New("assistant", llm))
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), "assistant", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestApp_InvokeUnknownEndpoint(t *testing.T) {
	app := New()

	_, err := app.Invoke(context.Background(), "ghost", "hello")

	assert.ErrorIs(t, err, core.ErrNotRegistered)
}

func TestApp_DuplicateRegistrationRejected(t *testing.T) {
	llm := model.NewMockModel("test-model")
	app := New()

	_, err := app.RegisterAgent(agent.New("assistant", llm))
	require.NoError(t, err)

	_, err = app.RegisterAgent(agent.New("assistant", llm))
	assert.Error(t, err)
}

func TestApp_PromptDefaultsToSuppliedText(t *testing.T) {
	app := New()

	p, err := app.RegisterHandler("upper", func(_ context.Context, message string) (string, error) {
		return strings.ToUpper(message), nil
	})
	require.NoError(t, err)

	out, err := p.Prompt(context.Background(), "fallback text")

	assert.NoError(t, err)
	assert.Equal(t, "fallback text", out)
}

func TestApp_CustomPromptFunc(t *testing.T) {
	app := New(func(o *Options) {
		o.Prompt = func(_ context.Context, endpointName, _ string) (string, error) {
			return "typed for " + endpointName, nil
		}
	})

	p, err := app.RegisterHandler("upper", func(_ context.Context, message string) (string, error) {
		return strings.ToUpper(message), nil
	})
	require.NoError(t, err)

	out, err := p.Invoke(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "typed for upper", out)
}

func TestApp_ChainOverRegisteredEndpoints(t *testing.T) {
	app := New()

	_, err := app.RegisterHandler("upper", func(_ context.Context, message string) (string, error) {
		return strings.ToUpper(message), nil
	})
	require.NoError(t, err)

	_, err = app.RegisterHandler("exclaim", func(_ context.Context, message string) (string, error) {
		return message + "!", nil
	})
	require.NoError(t, err)

	_, err = app.RegisterChain("shout", []string{"upper", "exclaim"})
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), "shout", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "HELLO!", out)
}

func TestApp_ChainRegisteredBeforeItsSteps(t *testing.T) {
	app := New()

	_, err := app.RegisterChain("shout", []string{"upper"})
	require.NoError(t, err)

	_, err = app.RegisterHandler("upper", func(_ context.Context, message string) (string, error) {
		return strings.ToUpper(message), nil
	})
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), "shout", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "HELLO", out)
}

func TestApp_SendWithoutHandler(t *testing.T) {
	app := New()

	_, err := app.Send(context.Background(), "ghost", "hello")

	assert.Error(t, err)
}
