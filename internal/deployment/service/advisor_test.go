package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/llm"
)

// fakeCompleter replays scripted replies in order and records every call.
type fakeCompleter struct {
	mu      sync.Mutex
	replies []fakeReply
	calls   []llm.CompletionRequest
}

type fakeReply struct {
	text string
	err  error
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, req)
	if len(f.replies) == 0 {
		return nil, errors.New("no scripted reply")
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	if r.err != nil {
		return nil, r.err
	}
	return &llm.Completion{Text: r.text, StopReason: "end_turn"}, nil
}

func fooRequest() domain.DeploymentRequest {
	req := domain.NewDeploymentRequest()
	req.ServiceName = "foo"
	req.Environment = "dev"
	return req
}

func TestDeploymentAdvisor_Validate(t *testing.T) {
	reply := `{"valid": true, "issues": [], "suggestions": ["use 1 replica in dev"], "warnings": []}`
	ai := &fakeCompleter{replies: []fakeReply{{text: reply}}}
	advisor := NewDeploymentAdvisor(ai, Options{})

	out, err := advisor.Validate(context.Background(), fooRequest())
	require.NoError(t, err)

	assert.Equal(t, reply, out.Raw)
	require.NotNil(t, out.Result)
	assert.True(t, out.Result.Valid)
	assert.Equal(t, []string{"use 1 replica in dev"}, out.Result.Suggestions)

	require.Len(t, ai.calls, 1)
	assert.Equal(t, DefaultValidateMaxTokens, ai.calls[0].MaxTokens)
	assert.Contains(t, ai.calls[0].Prompt, `"service_name": "foo"`)
}

func TestDeploymentAdvisor_Validate_MalformedReplyPassesThrough(t *testing.T) {
	ai := &fakeCompleter{replies: []fakeReply{{text: "Looks fine to me!"}}}
	advisor := NewDeploymentAdvisor(ai, Options{})

	out, err := advisor.Validate(context.Background(), fooRequest())
	require.NoError(t, err)
	assert.Equal(t, "Looks fine to me!", out.Raw)
	assert.Nil(t, out.Result)
}

func TestDeploymentAdvisor_Validate_FencedReplyKeptVerbatim(t *testing.T) {
	reply := "```json\n{\"valid\": false, \"issues\": [\"x\"], \"suggestions\": [], \"warnings\": []}\n```"
	ai := &fakeCompleter{replies: []fakeReply{{text: reply}}}
	advisor := NewDeploymentAdvisor(ai, Options{})

	out, err := advisor.Validate(context.Background(), fooRequest())
	require.NoError(t, err)
	assert.Equal(t, reply, out.Raw)
	require.NotNil(t, out.Result)
	assert.False(t, out.Result.Valid)
}

func TestDeploymentAdvisor_Validate_ProviderFailure(t *testing.T) {
	outage := &llm.APIError{StatusCode: 529, Type: "overloaded_error", Message: "overloaded"}
	ai := &fakeCompleter{replies: []fakeReply{{err: outage}}}
	advisor := NewDeploymentAdvisor(ai, Options{})

	_, err := advisor.Validate(context.Background(), fooRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)

	var apiErr *llm.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestDeploymentAdvisor_Validate_RecoversAfterOutage(t *testing.T) {
	ai := &fakeCompleter{replies: []fakeReply{
		{err: errors.New("connection refused")},
		{text: `{"valid": true, "issues": [], "suggestions": [], "warnings": []}`},
	}}
	advisor := NewDeploymentAdvisor(ai, Options{})

	_, err := advisor.Validate(context.Background(), fooRequest())
	require.Error(t, err)

	out, err := advisor.Validate(context.Background(), fooRequest())
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	assert.True(t, out.Result.Valid)

	require.Len(t, ai.calls, 2)
	assert.Equal(t, ai.calls[0], ai.calls[1])
}

func TestDeploymentAdvisor_GenerateConfig(t *testing.T) {
	reply := "```yaml\napiVersion: apps/v1\nkind: Deployment\n---\napiVersion: v1\nkind: Service\n```\n"
	ai := &fakeCompleter{replies: []fakeReply{{text: reply}}}
	advisor := NewDeploymentAdvisor(ai, Options{GenerateMaxTokens: 4096})

	out, err := advisor.GenerateConfig(context.Background(), fooRequest())
	require.NoError(t, err)

	assert.Equal(t, "apiVersion: apps/v1\nkind: Deployment\n---\napiVersion: v1\nkind: Service", out.YAML)
	assert.Empty(t, out.Warnings)

	require.Len(t, ai.calls, 1)
	assert.Equal(t, 4096, ai.calls[0].MaxTokens)
	assert.Contains(t, ai.calls[0].Prompt, "For production environment, add pod anti-affinity")
}

func TestDeploymentAdvisor_GenerateConfig_ChecksManifests(t *testing.T) {
	ai := &fakeCompleter{replies: []fakeReply{{text: "I cannot produce YAML today."}}}
	advisor := NewDeploymentAdvisor(ai, Options{CheckManifests: true})

	out, err := advisor.GenerateConfig(context.Background(), fooRequest())
	require.NoError(t, err)

	assert.Equal(t, "I cannot produce YAML today.", out.YAML)
	assert.Contains(t, out.Warnings, "no Deployment document found")
}

func TestDeploymentAdvisor_GenerateConfig_ProviderFailure(t *testing.T) {
	ai := &fakeCompleter{replies: []fakeReply{{err: llm.ErrEmptyCompletion}}}
	advisor := NewDeploymentAdvisor(ai, Options{})

	_, err := advisor.GenerateConfig(context.Background(), fooRequest())
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
}
