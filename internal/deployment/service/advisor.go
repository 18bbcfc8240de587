package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/manifest"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/prompt"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/llm"
)

const (
	opValidate = "validate"
	opGenerate = "generate_config"

	DefaultValidateMaxTokens = 1024
	DefaultGenerateMaxTokens = 2048
)

// Completer is the slice of the AI provider the advisor needs.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error)
}

type Options struct {
	ValidateMaxTokens int
	GenerateMaxTokens int
	// CheckManifests enables inspection of generated bundles.
	CheckManifests bool
}

// DeploymentAdvisor turns deployment requests into AI calls. It keeps no
// state between calls.
type DeploymentAdvisor struct {
	ai   Completer
	opts Options
}

func NewDeploymentAdvisor(ai Completer, opts Options) *DeploymentAdvisor {
	if opts.ValidateMaxTokens <= 0 {
		opts.ValidateMaxTokens = DefaultValidateMaxTokens
	}
	if opts.GenerateMaxTokens <= 0 {
		opts.GenerateMaxTokens = DefaultGenerateMaxTokens
	}
	return &DeploymentAdvisor{ai: ai, opts: opts}
}

// Validate asks the model to review req and returns its reply untouched.
func (s *DeploymentAdvisor) Validate(ctx context.Context, req domain.DeploymentRequest) (*domain.ValidationReply, error) {
	logger := NewLogger(ctx)

	text, err := s.complete(ctx, opValidate, prompt.KindValidate, req, s.opts.ValidateMaxTokens)
	if err != nil {
		return nil, err
	}

	reply := &domain.ValidationReply{Raw: text}
	var result domain.ValidationResult
	if err := json.Unmarshal([]byte(manifest.StripCodeFences(text)), &result); err != nil {
		recordMalformedReply(opValidate)
		logger.LogWarn(opValidate, "validation reply is not the requested JSON", "error", err)
	} else {
		reply.Result = &result
	}
	return reply, nil
}

// GenerateConfig asks the model for a Deployment and a Service and strips
// markdown fences from the answer.
func (s *DeploymentAdvisor) GenerateConfig(ctx context.Context, req domain.DeploymentRequest) (*domain.ManifestBundle, error) {
	logger := NewLogger(ctx)

	text, err := s.complete(ctx, opGenerate, prompt.KindGenerateConfig, req, s.opts.GenerateMaxTokens)
	if err != nil {
		return nil, err
	}

	bundle := &domain.ManifestBundle{YAML: manifest.StripCodeFences(text)}
	if s.opts.CheckManifests {
		bundle.Warnings = manifest.Inspect(bundle.YAML, req)
		if len(bundle.Warnings) > 0 {
			recordMalformedReply(opGenerate)
			logger.LogWarn(opGenerate, "generated manifests deviate from the request", "warnings", bundle.Warnings)
		}
	}
	return bundle, nil
}

func (s *DeploymentAdvisor) complete(ctx context.Context, op string, kind prompt.Kind, req domain.DeploymentRequest, maxTokens int) (string, error) {
	logger := NewLogger(ctx)

	text, err := prompt.Render(kind, req)
	if err != nil {
		return "", fmt.Errorf("render %s prompt: %w", kind, err)
	}

	start := time.Now()
	out, err := s.ai.Complete(ctx, llm.CompletionRequest{Prompt: text, MaxTokens: maxTokens})
	duration := time.Since(start)
	recordAICall(op, duration, err)
	if err != nil {
		logger.LogError(op, err, "duration", duration)
		return "", fmt.Errorf("%w: %w", domain.ErrProviderFailure, err)
	}

	recordTokens(op, out.Usage.InputTokens, out.Usage.OutputTokens)
	logger.LogInfo(op, "ai call completed",
		"duration", duration,
		"stop_reason", out.StopReason,
		"input_tokens", out.Usage.InputTokens,
		"output_tokens", out.Usage.OutputTokens,
	)
	return out.Text, nil
}
