package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"resume-analyzer/internal/config"
)

// maxCompletionTokens bounds the evaluation response size.
const maxCompletionTokens = 2000

// ChatClient is the hosted chat-completion model behind the analysis step.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
	Model() string
}

type openAIService struct {
	client     *openai.Client
	deployment string
}

// NewOpenAIService builds a client for an Azure OpenAI deployment.
func NewOpenAIService(cfg config.OpenAIConfig) (ChatClient, error) {
	if cfg.APIKey == "" || cfg.Endpoint == "" {
		return nil, fmt.Errorf("azure openai credentials not configured")
	}

	clientConfig := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	clientConfig.APIVersion = cfg.APIVersion

	return &openAIService{
		client:     openai.NewClientWithConfig(clientConfig),
		deployment: cfg.DeploymentName,
	}, nil
}

func (s *openAIService) Model() string { return s.deployment }

// Complete implements ChatClient.
func (s *openAIService) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxCompletionTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
