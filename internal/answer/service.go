package answer

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks archive-ai/internal/answer LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_context_builder.go -package=mocks archive-ai/internal/answer ContextBuilder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks -mock_names=Service=MockAnswerService archive-ai/internal/answer Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"archive-ai/internal/contextutil"
	"archive-ai/internal/llm"
	"archive-ai/internal/retrieval"
)

const answerSystemPrompt = `You are an assistant answering questions about a transcript archive of recorded talks. Answer using only the context passages provided below. Quote or paraphrase the speaker faithfully. If the context does not contain enough information to answer, say so plainly instead of guessing. Mention which talk a point comes from when it helps the reader.`

const (
	// AbstainReasonNoContent is set when retrieval found nothing relevant.
	AbstainReasonNoContent = "no_relevant_content"

	answerMaxTokens   = 1024
	answerTemperature = 0.2
)

// LLMClient is an interface for the chat completion backend.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// ChatWithMessages sends a structured message list and returns the reply text.
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// ContextBuilder assembles retrieval context for a question.
type ContextBuilder interface {
	// BuildContext runs retrieval for the query and returns the assembled context.
	BuildContext(ctx context.Context, query string) (retrieval.ContextResult, error)
}

// AskRequest represents a question in the domain layer.
type AskRequest struct {
	Question string `validate:"required"`
}

// AskResponse represents an answer in the domain layer.
type AskResponse struct {
	Answer    string
	Sources   []retrieval.SourceCitation
	Scope     string
	Abstained bool
	Reason    string
}

// Service answers questions grounded in the transcript archive.
type Service interface {
	// Ask retrieves context for the question and generates a grounded answer.
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}

type service struct {
	builder   ContextBuilder
	llmClient LLMClient
	logger    *slog.Logger
}

// NewService creates a new answer Service.
func NewService(builder ContextBuilder, llmClient LLMClient) Service {
	return &service{
		builder:   builder,
		llmClient: llmClient,
		logger:    slog.Default(),
	}
}

// Ask processes a question end to end.
func (s *service) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question := strings.TrimSpace(req.Question)
	if question == "" {
		logger.WarnContext(ctx, "empty question in ask request")
		return AskResponse{}, &ValidationError{
			Field:   "question",
			Message: "cannot be empty",
		}
	}

	result, err := s.builder.BuildContext(ctx, question)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build retrieval context", "error", err)
		return AskResponse{}, WrapError(err, "failed to build retrieval context")
	}

	if result.NoContent {
		logger.InfoContext(ctx, "no relevant content for question", "question_length", len(question))
		return AskResponse{
			Answer:    "I could not find anything in the archive relevant to that question.",
			Scope:     string(result.Scope),
			Abstained: true,
			Reason:    AbstainReasonNoContent,
		}, nil
	}

	messages := []llm.Message{
		{Role: "system", Content: answerSystemPrompt},
		{Role: "user", Content: result.Context + "\n\nQuestion: " + question},
	}
	reply, err := s.llmClient.ChatWithMessages(ctx, messages, llm.ChatParams{
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return AskResponse{}, fmt.Errorf("%w: failed to get LLM response: %w", ErrExternalService, err)
	}

	logger.InfoContext(ctx, "question answered",
		"question_length", len(question),
		"reply_length", len(reply),
		"scope", result.Scope,
		"sources", len(result.Sources))
	return AskResponse{
		Answer:  reply,
		Sources: result.Sources,
		Scope:   string(result.Scope),
	}, nil
}
