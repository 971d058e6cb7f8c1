package answer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"archive-ai/internal/answer"
	"archive-ai/internal/answer/mocks"
	"archive-ai/internal/llm"
	"archive-ai/internal/retrieval"

	"go.uber.org/mock/gomock"
)

func init() {
	// Suppress service logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := answer.NewService(mocks.NewMockContextBuilder(ctrl), mocks.NewMockLLMClient(ctrl))
	if svc == nil {
		t.Fatal("NewService() returned nil")
	}
}

func TestServiceAsk(t *testing.T) {
	contextResult := retrieval.ContextResult{
		Context: "--- Context from transcript archive ---\n\npassage text\n\n--- End Context ---",
		Sources: []retrieval.SourceCitation{
			{TranscriptID: "t1", Title: "Grace and Law", Speaker: "J. Smith"},
		},
		Scope: retrieval.ScopeNarrow,
	}

	tests := []struct {
		name          string
		req           answer.AskRequest
		mockSetup     func(builder *mocks.MockContextBuilder, client *mocks.MockLLMClient)
		wantErr       bool
		wantAnswer    string
		wantAbstained bool
		wantReason    string
		wantSources   int
		checkErrType  func(error) bool
	}{
		{
			name: "successful answer",
			req:  answer.AskRequest{Question: "what does the speaker say about grace?"},
			mockSetup: func(builder *mocks.MockContextBuilder, client *mocks.MockLLMClient) {
				builder.EXPECT().
					BuildContext(gomock.Any(), "what does the speaker say about grace?").
					Return(contextResult, nil)
				client.EXPECT().
					ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, messages []llm.Message, _ llm.ChatParams) (string, error) {
						if len(messages) != 2 {
							t.Fatalf("got %d messages, want 2", len(messages))
						}
						if messages[0].Role != "system" {
							t.Errorf("first message role = %q, want system", messages[0].Role)
						}
						if !strings.Contains(messages[1].Content, "passage text") {
							t.Error("user message missing retrieval context")
						}
						if !strings.Contains(messages[1].Content, "what does the speaker say about grace?") {
							t.Error("user message missing the question")
						}
						return "The speaker describes grace as unearned.", nil
					})
			},
			wantAnswer:  "The speaker describes grace as unearned.",
			wantSources: 1,
		},
		{
			name: "question is trimmed before retrieval",
			req:  answer.AskRequest{Question: "  what about law?  "},
			mockSetup: func(builder *mocks.MockContextBuilder, client *mocks.MockLLMClient) {
				builder.EXPECT().
					BuildContext(gomock.Any(), "what about law?").
					Return(contextResult, nil)
				client.EXPECT().
					ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("reply", nil)
			},
			wantAnswer:  "reply",
			wantSources: 1,
		},
		{
			name:      "empty question",
			req:       answer.AskRequest{Question: "   "},
			mockSetup: func(builder *mocks.MockContextBuilder, client *mocks.MockLLMClient) {},
			wantErr:   true,
			checkErrType: func(err error) bool {
				var validationErr *answer.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "question"
			},
		},
		{
			name: "no relevant content abstains without calling the LLM",
			req:  answer.AskRequest{Question: "what about quantum chromodynamics?"},
			mockSetup: func(builder *mocks.MockContextBuilder, client *mocks.MockLLMClient) {
				builder.EXPECT().
					BuildContext(gomock.Any(), gomock.Any()).
					Return(retrieval.ContextResult{Scope: retrieval.ScopeMedium, NoContent: true}, nil)
			},
			wantAbstained: true,
			wantReason:    answer.AbstainReasonNoContent,
		},
		{
			name: "retrieval failure",
			req:  answer.AskRequest{Question: "anything"},
			mockSetup: func(builder *mocks.MockContextBuilder, client *mocks.MockLLMClient) {
				builder.EXPECT().
					BuildContext(gomock.Any(), gomock.Any()).
					Return(retrieval.ContextResult{}, errors.New("vector store unavailable"))
			},
			wantErr: true,
		},
		{
			name: "LLM failure",
			req:  answer.AskRequest{Question: "anything"},
			mockSetup: func(builder *mocks.MockContextBuilder, client *mocks.MockLLMClient) {
				builder.EXPECT().
					BuildContext(gomock.Any(), gomock.Any()).
					Return(contextResult, nil)
				client.EXPECT().
					ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("model overloaded"))
			},
			wantErr: true,
			checkErrType: func(err error) bool {
				return errors.Is(err, answer.ErrExternalService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			builder := mocks.NewMockContextBuilder(ctrl)
			client := mocks.NewMockLLMClient(ctrl)
			tt.mockSetup(builder, client)

			svc := answer.NewService(builder, client)
			resp, err := svc.Ask(context.Background(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Ask() expected error, got nil")
				}
				if tt.checkErrType != nil && !tt.checkErrType(err) {
					t.Errorf("Ask() error type mismatch: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Ask() error = %v", err)
			}
			if tt.wantAbstained {
				if !resp.Abstained {
					t.Fatal("expected abstained response")
				}
				if resp.Reason != tt.wantReason {
					t.Errorf("reason = %q, want %q", resp.Reason, tt.wantReason)
				}
				if resp.Answer == "" {
					t.Error("abstained response should still carry a user-facing answer")
				}
				return
			}
			if resp.Answer != tt.wantAnswer {
				t.Errorf("answer = %q, want %q", resp.Answer, tt.wantAnswer)
			}
			if len(resp.Sources) != tt.wantSources {
				t.Errorf("sources = %d, want %d", len(resp.Sources), tt.wantSources)
			}
			if resp.Scope != string(retrieval.ScopeNarrow) {
				t.Errorf("scope = %q, want narrow", resp.Scope)
			}
		})
	}
}
