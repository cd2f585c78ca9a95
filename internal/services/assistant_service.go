// File: internal/services/assistant_service.go
package services

import (
	"context"
	"strings"
	"time"

	"lifeboard/internal/domain"
	"lifeboard/internal/repository/domains"
	"lifeboard/internal/repository/message"
	"lifeboard/internal/services/ai"
	"lifeboard/internal/services/assistant"
)

// ChatRequest is one round of conversation. The caller supplies the domain
// snapshot and history; the service does not fetch them itself.
type ChatRequest struct {
	Message string
	Domains []domain.Domain
	History []domain.ChatMessage
}

// ProgressUpdate is one applied mutation, carrying the post-clamp value that
// was actually stored.
type ProgressUpdate struct {
	ID       string `json:"id"`
	Progress int    `json:"progress"`
}

// ChatResult is the interpreter's output: the reply text verbatim (marker
// block included, if any) plus the ordered list of applied mutations.
type ChatResult struct {
	Reply           string           `json:"reply"`
	ProgressUpdates []ProgressUpdate `json:"progressUpdates"`
	FailedUpdates   []string         `json:"failedUpdates,omitempty"`
	Fallback        bool             `json:"-"`
}

// AssistantService turns a user message into a reply and a set of domain
// progress mutations. Provider failures degrade to the deterministic fallback
// table; the assistant is never "down" from the caller's perspective.
type AssistantService struct {
	config      *assistant.Config
	provider    ai.CompletionProvider
	domainRepo  domains.DomainRepository
	messageRepo message.MessageRepository
	prompts     *assistant.PromptBuilder
	fallback    *assistant.FallbackTable
	logger      Logger
	now         func() time.Time
}

func NewAssistantService(
	provider ai.CompletionProvider,
	domainRepo domains.DomainRepository,
	messageRepo message.MessageRepository,
	logger Logger,
) (*AssistantService, error) {
	if domainRepo == nil {
		return nil, assistant.NewValidationError("constructor", "domain repository is required")
	}
	if messageRepo == nil {
		return nil, assistant.NewValidationError("constructor", "message repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	config := assistant.DefaultConfig()
	if err := config.Validate(); err != nil {
		return nil, assistant.NewValidationError("config", err.Error())
	}

	// A nil provider is legal: the service then runs fallback-only.
	return &AssistantService{
		config:      config,
		provider:    provider,
		domainRepo:  domainRepo,
		messageRepo: messageRepo,
		prompts:     assistant.NewPromptBuilder(logger),
		fallback:    assistant.NewFallbackTable(logger),
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Respond runs one interpretation cycle: validate, log the user message, call
// the provider (or fall back), extract and apply progress directives, log the
// reply. Only an empty message is a hard error; everything else degrades.
func (s *AssistantService) Respond(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, assistant.NewValidationError("respond", "message is required")
	}

	s.logMessage(ctx, domain.RoleUser, req.Message)

	if s.provider == nil {
		return s.respondFallback(ctx, req), nil
	}

	reply, err := s.provider.CreateCompletion(ctx, ai.CompletionRequest{
		System:    s.prompts.BuildSystemPrompt(req.Domains, s.now()),
		Turns:     s.buildTurns(req),
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		s.logger.Warn("provider call failed, using fallback reply", "error", err.Error())
		return s.respondFallback(ctx, req), nil
	}

	result := &ChatResult{
		Reply:           reply,
		ProgressUpdates: []ProgressUpdate{},
	}
	s.applyDirectives(ctx, reply, result)

	s.logMessage(ctx, domain.RoleAssistant, reply)
	return result, nil
}

func (s *AssistantService) respondFallback(ctx context.Context, req ChatRequest) *ChatResult {
	reply := s.fallback.Reply(req.Message, req.Domains)
	s.logMessage(ctx, domain.RoleAssistant, reply)
	return &ChatResult{
		Reply:           reply,
		ProgressUpdates: []ProgressUpdate{},
		Fallback:        true,
	}
}

// buildTurns windows the history to the newest N messages and appends the
// current user message as the final turn.
func (s *AssistantService) buildTurns(req ChatRequest) []ai.Turn {
	recent := assistant.WindowHistory(req.History, s.config.HistoryWindow)
	turns := make([]ai.Turn, 0, len(recent)+1)
	for _, msg := range recent {
		turns = append(turns, ai.Turn{Role: msg.Role, Content: msg.Content})
	}
	turns = append(turns, ai.Turn{Role: domain.RoleUser, Content: req.Message})
	return turns
}

// applyDirectives extracts the trailing marker block and applies each valid
// directive in array order, so a later directive for the same id wins. Parse
// failures and unknown ids are reported but never fail the response.
func (s *AssistantService) applyDirectives(ctx context.Context, reply string, result *ChatResult) {
	directives, err := assistant.ParseDirectives(reply)
	if err != nil {
		s.logger.Warn("discarding malformed progress directives", "error", err.Error())
		return
	}

	for _, d := range directives {
		stored, err := s.domainRepo.SetProgress(ctx, d.ID, int(d.Progress))
		if err != nil {
			if err == domains.ErrDomainNotFound {
				s.logger.Warn("progress directive for unknown domain", "domain_id", d.ID)
			} else {
				s.logger.Error("failed to persist progress directive", "domain_id", d.ID, "error", err.Error())
				result.FailedUpdates = append(result.FailedUpdates, d.ID)
			}
			continue
		}
		result.ProgressUpdates = append(result.ProgressUpdates, ProgressUpdate{ID: d.ID, Progress: stored})
	}
}

// logMessage appends to chat history. A logging failure must not block the
// response; it is surfaced to the operator and nothing else.
func (s *AssistantService) logMessage(ctx context.Context, role, content string) {
	if _, err := s.messageRepo.Create(ctx, &domain.ChatMessage{Role: role, Content: content}); err != nil {
		s.logger.Error("failed to record chat message", "role", role, "error", err.Error())
	}
}

// RecentHistory returns the newest limit messages in chronological order.
func (s *AssistantService) RecentHistory(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	return s.messageRepo.FindRecent(ctx, limit)
}

// HasProvider reports whether a completion provider is configured.
func (s *AssistantService) HasProvider() bool {
	return s.provider != nil
}
