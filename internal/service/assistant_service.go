package service

import (
	"context"
	"fmt"
	"time"

	"ai-memoire-be/internal/constant"
	"ai-memoire-be/internal/dto"
	"ai-memoire-be/internal/pkg/logger"
	"ai-memoire-be/internal/repository/memory"
	"ai-memoire-be/pkg/llm"
	"ai-memoire-be/pkg/llm/router"
	"ai-memoire-be/pkg/memoire"
	"ai-memoire-be/pkg/memoire/classifier"
	"ai-memoire-be/pkg/memoire/prompt"
	"ai-memoire-be/pkg/store"

	"github.com/google/uuid"
)

// IAssistantService defines the dialogue orchestration surface
type IAssistantService interface {
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
	Analyze(request *dto.AnalyzeRequest) *dto.AnalyzeResponse
	Sections() []*dto.SectionInfoResponse
	Examples() []string
	Health(ctx context.Context) *dto.HealthResponse
}

// assistantService is the workflow controller: it ties the lexical
// classifiers, the session store, the prompt builder and the backend
// router into the handling of one user turn.
type assistantService struct {
	sessionRepo   *memory.SessionRepository
	archiveRepo   *memory.ArchiveRepository
	promptBuilder *prompt.Builder
	backendRouter *router.Router
	publisher     IPublisherService
	logger        logger.ILogger
}

func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	archiveRepo *memory.ArchiveRepository,
	backendRouter *router.Router,
	publisher IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessionRepo:   sessionRepo,
		archiveRepo:   archiveRepo,
		promptBuilder: prompt.NewBuilder(archiveRepo),
		backendRouter: backendRouter,
		publisher:     publisher,
		logger:        log,
	}
}

// Ask handles one user turn end to end. It never fails with an error
// on the generation path: backend problems come back as readable text.
func (s *assistantService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	userID := request.UserID
	if userID == "" {
		userID = "anon-" + uuid.NewString()
	}

	intent := classifier.ClassifyIntent(request.Prompt)
	s.logger.Info("assistant", "Message classified", map[string]interface{}{
		"user_id": userID,
		"intent":  string(intent),
	})

	if intent == classifier.IntentChat {
		return s.handleChat(ctx, userID, request.Prompt), nil
	}
	return s.handleDocument(ctx, userID, request), nil
}

// handleChat appends the turn to the bounded history and routes the
// whole conversation to whichever backend is reachable.
func (s *assistantService) handleChat(ctx context.Context, userID, message string) *dto.AskResponse {
	s.sessionRepo.Append(userID, store.RoleUser, message)

	history := s.sessionRepo.GetHistory(userID)
	messages := make([]llm.Message, len(history))
	for i, entry := range history {
		messages[i] = llm.Message{Role: entry.Role, Content: entry.Content}
	}

	answer := s.backendRouter.Chat(ctx, messages)
	s.sessionRepo.Append(userID, store.RoleModel, answer)

	return &dto.AskResponse{
		Theme:    constant.ChatThemePlaceholder,
		Section:  constant.ChatSectionPlaceholder,
		Response: answer,
	}
}

// handleDocument runs the document state machine for one turn:
// reconcile theme and section against the stored workflow, generate,
// archive, then advance speculatively to the next section.
func (s *assistantService) handleDocument(ctx context.Context, userID string, request *dto.AskRequest) *dto.AskResponse {
	theme := classifier.ExtractTheme(request.Prompt)
	section := classifier.DetectSection(request.Prompt)

	workflow, started := s.sessionRepo.GetWorkflow(userID)

	// A fallback token theme is a weak guess: it only starts a
	// workflow, it never replaces a tracked one.
	if started && !classifier.HasExplicitTheme(request.Prompt) {
		theme = workflow.Theme
	}

	var current memoire.SectionID
	var notice string
	switch {
	case !started || workflow.Theme != theme:
		current = section
		s.sessionRepo.SetWorkflow(userID, theme, current)
		notice = fmt.Sprintf("📝 Démarrage de la section « %s ».", memoire.Label(current))
	case section != workflow.Section:
		current = section
		s.sessionRepo.SetWorkflow(userID, theme, current)
		notice = fmt.Sprintf("🔀 Passage à la section « %s ».", memoire.Label(current))
	default:
		current = workflow.Section
		notice = fmt.Sprintf("Poursuite de la section « %s ».", memoire.Label(current))
	}

	generationPrompt := s.promptBuilder.Build(theme, current, request.Context)
	output := s.backendRouter.Generate(ctx, generationPrompt)

	s.archiveRepo.Save(theme, current, output)
	if err := s.publisher.PublishSectionGenerated(SectionGeneratedEvent{
		UserID:      userID,
		Theme:       theme,
		Section:     string(current),
		GeneratedAt: time.Now(),
	}); err != nil {
		s.logger.Warn("assistant", "Failed to publish generation event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Speculative advance: the next free-form message about the
	// suggested section lands on the "continuing" branch instead of
	// requiring a confirmation command.
	var banner string
	if next, ok := memoire.Next(current); ok {
		s.sessionRepo.SetWorkflow(userID, theme, next)
		banner = fmt.Sprintf("➡️ Section suivante suggérée : %s.", memoire.Label(next))
	} else {
		banner = "✅ Le plan du mémoire est entièrement couvert : toutes les sections ont été rédigées."
	}

	return &dto.AskResponse{
		Theme:    theme,
		Section:  string(current),
		Response: fmt.Sprintf("%s\n\n%s\n\n%s", notice, output, banner),
	}
}

// Analyze exposes the classifier verdict without any generation call.
func (s *assistantService) Analyze(request *dto.AnalyzeRequest) *dto.AnalyzeResponse {
	intent := classifier.ClassifyIntent(request.Prompt)
	section := classifier.DetectSection(request.Prompt)

	return &dto.AnalyzeResponse{
		Intent:       string(intent),
		Theme:        classifier.ExtractTheme(request.Prompt),
		Section:      string(section),
		SectionLabel: memoire.Label(section),
	}
}

func (s *assistantService) Sections() []*dto.SectionInfoResponse {
	sections := make([]*dto.SectionInfoResponse, 0, len(memoire.Order))
	for _, id := range memoire.Order {
		sections = append(sections, &dto.SectionInfoResponse{
			ID:          string(id),
			Label:       memoire.Label(id),
			Description: memoire.Description(id),
		})
	}
	return sections
}

func (s *assistantService) Examples() []string {
	return constant.ExamplePrompts
}

func (s *assistantService) Health(ctx context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{
		Status:          "ok",
		RemoteReachable: s.backendRouter.RemoteReachable(ctx),
	}
}
