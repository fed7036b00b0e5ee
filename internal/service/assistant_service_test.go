package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync/atomic"
	"testing"

	"ai-memoire-be/internal/constant"
	"ai-memoire-be/internal/dto"
	"ai-memoire-be/internal/repository/memory"
	"ai-memoire-be/pkg/llm"
	"ai-memoire-be/pkg/llm/router"
	"ai-memoire-be/pkg/memoire"
	"ai-memoire-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a canned backend. It carries no reachability probe,
// so the router treats it as reachable and calls it directly.
type fakeProvider struct {
	response string
	err      error
	calls    atomic.Int32
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls.Add(1)
	return f.response, f.err
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls.Add(1)
	return f.response, f.err
}

type recordingPublisher struct {
	events []SectionGeneratedEvent
}

func (p *recordingPublisher) PublishSectionGenerated(event SectionGeneratedEvent) error {
	p.events = append(p.events, event)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type testHarness struct {
	service     IAssistantService
	sessionRepo *memory.SessionRepository
	archiveRepo *memory.ArchiveRepository
	publisher   *recordingPublisher
	backend     *fakeProvider
}

func newTestHarness(backend *fakeProvider) *testHarness {
	sessionRepo := memory.NewSessionRepository()
	archiveRepo := memory.NewArchiveRepository()
	publisher := &recordingPublisher{}
	backendRouter := router.NewRouter(backend, backend, log.New(io.Discard, "", 0))

	return &testHarness{
		service:     NewAssistantService(sessionRepo, archiveRepo, backendRouter, publisher, noopLogger{}),
		sessionRepo: sessionRepo,
		archiveRepo: archiveRepo,
		publisher:   publisher,
		backend:     backend,
	}
}

func TestAsk_GreetingStaysConversational(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "Bonjour ! Comment puis-je aider ?"})

	resp, err := h.service.Ask(context.Background(), &dto.AskRequest{Prompt: "Bonjour", UserID: "user-chat"})
	require.NoError(t, err)

	assert.Equal(t, constant.ChatThemePlaceholder, resp.Theme)
	assert.Equal(t, constant.ChatSectionPlaceholder, resp.Section)
	assert.Equal(t, "Bonjour ! Comment puis-je aider ?", resp.Response)

	history := h.sessionRepo.GetHistory("user-chat")
	require.Len(t, history, 2)
	assert.Equal(t, store.RoleUser, history[0].Role)
	assert.Equal(t, store.RoleModel, history[1].Role)

	_, started := h.sessionRepo.GetWorkflow("user-chat")
	assert.False(t, started, "a chat turn must not start a workflow")
	assert.Empty(t, h.publisher.events)
}

func TestAsk_DocumentStartsWorkflow(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "texte généré"})

	resp, err := h.service.Ask(context.Background(), &dto.AskRequest{
		Prompt: "Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	assert.Equal(t, "Intelligence artificielle", resp.Theme)
	assert.Equal(t, string(memoire.SectionIntroduction), resp.Section)
	assert.Contains(t, resp.Response, "Démarrage de la section")
	assert.Contains(t, resp.Response, "texte généré")
	assert.Contains(t, resp.Response, "Section suivante suggérée : Chapitre 1 — Cadre théorique")

	// the generated text is archived under (theme, section)
	archived, ok := h.archiveRepo.Get("Intelligence artificielle", memoire.SectionIntroduction)
	require.True(t, ok)
	assert.Equal(t, "texte généré", archived)

	// the workflow advanced speculatively to the suggested section
	workflow, started := h.sessionRepo.GetWorkflow("user-doc")
	require.True(t, started)
	assert.Equal(t, "Intelligence artificielle", workflow.Theme)
	assert.Equal(t, memoire.SectionCadreTheorique, workflow.Section)

	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, "user-doc", h.publisher.events[0].UserID)
	assert.Equal(t, string(memoire.SectionIntroduction), h.publisher.events[0].Section)
}

func TestAsk_ContinuesSuggestedSection(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "texte généré"})
	ctx := context.Background()

	_, err := h.service.Ask(ctx, &dto.AskRequest{
		Prompt: "Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	// no explicit theme here: the tracked one must be kept
	resp, err := h.service.Ask(ctx, &dto.AskRequest{
		Prompt: "Continue avec le cadre théorique s'il te plaît",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	assert.Equal(t, "Intelligence artificielle", resp.Theme)
	assert.Equal(t, string(memoire.SectionCadreTheorique), resp.Section)
	assert.Contains(t, resp.Response, "Poursuite de la section")

	workflow, started := h.sessionRepo.GetWorkflow("user-doc")
	require.True(t, started)
	assert.Equal(t, memoire.SectionSyntheseLitterature, workflow.Section)
}

func TestAsk_SwitchesSectionOnSameTheme(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "texte généré"})
	ctx := context.Background()

	_, err := h.service.Ask(ctx, &dto.AskRequest{
		Prompt: "Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	resp, err := h.service.Ask(ctx, &dto.AskRequest{
		Prompt: "Passe à la méthodologie du chapitre 2",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	assert.Equal(t, "Intelligence artificielle", resp.Theme)
	assert.Equal(t, string(memoire.SectionMethodologie), resp.Section)
	assert.Contains(t, resp.Response, "Passage à la section")

	workflow, _ := h.sessionRepo.GetWorkflow("user-doc")
	assert.Equal(t, memoire.SectionResultats, workflow.Section)
}

func TestAsk_NewThemeRestartsWorkflow(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "texte généré"})
	ctx := context.Background()

	_, err := h.service.Ask(ctx, &dto.AskRequest{
		Prompt: "Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	resp, err := h.service.Ask(ctx, &dto.AskRequest{
		Prompt: "Thème : la transition énergétique, rédige l'introduction du mémoire",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	assert.Equal(t, "Transition énergétique", resp.Theme)
	assert.Contains(t, resp.Response, "Démarrage de la section « Introduction »")

	workflow, _ := h.sessionRepo.GetWorkflow("user-doc")
	assert.Equal(t, "Transition énergétique", workflow.Theme)
}

func TestAsk_ConclusionEndsOutline(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "texte de conclusion"})

	resp, err := h.service.Ask(context.Background(), &dto.AskRequest{
		Prompt: "Thème : l'économie circulaire. Écris la conclusion du mémoire",
		UserID: "user-doc",
	})
	require.NoError(t, err)

	assert.Equal(t, string(memoire.SectionConclusion), resp.Section)
	assert.Contains(t, resp.Response, "toutes les sections ont été rédigées")

	// no successor, the workflow stays on the conclusion
	workflow, started := h.sessionRepo.GetWorkflow("user-doc")
	require.True(t, started)
	assert.Equal(t, memoire.SectionConclusion, workflow.Section)
}

func TestAsk_MintsAnonymousUserID(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "texte généré"})

	_, err := h.service.Ask(context.Background(), &dto.AskRequest{
		Prompt: "Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
	})
	require.NoError(t, err)

	require.Len(t, h.publisher.events, 1)
	assert.True(t, strings.HasPrefix(h.publisher.events[0].UserID, "anon-"))
}

func TestAsk_BackendFailureEmbeddedAsText(t *testing.T) {
	h := newTestHarness(&fakeProvider{err: errors.New("panne locale")})

	resp, err := h.service.Ask(context.Background(), &dto.AskRequest{
		Prompt: "Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
		UserID: "user-doc",
	})
	require.NoError(t, err, "backend failures never surface as errors")

	assert.Contains(t, resp.Response, "Erreur lors de l'appel à Ollama")
	assert.Contains(t, resp.Response, "panne locale")
}

func TestAnalyzeNeverCallsBackend(t *testing.T) {
	h := newTestHarness(&fakeProvider{response: "jamais servi"})

	resp := h.service.Analyze(&dto.AnalyzeRequest{
		Prompt: "Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
	})

	assert.Equal(t, "document", resp.Intent)
	assert.Equal(t, "Intelligence artificielle", resp.Theme)
	assert.Equal(t, string(memoire.SectionIntroduction), resp.Section)
	assert.Equal(t, "Introduction", resp.SectionLabel)

	assert.Zero(t, h.backend.calls.Load())
	assert.Empty(t, h.publisher.events)
}

func TestSectionsFollowOutline(t *testing.T) {
	h := newTestHarness(&fakeProvider{})

	sections := h.service.Sections()
	require.Len(t, sections, len(memoire.Order))
	for i, section := range sections {
		assert.Equal(t, string(memoire.Order[i]), section.ID)
		assert.NotEmpty(t, section.Label)
		assert.NotEmpty(t, section.Description)
	}
}

func TestExamples(t *testing.T) {
	h := newTestHarness(&fakeProvider{})
	assert.Equal(t, constant.ExamplePrompts, h.service.Examples())
}

func TestHealth(t *testing.T) {
	h := newTestHarness(&fakeProvider{})

	health := h.service.Health(context.Background())
	assert.Equal(t, "ok", health.Status)
	// the fake backend has no probe, so it is assumed reachable
	assert.True(t, health.RemoteReachable)
}
