package router

import (
	"context"
	"log"
	"strings"
	"time"

	"ai-memoire-be/pkg/llm"
)

// Generation settings for the document path: low temperature, bounded
// output budget.
const (
	generationTemperature = 0.3
	generationMaxTokens   = 1600

	defaultProbeTimeout = 3 * time.Second
)

// Router selects between the remote and the local backend for each
// call. Policy: probe the remote first; on any remote failure or if it
// is unreachable, fall back to the local backend; a local GPU fault is
// retried once in CPU-only mode. Failures never escape as errors; the
// caller always receives a string.
type Router struct {
	remote       llm.LLMProvider
	local        llm.LLMProvider
	logger       *log.Logger
	probeTimeout time.Duration
}

func NewRouter(remote, local llm.LLMProvider, logger *log.Logger) *Router {
	return &Router{
		remote:       remote,
		local:        local,
		logger:       logger,
		probeTimeout: defaultProbeTimeout,
	}
}

// SetProbeTimeout overrides the default reachability probe timeout.
func (r *Router) SetProbeTimeout(d time.Duration) {
	if d > 0 {
		r.probeTimeout = d
	}
}

// RemoteReachable runs the lightweight reachability probe. Providers
// without a probe are assumed reachable and left to fail over on the
// real call.
func (r *Router) RemoteReachable(ctx context.Context) bool {
	if r.remote == nil {
		return false
	}
	probe, ok := r.remote.(llm.ReachabilityProbe)
	if !ok {
		return true
	}

	probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	if err := probe.Ping(probeCtx); err != nil {
		r.logger.Printf("[ROUTER] Remote backend unreachable: %v", err)
		return false
	}
	return true
}

// Generate runs the document-generation path for a synthesized prompt.
func (r *Router) Generate(ctx context.Context, prompt string) string {
	result := r.generate(ctx, prompt,
		llm.WithTemperature(generationTemperature),
		llm.WithMaxTokens(generationMaxTokens),
	)
	if result.IsFailure() {
		return result.Failure.Message()
	}
	return result.Text
}

// Chat runs the casual-conversation path: the session history is
// composed into a single prompt and routed with the same
// remote-first policy.
func (r *Router) Chat(ctx context.Context, history []llm.Message) string {
	result := r.generate(ctx, composeConversation(history))
	if result.IsFailure() {
		return result.Failure.Message()
	}
	return result.Text
}

func (r *Router) generate(ctx context.Context, prompt string, options ...llm.Option) llm.Result {
	if r.RemoteReachable(ctx) {
		text, err := r.remote.Generate(ctx, prompt, options...)
		if err == nil {
			return llm.Completion(text)
		}
		r.logger.Printf("[ROUTER] Remote generation failed, falling back to local: %v", err)
	}
	return r.generateLocal(ctx, prompt, options...)
}

func (r *Router) generateLocal(ctx context.Context, prompt string, options ...llm.Option) llm.Result {
	text, err := r.local.Generate(ctx, prompt, options...)
	if err != nil && isAccelerationFault(err) {
		r.logger.Printf("[ROUTER] Hardware acceleration fault, retrying in CPU mode: %v", err)
		text, err = r.local.Generate(ctx, prompt, append(options, llm.WithCPUOnly())...)
	}
	if err != nil {
		r.logger.Printf("[ROUTER] Local generation failed: %v", err)
		return llm.Failed(llm.FailureLocal, err.Error())
	}
	return llm.Completion(text)
}

// isAccelerationFault recognizes the known GPU/acceleration error
// family that warrants the single CPU-only retry.
func isAccelerationFault(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"cuda", "gpu", "ggml", "rocm", "hip error"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func composeConversation(history []llm.Message) string {
	var prompt strings.Builder
	prompt.WriteString("Tu es un assistant conversationnel francophone, chaleureux et concis.\n")
	prompt.WriteString("Voici la conversation en cours :\n\n")
	for _, msg := range history {
		switch msg.Role {
		case "model", "assistant":
			prompt.WriteString("Assistant : ")
		default:
			prompt.WriteString("Utilisateur : ")
		}
		prompt.WriteString(msg.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("\nRéponds naturellement au dernier message de l'utilisateur.")
	return prompt.String()
}
