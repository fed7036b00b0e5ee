package ollama

import (
	"ai-memoire-be/pkg/llm"
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OllamaProvider is the local backend, speaking the Ollama
// /api/generate protocol. Responses stream as JSON lines whose
// fragments are concatenated in arrival order; malformed lines are
// skipped, not fatal.
type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Stream    bool
	Client    *http.Client
}

// Ensure OllamaProvider implements LLMProvider
var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Stream:    true,
		Client: &http.Client{
			// Ollama can be slow on first request due to model loading
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type generateRequest struct {
	Model   string           `json:"model"`
	Prompt  string           `json:"prompt"`
	Stream  bool             `json:"stream"`
	Options *generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
	NumGPU      *int    `json:"num_gpu,omitempty"`
}

type generateFragment struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// --- Interface Implementation ---

func (o *OllamaProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	model := o.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: o.Stream,
		Options: &generateOptions{
			Temperature: options.Temperature,
		},
	}
	if options.MaxTokens > 0 {
		reqPayload.Options.NumPredict = options.MaxTokens
	}
	if options.CPUOnly {
		zero := 0
		reqPayload.Options.NumGPU = &zero
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := o.BaseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	if !o.Stream {
		return o.readSingle(resp.Body)
	}
	return o.readStream(resp.Body)
}

// readSingle parses the non-streaming shape: one JSON object carrying
// the whole completion.
func (o *OllamaProvider) readSingle(body io.Reader) (string, error) {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	var fragment generateFragment
	if err := json.Unmarshal(bodyBytes, &fragment); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if fragment.Error != "" {
		return "", fmt.Errorf("ollama error: %s", fragment.Error)
	}
	return strings.TrimSpace(fragment.Response), nil
}

// readStream accumulates the JSON-lines streaming shape. Fragments are
// concatenated in arrival order; lines that fail to parse are skipped.
func (o *OllamaProvider) readStream(body io.Reader) (string, error) {
	var completion strings.Builder

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var fragment generateFragment
		if err := json.Unmarshal(line, &fragment); err != nil {
			continue // malformed fragment, keep accumulating
		}
		if fragment.Error != "" {
			return "", fmt.Errorf("ollama error: %s", fragment.Error)
		}
		completion.WriteString(fragment.Response)
		if fragment.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}

	return strings.TrimSpace(completion.String()), nil
}

// Chat flattens the history into a single prompt: /api/generate is the
// native local operation and the caller composes conversations anyway.
func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	var prompt strings.Builder
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
	prompt.WriteString("Assistant :")
	return o.Generate(ctx, prompt.String(), opts...)
}
