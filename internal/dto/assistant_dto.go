package dto

// AskRequest is the single generation endpoint payload. UserID is an
// opaque identifier chosen by the client; when absent one is minted
// per request.
type AskRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	Context string `json:"context,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

type AskResponse struct {
	Theme    string `json:"theme"`
	Section  string `json:"section"`
	Response string `json:"response"`
}

// AnalyzeRequest asks for the classifier verdict only, no generation.
type AnalyzeRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type AnalyzeResponse struct {
	Intent       string `json:"intent"`
	Theme        string `json:"theme"`
	Section      string `json:"section"`
	SectionLabel string `json:"section_label"`
}

type SectionInfoResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	RemoteReachable bool   `json:"remote_reachable"`
}
