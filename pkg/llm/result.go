package llm

import "fmt"

// FailureKind tags which side of the routing policy produced an error.
type FailureKind string

const (
	FailureRemote FailureKind = "remote"
	FailureLocal  FailureKind = "local"
)

// Result is the tagged outcome of a generation call: either a
// completion or a failure. The router converts failures into readable
// text at the boundary so callers always receive a string.
type Result struct {
	Text    string
	Failure *Failure
}

type Failure struct {
	Kind   FailureKind
	Detail string
}

func Completion(text string) Result {
	return Result{Text: text}
}

func Failed(kind FailureKind, detail string) Result {
	return Result{Failure: &Failure{Kind: kind, Detail: detail}}
}

func (r Result) IsFailure() bool {
	return r.Failure != nil
}

// Message renders the failure as the French error text embedded in the
// response payload.
func (f *Failure) Message() string {
	if f.Kind == FailureLocal {
		return fmt.Sprintf("Erreur lors de l'appel à Ollama : %s", f.Detail)
	}
	return fmt.Sprintf("Erreur lors de l'appel au modèle distant : %s", f.Detail)
}
