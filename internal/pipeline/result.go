package pipeline

import "github.com/d-okonkwo/loandocs/internal/assemble"

// OutputFiles names the artifacts a successful run wrote.
type OutputFiles struct {
	JSON     string `json:"json"`
	Markdown string `json:"markdown"`
}

// Result is the run envelope. Exactly one of Results/Files or Error
// is populated: extraction-level misses never surface here, only a
// total run failure does.
type Result struct {
	Success bool                     `json:"success"`
	Results *assemble.DocumentRecord `json:"results,omitempty"`
	Files   *OutputFiles             `json:"files,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

func failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}
