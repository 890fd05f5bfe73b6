package output

import (
	"encoding/json"
	"io"

	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// JSONFormatter formats trending results as JSON.
type JSONFormatter struct {
	Limit  int
	Pretty bool
}

// jsonOutput wraps the result with the requested window for JSON output.
type jsonOutput struct {
	Window string `json:"window"`
	*model.TrendingResult
}

// Format outputs the trending result as a single JSON document.
func (f *JSONFormatter) Format(result *model.TrendingResult, window timewindow.Window, w io.Writer) error {
	out := jsonOutput{Window: string(window), TrendingResult: result}

	if f.Limit > 0 && len(result.Repositories) > f.Limit {
		trimmed := *result
		trimmed.Repositories = limitRepos(result.Repositories, f.Limit)
		out.TrendingResult = &trimmed
	}

	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}
