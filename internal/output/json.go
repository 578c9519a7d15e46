package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/resbind/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	Version     string              `json:"version"`
	Resolutions []*types.Resolution `json:"resolutions"`
	Summary     types.Summary       `json:"summary"`
}

// Render writes the report in JSON format
func (r *JSONRenderer) Render(w io.Writer, report *types.Report) error {
	resolutions := report.Resolutions
	if resolutions == nil {
		resolutions = []*types.Resolution{}
	}
	output := jsonOutput{
		Version:     "1.0",
		Resolutions: resolutions,
		Summary:     report.Summary,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
