package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jokarl/resbind/internal/types"
)

// TextRenderer renders one line per resolution: the bound value on
// success, the error detail on failure
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the report in text format
func (r *TextRenderer) Render(w io.Writer, report *types.Report) error {
	for _, res := range report.Resolutions {
		line := res.Value
		if !res.OK() {
			line = r.colorError(res.Error)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) colorError(s string) string {
	if !r.ColorEnabled {
		return s
	}
	c := color.New(color.FgRed)
	c.EnableColor()
	return c.Sprint(s)
}
