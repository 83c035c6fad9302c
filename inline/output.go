package inline

import (
	"encoding/json"
	"io"

	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/source"
)

// Entry is an item of the output, with its video when resolved.
type Entry struct {
	*page.Item
	Video  *source.VideoBundle `json:"video,omitempty"`
	Reason string              `json:"reason,omitempty"`
}

// Output is the json document written in json mode.
type Output struct {
	Token string    `json:"token,omitempty"`
	Query string    `json:"query,omitempty"`
	Type  page.Type `json:"type"`
	Title string    `json:"title"`
	// More tells whether the page had batches left to load.
	More   bool                `json:"more"`
	Items  []*Entry            `json:"items"`
	Video  *source.VideoBundle `json:"video,omitempty"`
	Reason string              `json:"reason,omitempty"`
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}
