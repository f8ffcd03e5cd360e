package playground

import (
	"slices"

	"github.com/cliffjones/neologizer/pkg/generator"
	"github.com/cliffjones/neologizer/pkg/neologizer"
	"github.com/cliffjones/neologizer/pkg/present"
	"github.com/cliffjones/neologizer/pkg/stemfilter"
	"github.com/cliffjones/neologizer/pkg/validator"
)

// Upper bounds on client supplied limits.
const (
	MaxTextLength    = 100_000
	MaxPassesLimit   = 100_000
	MaxWordLengthCap = 64
)

// GenerateRequest is the body of POST /generate and POST /convert. Zero
// limits take the server defaults.
type GenerateRequest struct {
	Text          string `json:"text"`
	MaxPasses     int    `json:"max_passes"`
	MaxWordLength int    `json:"max_word_length"`
	MaxWordCount  int    `json:"max_word_count"`
	Selection     string `json:"selection"`
	Seed          *int64 `json:"seed"`
	Format        string `json:"format"`
	StemLanguage  string `json:"stem_language"`
}

// Validate checks the request fields.
func (r GenerateRequest) Validate() error {
	formats := []string{""}
	for _, f := range present.Formats() {
		formats = append(formats, string(f))
	}

	return validator.Apply(
		validator.RequiredString("text", r.Text),
		validator.MaxRunes("text", r.Text, MaxTextLength),
		validator.MinNum("max_passes", r.MaxPasses, 0),
		validator.MaxNum("max_passes", r.MaxPasses, MaxPassesLimit),
		validator.MinNum("max_word_length", r.MaxWordLength, 0),
		validator.MaxNum("max_word_length", r.MaxWordLength, MaxWordLengthCap),
		validator.MinNum("max_word_count", r.MaxWordCount, 0),
		validator.InList("selection", r.Selection, []string{"", string(generator.SelectionIndexed), string(generator.SelectionShuffle)}),
		validator.InList("format", r.Format, formats),
		validator.InList("stem_language", r.StemLanguage, slices.Concat([]string{""}, stemfilter.Languages())),
	)
}

func (r GenerateRequest) toRequest(mode neologizer.Mode) neologizer.Request {
	return neologizer.Request{
		Source: neologizer.TextInput(r.Text),
		Mode:   mode,
		Config: generator.Config{
			MaxPasses:     r.MaxPasses,
			MaxWordLength: r.MaxWordLength,
			MaxWordCount:  r.MaxWordCount,
			Selection:     generator.Selection(r.Selection),
		},
		Seed:         r.Seed,
		StemLanguage: r.StemLanguage,
	}
}

// GenerateResponse is the data of a successful run.
type GenerateResponse struct {
	Mode   neologizer.Mode `json:"mode"`
	Words  []string        `json:"words"`
	Text   string          `json:"text,omitempty"`
	Format present.Format  `json:"format"`
	// Output is Words or Text rendered in Format.
	Output string          `json:"output"`
	Stats  generator.Stats `json:"stats"`
}
