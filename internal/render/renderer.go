// Package render turns secret payloads into printable lines.
package render

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"ksecrets/internal/models"
)

// DecodePlaceholder replaces values that are not valid UTF-8. A bad value
// never aborts the listing; it only affects its own line.
const DecodePlaceholder = "<unable to decode UTF-8>"

// Renderer writes one text block per displayed secret: a name header, one
// indented line per key, and a blank separator line.
type Renderer struct {
	Out        io.Writer
	Style      Style
	InspectJWT bool // append a claims summary under values that parse as JWTs
}

// NewRenderer creates a Renderer writing styled output to out.
func NewRenderer(out io.Writer, style Style) *Renderer {
	return &Renderer{Out: out, Style: style}
}

// Render writes the block for one secret and returns the number of key
// lines written. The header and separator are emitted even when the secret
// holds no data. Keys are sorted so output is deterministic; a Kubernetes
// secret's data map has no iteration order of its own.
func (r *Renderer) Render(secret models.SecretRecord) int {
	fmt.Fprintf(r.Out, "%s:\n", r.Style.Name(secret.Name))

	keys := make([]string, 0, len(secret.Data))
	for key := range secret.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rendered := 0
	for _, key := range keys {
		value := secret.Data[key]
		if utf8.Valid(value) {
			fmt.Fprintf(r.Out, "  %s: %s\n", r.Style.Key(key), string(value))
			if r.InspectJWT {
				if summary, ok := summarizeJWT(string(value)); ok {
					fmt.Fprintf(r.Out, "    jwt: %s\n", summary)
				}
			}
		} else {
			fmt.Fprintf(r.Out, "  %s: %s\n", r.Style.Key(key), DecodePlaceholder)
		}
		rendered++
	}

	fmt.Fprintln(r.Out)
	return rendered
}
