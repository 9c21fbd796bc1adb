package dispatch

import "strings"

// Typographic quotes pasted from phones and chat clients fold to their ASCII
// forms before splitting.
var quoteNormalizer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Tokenize splits a command argument line into arguments, honoring single
// and double quoting. A quote left open swallows the rest of the line as one
// final argument instead of failing.
func Tokenize(text string) []string {
	text = quoteNormalizer.Replace(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var (
		args  []string
		span  []string
		quote byte
	)

	for _, tok := range strings.Split(text, " ") {
		switch {
		case quote != 0:
			if len(tok) > 0 && tok[len(tok)-1] == quote {
				span = append(span, tok[:len(tok)-1])
				args = append(args, strings.Join(span, " "))
				span, quote = nil, 0
			} else {
				span = append(span, tok)
			}
		case len(tok) > 0 && (tok[0] == '\'' || tok[0] == '"'):
			// A single-word quoted token closes immediately; a lone quote
			// character cannot close itself, so it opens a span.
			if len(tok) > 1 && tok[len(tok)-1] == tok[0] {
				args = append(args, tok[1:len(tok)-1])
			} else {
				quote = tok[0]
				span = append(span, tok[1:])
			}
		default:
			args = append(args, tok)
		}
	}

	if quote != 0 {
		args = append(args, strings.Join(span, " "))
	}
	return args
}
