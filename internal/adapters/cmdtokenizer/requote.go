package cmdtokenizer

import "strings"

/*
Join renders an argument list as a single raw command line that Split
tokenizes back to the same list, element for element.

Arguments containing no blanks or quotes pass through unchanged. Anything
else is wrapped in quotes, with each interior quote doubled and each run
of backslashes that lands before a quote (or before the closing quote)
doubled, mirroring the splitter's collapse of those runs.

Argument 0 is parsed under the simpler program-name rules, which offer no
way to escape a quote, so a program name containing a quote character
cannot round-trip. The execution environment has the same limitation.
*/
func (s *Splitter) Join(args []string) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		quoteArg(arg, &b)
	}
	return b.String()
}

func needsQuoting(arg string) bool {
	return arg == "" || strings.ContainsAny(arg, " \t\"")
}

func quoteArg(arg string, b *strings.Builder) {
	if !needsQuoting(arg) {
		b.WriteString(arg)
		return
	}

	b.WriteByte('"')
	slashes := 0
	for _, r := range arg {
		switch r {
		case '\\':
			slashes++
		case '"':
			// The run sits before a quote, so the splitter would
			// halve it: emit it twice. The quote itself is doubled,
			// which reads as a literal quote inside a quoted run.
			b.WriteString(strings.Repeat(`\`, slashes*2))
			slashes = 0
			b.WriteString(`""`)
		default:
			b.WriteString(strings.Repeat(`\`, slashes))
			slashes = 0
			b.WriteRune(r)
		}
	}
	// A trailing run lands before the closing quote.
	b.WriteString(strings.Repeat(`\`, slashes*2))
	b.WriteByte('"')
}
