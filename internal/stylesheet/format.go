package stylesheet

import (
	"strings"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4


var breaker = strings.NewReplacer(
	"{", "{\n",
	"}", "\n}\n",
	";", ";\n",
)

// Format minifies source with p and then re-expands it, one declaration or
// brace per line, indented by nesting depth.
func (p *Pipeline) Format(source string) string {
	expanded := breaker.Replace(p.Minify(source))

	var out []string
	level := 0
	for _, line := range strings.Split(expanded, "\n") {
		line = strings.TrimFunc(line, isSpace)
		if line == "" {
			continue
		}

		// Unbalanced closers push the level below zero; those lines are
		// emitted flush left but the counter keeps going.
		if strings.HasPrefix(line, "}") {
			level--
		}
		out = append(out, indent(level)+line)
		if strings.HasSuffix(line, "{") {
			level++
		}
	}

	return strings.TrimFunc(strings.Join(out, "\n"), isSpace)
}

// Format beautifies source using the Default pipeline.
func Format(source string) string {
	return Default.Format(source)
}

func indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(" ", level*IndentWidth)
}
