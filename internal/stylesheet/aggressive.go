package stylesheet

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

const mediaType = "text/css"

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(mediaType, css.Minify)
	return m
}

// MinifyAggressive runs a parsing minifier that may also shorten values
// (colors, zero units, numbers). Unlike Minify it can fail on input it
// cannot tokenize.
func MinifyAggressive(source string) (string, error) {
	out, err := minifier.String(mediaType, source)
	if err != nil {
		return "", fmt.Errorf("aggressive minify: %w", err)
	}
	return out, nil
}
