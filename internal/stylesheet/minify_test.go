package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var corpus = []string{
	"",
	"   \n\t ",
	"a{color:red}",
	"a { color : red ; }",
	"a{color:red;/* comment */}",
	"a{color:red;;}",
	"h1 ,  h2 > p\n{\n  margin : 0 auto ;\n}",
	"@media (max-width: 600px) {\n  .a { color: red; }\n}",
	"/* header */\nbody {\n\tfont: 12px/1.5 \"Helvetica Neue\", Arial;\n\tbackground: url(a.png) no-repeat;\n}\n",
	"a{}b{}",
	"}}a{b:c}",
	"a{b{c:d",
	"a{/* } { */b:c}",
	".x:hover::before{content:\"a  b\"}",
	"@import url(\"x.css\");\n@charset \"utf-8\";",
	"a{b:c;  ;  }",
	"a {b:c}",
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t  ", ""},
		{"structural whitespace", "a { color : red ; }", "a{color:red}"},
		{"comment inside rule", "a{color:red;/* comment */}", "a{color:red}"},
		{"comment spanning lines", "/* one\ntwo\n*/a{b:c}", "a{b:c}"},
		{"unterminated comment", "a{b:c}/* open", "a{b:c}"},
		{"comment with braces", "a{/* } { */b:c}", "a{b:c}"},
		{"non-greedy comments", "/*x*/a{b:c}/*y*/", "a{b:c}"},
		{"double semicolon", "a{color:red;;}", "a{color:red}"},
		{"spaced semicolons", "a{b:c;  ;  }", "a{b:c}"},
		{"selector list", "h1 ,  h2 > p\n{\n  margin : 0 auto ;\n}", "h1,h2 > p{margin:0 auto}"},
		{"inner whitespace", "a  b\t\tc{x:y}", "a b c{x:y}"},
		{"media query", "@media (max-width: 600px) {\n  .a { color: red; }\n}", "@media (max-width:600px){.a{color:red}}"},
		{"multiple declarations", "a {\n  color: red;\n  margin: 0;\n}", "a{color:red;margin:0}"},
		{"trailing semicolon outside rule", "@charset \"utf-8\" ;", "@charset \"utf-8\";"},
		{"unbalanced", "a { b: c } }", "a{b:c}}"},
		{"vertical tab run", "a\v\vb{c:d}", "a b{c:d}"},
		{"vertical tab beside braces", "a {\vcolor:red\v}", "a{color:red}"},
		{"no-break space", "a\u00a0{\u00a0b:c}", "a{b:c}"},
		{"bom and line separator", "\ufeffa\u2028b{c:d}\u3000", "a b{c:d}"},
		{"next line is not whitespace", "a\u0085b{c:d}", "a\u0085b{c:d}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Minify(tt.source), "Minify(%q)", tt.source)
		})
	}
}

func TestMinifyRemovesComments(t *testing.T) {
	got := Minify("a{color:red;/* comment */}")
	assert.NotContains(t, got, "comment")
}

func TestReferenceMinify(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"a { color : red ; }", "a{color:red}"},
		{"a{color:red;;}", "a{color:red;}"},
		{"a{b:c;;;}", "a{b:c;;}"},
		{"a\u00a0{\u00a0b:c}", "a{b:c}"},
		{"a\v{\vb:c;\v;}", "a{b:c;}"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Reference.Minify(tt.source), "Reference.Minify(%q)", tt.source)
	}
}

func TestMinifyIdempotent(t *testing.T) {
	for _, source := range corpus {
		once := Minify(source)
		assert.Equal(t, once, Minify(once), "Minify not idempotent for %q", source)
	}
}

func TestMinifyNoRedundantSemicolon(t *testing.T) {
	for _, source := range corpus {
		assert.NotContains(t, Minify(source), ";}", "Minify(%q)", source)
	}
}

func TestPassesAreIndependent(t *testing.T) {
	assert.Equal(t, "a{}", StripComments("a{/* x */}"))
	assert.Equal(t, "a{b:c;}", CollapseStructural("a { b : c ; }"))
	assert.Equal(t, "a{b;}", ElideSemicolon("a{b;;}"))
	assert.Equal(t, "a{b}", ElideSemicolons("a{b;;}"))
	assert.Equal(t, " a b ", CollapseWhitespace("\n a \t\r b\n"))
	assert.Equal(t, " a b ", CollapseWhitespace("\v\u00a0a\u2003b\ufeff"))
	assert.Equal(t, "a b", TrimWhitespace("\ufeff\v a b\u00a0\n"))
}

func TestPipelineCustomPasses(t *testing.T) {
	p := &Pipeline{Name: "upper", Passes: []Pass{strings.ToUpper, strings.TrimSpace}}
	assert.Equal(t, "A{B:C}", p.Minify("  a{b:c} "))
	assert.Equal(t, "A{\n    B:C\n}", p.Format("a{b:c}"))
}

func TestMinifyConcurrent(t *testing.T) {
	for i, source := range corpus {
		source := source
		want := Minify(source)
		t.Run(string(rune('a'+i)), func(t *testing.T) {
			t.Parallel()
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, Minify(source))
			}
		})
	}
}

func FuzzMinifyIdempotent(f *testing.F) {
	for _, source := range corpus {
		f.Add(source)
	}
	f.Fuzz(func(t *testing.T, source string) {
		// Removing a comment can splice "/" and "*" into a new opener.
		if splicesComment(source) {
			t.Skip()
		}
		once := Minify(source)
		if again := Minify(once); again != once {
			t.Errorf("Minify(%q) = %q, Minify again = %q", source, once, again)
		}
	})
}

func splicesComment(source string) bool {
	stripped := StripComments(source)
	return StripComments(stripped) != stripped
}
