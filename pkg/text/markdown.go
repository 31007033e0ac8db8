package text

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}\s+.+$`),
	regexp.MustCompile("(?m)^(```|~~~)"),
	regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+.+$`),
	regexp.MustCompile(`!?\[[^\]]+\]\([^)]+\)`),
	regexp.MustCompile(`(?m)^>\s+.+$`),
	regexp.MustCompile(`(?m)^\s*(-{3,}|\*{3,}|_{3,})\s*$`),
	regexp.MustCompile(`\*\*[^*\n]+\*\*|__[^_\n]+__`),
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// IsMarkdown reports whether s uses at least two distinct markdown features.
// A single stray '#' or '-' in plain prose does not count.
func IsMarkdown(s string) bool {
	indicators := 0

	for _, p := range markdownPatterns {
		if p.MatchString(s) {
			indicators++
		}
	}

	return indicators >= 2
}

// StripMarkdown renders the text content of a markdown document and drops
// all markup. Paragraphs stay separated by a blank line, list items and soft
// breaks by a single newline. Bracketed instructions such as "[Tone: warm]"
// are plain text to the parser and survive.
func StripMarkdown(s string) string {
	source := []byte(s)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b bytes.Buffer

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))

				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}

		case *ast.String:
			if entering {
				b.Write(node.Value)
			}

		case *ast.AutoLink:
			if entering {
				b.Write(node.Label(source))
			}

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()

				for i := 0; i < lines.Len(); i++ {
					segment := lines.At(i)
					b.Write(segment.Value(source))
				}

				b.WriteString("\n\n")
			}

			return ast.WalkSkipChildren, nil

		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.Heading:
			if !entering {
				b.WriteString("\n\n")
			}

		case *ast.TextBlock:
			if !entering {
				b.WriteByte('\n')
			}

		case *ast.List:
			if !entering {
				b.WriteByte('\n')
			}
		}

		return ast.WalkContinue, nil
	})

	result := blankLines.ReplaceAllString(b.String(), "\n\n")

	return strings.TrimSpace(result)
}
