package markdown

import (
	"regexp"
	"strings"

	htmltomd "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
)

type Converter struct {
	md *htmltomd.Converter
}

func NewConverter() *Converter {
	conv := htmltomd.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	// Custom rule to preserve fenced code blocks with language hints.
	conv.AddRules(codeBlockRule())

	return &Converter{md: conv}
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// FragmentsToMarkdown converts each extracted HTML fragment and joins the
// non-empty results with a blank line, the same block separator the chunker
// later splits on. Runs of three or more newlines are squeezed to keep block
// boundaries unambiguous.
func (c *Converter) FragmentsToMarkdown(fragments []string) (string, error) {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		body, err := c.md.ConvertString(fragment)
		if err != nil {
			return "", err
		}
		body = strings.TrimSpace(body)
		if body != "" {
			parts = append(parts, body)
		}
	}
	return blankRuns.ReplaceAllString(strings.Join(parts, "\n\n"), "\n\n"), nil
}

func codeBlockRule() htmltomd.Rule {
	return htmltomd.Rule{
		Filter: []string{"pre"},
		Replacement: func(_ string, selec *goquery.Selection, _ *htmltomd.Options) *string {
			if selec == nil {
				empty := ""
				return &empty
			}

			code := selec.Find("code").First()
			if code.Length() == 0 {
				// Fall back to default content conversion.
				return nil
			}

			lang := detectLanguage(code)
			text := code.Text()
			text = strings.ReplaceAll(text, "\r\n", "\n")
			text = strings.TrimSuffix(text, "\n")

			fence := "```"
			if strings.Contains(text, "```") {
				fence = "````"
			}

			var b strings.Builder
			b.WriteString("\n")
			b.WriteString(fence)
			if lang != "" {
				b.WriteString(lang)
			}
			b.WriteString("\n")
			b.WriteString(text)
			b.WriteString("\n")
			b.WriteString(fence)
			b.WriteString("\n")
			out := b.String()
			return &out
		},
	}
}

var langClassRegexp = regexp.MustCompile(`(?:^|\s)(?:language|lang)-([a-zA-Z0-9_+-]+)(?:\s|$)`)

func detectLanguage(code *goquery.Selection) string {
	class, _ := code.Attr("class")
	class = strings.TrimSpace(class)
	if class == "" {
		return ""
	}

	m := langClassRegexp.FindStringSubmatch(class)
	if len(m) == 2 {
		lang := strings.ToLower(m[1])
		if lang == "golang" {
			lang = "go"
		}
		return lang
	}
	return ""
}
