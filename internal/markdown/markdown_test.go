package markdown_test

import (
	"strings"
	"testing"

	"github.com/takaaki-mizuno/local-book-translator/internal/markdown"
)

func TestFragmentsToMarkdown(t *testing.T) {
	tests := []struct {
		name         string
		fragments    []string
		wantContains []string
	}{
		{
			name:         "Heading And Paragraph",
			fragments:    []string{`<div><h2>Getting feedback</h2><p>Let's be honest...</p></div>`},
			wantContains: []string{"## Getting feedback", "Let's be honest..."},
		},
		{
			name:         "Heading Hierarchy",
			fragments:    []string{`<h1>One</h1><h3>Three</h3><h6>Six</h6>`},
			wantContains: []string{"# One", "### Three", "###### Six"},
		},
		{
			name:         "Strong And Emphasis",
			fragments:    []string{`<p>A <strong>bold</strong> and <em>subtle</em> claim.</p>`},
			wantContains: []string{"**bold**", "subtle"},
		},
		{
			name:         "Unordered List",
			fragments:    []string{`<ul><li>First</li><li>Second</li></ul>`},
			wantContains: []string{"- First", "- Second"},
		},
		{
			name:         "Ordered List",
			fragments:    []string{`<ol><li>Alpha</li><li>Beta</li></ol>`},
			wantContains: []string{"1. Alpha", "2. Beta"},
		},
		{
			name: "Fenced Code Block With Language",
			fragments: []string{`<pre><code class="language-go">fmt.Println("hi")
</code></pre>`},
			wantContains: []string{"```go", `fmt.Println("hi")`, "```"},
		},
		{
			name:         "Malformed HTML Best Effort",
			fragments:    []string{`<p>Unclosed <em>emphasis<p>Next paragraph`},
			wantContains: []string{"Unclosed", "Next paragraph"},
		},
	}

	conv := markdown.NewConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.FragmentsToMarkdown(tt.fragments)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Fatalf("missing %q in output:\n%s", want, got)
				}
			}
		})
	}
}

func TestFragmentsToMarkdown_BlankLineBetweenBlocks(t *testing.T) {
	conv := markdown.NewConverter()
	got, err := conv.FragmentsToMarkdown([]string{`<h2>Getting feedback</h2><p>Let's be honest...</p>`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "## Getting feedback\n\nLet's be honest..." {
		t.Fatalf("unexpected conversion: %q", got)
	}
}

func TestFragmentsToMarkdown_JoinsFragmentsWithBlankLine(t *testing.T) {
	conv := markdown.NewConverter()
	got, err := conv.FragmentsToMarkdown([]string{"<p>First part</p>", "<p>Second part</p>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "First part\n\nSecond part" {
		t.Fatalf("unexpected join: %q", got)
	}
}

func TestFragmentsToMarkdown_SkipsEmptyFragments(t *testing.T) {
	conv := markdown.NewConverter()
	got, err := conv.FragmentsToMarkdown([]string{"<p>Kept</p>", "<div>   </div>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Kept" {
		t.Fatalf("expected empty fragment dropped, got %q", got)
	}
}

func TestFragmentsToMarkdown_SqueezesExtraBlankLines(t *testing.T) {
	conv := markdown.NewConverter()
	got, err := conv.FragmentsToMarkdown([]string{`<p>One</p><br><br><br><p>Two</p>`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("blank-line run not squeezed: %q", got)
	}
}

func TestFragmentsToMarkdown_Empty(t *testing.T) {
	conv := markdown.NewConverter()
	got, err := conv.FragmentsToMarkdown(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
