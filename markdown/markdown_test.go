package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hikaristudio/lunasite/content"
)

func render(md string) string {
	var buf bytes.Buffer
	Render(&buf, md)
	return buf.String()
}

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineCodeIsNotFormatted(t *testing.T) {
	got := FormatInline("use `*args*` here")
	want := "use <code>*args*</code> here"
	if got != want {
		t.Errorf("FormatInline = %q, want %q", got, want)
	}
}

func TestFormatInlineLink(t *testing.T) {
	got := FormatInline("see [docs](https://example.com/a)")
	want := `see <a href="https://example.com/a">docs</a>`
	if got != want {
		t.Errorf("FormatInline = %q, want %q", got, want)
	}
}

func TestFormatInlineRejectsUnsafeScheme(t *testing.T) {
	got := FormatInline("[click](javascript:alert(1))")
	if strings.Contains(got, "javascript") {
		t.Errorf("unsafe scheme survived: %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("link text should remain: %q", got)
	}
}

func TestFormatInlineImage(t *testing.T) {
	got := FormatInline("![moon](/images/moon.png)")
	want := `<img src="/images/moon.png" alt="moon" loading="lazy" decoding="async"/>`
	if got != want {
		t.Errorf("FormatInline = %q, want %q", got, want)
	}
}

func TestFormatInlineEscapesHTML(t *testing.T) {
	got := FormatInline(`<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML survived: %q", got)
	}
}

func TestRenderHeadingsGetAnchors(t *testing.T) {
	got := render("## 新月の過ごし方\n\n### Tips\n")
	if !strings.Contains(got, `<h2 id="新月の過ごし方">`) {
		t.Errorf("missing h2 anchor: %q", got)
	}
	if !strings.Contains(got, `<h3 id="tips">`) {
		t.Errorf("missing h3 anchor: %q", got)
	}
}

func TestRenderDuplicateHeadingAnchors(t *testing.T) {
	got := render("## Overview\n\n## Overview\n")
	if !strings.Contains(got, `<h2 id="overview">`) || !strings.Contains(got, `<h2 id="overview-2">`) {
		t.Errorf("duplicate headings should get suffixed anchors: %q", got)
	}
}

func TestRenderAnchorsMatchExtractedHeadings(t *testing.T) {
	body := "## 概要\n\n### **詳細**\n\n## 概要\n"
	got := render(body)
	for _, h := range content.ExtractHeadings(body) {
		if !strings.Contains(got, `id="`+h.ID+`"`) {
			t.Errorf("rendered output lacks anchor %q: %q", h.ID, got)
		}
	}
}

func TestRenderTopLevelHeadingHasNoAnchor(t *testing.T) {
	got := render("# タイトル\n")
	if got != "<h1>タイトル</h1>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderLists(t *testing.T) {
	got := render("- one\n- two\n")
	want := "<ul><li>one</li><li>two</li></ul>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = render("1. first\n2. second\n")
	want = "<ol><li>first</li><li>second</li></ol>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCodeBlock(t *testing.T) {
	got := render("```go\nfmt.Println(\"hi\")\n```\n")
	if !strings.Contains(got, `<pre class="code-block"><code class="language-go">`) {
		t.Errorf("missing code block open: %q", got)
	}
	if !strings.Contains(got, "fmt.Println(&#34;hi&#34;)") {
		t.Errorf("code content should be escaped: %q", got)
	}
	if !strings.HasSuffix(got, "</code></pre>") {
		t.Errorf("missing code block close: %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	got := render("| 日付 | 吉日 |\n|---|---|\n| 1日 | 一粒万倍日 |\n")
	for _, want := range []string{"<table>", "<thead><tr><th>日付</th><th>吉日</th></tr></thead>", "<tbody><tr><td>1日</td><td>一粒万倍日</td></tr>", "</tbody></table>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestRenderBlockquoteAndRule(t *testing.T) {
	got := render("> 引用です\n\n---\n")
	if !strings.Contains(got, "<blockquote>引用です</blockquote>") {
		t.Errorf("missing blockquote: %q", got)
	}
	if !strings.Contains(got, "<hr/>") {
		t.Errorf("missing rule: %q", got)
	}
}

func TestRenderParagraphJoining(t *testing.T) {
	got := render("line one\nline two\n\nnext para\n")
	if !strings.Contains(got, "<p>line one\n line two\n</p>") {
		t.Errorf("lines should join into one paragraph: %q", got)
	}
	if strings.Count(got, "<p>") != 2 {
		t.Errorf("expected two paragraphs: %q", got)
	}
}
