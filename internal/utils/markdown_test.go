package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown_ListsAndLinks(t *testing.T) {
	out := RenderMarkdown("- **PTN** 확대\n- [기사](https://news.example/a)")
	for _, want := range []string{"<ul>", "<li><strong>PTN</strong> 확대</li>", `href="https://news.example/a"`, `target="_blank"`, "noreferrer"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}

func TestRenderMarkdown_StripsScripts(t *testing.T) {
	out := RenderMarkdown("hi <script>alert(1)</script> [x](javascript:alert(1))")
	if strings.Contains(out, "<script") || strings.Contains(out, "javascript:") {
		t.Fatalf("unsafe content survived: %s", out)
	}
	if !strings.Contains(out, "hi") {
		t.Fatalf("text lost: %s", out)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if got := RenderMarkdown(""); got != "" {
		t.Fatalf("empty input should render empty, got %q", got)
	}
}
