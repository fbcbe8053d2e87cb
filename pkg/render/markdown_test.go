package render

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	out := HTML("# Hello\n\nSome *text* here.\n")
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Hello") {
		t.Fatalf("missing heading: %q", out)
	}
	if !strings.Contains(out, "<em>text</em>") {
		t.Fatalf("missing emphasis: %q", out)
	}
}

func TestHTMLKeepsPlaceholders(t *testing.T) {
	out := HTML("{{ form.name }}\n")
	if !strings.Contains(out, "{{ form.name }}") {
		t.Fatalf("placeholder mangled: %q", out)
	}
}

func TestHTMLPolicyStripsScripts(t *testing.T) {
	in := "hello\n\n<script>alert(1)</script>\n"
	out := HTML(in, WithPolicy(DefaultPolicy()))
	if strings.Contains(out, "<script") {
		t.Fatalf("script survived: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("content lost: %q", out)
	}
}

func TestHTMLPolicyKeepsAccordionDivs(t *testing.T) {
	in := "<div id=\"accordion-extra\">\n\ninner\n\n</div>\n"
	out := HTML(in, WithPolicy(DefaultPolicy()))
	if !strings.Contains(out, `<div id="accordion-extra">`) {
		t.Fatalf("accordion div lost: %q", out)
	}
}
