package card

import (
	"strings"
	"testing"

	"github.com/matzehuels/toplangs/pkg/theme"
)

func TestRender(t *testing.T) {
	colors := theme.Resolve("default", theme.Overrides{})
	c := New(300, 165, "", "Most Used Languages", colors)
	out := c.Render("<g>body</g>")

	for _, want := range []string{
		`<svg width="300" height="165" viewBox="0 0 300 165"`,
		`role="img" aria-labelledby="descId"`,
		`fill: #2f80ed;`,
		`@keyframes fadeInAnimation`,
		`<rect data-testid="card-bg" x="0.5" y="0.5" rx="4.5" height="99%" stroke="#e4e2e2" width="299" fill="#fffefe" stroke-opacity="1"/>`,
		`<g data-testid="card-title" transform="translate(25, 35)">`,
		`data-testid="header">Most Used Languages</text>`,
		`<g data-testid="main-card-body" transform="translate(0, 55)">`,
		`<g>body</g>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Contains(out, "animation-duration: 0s") {
		t.Error("animations should be enabled by default")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("Render() should close the document")
	}
}

func TestRenderCustomTitleIsEncoded(t *testing.T) {
	c := New(300, 100, "<b>Mine</b>", "Default", theme.Colors{})
	out := c.Render("")
	if !strings.Contains(out, "&#60;b&#62;Mine&#60;/b&#62;") {
		t.Errorf("custom title not encoded: %s", out)
	}
	if strings.Contains(out, "Default") {
		t.Error("custom title should replace the default title")
	}
}

func TestSetHideTitle(t *testing.T) {
	c := New(300, 165, "", "Title", theme.Colors{})
	c.SetHideTitle(true)
	out := c.Render("")

	if c.Height != 135 {
		t.Errorf("Height = %v, want 135", c.Height)
	}
	if strings.Contains(out, `data-testid="card-title"`) {
		t.Error("title should not be rendered")
	}
	if !strings.Contains(out, `transform="translate(0, 25)"`) {
		t.Error("body should move up when the title is hidden")
	}
}

func TestSetHideBorder(t *testing.T) {
	c := New(300, 100, "", "T", theme.Colors{})
	c.SetHideBorder(true)
	if out := c.Render(""); !strings.Contains(out, `stroke-opacity="0"`) {
		t.Error("hidden border should have zero stroke opacity")
	}
}

func TestDisableAnimations(t *testing.T) {
	c := New(300, 100, "", "T", theme.Colors{})
	c.DisableAnimations()
	if out := c.Render(""); !strings.Contains(out, disableAnimationsCSS) {
		t.Error("expected animation kill switch")
	}
}

func TestSetCSSAndAccessibility(t *testing.T) {
	c := New(300, 100, "", "T", theme.Colors{})
	c.SetCSS(".stat { fill: red; }")
	c.SetAccessibilityLabel("Top languages", "Go: 100.00%")
	out := c.Render("")
	for _, want := range []string{
		".stat { fill: red; }",
		`<title id="titleId">Top languages</title>`,
		`<desc id="descId">Go: 100.00%</desc>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRenderGradient(t *testing.T) {
	colors := theme.Resolve("default", theme.Overrides{Bg: "30,ff0000,00ff00,0000ff"})
	out := New(300, 100, "", "T", colors).Render("")
	for _, want := range []string{
		`<linearGradient id="gradient" gradientTransform="rotate(30)"`,
		`<stop offset="0%" stop-color="#ff0000" />`,
		`<stop offset="50%" stop-color="#00ff00" />`,
		`<stop offset="100%" stop-color="#0000ff" />`,
		`fill="url(#gradient)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRenderError(t *testing.T) {
	colors := theme.Resolve("default", theme.Overrides{})
	out := RenderError("Could not resolve to a User", "Make sure the provided username is not an organization", colors)
	for _, want := range []string{
		`<svg width="576.5" height="120"`,
		`class="text">Could not resolve to a User</text>`,
		`class="gray">Make sure the provided username is not an organization</tspan>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderError() missing %q", want)
		}
	}

	if plain := RenderError("boom", "", colors); strings.Contains(plain, "tspan") {
		t.Error("no secondary line expected")
	}
}
