package services

import (
	"strings"
	"testing"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

func TestBuildThemeCSSVariables(t *testing.T) {
	settings := models.DefaultCustomization()
	css := BuildThemeCSS(settings)

	for _, want := range []string{
		"--color-primary: #6B8E23;",
		"--color-primary-rgb: 107, 142, 35;",
		"--color-secondary: #8B7355;",
		"--color-accent: #F59E0B;",
		"--font-heading: 'Inter', sans-serif;",
		"--font-body: 'Inter', sans-serif;",
	} {
		if !strings.Contains(css, want) {
			t.Fatalf("css missing %q:\n%s", want, css)
		}
	}
}

func TestBuildThemeCSSLoadsSharedFontOnce(t *testing.T) {
	settings := models.DefaultCustomization()
	settings.FontHeading = "Playfair Display"
	settings.FontBody = "Playfair Display"

	css := BuildThemeCSS(settings)
	if got := strings.Count(css, "@import"); got != 1 {
		t.Fatalf("expected a single font import for a shared family, got %d", got)
	}
	if !strings.Contains(css, "family=Playfair+Display") {
		t.Fatalf("font family not url-encoded:\n%s", css)
	}
}

func TestBuildThemeCSSDistinctFonts(t *testing.T) {
	settings := models.DefaultCustomization()
	settings.FontHeading = "Playfair Display"
	settings.FontBody = "Inter"

	css := BuildThemeCSS(settings)
	if got := strings.Count(css, "@import"); got != 2 {
		t.Fatalf("expected two imports for two families, got %d", got)
	}
}

func TestBuildThemeCSSSkipsMalformedColor(t *testing.T) {
	settings := models.DefaultCustomization()
	settings.AccentColor = "tomato"

	css := BuildThemeCSS(settings)
	if strings.Contains(css, "--color-accent-rgb") {
		t.Fatal("non-hex color must not emit an rgb triplet")
	}
	if !strings.Contains(css, "--color-accent: tomato;") {
		t.Fatal("raw value should still pass through as-is")
	}
}

func TestHexToRGB(t *testing.T) {
	rgb, ok := hexToRGB("#FFFFFF")
	if !ok || rgb != "255, 255, 255" {
		t.Fatalf("unexpected conversion: %q ok=%v", rgb, ok)
	}
	if _, ok := hexToRGB("#FFF"); ok {
		t.Fatal("short hex is not supported and must not convert")
	}
}
