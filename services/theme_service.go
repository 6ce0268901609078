package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// BuildThemeCSS renders the customization record as a stylesheet of CSS
// custom properties, so storefront clients apply the theme with a single
// <link> instead of reimplementing the mapping. Each configured Google
// Font family is imported exactly once, even when heading and body share
// a family.
func BuildThemeCSS(settings models.Customization) string {
	var b strings.Builder

	for _, family := range fontFamilies(settings) {
		fmt.Fprintf(&b,
			"@import url('https://fonts.googleapis.com/css2?family=%s:wght@300;400;500;600;700&display=swap');\n",
			strings.ReplaceAll(family, " ", "+"))
	}

	b.WriteString(":root {\n")
	writeColor(&b, "primary", settings.PrimaryColor)
	writeColor(&b, "secondary", settings.SecondaryColor)
	writeColor(&b, "accent", settings.AccentColor)
	if settings.FontHeading != "" {
		fmt.Fprintf(&b, "  --font-heading: '%s', sans-serif;\n", settings.FontHeading)
	}
	if settings.FontBody != "" {
		fmt.Fprintf(&b, "  --font-body: '%s', sans-serif;\n", settings.FontBody)
	}
	b.WriteString("}\n")

	return b.String()
}

// fontFamilies returns the distinct configured families in a stable order.
func fontFamilies(settings models.Customization) []string {
	var families []string
	seen := make(map[string]bool)
	for _, f := range []string{settings.FontHeading, settings.FontBody} {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		families = append(families, f)
	}
	return families
}

func writeColor(b *strings.Builder, name, hex string) {
	if hex == "" {
		return
	}
	fmt.Fprintf(b, "  --color-%s: %s;\n", name, hex)
	if rgb, ok := hexToRGB(hex); ok {
		fmt.Fprintf(b, "  --color-%s-rgb: %s;\n", name, rgb)
	}
}

// hexToRGB converts "#RRGGBB" to "r, g, b" for rgba() usage.
func hexToRGB(hex string) (string, bool) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return "", false
	}
	r, err1 := strconv.ParseUint(h[0:2], 16, 8)
	g, err2 := strconv.ParseUint(h[2:4], 16, 8)
	bl, err3 := strconv.ParseUint(h[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	return fmt.Sprintf("%d, %d, %d", r, g, bl), true
}
