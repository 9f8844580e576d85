package wagateway

import "strings"

// Bold wraps text in WhatsApp bold markers.
func Bold(text string) string {
	return "*" + text + "*"
}

// BulletList renders items as a WhatsApp-friendly bullet list.
func BulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
