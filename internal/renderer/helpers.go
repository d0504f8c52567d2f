package renderer

// maxCaptionLen keeps the caption inside the canvas at the default scale.
const maxCaptionLen = 32

// truncate shortens s to at most maxLen runes, marking the cut with "..."
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
