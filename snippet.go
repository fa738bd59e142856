package radseek

import "unicode/utf8"

// ExtractSnippet produces a preview of at most window bytes centered on
// offset, clipped to the text's boundaries. Text shorter than the window
// is returned whole. The cut points are adjusted inward to rune
// boundaries, so the preview is always valid UTF-8 and never longer than
// window.
//
// Offset must be within [0, len(text)); out-of-bounds offsets are a
// programming error in the caller.
func ExtractSnippet(text string, offset, window int) Snippet {
	if window <= 0 || len(text) <= window {
		return Snippet{Text: text, Start: 0, MatchOffset: offset}
	}

	start := offset - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(text) {
		end = len(text)
		start = end - window
	}

	// Move cut points inward to rune boundaries.
	for start < end && !utf8.RuneStart(text[start]) {
		start++
	}
	for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}

	return Snippet{Text: text[start:end], Start: start, MatchOffset: offset}
}
