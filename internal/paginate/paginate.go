// Package paginate splits long reply text into chunks that fit the chat
// platform's per-message size limit.
package paginate

import "strings"

// DefaultLimit matches the common chat platform message cap.
const DefaultLimit = 2000

// Paginate splits text into ordered chunks of at most limit bytes whose
// concatenation equals text. Chunks end at the last newline within the
// budget when one exists; otherwise the cut is exactly at the limit. Empty
// input yields a single empty chunk so callers always send something.
func Paginate(text string, limit int) []string {
	if limit < 1 {
		return []string{text}
	}
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	remaining := text
	for len(remaining) > limit {
		cut := limit
		if idx := strings.LastIndexByte(remaining[:limit], '\n'); idx >= 0 {
			cut = idx + 1 // the newline ends the chunk
		}
		chunks = append(chunks, remaining[:cut])
		remaining = remaining[cut:]
	}
	return append(chunks, remaining)
}
