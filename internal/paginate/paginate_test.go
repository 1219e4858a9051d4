package paginate

import (
	"strings"
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "empty input yields one empty chunk",
			text:  "",
			limit: 10,
			want:  []string{""},
		},
		{
			name:  "short text passes through",
			text:  "hello",
			limit: 10,
			want:  []string{"hello"},
		},
		{
			name:  "exact limit is one chunk",
			text:  "1234567890",
			limit: 10,
			want:  []string{"1234567890"},
		},
		{
			name:  "splits at last newline within budget",
			text:  "aaa\nbbb\nccc",
			limit: 9,
			want:  []string{"aaa\nbbb\n", "ccc"},
		},
		{
			name:  "hard cut when no newline fits",
			text:  "abcdefghij",
			limit: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "newline exactly at limit",
			text:  "abc\ndef",
			limit: 4,
			want:  []string{"abc\n", "def"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.text, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Paginate() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaginate_ConcatenationEqualsInput(t *testing.T) {
	texts := []string{
		"",
		"one line",
		strings.Repeat("filler line of text\n", 500),
		strings.Repeat("x", 4097),
		"trailing newline\n",
	}
	for _, text := range texts {
		for _, limit := range []int{1, 7, 100, DefaultLimit} {
			chunks := Paginate(text, limit)
			if len(chunks) == 0 {
				t.Fatalf("Paginate(%d bytes, limit %d) returned zero chunks", len(text), limit)
			}
			for i, c := range chunks {
				if len(c) > limit {
					t.Errorf("chunk %d length %d exceeds limit %d", i, len(c), limit)
				}
			}
			if joined := strings.Join(chunks, ""); joined != text {
				t.Errorf("concat mismatch for limit %d: got %d bytes, want %d", limit, len(joined), len(text))
			}
		}
	}
}
