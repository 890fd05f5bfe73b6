package format

import "testing"

func TestStripAnsi(t *testing.T) {
	colored := "\x1b[31mred\x1b[0m text"
	if got := StripAnsi(colored); got != "red text" {
		t.Errorf("expected %q, got %q", "red text", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\x1b[1mbold\x1b[0m", 4},
		{"日本語", 6}, // wide runes take two columns
	}

	for _, tt := range tests {
		if got := DisplayWidth(tt.input); got != tt.want {
			t.Errorf("DisplayWidth(%q): expected %d, got %d", tt.input, tt.want, got)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exactly10!", 10, "exactly10!"},
		{"truncated", "a longer string here", 10, "a longe..."},
		{"tiny", "anything", 3, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateToWidth(tt.input, tt.width); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("expected %q, got %q", "ab   ", got)
	}
	if got := PadRight("abcdef", 5); got != "abcdef" {
		t.Errorf("over-long input must not be padded, got %q", got)
	}
}
