package htmlsanitize

import "testing"

func TestPlain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Looking for co-founders", "Looking for co-founders"},
		{"script stripped", `<script>alert("x")</script>hello`, "hello"},
		{"tags stripped, text kept", "<b>Go</b> developer", "Go developer"},
		{"anchor stripped", `<a href="https://evil.example">me</a>`, "me"},
		{"whitespace trimmed", "  bio  ", "bio"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plain(tt.input); got != tt.want {
				t.Errorf("Plain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
