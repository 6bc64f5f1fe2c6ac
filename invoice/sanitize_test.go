package invoice

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty input", "", "untitled"},
		{"separators only", "...", "sanitized_recipient"},
		{"underscores and hyphens only", "_-_-", "sanitized_recipient"},
		{"unsafe chars sanitized away", "&&&", "sanitized_recipient"},
		{"plain name", "Jane", "Jane"},
		{"spaces become underscores", "Jane Doe", "Jane_Doe"},
		{"whitespace run collapses", "Jane \t Doe", "Jane_Doe"},
		{"company name", "Jane Doe & Co.", "Jane_Doe__Co"},
		{"leading and trailing separators trimmed", "..Jane..", "Jane"},
		{"path separators stripped", "a/b\\c", "abc"},
		{"accented chars stripped", "Café", "Caf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeFilename(tc.in)
			if got != tc.want {
				t.Fatalf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeFilenameIsPathSafe(t *testing.T) {
	inputs := []string{"a/b", "..", "c:\\temp", "name with spaces", "tab\there", "*?<>|"}
	for _, in := range inputs {
		got := SanitizeFilename(in)
		if got == "" {
			t.Fatalf("SanitizeFilename(%q) returned empty string", in)
		}
		if strings.ContainsAny(got, "/\\:*?\"<>| \t\n") {
			t.Fatalf("SanitizeFilename(%q) = %q contains unsafe characters", in, got)
		}
	}
}
