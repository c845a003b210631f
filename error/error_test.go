package error

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSpecError(t *testing.T) {
	cause := errors.New("unknown state")
	dir := t.TempDir()
	path := filepath.Join(dir, "test.fa")
	err := os.WriteFile(path, []byte("start q0;\nq0 -> q1 'a' x;\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		err      *SpecError
		expected string
	}{
		{
			err: &SpecError{
				Cause: cause,
			},
			expected: "error: unknown state",
		},
		{
			err: &SpecError{
				Cause:      cause,
				Detail:     "q9",
				SourceName: "test.fa",
				Row:        3,
			},
			expected: "test.fa: 3: error: unknown state: q9",
		},
		{
			err: &SpecError{
				Cause:      cause,
				FilePath:   path,
				SourceName: "test.fa",
				Row:        2,
				Col:        14,
			},
			expected: "test.fa: 2:14: error: unknown state\n    q0 -> q1 'a' x;\n                 ^",
		},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if msg := tt.err.Error(); msg != tt.expected {
				t.Fatalf("unexpected message:\nwant: %q\ngot:  %q", tt.expected, msg)
			}
			if !errors.Is(tt.err, cause) {
				t.Fatalf("the cause must be unwrapped")
			}
		})
	}
}
