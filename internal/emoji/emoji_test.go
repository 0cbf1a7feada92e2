package emoji

import "testing"

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected string
		found    bool
	}{
		{name: "smile", code: "smile", expected: "😄", found: true},
		{name: "rocket", code: "rocket", expected: "🚀", found: true},
		{name: "plus one", code: "+1", expected: "👍", found: true},
		{name: "unknown", code: "not_a_shortcode", found: false},
		{name: "case sensitive", code: "SMILE", found: false},
		{name: "empty", code: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Lookup(tt.code)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.code, ok, tt.found)
			}
			if ok && got != tt.expected {
				t.Errorf("Lookup(%q) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestTableValuesNonEmpty(t *testing.T) {
	t.Parallel()

	for name, v := range shortcodes {
		if v == "" {
			t.Errorf("shortcode %q maps to empty string", name)
		}
	}
}
