package cli

import (
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty defaults to svg", input: "", want: []string{"svg"}},
		{name: "single", input: "json", want: []string{"json"}},
		{name: "multiple", input: "svg,png,dot", want: []string{"svg", "png", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{name: "no output strips input extension", output: "", input: "charts/natal.json", want: "charts/natal"},
		{name: "output with format extension", output: "wheel.svg", input: "natal.json", want: "wheel"},
		{name: "output with unknown extension kept", output: "wheel.out", input: "natal.json", want: "wheel.out"},
		{name: "bare output", output: "wheel", input: "natal.json", want: "wheel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}
