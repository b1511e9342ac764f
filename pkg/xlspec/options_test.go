package xlspec

import (
	"path/filepath"
	"testing"
)

func TestShouldProcess(t *testing.T) {
	tests := []struct {
		sheets   []string
		name     string
		expected bool
	}{
		{nil, "Anything", true},
		{[]string{"mockedfs"}, "MockedFs", true},
		{[]string{"mockedfs"}, "Other", false},
		{[]string{"Other", "RESOLVER"}, "resolver", true},
	}

	for _, tt := range tests {
		opts := Options{Sheets: tt.sheets}
		if got := opts.ShouldProcess(tt.name); got != tt.expected {
			t.Errorf("ShouldProcess(%q) with %v = %v, expected %v", tt.name, tt.sheets, got, tt.expected)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		ext      string
		expected string
	}{
		{"", filepath.Join("dist", "Resolver.spec.ts")},
		{"js", filepath.Join("dist", "Resolver.spec.js")},
	}

	for _, tt := range tests {
		opts := Options{OutDir: "dist", Ext: tt.ext}
		if got := opts.OutputPath("Resolver"); got != tt.expected {
			t.Errorf("OutputPath with ext %q = %q, expected %q", tt.ext, got, tt.expected)
		}
	}
}

func TestIsAsync(t *testing.T) {
	if !DefaultOptions().IsAsync() {
		t.Error("expected default options to be async")
	}
	if (Options{Style: StyleSync}).IsAsync() {
		t.Error("expected sync style to be synchronous")
	}
}
