package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestParseByteSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "512", want: 512},
		{input: "100KB", want: 100 * 1024},
		{input: "10MB", want: 10 * 1024 * 1024},
		{input: "1g", want: 1 << 30},
		{input: " 2 MB ", want: 2 * 1024 * 1024},
		{input: "", wantErr: true},
		{input: "ten MB", wantErr: true},
		{input: "-1KB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseByteSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseByteSize(%q) expected error", tt.input)
				}

				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseByteSize(%q) = %d, %v, want %d", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestSafeExtension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"photo.JPG":          ".jpg",
		"scan.final.png":     ".png",
		"noext":              "",
		"evil.p/h":           "",
		"archive.toolongext": "",
		"weird.pn g":         "",
	}

	for input, want := range tests {
		if got := SafeExtension(input); got != want {
			t.Fatalf("SafeExtension(%q) = %q, want %q", input, got, want)
		}
	}
}
