package util

import (
	"strings"
	"testing"
	"time"
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
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
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

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Checksum(nil); got != emptySHA256 {
		t.Fatalf("Checksum(nil) = %s, want %s", got, emptySHA256)
	}
	if Checksum([]byte("a")) == Checksum([]byte("b")) {
		t.Fatal("different inputs produced the same checksum")
	}
}

func TestParseByteSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "plain bytes", input: "512", expected: 512},
		{name: "kilobytes", input: "100KB", expected: 100 * 1024},
		{name: "megabytes lowercase", input: "5mb", expected: 5 * 1024 * 1024},
		{name: "short unit", input: "2M", expected: 2 * 1024 * 1024},
		{name: "spaces", input: " 1 GB ", expected: 1 << 30},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "lots", wantErr: true},
		{name: "negative", input: "-1KB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseByteSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseByteSize(%q) expected error", tt.input)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseByteSize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Fatalf("ParseByteSize(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRandomToken(t *testing.T) {
	t.Parallel()

	a, err := RandomToken(SessionTokenSize)
	if err != nil {
		t.Fatalf("RandomToken: %v", err)
	}
	b, err := RandomToken(SessionTokenSize)
	if err != nil {
		t.Fatalf("RandomToken: %v", err)
	}

	// 32 bytes encode to 43 unpadded base64url characters.
	if len(a) != 43 {
		t.Fatalf("len(token) = %d, want 43", len(a))
	}
	if a == b {
		t.Fatal("two tokens were equal")
	}
}

func TestIsSessionToken(t *testing.T) {
	t.Parallel()

	issued, err := RandomToken(SessionTokenSize)
	if err != nil {
		t.Fatalf("RandomToken: %v", err)
	}
	if !IsSessionToken(issued) {
		t.Fatalf("IsSessionToken(%q) = false for an issued token", issued)
	}

	for _, token := range []string{
		"",
		"\x00",
		"\xff",
		"tok",
		strings.Repeat("a", 44),
		strings.Repeat("a", 42) + "=",
		strings.Repeat("a", 42) + "\x00",
	} {
		if IsSessionToken(token) {
			t.Errorf("IsSessionToken(%q) = true", token)
		}
	}
}
