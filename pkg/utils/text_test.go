package utils

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	if Truncate("v1 (3, 4)", 20) != "v1 (3, 4)" {
		t.Error("short label unchanged")
	}
	if got := Truncate("original vector", 8); got != "original..." {
		t.Errorf("got %s", got)
	}
	if Truncate("x", 0) != "x" {
		t.Error("maxLen 0 returns as-is")
	}
	if got := Truncate("längen", 3); got != "län..." {
		t.Errorf("rune-aware truncation: got %s", got)
	}
}
