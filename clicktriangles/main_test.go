package main

import (
	"testing"
	"time"
)

func TestResolveSeed(t *testing.T) {
	now := time.Unix(1700000000, 42)
	tests := []struct {
		name string
		seed uint64
		set  bool
		want uint64
	}{
		{"explicit zero", 0, true, 0},
		{"explicit value", 99, true, 99},
		{"unset uses clock", 0, false, uint64(now.UnixNano())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveSeed(tt.seed, tt.set, now); got != tt.want {
				t.Errorf("resolveSeed(%d, %v) = %d, want %d", tt.seed, tt.set, got, tt.want)
			}
		})
	}
}
