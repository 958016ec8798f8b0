package utils

import "testing"

func TestVisualColumn(t *testing.T) {
	tests := []struct {
		line   string
		column int
		want   int
	}{
		{"abc", 1, 0},
		{"abc", 3, 2},
		{"abc", 4, 3},
		{"\tx", 2, 4},
		{"ab\tx", 4, 4},
		{"日本", 2, 2},
		{"日本", 3, 4},
	}
	for _, tt := range tests {
		if got := VisualColumn(tt.line, tt.column, 4); got != tt.want {
			t.Errorf("VisualColumn(%q, %d) = %d, want %d", tt.line, tt.column, got, tt.want)
		}
	}
}

func TestBufferColumn(t *testing.T) {
	tests := []struct {
		line      string
		visualCol int
		want      int
	}{
		{"abc", 0, 1},
		{"abc", 2, 3},
		{"abc", 10, 4},
		{"\tx", 2, 1},
		{"\tx", 4, 2},
		{"日本", 1, 1},
		{"日本", 2, 2},
		{"", 5, 1},
	}
	for _, tt := range tests {
		if got := BufferColumn(tt.line, tt.visualCol, 4); got != tt.want {
			t.Errorf("BufferColumn(%q, %d) = %d, want %d", tt.line, tt.visualCol, got, tt.want)
		}
	}
}
