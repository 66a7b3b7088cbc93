package domain

import "testing"

func TestResolveWidth(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1920},
		{"abc", 1920},
		{"0", 1920},
		{"-5", 1920},
		{"Infinity", 1920},
		{"NaN", 1920},
		{"1e3", 1000},
		{" 800 ", 800},
		{"1280.6", 1281},
		{"1280.5", 1281},
		{"1280.4", 1280},
		{"0.3", 0},
		{"1e12", 2147483647},
		{"0x10", 16},
		{"0X1f", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"0x", 1920},
		{"0xZZ", 1920},
		{"-0x10", 1920},
		{"0x1p4", 1920},
		{"0xFFFFFFFFFFFFFFFFFF", 2147483647},
		{"1_000", 1920},
		{".5", 1},
		{"640", 640},
	}

	for _, tt := range tests {
		if got := ResolveWidth(tt.raw, 1920); got != tt.want {
			t.Errorf("ResolveWidth(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestAppendSizing(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		width int
		want  string
	}{
		{
			name:  "url without query",
			url:   "https://img/x",
			width: 1920,
			want:  "https://img/x?w=1920&fit=crop",
		},
		{
			name:  "url with query",
			url:   "https://images.unsplash.com/photo-1?ixid=abc&q=80",
			width: 800,
			want:  "https://images.unsplash.com/photo-1?ixid=abc&q=80&w=800&fit=crop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendSizing(tt.url, tt.width); got != tt.want {
				t.Errorf("AppendSizing() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in     string
		want   Orientation
		wantOK bool
	}{
		{"landscape", Landscape, true},
		{"Portrait", Portrait, true},
		{" squarish ", Squarish, true},
		{"diagonal", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseOrientation(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseOrientation(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOptionalString(t *testing.T) {
	if OptionalString("") != nil {
		t.Error("OptionalString(\"\") should be nil")
	}
	if v := OptionalString("abc"); v == nil || *v != "abc" {
		t.Errorf("OptionalString(\"abc\") = %v", v)
	}
}
