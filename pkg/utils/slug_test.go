package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Car Insurance in Los Angeles", "car-insurance-in-los-angeles"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"Ünïcödé Nämé", "unicode-name"},
		{"already-a-slug", "already-a-slug"},
		{"Symbols!@#$%", "symbols"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
