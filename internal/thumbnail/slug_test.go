package thumbnail

import (
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Machine Learning Basics", "machine-learning-basics"},
		{"  Effective   Business  Communication ", "effective-business-communication"},
		{"C++ & Go: A Comparison!", "c-go-a-comparison"},
		{"Café Culture, Crème Brûlée", "cafe-culture-creme-brulee"},
		{"already-sanitized-slug", "already-sanitized-slug"},
		{"snake_case_topic", "snake-case-topic"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Slug(tc.in); got != tc.want {
			t.Fatalf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{
		"Machine Learning Basics",
		"Intro to Photography: 101!",
		strings.Repeat("very long topic ", 10),
	}
	for _, in := range inputs {
		once := Slug(in)
		if twice := Slug(once); twice != once {
			t.Fatalf("Slug not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSlugTruncates(t *testing.T) {
	got := Slug(strings.Repeat("abcde ", 20))
	if len(got) > 50 {
		t.Fatalf("slug too long: %d chars", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("slug ends with hyphen: %q", got)
	}
}
