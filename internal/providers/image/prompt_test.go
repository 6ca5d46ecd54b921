package image

import (
	"strings"
	"testing"
)

func TestHookTextStripsFiller(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Introduction to Python", "MASTER PYTHON"},
		{"Machine Learning Fundamentals", "MASTER MACHINE LEARNING"},
		{"Photography 101", "MASTER PHOTOGRAPHY"},
		{"Effective Business Communication Skills", "EFFECTIVE BUSINESS COMMUNICATION"},
		{"Complete Course", "MASTER COMPLETE COURSE"},
	}
	for _, tc := range cases {
		if got := HookText(tc.in); got != tc.want {
			t.Fatalf("HookText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildThumbnailPromptDeterministic(t *testing.T) {
	a := BuildThumbnailPrompt("Go Basics", "MASTER GO", "cinematic")
	b := BuildThumbnailPrompt("Go Basics", "MASTER GO", "cinematic")
	if a != b {
		t.Fatalf("prompt is not deterministic")
	}
}

func TestBuildThumbnailPromptContents(t *testing.T) {
	prompt := BuildThumbnailPrompt("Go Basics", "MASTER GO", "cinematic")
	for _, want := range []string{
		`"Go Basics"`,
		`"MASTER GO"`,
		"Strict constraints:",
		"ZERO logos",
		"NO timestamps",
		"cinematic feel",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAspectRatioTag(t *testing.T) {
	cases := map[string]string{
		"16:9":    "16x9",
		"9:16":    "9x16",
		"4:3":     "4x3",
		"3:4":     "3x4",
		"1:1":     "1x1",
		"":        "16x9",
		"weirdAR": "16x9",
	}
	for in, want := range cases {
		if got := AspectRatioTag(in); got != want {
			t.Fatalf("AspectRatioTag(%q) = %q, want %q", in, got, want)
		}
	}
}
