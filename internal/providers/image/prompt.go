package image

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	fillerWords = regexp.MustCompile(`(?i)\b(introduction to|intro to|fundamentals|basics|beginner|complete|masterclass|course|101)\b`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// HookText derives a short 2-4 word hook from the topic, uppercased for
// impact. Common course filler words are stripped first; if nothing survives
// the stripping, the raw topic is used instead.
func HookText(topic string) string {
	text := fillerWords.ReplaceAllString(topic, "")
	text = strings.TrimSpace(spaceRuns.ReplaceAllString(text, " "))
	if text == "" {
		text = strings.TrimSpace(topic)
	}

	words := strings.Fields(text)
	var hook string
	if len(words) <= 2 {
		hook = strings.TrimSpace("Master " + text)
	} else {
		hook = strings.Join(words[:3], " ")
	}
	return strings.ToUpper(hook)
}

// BuildThumbnailPrompt converts a topic and its hook text into the
// instruction sent to the image model. The template is deterministic: the
// same inputs always produce the same prompt. It asks for exactly two
// elements (the hook text and a person portrait) and forbids the usual
// thumbnail clutter the models like to invent.
func BuildThumbnailPrompt(topic, hook, style string) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("Design a YouTube-style thumbnail for %q with ONLY two elements:", topic),
		fmt.Sprintf("1) the EXACT hook text: %q (render this as the ONLY text)", hook),
		"2) a professional person portrait (waist-up or headshot) looking at camera",
		"")

	lines = append(lines,
		"Composition and style:",
		"- Text on one side, person on the other; clear separation",
		"- Vibrant, colorful background (solid or subtle gradient) with strong contrast",
		"- Big typography; subtle outline or shadow allowed for readability",
		fmt.Sprintf("- Modern, minimal, premium look with a %s feel", strings.TrimSpace(style)),
		"")

	lines = append(lines,
		"Strict constraints:",
		fmt.Sprintf("- Render ONLY this text: %q. Do not add any other words, numbers, badges, subtitles, or symbols", hook),
		"- ZERO logos or branding (YouTube, TED, Microsoft, Python or any icons)",
		"- NO timestamps or durations (e.g., 5:29, 11:48, 2:02:21)",
		"- NO badges, playlists, counters (e.g., 9 videos), watermarks, corner tags",
		`- NO labels like "Ex-Microsoft", "Variables & Data Types", or topic outlines`,
		"- NO UI elements: buttons, menus, share icons, play buttons, dots, progress bars, carousels, profile chips",
		"- NO random small or fake text anywhere",
		"")

	lines = append(lines,
		"Content rules:",
		"- One person (max two); business-casual attire; friendly, confident expression",
		"- Keep layout uncluttered; emphasize the hook text and the person only")

	return strings.Join(lines, "\n")
}

// AspectRatioTag maps a colon-separated aspect ratio onto the token the
// Ideogram API expects. Unrecognized values fall back to 16x9.
func AspectRatioTag(aspect string) string {
	switch strings.TrimSpace(aspect) {
	case "16:9":
		return "16x9"
	case "9:16":
		return "9x16"
	case "4:3":
		return "4x3"
	case "3:4":
		return "3x4"
	case "1:1":
		return "1x1"
	default:
		return "16x9"
	}
}
