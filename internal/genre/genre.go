// Package genre provides genre normalization for book records.
//
// Genres arrive as free text from the add-book form. Normalizing them to a
// canonical display name keeps the shelf searchable ("sci-fi", "SciFi" and
// "Science Fiction" all land on the same genre).
package genre

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any non-alphanumeric character.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Matches multiple hyphens.
	multipleHyphens = regexp.MustCompile(`-+`)
)

// aliases maps slugged variations to their canonical slug.
var aliases = map[string]string{
	"sci-fi":           "science-fiction",
	"scifi":            "science-fiction",
	"sf":               "science-fiction",
	"speculative":      "science-fiction",
	"high-fantasy":     "fantasy",
	"epic-fantasy":     "fantasy",
	"ya":               "young-adult",
	"teen":             "young-adult",
	"crime":            "mystery",
	"whodunit":         "mystery",
	"detective":        "mystery",
	"thriller":         "mystery",
	"bio":              "biography",
	"memoir":           "biography",
	"autobiography":    "biography",
	"non-fiction":      "nonfiction",
	"nonfic":           "nonfiction",
	"lit-fic":          "literary-fiction",
	"literature":       "literary-fiction",
	"historical":       "historical-fiction",
	"cyberpunk":        "science-fiction",
	"space-opera":      "science-fiction",
	"sword-sorcery":    "fantasy",
	"romantasy":        "romance",
	"self-improvement": "self-help",
}

// displayNames maps canonical slugs to display names.
var displayNames = map[string]string{
	"science-fiction":    "Science Fiction",
	"fantasy":            "Fantasy",
	"mystery":            "Mystery",
	"romance":            "Romance",
	"horror":             "Horror",
	"biography":          "Biography",
	"nonfiction":         "Nonfiction",
	"literary-fiction":   "Literary Fiction",
	"historical-fiction": "Historical Fiction",
	"young-adult":        "Young Adult",
	"self-help":          "Self-Help",
	"poetry":             "Poetry",
	"travel":             "Travel",
	"humor":              "Humor",
}

// Slugify converts a string to a URL-safe slug.
// "Science Fiction" -> "science-fiction".
// "Sci-Fi/Fantasy" -> "sci-fi-fantasy".
func Slugify(s string) string {
	// Normalize unicode (decompose accented characters).
	s = norm.NFKD.String(s)

	// Remove non-ASCII characters.
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	// Lowercase.
	s = strings.ToLower(s)

	// Replace non-alphanumeric with hyphens.
	s = nonAlphanumeric.ReplaceAllString(s, "-")

	// Collapse multiple hyphens.
	s = multipleHyphens.ReplaceAllString(s, "-")

	// Trim leading/trailing hyphens.
	s = strings.Trim(s, "-")

	return s
}

// Canonicalize maps a free-text genre to its canonical display name.
// Unknown genres are returned title-cased rather than rejected; the shelf
// accepts whatever the user shelves their books under.
func Canonicalize(raw string) string {
	slug := Slugify(raw)
	if slug == "" {
		return ""
	}

	if canonical, ok := aliases[slug]; ok {
		slug = canonical
	}

	if name, ok := displayNames[slug]; ok {
		return name
	}

	return titleCase(slug)
}

// titleCase turns a slug back into readable form: "weird-west" -> "Weird West".
func titleCase(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
