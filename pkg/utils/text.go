package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const displayDateLayout = "January 2, 2006 at 03:04 PM"

// FormatDate renders t the way the listing page shows creation dates,
// e.g. "January 2, 2024 at 03:04 PM".
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// TruncateText cuts text to maxLength characters and appends "...".
func TruncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	return string([]rune(text)[:maxLength]) + "..."
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// GenerateSlug lower-cases title, folds accents, drops anything that is
// not a letter, digit, space or dash, then collapses spaces into dashes.
func GenerateSlug(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}

	slug := strings.ToLower(folded)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugDashes.ReplaceAllString(slug, "-")
	return strings.TrimSpace(slug)
}

type NoteData struct {
	Title   string
	Summary string
	Content string
}

const (
	MaxTitleLength   = 200
	MaxSummaryLength = 500
)

// ValidateNoteData reports every problem with a note's fields. Unlike the
// generation checks, blank (whitespace-only) values count as missing.
func ValidateNoteData(data NoteData) (bool, []string) {
	var errs []string

	if strings.TrimSpace(data.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(data.Summary) == "" {
		errs = append(errs, "Summary is required")
	}
	if strings.TrimSpace(data.Content) == "" {
		errs = append(errs, "Content is required")
	}
	if utf8.RuneCountInString(data.Title) > MaxTitleLength {
		errs = append(errs, "Title must be less than 200 characters")
	}
	if utf8.RuneCountInString(data.Summary) > MaxSummaryLength {
		errs = append(errs, "Summary must be less than 500 characters")
	}

	return len(errs) == 0, errs
}
