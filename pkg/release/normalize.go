package release

import (
	"regexp"
	"strings"
)

// Unified separators for the two normalization regimes.
const (
	// CanonicalSeparator joins words in comparison keys.
	CanonicalSeparator = "."
	// RenameSeparator joins words in the title portion of a rename target,
	// where "." is reserved for the episode delimiter and the extension.
	RenameSeparator = " "
)

// minTitleLengthWithYear is the shortest title that may carry a year suffix.
// Anything this short keeps its trailing numeral ("catch.22").
const minTitleLengthWithYear = 7

var (
	forbiddenSeparators = []string{" ", "_"}
	forbiddenCharacters = []string{":", ";"}
	leadingArticles     = []string{"The", "the"}
)

var (
	// externalIDPattern matches IMDb-style identifiers (tt0386676).
	externalIDPattern = regexp.MustCompile(`tt\d+`)

	// releaseYearPattern finds a word-bounded release year inside a segment,
	// so "2018", "(2018)" and "2018-RARBG" all carry one.
	releaseYearPattern = regexp.MustCompile(`\b(?:19[3-9]\d|20[0-3]\d)\b`)
)

// Normalizer rewrites titles and filenames into canonical form.
// The zero value is not useful; use Canonical or Rename, or set Separator.
type Normalizer struct {
	// Separator replaces every space and underscore.
	Separator string
	// FoldCase lowercases the input before any other rule runs.
	FoldCase bool
	// SuffixFirst strips the id/year suffix before the leading article, so
	// "The 2018" keeps "The" instead of collapsing to "2018".
	SuffixFirst bool
}

var (
	// Canonical produces dot-separated lowercase comparison keys.
	Canonical = Normalizer{Separator: CanonicalSeparator, FoldCase: true}

	// Rename produces the space-separated, case-preserving title used in
	// rename targets.
	Rename = Normalizer{Separator: RenameSeparator, SuffixFirst: true}
)

// NormalizeTitle returns the canonical comparison key for a title or filename.
func NormalizeTitle(raw string) string {
	return Canonical.Normalize(raw)
}

// NormalizeTitleForRename returns the display title used to build a filename.
func NormalizeTitleForRename(raw string) string {
	return Rename.Normalize(raw)
}

// Normalize runs the pipeline until its output stops changing, so that
// Normalize(Normalize(s)) == Normalize(s) for every s. After the first pass
// every stage can only shorten the string, which bounds the loop.
func (n Normalizer) Normalize(raw string) string {
	s := raw
	for {
		next := n.pass(s)
		if next == s {
			return next
		}
		s = next
	}
}

func (n Normalizer) pass(s string) string {
	sep := n.separator()
	if n.FoldCase {
		s = strings.ToLower(s)
	}
	s = UnifySeparators(s, sep)
	if n.SuffixFirst {
		s = StripIDAndYearSuffix(s, sep)
		s = StripLeadingArticle(s, sep)
	} else {
		s = StripLeadingArticle(s, sep)
		s = StripIDAndYearSuffix(s, sep)
	}
	return StripForbiddenCharacters(s)
}

func (n Normalizer) separator() string {
	if n.Separator == "" {
		return CanonicalSeparator
	}
	return n.Separator
}

// UnifySeparators replaces every space and underscore in s with sep.
func UnifySeparators(s, sep string) string {
	return replaceMany(s, forbiddenSeparators, sep)
}

// StripForbiddenCharacters removes every ':' and ';' from s.
func StripForbiddenCharacters(s string) string {
	return replaceMany(s, forbiddenCharacters, "")
}

// StripLeadingArticle removes a leading "The"+sep or "the"+sep.
func StripLeadingArticle(s, sep string) string {
	for _, article := range leadingArticles {
		if rest, ok := strings.CutPrefix(s, article+sep); ok {
			return rest
		}
	}
	return s
}

// StripIDAndYearSuffix removes external ids anywhere in s, then drops the
// last segment when it contains a release year. Ids go first because "tt2018" would
// otherwise leave a year-looking tail behind.
func StripIDAndYearSuffix(s, sep string) string {
	s = externalIDPattern.ReplaceAllString(s, "")
	s = trimTrailing(s, sep)
	if len(s) <= minTitleLengthWithYear {
		return s
	}

	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s
	}
	if releaseYearPattern.MatchString(s[idx+len(sep):]) {
		s = trimTrailing(s[:idx], sep)
	}
	return s
}

func trimTrailing(s, sep string) string {
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s
}

func replaceMany(s string, old []string, repl string) string {
	for _, o := range old {
		s = strings.ReplaceAll(s, o, repl)
	}
	return s
}
