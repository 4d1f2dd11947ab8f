package release

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// numberRegex extracts standalone numbers from match keys ("catch 22").
var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// MatchConfidence represents the confidence level of a title match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the best candidate found by MatchTitle.
type MatchResult struct {
	Title      string          // Candidate as given, empty when nothing matched
	Score      float64         // Jaro-Winkler similarity (0.0-1.0) after number adjustment
	Confidence MatchConfidence // Bucketed Score
}

// MatchKey folds a title into the accent-free, space-separated key used for
// fuzzy comparison. It starts from the canonical form, so ids, a trailing
// year and the leading article are already gone.
func MatchKey(title string) string {
	s := removeAccents(NormalizeTitle(title))
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'':
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// MatchTitle finds the candidate closest to parsed.
// Jaro-Winkler favors shared prefixes, which suits series names; numbers that
// agree between both sides earn a small bonus and disagreeing ones a penalty.
func MatchTitle(parsed string, candidates []string) MatchResult {
	if len(candidates) == 0 {
		return MatchResult{Confidence: ConfidenceNone}
	}

	key := MatchKey(parsed)
	parsedNumbers := numberRegex.FindAllString(key, -1)

	var best MatchResult
	for _, candidate := range candidates {
		candidateKey := MatchKey(candidate)
		score := float64(edlib.JaroWinklerSimilarity(key, candidateKey))
		score = adjustScoreForNumbers(score, parsedNumbers, numberRegex.FindAllString(candidateKey, -1))

		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best = MatchResult{Score: best.Score, Confidence: ConfidenceNone}
	}

	return best
}

func adjustScoreForNumbers(score float64, parsedNums, candidateNums []string) float64 {
	if len(parsedNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	for _, p := range parsedNums {
		for _, c := range candidateNums {
			if p == c {
				return min(score*1.05, 1.0)
			}
		}
	}
	return score * 0.90
}
