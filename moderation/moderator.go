package moderation

import (
	"log/slog"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

var linkSchemes = []string{"https://", "http://"}

// Moderator masks censored words in chat content before it is stored and broadcast.
type Moderator struct {
	log          *slog.Logger
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// textMapping is the searchable form of a message, each normalized rune
// remembers the index of the rune it came from.
type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the automaton over the normalized censored words.
// Words made only of noise normalize to nothing and are skipped.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		if mapping := normalize([]rune(word)); len(mapping.normalized) > 0 {
			patterns = append(patterns, mapping.normalized)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	log.Debug("Moderator built", "patterns", len(patterns))
	return &Moderator{log: log.With("component", "moderator"), matcher: m, censoredChar: censoredChar}, nil
}

// Censor replaces every rune of a match with the censored char, spacing and noise included,
// and returns the matched words in order of appearance (nil when the text is clean).
// A match must start a word, and links pasted in the chat are never altered.
func (m *Moderator) Censor(original string) (string, []string) {
	source := []rune(original)
	mapping := normalize(source)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	links := linkRanges(source)
	out := []rune(original)
	var words []string
	for _, span := range spans {
		start, end, ok := mapping.originalRange(span.Pos, len(span.Word))
		if !ok || !startsWord(source, start) || overlapsAny(links, start, end) {
			continue
		}
		for i := start; i < end; i++ {
			out[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}

	if len(words) == 0 {
		return original, nil
	}
	m.log.Debug("Content censored", "matches", len(words))
	return string(out), words
}

// originalRange maps a normalized span back to a half-open range over the source runes.
func (t textMapping) originalRange(pos, length int) (int, int, bool) {
	if pos < 0 || length == 0 || pos+length > len(t.origIdx) {
		return 0, 0, false
	}
	return t.origIdx[pos], t.origIdx[pos+length-1] + 1, true
}

func normalize(input []rune) textMapping {
	norm := make([]rune, 0, len(input))
	origIdx := make([]int, 0, len(input))

	for i, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

// simplifyRune maps common leet speak characters back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}

func startsWord(source []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := source[i-1]
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}

// linkRanges returns the half-open rune ranges of every http(s) link, a link ends at the next space.
func linkRanges(source []rune) [][2]int {
	var ranges [][2]int
	for i := 0; i < len(source); {
		if !hasLinkScheme(source[i:]) {
			i++
			continue
		}
		end := i
		for end < len(source) && !unicode.IsSpace(source[end]) {
			end++
		}
		ranges = append(ranges, [2]int{i, end})
		i = end
	}
	return ranges
}

func hasLinkScheme(rs []rune) bool {
	head := strings.ToLower(string(rs[:min(len(rs), len(linkSchemes[0]))]))
	for _, scheme := range linkSchemes {
		if strings.HasPrefix(head, scheme) {
			return true
		}
	}
	return false
}

func overlapsAny(ranges [][2]int, start, end int) bool {
	for _, r := range ranges {
		if start < r[1] && end > r[0] {
			return true
		}
	}
	return false
}
