package game

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spacehole-rogue/starlanes/internal/world"
)

// AutoComplete returns the longest common prefix of the candidates that
// start with s, or "" when none do.
func AutoComplete(s string, candidates []string) string {
	var prefix string
	found := false
	for _, c := range candidates {
		if !strings.HasPrefix(c, s) {
			continue
		}
		if !found {
			prefix, found = c, true
			continue
		}
		prefix = commonPrefix(prefix, c)
	}
	return prefix
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

// ContainedPrefix returns the longest prefix of s that is one of the
// candidates, or "".
func ContainedPrefix(s string, candidates []string) string {
	for sub := s; sub != ""; sub = sub[:len(sub)-1] {
		if slices.Contains(candidates, sub) {
			return sub
		}
	}
	return ""
}

// SingleSpaces collapses runs of whitespace to one space and trims the
// ends. A leading or trailing space survives as one space when asked to
// be retained.
func SingleSpaces(s string, retainStart, retainEnd bool) string {
	lead := retainStart && s != strings.TrimLeft(s, " \t\n\r\v\f")
	trail := retainEnd && s != strings.TrimRight(s, " \t\n\r\v\f")
	out := strings.Join(strings.Fields(s), " ")
	if lead {
		out = " " + out
	}
	if trail {
		out += " "
	}
	return out
}

// isText reports whether r may be typed into the search box.
func isText(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// SearchConvert turns upper-case search text into a designation:
// "SOL 3-A" becomes "Sol III-A".
func SearchConvert(s string) string {
	if s == "" {
		return ""
	}
	body, moon, hasMoon := strings.Cut(s, "-")
	if hasMoon {
		moon, _, _ = strings.Cut(moon, "-")
		moon = "-" + moon
	}
	words := strings.Fields(cases.Title(language.English).String(body))
	if n := len(words); n > 0 {
		last := strings.ToUpper(words[n-1])
		if roman, ok := planetToken(last); ok {
			words[n-1] = roman
		}
	}
	return strings.Join(words, " ") + moon
}

// planetToken reads the trailing word of a designation as a planet
// number, Arabic (1-9) or Roman, and returns it as a Roman numeral.
func planetToken(word string) (string, bool) {
	if len(word) == 1 && word[0] >= '1' && word[0] <= '9' {
		return world.RomanNumeral(int(word[0] - '0'))
	}
	if _, ok := world.RomanValue(word); ok {
		return word, true
	}
	return "", false
}
