package classifier

import (
	"regexp"
	"strings"
	"unicode"

	"ai-memoire-be/internal/constant"
)

// maxThemeWords rejects runaway captures: a theme is a phrase, not a
// paragraph.
const maxThemeWords = 15

// themeTemplates capture the theme phrase following a cue word. Tried
// in order; the first accepted capture wins.
var themeTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)th[èe]me\s*(?:de (?:recherche|travail)\s*)?(?:est|:)\s*([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)(?:m[ée]moire|th[èe]se|travail de recherche)\s+(?:qui porte\s+)?sur\s+([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)sujet\s*(?:est|porte sur|:)\s*([^.,;!?\n]+)`),
	regexp.MustCompile(`(?i)[àa]\s+propos\s+d[e']\s*([^.,;!?\n]+)`),
}

// leadingArticles are stripped from the front of a captured theme so
// that "sur l'intelligence artificielle" yields "Intelligence
// artificielle".
var leadingArticles = []string{"l'", "l’", "d'", "d’", "le ", "la ", "les ", "un ", "une ", "des ", "de "}

// HasExplicitTheme reports whether the message states its theme through
// one of the cue-word templates. Fallback token themes are weak guesses;
// only an explicit statement should replace a tracked workflow theme.
func HasExplicitTheme(message string) bool {
	for _, template := range themeTemplates {
		if template.MatchString(message) {
			return true
		}
	}
	return false
}

// ExtractTheme pulls the document subject out of a message. It never
// fails: cue-word templates first, then a stop-word token fallback,
// then the fixed sentinel.
func ExtractTheme(message string) string {
	for _, template := range themeTemplates {
		match := template.FindStringSubmatch(message)
		if match == nil {
			continue
		}
		// The word cap is checked on the capture itself; stripping a
		// leading article afterwards must not slip an overlong capture
		// under the limit.
		capture := trimCapture(match[1])
		if capture == "" || len(strings.Fields(capture)) > maxThemeWords {
			continue
		}
		theme := stripLeadingArticle(capture)
		if theme == "" {
			continue
		}
		return capitalize(theme)
	}

	// Fallback: keep the first content tokens of the message.
	var content []string
	for _, token := range strings.Fields(message) {
		cleaned := strings.ToLower(strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		}))
		if cleaned == "" || isStopWord(cleaned) {
			continue
		}
		content = append(content, cleaned)
	}
	if len(content) >= 2 {
		if len(content) > 5 {
			content = content[:5]
		}
		return capitalize(strings.Join(content, " "))
	}

	return constant.ThemeUnspecified
}

func trimCapture(capture string) string {
	theme := strings.TrimSpace(capture)
	theme = strings.Trim(theme, `"'«»“”`)
	return strings.TrimSpace(theme)
}

func stripLeadingArticle(theme string) string {
	lower := strings.ToLower(theme)
	for _, article := range leadingArticles {
		if strings.HasPrefix(lower, article) {
			theme = theme[len(article):]
			break
		}
	}
	return strings.TrimSpace(theme)
}

func isStopWord(token string) bool {
	for _, stop := range constant.StopWords {
		if token == stop {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
