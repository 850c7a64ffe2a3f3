package domain

import "strings"

// NormalizeTournament trims the raw label, title-cases each word and rejoins
// with single spaces. A blank label becomes DefaultTournament. The transform
// is idempotent.
func NormalizeTournament(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultTournament
	}

	words := strings.Fields(trimmed)
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
