package components

import "strings"

// Suggest returns candidates containing input, case-insensitive, capped at
// limit. Empty input yields nothing.
func Suggest(input string, candidates []string, limit int) []string {
	if input == "" {
		return nil
	}
	needle := strings.ToLower(input)
	var matches []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), needle) {
			matches = append(matches, c)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
