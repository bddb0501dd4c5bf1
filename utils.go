// utils.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file contains general utility functions.

package equicore

// RemoveRune removes a given rune from a slice of runes, returning
// a new slice. Used to strip stray whitespace and punctuation out
// of user-supplied rack strings before MachineLetterFromRune sees
// them.
func RemoveRune(s []rune, r rune) []rune {
	result := make([]rune, 0, len(s))
	for _, runeValue := range s {
		if runeValue != r {
			result = append(result, runeValue)
		}
	}
	return result
}

// ContainsRune returns true if a slice of runes contains a given rune.
func ContainsRune(s []rune, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// SanitizeRackInput strips spaces and hyphens from a user-typed
// rack string, leaving letters and '?' blanks.
func SanitizeRackInput(s string) string {
	runes := []rune(s)
	runes = RemoveRune(runes, ' ')
	runes = RemoveRune(runes, '-')
	return string(runes)
}
