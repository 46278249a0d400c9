// Package validate holds the field format predicates applied to submitter
// input. The same predicates run for draft (per-keystroke) checks and again
// at submission time, so the two can never diverge.
package validate

import "unicode"

// Name reports whether s is a well formed customer name: non-empty and
// made of Unicode letters and spaces only. Accented Latin characters are
// letters and therefore accepted; digits and punctuation are not.
func Name(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// Registration reports whether s is exactly 4 ASCII decimal digits.
func Registration(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RegistrationDraft reports whether s could still grow into a valid
// registration: at most 4 runes, all ASCII digits. Registration is the one
// field whose full predicate rejects every proper prefix, so draft checks
// use this relaxation while submission uses Registration.
func RegistrationDraft(s string) bool {
	if len(s) > 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Notes reports whether s is acceptable free-text notes: letters, digits,
// spaces and the punctuation set ". , ! ? -". The empty string is valid
// because notes are optional.
func Notes(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			continue
		}
		switch r {
		case '.', ',', '!', '?', '-':
		default:
			return false
		}
	}
	return true
}
