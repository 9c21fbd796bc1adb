package core

import "regexp"

// Trigger tests message text for a match. Commands need a match anchored at
// the start of the text, listeners a match anywhere; the pattern engine
// behind it is an implementation detail.
type Trigger interface {
	// MatchStart returns the length of a match starting at offset 0 of text,
	// or -1 if there is none.
	MatchStart(text string) int

	// Find returns the first match anywhere in text.
	Find(text string) (string, bool)
}

type regexpTrigger struct {
	re *regexp.Regexp
}

func (t regexpTrigger) MatchStart(text string) int {
	loc := t.re.FindStringIndex(text)
	if loc == nil || loc[0] != 0 {
		return -1
	}
	return loc[1]
}

func (t regexpTrigger) Find(text string) (string, bool) {
	loc := t.re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

func NewTrigger(re *regexp.Regexp) Trigger {
	return regexpTrigger{re: re}
}

// MustTrigger compiles expr into a Trigger, panicking on a bad expression.
// For use with plugin registration at startup.
func MustTrigger(expr string) Trigger {
	return regexpTrigger{re: regexp.MustCompile(expr)}
}
