package ptysup

import "regexp"

// ansiEscape matches standard ANSI/VT100 escape sequences, stripped before
// prompt-sentinel matching so cursor movement and color codes never fool the
// detector.
var ansiEscape = regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

func stripANSI(b []byte) []byte {
	return ansiEscape.ReplaceAll(b, nil)
}

// substitutionShape matches a line that still looks like an unexpanded
// command substitution, e.g. "$(tput sgr0)", which means the prompt echo
// needs to be re-sent so the shell expands it.
var substitutionShape = regexp.MustCompile(`^\$\(.*\)$`)

func looksUnexpanded(line string) bool {
	return substitutionShape.MatchString(line)
}
