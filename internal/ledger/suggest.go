package ledger

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestRecipient returns the closest existing username to the given
// input, for the transfer form's "did you mean" hint. A candidate
// qualifies when its normalized edit distance is under 0.4 of the
// longer string. The session account is never suggested.
func (e *Engine) SuggestRecipient(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}
	best := ""
	bestScore := 0.4
	for _, a := range e.accounts {
		if e.current != nil && a.Username == e.current.Username {
			continue
		}
		dist := levenshtein.ComputeDistance(input, a.Username)
		maxlen := len(input)
		if len(a.Username) > maxlen {
			maxlen = len(a.Username)
		}
		if maxlen == 0 {
			continue
		}
		score := float64(dist) / float64(maxlen)
		if score < bestScore {
			best = a.Username
			bestScore = score
		}
	}
	return best, best != ""
}
