package ledger

import "strings"

// deriveUsername lower-cases the owner name and concatenates the first
// letter of each word: "Jonas Schmedtmann" -> "js". An empty owner
// derives an empty username.
func deriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		b.WriteRune([]rune(word)[0])
	}
	return b.String()
}

// findCollisions returns the usernames held by more than one account,
// in first-seen order.
func findCollisions(accounts []*Account) []string {
	seen := make(map[string]int, len(accounts))
	var dups []string
	for _, a := range accounts {
		seen[a.Username]++
		if seen[a.Username] == 2 {
			dups = append(dups, a.Username)
		}
	}
	return dups
}
