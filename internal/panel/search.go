package panel

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SearchResult is one hit of Search. Exactly one of Entry and Account is set.
type SearchResult struct {
	Label   string
	Entry   NavEntry
	Account *AccountSubEntry
	Score   int // lower is better
}

// Search matches query against rail and account labels. Prefix matches rank
// first, then substring matches, then (for queries of three or more runes)
// typo-tolerant matches within an edit distance of a third of the query
// length. At most limit results are
// returned; limit <= 0 means no limit.
func (p *Panel) Search(query string, limit int) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult
	for _, e := range p.entries {
		if score, ok := matchScore(q, e.EntryLabel()); ok {
			results = append(results, SearchResult{Label: e.EntryLabel(), Entry: e, Score: score})
		}
	}
	for i := range p.account {
		sub := p.account[i]
		if score, ok := matchScore(q, sub.Label); ok {
			results = append(results, SearchResult{Label: sub.Label, Account: &sub, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ActivateResult activates the entry behind a search hit.
func (p *Panel) ActivateResult(r SearchResult) {
	switch {
	case r.Entry != nil:
		p.Activate(r.Entry)
	case r.Account != nil:
		p.ActivateAccount(*r.Account)
	}
}

func matchScore(q, label string) (int, bool) {
	l := strings.ToLower(label)
	if strings.HasPrefix(l, q) {
		return 0, true
	}
	if strings.Contains(l, q) {
		return 1, true
	}

	qLen := utf8.RuneCountInString(q)
	if qLen < 3 {
		return 0, false
	}
	best := -1
	for _, word := range append([]string{l}, strings.Fields(l)...) {
		d := levenshtein.ComputeDistance(q, truncateRunes(word, qLen))
		if best < 0 || d < best {
			best = d
		}
	}
	if best > max(1, qLen/3) {
		return 0, false
	}
	return 2 + best, true
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
