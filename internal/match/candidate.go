package match

import (
	"sort"
)

// Candidate is a registered name scored against a query.
type Candidate struct {
	Name string
	// Score is the best of the full-name and simple-name similarity.
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// Rank scores every name against query and sorts the result.
func Rank(query string, names []string) CandidateList {
	full := NormalizeName(query)
	simple := NormalizeName(SimpleName(query))

	out := make(CandidateList, 0, len(names))

	for _, name := range names {
		score := max(
			Similarity(full, NormalizeName(name)),
			Similarity(simple, NormalizeName(SimpleName(name))),
		)

		out = append(out, Candidate{Name: name, Score: score})
	}

	sort.Sort(out)

	return out
}

func (c CandidateList) Len() int { return len(c) }

func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold keeps the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	out := make([]string, len(c))
	for i, cand := range c {
		out[i] = cand.Name
	}

	return out
}
