package match

import (
	"cmp"
	"slices"
)

// DefaultMinScore is the similarity a known name needs to be suggested.
const DefaultMinScore = 0.5

// Candidate is a known name and its similarity to the input.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// Rank scores every known name against input. Candidates are sorted by score
// descending, then by name.
func Rank(input string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{Name: name, Score: Similarity(input, name)})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Suggest returns the known name closest to input when its score reaches
// DefaultMinScore.
func Suggest(input string, known []string) (string, bool) {
	best := Rank(input, known).AboveThreshold(DefaultMinScore).Best()
	if best == nil {
		return "", false
	}

	return best.Name, true
}
