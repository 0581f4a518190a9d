package match

import "sort"

// DefaultSuggestThreshold is the minimum similarity for a name to be suggested.
const DefaultSuggestThreshold = 0.5

// Candidate is a known name scored against a wanted one.
type Candidate struct {
	Name  string
	Score float64 // Normalized Levenshtein similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against wanted.
// Returns candidates sorted by score (descending).
func RankCandidates(wanted string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NormalizedLevenshteinScore(wanted, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit known names resembling wanted.
func Suggest(wanted string, known []string, limit int) []string {
	ranked := RankCandidates(wanted, known).AboveThreshold(DefaultSuggestThreshold).Top(limit)
	if len(ranked) == 0 {
		return nil
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
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
