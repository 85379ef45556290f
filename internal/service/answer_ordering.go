package service

import (
	"slices"

	"class-finder/internal/domain"
)

// unrankedLabel is finite so two unranked labels compare equal.
const unrankedLabel = 1 << 20

var canonicalRanks = buildCanonicalRanks(
	[]string{domain.AnswerDontCare, domain.AnswerYes, domain.AnswerNo},
	domain.RarityScale,
	domain.ArmorScale,
	domain.Attributes,
	domain.Kinds,
	domain.Traditions,
	domain.SpellcastingKinds,
	domain.MartialWeapons,
)

func buildCanonicalRanks(groups ...[]string) map[string]int {
	ranks := make(map[string]int)
	for _, group := range groups {
		for _, label := range group {
			if _, ok := ranks[label]; !ok {
				ranks[label] = len(ranks)
			}
		}
	}
	return ranks
}

func canonicalRank(label string) int {
	if r, ok := canonicalRanks[label]; ok {
		return r
	}
	return unrankedLabel
}

// CompareLabels orders answer labels for display. Unknown labels sort
// after known ones and compare equal among themselves.
func CompareLabels(a, b string) int {
	return canonicalRank(a) - canonicalRank(b)
}

// SortLabels returns labels sorted lexicographically, then stably by
// canonical rank. Display only; never used for scoring.
func SortLabels(labels []string) []string {
	out := slices.Clone(labels)
	slices.Sort(out)
	slices.SortStableFunc(out, CompareLabels)
	return out
}
