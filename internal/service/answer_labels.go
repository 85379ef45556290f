package service

import (
	"slices"

	"class-finder/internal/domain"
)

// LabelsFor returns the answer labels c is not disqualified by. A null
// value yields no labels; such traits are dropped for the whole round
// before synthesis.
func LabelsFor(spec TraitSpec, c domain.Character) []string {
	v := c.Value(spec.Trait)
	if v.IsNull() {
		return nil
	}

	switch spec.Strategy {
	case StrategyIdentifier:
		return []string{c.Name}

	case StrategyFreeText:
		return nil

	case StrategyNeutral:
		if v.Bool {
			return []string{domain.AnswerYes, domain.AnswerDontCare}
		}
		return []string{domain.AnswerNo, domain.AnswerDontCare}

	case StrategyYesEliminates:
		if v.Bool {
			return []string{domain.AnswerYes, domain.AnswerDontCare}
		}
		return []string{domain.AnswerDontCare}

	case StrategyNoEliminates:
		if v.Bool {
			return []string{domain.AnswerDontCare}
		}
		return []string{domain.AnswerNo, domain.AnswerDontCare}

	case StrategyOrdinal:
		rank := slices.Index(spec.Scale, v.String)
		if rank < 0 {
			return []string{v.String}
		}
		if spec.Direction == AtOrAbove {
			return slices.Clone(spec.Scale[rank:])
		}
		return slices.Clone(spec.Scale[:rank+1])

	case StrategyValues:
		var labels []string
		for _, value := range valuesOf(v) {
			if expanded, ok := spec.Expand[value]; ok {
				labels = append(labels, expanded...)
				continue
			}
			labels = append(labels, value)
		}
		return append(labels, domain.AnswerDontCare)

	case StrategyNamedBool:
		if v.Kind == domain.ValueBool && !v.Bool {
			return []string{domain.AnswerNo, domain.AnswerDontCare}
		}
		labels := []string{domain.AnswerYes}
		labels = append(labels, valuesOf(v)...)
		return append(labels, domain.AnswerDontCare)
	}
	return nil
}

func valuesOf(v domain.TraitValue) []string {
	switch v.Kind {
	case domain.ValueString:
		return []string{v.String}
	case domain.ValueStrings:
		return v.Strings
	}
	return nil
}
