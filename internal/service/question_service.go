package service

import (
	"maps"
	"slices"

	"class-finder/internal/domain"
)

// AnswerMap maps an answer label to the characters consistent with it.
// Partitions may overlap.
type AnswerMap map[string][]domain.Character

// Question is one candidate question for the current subset.
type Question struct {
	Trait   domain.Trait
	Text    string
	Answers AnswerMap
	// Score is lower-is-better; +Inf means no answers.
	Score float64
	// Useless is set when no answer excludes anything.
	Useless bool
}

// Labels returns the answer labels in display order.
func (q Question) Labels() []string {
	return SortLabels(slices.Collect(maps.Keys(q.Answers)))
}

// Synthesize builds and scores the question for one trait over entities.
func Synthesize(spec TraitSpec, entities []domain.Character) Question {
	answers := make(AnswerMap)
	for _, c := range entities {
		seen := make(map[string]struct{})
		for _, label := range LabelsFor(spec, c) {
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			answers[label] = append(answers[label], c)
		}
	}

	collapseEquivalentAnswers(answers)

	useless := true
	for _, chars := range answers {
		if len(chars) != len(entities) {
			useless = false
			break
		}
	}

	return Question{
		Trait:   spec.Trait,
		Text:    spec.Text,
		Answers: answers,
		Score:   ScoreAnswers(answers, len(entities)),
		Useless: useless,
	}
}

// collapseEquivalentAnswers drops every label that selects exactly the
// same characters as "Yes" (e.g. "Animal" under "Do you want a companion?").
func collapseEquivalentAnswers(answers AnswerMap) {
	yes, ok := answers[domain.AnswerYes]
	if !ok {
		return
	}
	yesNames := nameSet(yes)
	for label, chars := range answers {
		if label == domain.AnswerYes {
			continue
		}
		if maps.Equal(yesNames, nameSet(chars)) {
			delete(answers, label)
		}
	}
}

func nameSet(chars []domain.Character) map[string]struct{} {
	set := make(map[string]struct{}, len(chars))
	for _, c := range chars {
		set[c.Name] = struct{}{}
	}
	return set
}
