package service

import (
	"errors"
	"slices"
)

// DefaultMaxAnswers is the most answers a question may show before it is
// considered unwieldy.
const DefaultMaxAnswers = 4

var ErrEmptyCandidateSet = errors.New("no candidate questions")

// QuestionSelector picks the best question of a round.
type QuestionSelector struct {
	// MaxAnswers caps the number of answers; <= 0 uses DefaultMaxAnswers.
	MaxAnswers int
	// IdentifierText is the text of the question that names the result
	// directly; it is only asked when nothing else survives.
	IdentifierText string
}

// SelectBest sorts questions by score and applies filters in order. A
// filter that would eliminate every remaining question is skipped and the
// best question from before it is kept, so earlier filters weigh more.
// questions is not modified.
func (s QuestionSelector) SelectBest(questions []Question, asked []string) (Question, error) {
	if len(questions) == 0 {
		return Question{}, ErrEmptyCandidateSet
	}
	maxAnswers := s.MaxAnswers
	if maxAnswers <= 0 {
		maxAnswers = DefaultMaxAnswers
	}

	remaining := slices.Clone(questions)
	slices.SortStableFunc(remaining, func(a, b Question) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		}
		return 0
	})
	best := remaining[0]

	tryFilter := func(keep func(Question) bool) {
		filtered := slices.DeleteFunc(slices.Clone(remaining), func(q Question) bool { return !keep(q) })
		if len(filtered) == 0 {
			return
		}
		remaining = filtered
		best = remaining[0]
	}

	tryFilter(func(q Question) bool { return !slices.Contains(asked, q.Text) })
	tryFilter(func(q Question) bool { return !q.Useless })
	tryFilter(func(q Question) bool { return len(q.Answers) > 1 })
	// Naming the result ends the session, so it goes last.
	tryFilter(func(q Question) bool { return s.IdentifierText == "" || q.Text != s.IdentifierText })
	tryFilter(func(q Question) bool { return len(q.Answers) <= maxAnswers })

	return best, nil
}
