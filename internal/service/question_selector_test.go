package service

import (
	"errors"
	"fmt"
	"testing"

	"class-finder/internal/domain"
)

const nameText = "Here are your options:"

func fakeQuestion(text string, score float64, answers int, useless bool) Question {
	q := Question{Text: text, Score: score, Useless: useless, Answers: make(AnswerMap, answers)}
	for i := 0; i < answers; i++ {
		q.Answers[fmt.Sprintf("answer-%d", i)] = []domain.Character{{Name: fmt.Sprintf("c%d", i)}}
	}
	return q
}

func TestSelectBest_Empty(t *testing.T) {
	_, err := QuestionSelector{}.SelectBest(nil, nil)
	if !errors.Is(err, ErrEmptyCandidateSet) {
		t.Fatalf("expected ErrEmptyCandidateSet, got %v", err)
	}
}

func TestSelectBest_Cascade(t *testing.T) {
	selector := QuestionSelector{MaxAnswers: 4, IdentifierText: nameText}

	cases := []struct {
		name      string
		questions []Question
		asked     []string
		want      string
	}{
		{
			name: "lowest score wins",
			questions: []Question{
				fakeQuestion("b", 0.9, 2, false),
				fakeQuestion("a", 0.4, 2, false),
			},
			want: "a",
		},
		{
			name: "ties keep input order",
			questions: []Question{
				fakeQuestion("first", 0.5, 2, false),
				fakeQuestion("second", 0.5, 2, false),
			},
			want: "first",
		},
		{
			name: "already asked skipped",
			questions: []Question{
				fakeQuestion("a", 0.4, 2, false),
				fakeQuestion("b", 0.9, 2, false),
			},
			asked: []string{"a"},
			want:  "b",
		},
		{
			name: "everything asked rolls back to best",
			questions: []Question{
				fakeQuestion("b", 0.9, 2, false),
				fakeQuestion("a", 0.4, 2, false),
			},
			asked: []string{"a", "b"},
			want:  "a",
		},
		{
			name: "useless skipped",
			questions: []Question{
				fakeQuestion("useless", 0.1, 2, true),
				fakeQuestion("useful", 0.9, 2, false),
			},
			want: "useful",
		},
		{
			name: "all useless keeps best",
			questions: []Question{
				fakeQuestion("worse", 1.0, 2, true),
				fakeQuestion("better", 0.7, 2, true),
			},
			want: "better",
		},
		{
			name: "single answer skipped",
			questions: []Question{
				fakeQuestion("one", 0.1, 1, false),
				fakeQuestion("two", 0.9, 2, false),
			},
			want: "two",
		},
		{
			name: "identifier deprioritized",
			questions: []Question{
				fakeQuestion(nameText, 0.25, 3, false),
				fakeQuestion("trait", 0.9, 3, false),
			},
			want: "trait",
		},
		{
			name: "identifier when nothing else survives",
			questions: []Question{
				fakeQuestion(nameText, 0.25, 3, false),
				fakeQuestion("useless", 0.1, 3, true),
			},
			want: nameText,
		},
		{
			name: "too many answers skipped",
			questions: []Question{
				fakeQuestion("five", 0.2, 5, false),
				fakeQuestion("three", 0.6, 3, false),
			},
			want: "three",
		},
		{
			name: "earlier filter outranks later one",
			questions: []Question{
				fakeQuestion("wide", 0.6, 6, false),
				fakeQuestion("narrow useless", 0.1, 2, true),
			},
			want: "wide",
		},
		{
			name: "wide question preferred over identifier",
			questions: []Question{
				fakeQuestion(nameText, 0.2, 6, false),
				fakeQuestion("wide", 0.6, 6, false),
			},
			want: "wide",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := selector.SelectBest(tc.questions, tc.asked)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.Text != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.Text)
			}
		})
	}
}

func TestSelectBest_DefaultCeilingAndInputUntouched(t *testing.T) {
	questions := []Question{
		fakeQuestion("five", 0.2, 5, false),
		fakeQuestion("four", 0.3, 4, false),
	}
	got, err := QuestionSelector{}.SelectBest(questions, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Text != "four" {
		t.Fatalf("expected the default ceiling of %d to drop five answers, got %q", DefaultMaxAnswers, got.Text)
	}
	if questions[0].Text != "five" {
		t.Fatalf("expected input order preserved, got %q first", questions[0].Text)
	}
}

func TestSelectBest_NeverUselessUnlessAllUseless(t *testing.T) {
	questions := []Question{
		fakeQuestion("u1", 0.1, 2, true),
		fakeQuestion(nameText, 0.2, 2, false),
		fakeQuestion("u2", 0.3, 2, true),
	}
	got, err := QuestionSelector{IdentifierText: nameText}.SelectBest(questions, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Useless {
		t.Fatalf("expected a useful question, got %q", got.Text)
	}
}
