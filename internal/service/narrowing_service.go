package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"class-finder/internal/domain"
)

var (
	ErrEmptyEntitySet = errors.New("no entities to narrow")
	ErrUnknownAnswer  = errors.New("answer is not an option of the question")
)

// AnswerPrompter presents a question and returns exactly one of labels.
type AnswerPrompter interface {
	Choose(ctx context.Context, text string, labels []string) (string, error)
}

// Session is the state of one narrowing run. It is owned by a single
// caller; Remaining shrinks and Asked grows as answers are applied.
type Session struct {
	ID        string
	Remaining []domain.Character
	Asked     []string
}

// NewSession starts a session over a copy of entities.
func NewSession(id string, entities []domain.Character) *Session {
	return &Session{ID: id, Remaining: slices.Clone(entities)}
}

// Step is the outcome of one round: either a question to ask or the
// single remaining character.
type Step struct {
	Question *Question
	Resolved *domain.Character
}

// NarrowingService runs the question/answer reduction loop.
type NarrowingService struct {
	catalog  []TraitSpec
	selector QuestionSelector
	logger   *zap.Logger
}

func NewNarrowingService(logger *zap.Logger, catalog []TraitSpec, maxAnswers int) *NarrowingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &NarrowingService{
		catalog: catalog,
		selector: QuestionSelector{
			MaxAnswers:     maxAnswers,
			IdentifierText: IdentifierText(catalog),
		},
		logger: logger,
	}
}

// Candidates synthesizes a question for every trait that applies to all
// of entities. A trait that is null for any entity is skipped for the
// whole round.
func (s *NarrowingService) Candidates(entities []domain.Character) []Question {
	questions := make([]Question, 0, len(s.catalog))
	for _, spec := range s.catalog {
		if !AppliesToAll(spec.Trait, entities) {
			continue
		}
		questions = append(questions, Synthesize(spec, entities))
	}
	return questions
}

// AppliesToAll reports whether no entity has a null value for trait.
func AppliesToAll(trait domain.Trait, entities []domain.Character) bool {
	for _, c := range entities {
		if c.Value(trait).IsNull() {
			return false
		}
	}
	return true
}

// Next computes the current round of session.
func (s *NarrowingService) Next(session *Session) (Step, error) {
	switch len(session.Remaining) {
	case 0:
		return Step{}, ErrEmptyEntitySet
	case 1:
		resolved := session.Remaining[0]
		return Step{Resolved: &resolved}, nil
	}

	candidates := s.Candidates(session.Remaining)
	best, err := s.selector.SelectBest(candidates, session.Asked)
	if err != nil {
		return Step{}, fmt.Errorf("select question over %d entities: %w", len(session.Remaining), err)
	}

	s.logger.Debug("question selected",
		zap.String("session_id", session.ID),
		zap.Int("remaining", len(session.Remaining)),
		zap.Int("candidates", len(candidates)),
		zap.String("trait", string(best.Trait)),
		zap.Float64("score", best.Score),
		zap.Int("answers", len(best.Answers)),
	)
	return Step{Question: &best}, nil
}

// Answer narrows session to the characters under label and records the
// question as asked.
func (s *NarrowingService) Answer(session *Session, q Question, label string) error {
	chars, ok := q.Answers[label]
	if !ok || len(chars) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownAnswer, label)
	}
	session.Remaining = slices.Clone(chars)
	session.Asked = append(session.Asked, q.Text)

	s.logger.Debug("answer applied",
		zap.String("session_id", session.ID),
		zap.String("answer", label),
		zap.Int("remaining", len(session.Remaining)),
	)
	return nil
}

// Run asks questions through prompter until one character remains.
func (s *NarrowingService) Run(ctx context.Context, session *Session, prompter AnswerPrompter) (domain.Character, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Character{}, err
		}

		step, err := s.Next(session)
		if err != nil {
			return domain.Character{}, err
		}
		if step.Resolved != nil {
			s.logger.Info("session resolved",
				zap.String("session_id", session.ID),
				zap.String("result", step.Resolved.Name),
				zap.Int("questions", len(session.Asked)),
			)
			return *step.Resolved, nil
		}

		label, err := prompter.Choose(ctx, step.Question.Text, step.Question.Labels())
		if err != nil {
			return domain.Character{}, fmt.Errorf("prompt %q: %w", step.Question.Text, err)
		}
		if err := s.Answer(session, *step.Question, label); err != nil {
			return domain.Character{}, err
		}
	}
}
