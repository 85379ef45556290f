package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"class-finder/internal/domain"
)

var ErrSessionResolved = errors.New("session already resolved")

// QuestionView es la pregunta pendiente tal como la ve un cliente remoto.
type QuestionView struct {
	Trait   domain.Trait `json:"trait"`
	Text    string       `json:"text"`
	Options []string     `json:"options"`
}

type SessionView struct {
	ID        string            `json:"id"`
	Remaining int               `json:"remaining"`
	Asked     []string          `json:"asked"`
	Question  *QuestionView     `json:"question,omitempty"`
	Result    *domain.Character `json:"result,omitempty"`
}

// SessionService drives narrowing sessions one step per call. Only
// names and asked texts are persisted; the pending question is
// recomputed on every load.
type SessionService struct {
	narrowing *NarrowingService
	store     SessionStore
	byName    map[string]domain.Character
	all       []string
	ttl       time.Duration
	logger    *zap.Logger
	newID     func() string
	now       func() time.Time
}

func NewSessionService(logger *zap.Logger, narrowing *NarrowingService, store SessionStore, entities []domain.Character, ttl time.Duration) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if narrowing == nil {
		narrowing = NewNarrowingService(logger, nil, 0)
	}
	if store == nil {
		store = NewMemorySessionStore()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	byName := make(map[string]domain.Character, len(entities))
	for _, c := range entities {
		byName[c.Name] = c
	}
	return &SessionService{
		narrowing: narrowing,
		store:     store,
		byName:    byName,
		all:       domain.Names(entities),
		ttl:       ttl,
		logger:    logger,
		newID:     uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *SessionService) Start(ctx context.Context) (SessionView, error) {
	if len(s.all) == 0 {
		return SessionView{}, ErrEmptyEntitySet
	}
	state := SessionState{
		ID:        s.newID(),
		Remaining: append([]string(nil), s.all...),
		CreatedAt: s.now(),
	}
	if err := s.store.Save(ctx, state, s.ttl); err != nil {
		return SessionView{}, fmt.Errorf("save session: %w", err)
	}
	s.logger.Info("session started", zap.String("session_id", state.ID), zap.Int("entities", len(state.Remaining)))
	return s.view(state)
}

func (s *SessionService) Get(ctx context.Context, id string) (SessionView, error) {
	state, err := s.store.Load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	return s.view(state)
}

// Answer applies label to the pending question of session id.
func (s *SessionService) Answer(ctx context.Context, id, label string) (SessionView, error) {
	state, err := s.store.Load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	session, err := s.rehydrate(state)
	if err != nil {
		return SessionView{}, err
	}
	step, err := s.narrowing.Next(session)
	if err != nil {
		return SessionView{}, err
	}
	if step.Resolved != nil {
		return SessionView{}, ErrSessionResolved
	}
	if err := s.narrowing.Answer(session, *step.Question, label); err != nil {
		return SessionView{}, err
	}

	state.Remaining = domain.Names(session.Remaining)
	state.Asked = session.Asked
	if err := s.store.Save(ctx, state, s.ttl); err != nil {
		return SessionView{}, fmt.Errorf("save session: %w", err)
	}
	return s.view(state)
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Load(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *SessionService) rehydrate(state SessionState) (*Session, error) {
	chars := make([]domain.Character, 0, len(state.Remaining))
	for _, name := range state.Remaining {
		c, ok := s.byName[name]
		if !ok {
			// El set de entidades cambio desde que se creo la sesion.
			return nil, fmt.Errorf("%w: entity %q no longer available", ErrSessionNotFound, name)
		}
		chars = append(chars, c)
	}
	return &Session{
		ID:        state.ID,
		Remaining: chars,
		Asked:     append([]string(nil), state.Asked...),
	}, nil
}

func (s *SessionService) view(state SessionState) (SessionView, error) {
	session, err := s.rehydrate(state)
	if err != nil {
		return SessionView{}, err
	}
	step, err := s.narrowing.Next(session)
	if err != nil {
		return SessionView{}, err
	}
	view := SessionView{
		ID:        state.ID,
		Remaining: len(state.Remaining),
		Asked:     append([]string{}, state.Asked...),
		Result:    step.Resolved,
	}
	if step.Question != nil {
		view.Question = &QuestionView{
			Trait:   step.Question.Trait,
			Text:    step.Question.Text,
			Options: step.Question.Labels(),
		}
	}
	return view, nil
}
