package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/multierr"

	"class-finder/internal/domain"
)

var (
	ErrDuplicateEntity = errors.New("duplicate entity name")
	ErrEntityNotFound  = errors.New("entity not found")
)

// EntityRepository entrega el set completo de personajes a narrowear.
type EntityRepository interface {
	List(ctx context.Context) ([]domain.Character, error)
}

type PgEntityRepository struct {
	pool *pgxpool.Pool
}

func NewPgEntityRepository(pool *pgxpool.Pool) *PgEntityRepository {
	return &PgEntityRepository{pool: pool}
}

// EnsureSchema crea la tabla de entidades si no existe.
func (r *PgEntityRepository) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS entities (
			name TEXT PRIMARY KEY,
			document JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

// Upsert validates source and stores it under its name.
func (r *PgEntityRepository) Upsert(ctx context.Context, source domain.CharacterSource) error {
	if err := source.Validate(); err != nil {
		return err
	}
	document, err := json.Marshal(source)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO entities (name, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()
	`
	_, err = r.pool.Exec(ctx, query, source.Name, document)
	return err
}

func (r *PgEntityRepository) List(ctx context.Context) ([]domain.Character, error) {
	raws, err := r.listDocuments(ctx)
	if err != nil {
		return nil, err
	}
	var (
		chars []domain.Character
		errs  error
	)
	for _, raw := range raws {
		c, err := decodeCharacter(raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		chars = append(chars, c)
	}
	if errs != nil {
		return nil, errs
	}
	return chars, nil
}

// Documents devuelve los documentos crudos para la auditoria.
func (r *PgEntityRepository) Documents(ctx context.Context) ([]domain.Document, error) {
	raws, err := r.listDocuments(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(raws))
	for _, raw := range raws {
		var doc domain.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *PgEntityRepository) FindByName(ctx context.Context, name string) (*domain.Character, error) {
	const query = `
		SELECT document
		FROM entities
		WHERE LOWER(name) = LOWER($1)
	`
	var raw []byte
	err := r.pool.QueryRow(ctx, query, strings.TrimSpace(name)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	c, err := decodeCharacter(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgEntityRepository) listDocuments(ctx context.Context) ([][]byte, error) {
	const query = `
		SELECT document
		FROM entities
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raws [][]byte
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return raws, nil
}

func decodeCharacter(raw []byte) (domain.Character, error) {
	var source domain.CharacterSource
	if err := json.Unmarshal(raw, &source); err != nil {
		return domain.Character{}, fmt.Errorf("%w: %v", domain.ErrInvalidSource, err)
	}
	return source.ToCharacter()
}

// checkUnique rejects data sets where two entries share a name.
func checkUnique(sources []domain.CharacterSource) error {
	seen := make(map[string]struct{}, len(sources))
	var errs error
	for _, source := range sources {
		if _, dup := seen[source.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrDuplicateEntity, source.Name))
			continue
		}
		seen[source.Name] = struct{}{}
	}
	return errs
}
