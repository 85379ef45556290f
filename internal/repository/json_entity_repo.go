package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"class-finder/internal/domain"
)

const dataDirName = "classes"

// JSONEntityRepository lee las entidades de archivos *.json ubicados bajo
// algun directorio "classes" dentro de root. Cada archivo es un array de
// documentos CharacterSource.
type JSONEntityRepository struct {
	root string
}

func NewJSONEntityRepository(root string) *JSONEntityRepository {
	return &JSONEntityRepository{root: root}
}

// Files lists the data files in lexical order.
func (r *JSONEntityRepository) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		dirs := strings.Split(filepath.ToSlash(filepath.Dir(path)), "/")
		if slices.Contains(dirs, dataDirName) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", r.root, err)
	}
	slices.Sort(files)
	return files, nil
}

// Sources decodes and validates every document. All invalid documents
// and duplicated names are reported together.
func (r *JSONEntityRepository) Sources(ctx context.Context) ([]domain.CharacterSource, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}
	var (
		sources []domain.CharacterSource
		errs    error
	)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var batch []domain.CharacterSource
		if err := readJSON(file, &batch); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, source := range batch {
			if err := source.Validate(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
				continue
			}
			sources = append(sources, source)
		}
	}
	errs = multierr.Append(errs, checkUnique(sources))
	if errs != nil {
		return nil, errs
	}
	return sources, nil
}

func (r *JSONEntityRepository) List(ctx context.Context) ([]domain.Character, error) {
	sources, err := r.Sources(ctx)
	if err != nil {
		return nil, err
	}
	chars := make([]domain.Character, 0, len(sources))
	for _, source := range sources {
		c, err := source.ToCharacter()
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	return chars, nil
}

// FindByName busca una entidad sin distinguir mayusculas.
func (r *JSONEntityRepository) FindByName(ctx context.Context, name string) (*domain.Character, error) {
	chars, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for _, c := range chars {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrEntityNotFound, name)
}

// Documents decodes every entry leniently, without schema checks.
func (r *JSONEntityRepository) Documents(ctx context.Context) ([]domain.Document, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}
	var (
		docs []domain.Document
		errs error
	)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var batch []domain.Document
		if err := readJSON(file, &batch); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		docs = append(docs, batch...)
	}
	return docs, errs
}

func readJSON(file string, out any) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %v", file, domain.ErrInvalidSource, err)
	}
	return nil
}
