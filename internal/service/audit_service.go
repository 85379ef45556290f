package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"class-finder/internal/domain"
)

var (
	ErrIncompleteEntry = errors.New("entry is missing required keys")
	ErrUnexpectedKey   = errors.New("unexpected key")
)

// DocumentSource provee los documentos crudos para la auditoria.
type DocumentSource interface {
	Documents(ctx context.Context) ([]domain.Document, error)
}

type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type AuditReport struct {
	Total      int        `json:"total"`
	Incomplete []string   `json:"incomplete"`
	Keys       []KeyCount `json:"keys"`
	Unexpected []KeyCount `json:"unexpected"`
}

// Err combines every finding of the report, or returns nil for clean data.
func (r AuditReport) Err() error {
	var err error
	for _, name := range r.Incomplete {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrIncompleteEntry, name))
	}
	for _, kc := range r.Unexpected {
		err = multierr.Append(err, fmt.Errorf("%w: %s (%d entries)", ErrUnexpectedKey, kc.Key, kc.Count))
	}
	return err
}

type AuditService struct {
	logger *zap.Logger
	source DocumentSource
}

func NewAuditService(logger *zap.Logger, source DocumentSource) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{logger: logger, source: source}
}

// Audit counts the keys used across all documents and flags entries
// missing a required key and keys outside the source schema.
func (s *AuditService) Audit(ctx context.Context) (AuditReport, error) {
	docs, err := s.source.Documents(ctx)
	if err != nil {
		return AuditReport{}, fmt.Errorf("load documents: %w", err)
	}
	return AuditDocuments(docs), nil
}

func AuditDocuments(docs []domain.Document) AuditReport {
	report := AuditReport{Total: len(docs)}
	counts := make(map[string]int)
	for i, doc := range docs {
		for key := range doc {
			counts[key]++
		}
		for _, key := range domain.SourceRequiredKeys {
			if _, ok := doc[key]; !ok {
				report.Incomplete = append(report.Incomplete, documentLabel(doc, i))
				break
			}
		}
	}

	for key, n := range counts {
		kc := KeyCount{Key: key, Count: n}
		report.Keys = append(report.Keys, kc)
		if !slices.Contains(domain.SourceRequiredKeys, key) && !slices.Contains(domain.SourceOptionalKeys, key) {
			report.Unexpected = append(report.Unexpected, kc)
		}
	}
	byKey := func(a, b KeyCount) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	}
	slices.SortFunc(report.Keys, byKey)
	slices.SortFunc(report.Unexpected, byKey)
	return report
}

func documentLabel(doc domain.Document, index int) string {
	var name string
	if raw, ok := doc["name"]; ok && json.Unmarshal(raw, &name) == nil && name != "" {
		return name
	}
	return fmt.Sprintf("entry #%d", index+1)
}
