package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/polyglot-quiz/backend/internal/models"
)

// DecodeSubjects reads a JSON array of subjects.
func DecodeSubjects(r io.Reader) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := json.NewDecoder(r).Decode(&subjects); err != nil {
		return nil, fmt.Errorf("decode subjects: %w", err)
	}
	return subjects, nil
}

// DecodeQuestions reads a JSON array of questions in the multilingual layout.
func DecodeQuestions(r io.Reader) ([]models.Question, error) {
	var questions []models.Question
	if err := json.NewDecoder(r).Decode(&questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

// Seed normalizes and validates every record before replacing the store
// contents with them. A nil slice leaves that collection untouched.
// Language keys outside the allow-list are dropped and missing translations
// are logged; a record left without any supported entry is rejected.
func Seed(ctx context.Context, seeder Seeder, subjects []models.Subject, questions []models.Question, log *zap.Logger) error {
	if err := prepareSubjects(subjects, log); err != nil {
		return err
	}
	if err := prepareQuestions(questions, log); err != nil {
		return err
	}

	if subjects != nil {
		if err := seeder.ReplaceSubjects(ctx, subjects); err != nil {
			return err
		}
		log.Info("subjects seeded", zap.Int("count", len(subjects)))
	}

	if questions != nil {
		if err := seeder.ReplaceQuestions(ctx, questions); err != nil {
			return err
		}
		log.Info("questions seeded", zap.Int("count", len(questions)))
	}

	return nil
}

func prepareSubjects(subjects []models.Subject, log *zap.Logger) error {
	seen := make(map[string]bool, len(subjects))
	for i := range subjects {
		if dropped := subjects[i].Normalize(); len(dropped) > 0 {
			log.Warn("unsupported languages dropped",
				zap.String("subject_id", subjects[i].ID),
				zap.Any("languages", dropped),
			)
		}
		if err := subjects[i].Validate(); err != nil {
			return err
		}
		if seen[subjects[i].ID] {
			return fmt.Errorf("%w: duplicate id %q", models.ErrInvalidSubject, subjects[i].ID)
		}
		seen[subjects[i].ID] = true
	}
	return nil
}

func prepareQuestions(questions []models.Question, log *zap.Logger) error {
	for i := range questions {
		if dropped := questions[i].Normalize(); len(dropped) > 0 {
			log.Warn("unsupported languages dropped",
				zap.String("subject_id", questions[i].SubjectID),
				zap.Int("question_id", questions[i].ID),
				zap.Any("languages", dropped),
			)
		}
		if err := questions[i].Validate(); err != nil {
			return err
		}
		if gaps := questions[i].TranslationGaps(); len(gaps) > 0 {
			log.Warn("incomplete translation",
				zap.String("subject_id", questions[i].SubjectID),
				zap.Int("question_id", questions[i].ID),
				zap.Any("languages", gaps),
			)
		}
	}
	return nil
}
