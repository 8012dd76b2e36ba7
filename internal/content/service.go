package content

import (
	"context"
	"strings"

	"github.com/polyglot-quiz/backend/internal/locale"
	"github.com/polyglot-quiz/backend/internal/models"
)

// Service turns stored records into single-language views.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListSubjects(ctx context.Context, lang locale.Language) ([]models.SubjectView, error) {
	subjects, err := s.store.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.SubjectView, 0, len(subjects))
	for _, sub := range subjects {
		views = append(views, sub.Localize(lang))
	}
	return views, nil
}

// ListQuestions never distinguishes an unknown subject from one without
// questions: both produce an empty slice.
func (s *Service) ListQuestions(ctx context.Context, subjectID string, lang locale.Language) ([]models.QuestionView, error) {
	subjectID = strings.ToLower(strings.TrimSpace(subjectID))

	questions, err := s.store.ListQuestions(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	views := make([]models.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.Localize(lang))
	}
	return views, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
