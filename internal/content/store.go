package content

import (
	"context"

	"github.com/polyglot-quiz/backend/internal/models"
)

// Store is the read side of the content store used while serving requests.
type Store interface {
	// ListSubjects returns every subject ordered by id ascending.
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	// ListQuestions returns the questions whose subject id equals subjectID,
	// ordered by numeric id ascending. No match yields an empty result.
	ListQuestions(ctx context.Context, subjectID string) ([]models.Question, error)
	Ping(ctx context.Context) error
}

// Seeder replaces collection contents wholesale. Only the offline seed tool
// uses it; the API never writes.
type Seeder interface {
	ReplaceSubjects(ctx context.Context, subjects []models.Subject) error
	ReplaceQuestions(ctx context.Context, questions []models.Question) error
}
