package content

import (
	"context"
	"sort"

	"github.com/polyglot-quiz/backend/internal/models"
)

// memStore is an in-memory Store and Seeder used by the service, handler
// and seed tests.
type memStore struct {
	subjects  []models.Subject
	questions []models.Question
	err       error
	pingErr   error

	lastSubjectID string
}

func (m *memStore) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := append([]models.Subject(nil), m.subjects...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) ListQuestions(ctx context.Context, subjectID string) ([]models.Question, error) {
	m.lastSubjectID = subjectID
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Question
	for _, q := range m.questions {
		if q.SubjectID == subjectID {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *memStore) ReplaceSubjects(ctx context.Context, subjects []models.Subject) error {
	if m.err != nil {
		return m.err
	}
	m.subjects = subjects
	return nil
}

func (m *memStore) ReplaceQuestions(ctx context.Context, questions []models.Question) error {
	if m.err != nil {
		return m.err
	}
	m.questions = questions
	return nil
}
