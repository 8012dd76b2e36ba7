package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/polyglot-quiz/backend/internal/locale"
	"github.com/polyglot-quiz/backend/internal/models"
)

const questionsJSON = `[
  {
    "id": 1,
    "subjectId": "Physics",
    "question": {"en": "What is gravity?", "hi": "गुरुत्वाकर्षण क्या है?"},
    "options": {"en": ["A", "B"], "hi": ["अ", "ब"]},
    "answer": {"en": "A"}
  },
  {
    "id": 2,
    "subjectId": "physics",
    "question": {"en": "Unit of force?"},
    "options": {"en": ["Newton", "Joule"]},
    "answer": {"en": "Newton"}
  }
]`

func TestSeed(t *testing.T) {
	questions, err := DecodeQuestions(strings.NewReader(questionsJSON))
	if err != nil {
		t.Fatalf("DecodeQuestions: %v", err)
	}
	subjects, err := DecodeSubjects(strings.NewReader(`[{"id":" Physics ","name":{"en":"Physics"}}]`))
	if err != nil {
		t.Fatalf("DecodeSubjects: %v", err)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	store := &memStore{}

	if err := Seed(context.Background(), store, subjects, questions, zap.New(core)); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if len(store.subjects) != 1 || store.subjects[0].ID != "physics" {
		t.Errorf("subjects not normalized: %+v", store.subjects)
	}
	if len(store.questions) != 2 || store.questions[0].SubjectID != "physics" {
		t.Errorf("questions not normalized: %+v", store.questions)
	}

	if n := logs.FilterMessage("incomplete translation").Len(); n != 1 {
		t.Errorf("expected 1 translation warning, got %d", n)
	}
}

func TestSeed_SkipsNilCollections(t *testing.T) {
	store := sampleStore()
	before := len(store.subjects)

	if err := Seed(context.Background(), store, nil, nil, zap.NewNop()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(store.subjects) != before {
		t.Error("nil subjects should leave the collection untouched")
	}
}

func TestSeed_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name      string
		subjects  []models.Subject
		questions []models.Question
		want      error
	}{
		{
			name:     "subject without name",
			subjects: []models.Subject{{ID: "physics"}},
			want:     models.ErrInvalidSubject,
		},
		{
			name: "duplicate subject",
			subjects: []models.Subject{
				{ID: "physics", Name: locale.Text{"en": "Physics"}},
				{ID: "PHYSICS", Name: locale.Text{"en": "Physics"}},
			},
			want: models.ErrInvalidSubject,
		},
		{
			name:     "subject named only in an unsupported language",
			subjects: []models.Subject{{ID: "art", Name: locale.Text{"fr": "Art"}}},
			want:     models.ErrInvalidSubject,
		},
		{
			name:      "question text only in an unsupported language",
			questions: []models.Question{{ID: 1, SubjectID: "art", Question: locale.Text{"fr": "Q?"}}},
			want:      models.ErrInvalidQuestion,
		},
		{
			name:      "question without subject",
			questions: []models.Question{{ID: 1, Question: locale.Text{"en": "Q?"}}},
			want:      models.ErrInvalidQuestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{}
			err := Seed(context.Background(), store, tt.subjects, tt.questions, zap.NewNop())
			if !errors.Is(err, tt.want) {
				t.Errorf("Seed() error = %v, want %v", err, tt.want)
			}
			if store.subjects != nil || store.questions != nil {
				t.Error("store should not be written on validation failure")
			}
		})
	}
}

func TestSeed_DropsUnsupportedLanguages(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := &memStore{}

	subjects := []models.Subject{{ID: "art", Name: locale.Text{"en": "Art", "fr": "Art"}}}
	questions := []models.Question{{
		ID:        1,
		SubjectID: "art",
		Question:  locale.Text{"en": "Who painted it?", "fr": "Qui l'a peint ?"},
		Options:   locale.Options{"en": {"Monet", "Manet"}, "fr": {"Monet", "Manet"}},
		Answer:    locale.Text{"en": "Monet", "fr": "Monet"},
	}}

	if err := Seed(context.Background(), store, subjects, questions, zap.New(core)); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if _, ok := store.subjects[0].Name["fr"]; ok {
		t.Errorf("subject stored with unsupported key: %v", store.subjects[0].Name)
	}
	q := store.questions[0]
	if _, ok := q.Question["fr"]; ok {
		t.Errorf("question stored with unsupported key: %v", q.Question)
	}
	if _, ok := q.Options["fr"]; ok {
		t.Errorf("options stored with unsupported key: %v", q.Options)
	}
	if _, ok := q.Answer["fr"]; ok {
		t.Errorf("answer stored with unsupported key: %v", q.Answer)
	}

	if n := logs.FilterMessage("unsupported languages dropped").Len(); n != 2 {
		t.Errorf("expected 2 drop warnings, got %d", n)
	}

	views, err := NewService(store).ListSubjects(context.Background(), locale.Tamil)
	if err != nil || len(views) != 1 || views[0].Name != "Art" {
		t.Errorf("ListSubjects(ta) = %+v, %v", views, err)
	}
}

func TestDecodeQuestions_Invalid(t *testing.T) {
	if _, err := DecodeQuestions(strings.NewReader(`{"id": 1}`)); err == nil {
		t.Error("expected error decoding an object instead of an array")
	}
}
