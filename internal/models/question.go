package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/polyglot-quiz/backend/internal/locale"
)

var ErrInvalidQuestion = errors.New("invalid question")

// Question is a stored quiz item with every textual field keyed by language.
// ID orders questions within a subject and is not unique across subjects.
type Question struct {
	ID        int            `json:"id" bson:"id"`
	SubjectID string         `json:"subjectId" bson:"subjectId"`
	Question  locale.Text    `json:"question" bson:"question"`
	Options   locale.Options `json:"options" bson:"options"`
	Answer    locale.Text    `json:"answer" bson:"answer"`
	CreatedAt time.Time      `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// QuestionView is a Question flattened to one language.
type QuestionView struct {
	ID        int      `json:"id"`
	SubjectID string   `json:"subjectId"`
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	Answer    string   `json:"answer"`
}

// Localize resolves each field independently, so a partially translated
// record may mix languages.
func (q Question) Localize(lang locale.Language) QuestionView {
	return QuestionView{
		ID:        q.ID,
		SubjectID: q.SubjectID,
		Question:  locale.ResolveText(q.Question, lang),
		Options:   locale.ResolveOptions(q.Options, lang),
		Answer:    locale.ResolveText(q.Answer, lang),
	}
}

// Normalize folds the subject id and removes language keys outside the
// allow-list from every field, returning the removed keys.
func (q *Question) Normalize() []locale.Language {
	q.SubjectID = strings.ToLower(strings.TrimSpace(q.SubjectID))

	seen := map[locale.Language]bool{}
	var dropped []locale.Language
	for _, batch := range [][]locale.Language{
		q.Question.DropUnsupported(),
		q.Options.DropUnsupported(),
		q.Answer.DropUnsupported(),
	} {
		for _, l := range batch {
			if !seen[l] {
				seen[l] = true
				dropped = append(dropped, l)
			}
		}
	}
	return dropped
}

func (q Question) Validate() error {
	if q.SubjectID == "" {
		return fmt.Errorf("%w %d: subjectId is required", ErrInvalidQuestion, q.ID)
	}
	if len(q.Question.Languages()) == 0 {
		return fmt.Errorf("%w %d: question text has no language entry", ErrInvalidQuestion, q.ID)
	}
	return nil
}

// TranslationGaps lists languages that have question text but lack options
// or an answer in the same language.
func (q Question) TranslationGaps() []locale.Language {
	var gaps []locale.Language
	for _, lang := range q.Question.Languages() {
		if len(q.Options[lang]) == 0 || q.Answer[lang] == "" {
			gaps = append(gaps, lang)
		}
	}
	return gaps
}
