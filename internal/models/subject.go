package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/polyglot-quiz/backend/internal/locale"
)

var ErrInvalidSubject = errors.New("invalid subject")

type Subject struct {
	ID        string      `json:"id" bson:"id"`
	Name      locale.Text `json:"name" bson:"name"`
	CreatedAt time.Time   `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type SubjectView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s Subject) Localize(lang locale.Language) SubjectView {
	return SubjectView{
		ID:   s.ID,
		Name: locale.ResolveText(s.Name, lang),
	}
}

// Normalize folds the id and removes name keys outside the allow-list,
// returning the removed keys.
func (s *Subject) Normalize() []locale.Language {
	s.ID = strings.ToLower(strings.TrimSpace(s.ID))
	return s.Name.DropUnsupported()
}

func (s Subject) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidSubject)
	}
	// Only allow-listed keys count.
	if len(s.Name.Languages()) == 0 {
		return fmt.Errorf("%w %q: name has no language entry", ErrInvalidSubject, s.ID)
	}
	return nil
}
