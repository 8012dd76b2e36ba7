package content

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/polyglot-quiz/backend/internal/models"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ── Reads ───────────────────────────────────────────────

func (s *PostgresStore) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM subjects ORDER BY id COLLATE "C" ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var sub models.Subject
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

func (s *PostgresStore) ListQuestions(ctx context.Context, subjectID string) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, subject_id, question, options, answer, created_at, updated_at
		 FROM questions WHERE subject_id = $1
		 ORDER BY id ASC, pk ASC`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.SubjectID, &q.Question, &q.Options, &q.Answer,
			&q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ── Seeding ─────────────────────────────────────────────

func (s *PostgresStore) ReplaceSubjects(ctx context.Context, subjects []models.Subject) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM subjects`); err != nil {
		return fmt.Errorf("clear subjects: %w", err)
	}

	now := time.Now()
	for _, sub := range subjects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subjects (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
			sub.ID, sub.Name, now, now,
		); err != nil {
			return fmt.Errorf("insert subject %q: %w", sub.ID, err)
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) ReplaceQuestions(ctx context.Context, questions []models.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}

	now := time.Now()
	for _, q := range questions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (id, subject_id, question, options, answer, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			q.ID, q.SubjectID, q.Question, q.Options, q.Answer, now, now,
		); err != nil {
			return fmt.Errorf("insert question %s/%d: %w", q.SubjectID, q.ID, err)
		}
	}

	return tx.Commit()
}
