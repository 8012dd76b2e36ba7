package content

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/polyglot-quiz/backend/internal/models"
)

const (
	SubjectCollection  = "subjects"
	QuestionCollection = "questions"
)

// MongoStore reads the document layout produced by the seeding scripts:
// one document per record with language-keyed sub-documents.
type MongoStore struct {
	client    *mongo.Client
	subjects  *mongo.Collection
	questions *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		client:    db.Client(),
		subjects:  db.Collection(SubjectCollection),
		questions: db.Collection(QuestionCollection),
	}
}

var byID = bson.D{{Key: "id", Value: 1}}

// ── Reads ───────────────────────────────────────────────

func (s *MongoStore) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	cur, err := s.subjects.Find(ctx, bson.D{}, options.Find().SetSort(byID))
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	var subjects []models.Subject
	if err := cur.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("decode subjects: %w", err)
	}
	return subjects, nil
}

func (s *MongoStore) ListQuestions(ctx context.Context, subjectID string) ([]models.Question, error) {
	filter := bson.D{{Key: "subjectId", Value: subjectID}}
	cur, err := s.questions.Find(ctx, filter, options.Find().SetSort(byID))
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	var questions []models.Question
	if err := cur.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ── Seeding ─────────────────────────────────────────────

// EnsureIndexes creates the unique subject id index and the
// subject/ordering index used by ListQuestions.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	if _, err := s.subjects.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    byID,
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create subject index: %w", err)
	}

	if _, err := s.questions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "subjectId", Value: 1}, {Key: "id", Value: 1}},
	}); err != nil {
		return fmt.Errorf("create question index: %w", err)
	}
	return nil
}

func (s *MongoStore) ReplaceSubjects(ctx context.Context, subjects []models.Subject) error {
	if _, err := s.subjects.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear subjects: %w", err)
	}
	if len(subjects) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(subjects))
	for _, sub := range subjects {
		sub.CreatedAt, sub.UpdatedAt = now, now
		docs = append(docs, sub)
	}

	if _, err := s.subjects.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert subjects: %w", err)
	}
	return nil
}

func (s *MongoStore) ReplaceQuestions(ctx context.Context, questions []models.Question) error {
	if _, err := s.questions.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}
	if len(questions) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		q.CreatedAt, q.UpdatedAt = now, now
		docs = append(docs, q)
	}

	if _, err := s.questions.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert questions: %w", err)
	}
	return nil
}
