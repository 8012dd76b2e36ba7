package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/polyglot-quiz/backend/internal/config"
	"github.com/polyglot-quiz/backend/internal/content"
	"github.com/polyglot-quiz/backend/internal/database"
	"github.com/polyglot-quiz/backend/internal/logger"
	"github.com/polyglot-quiz/backend/internal/models"
)

func main() {
	questionsPath := flag.String("questions", "data/questions-multilang.json", "Path to the multilingual questions JSON array (empty to skip)")
	subjectsPath := flag.String("subjects", "", "Path to the subjects JSON array (optional)")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall deadline for the seeding run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logg.Sync()

	subjects, err := readSubjects(*subjectsPath)
	if err != nil {
		logg.Fatal("read subjects", zap.Error(err))
	}
	questions, err := readQuestions(*questionsPath)
	if err != nil {
		logg.Fatal("read questions", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	seeder, closeSeeder, err := openSeeder(ctx, cfg)
	if err != nil {
		logg.Fatal("open store", zap.Error(err))
	}
	defer closeSeeder()

	if err := content.Seed(ctx, seeder, subjects, questions, logg); err != nil {
		logg.Error("seeding failed", zap.Error(err))
		closeSeeder()
		os.Exit(1)
	}
	logg.Info("seeding complete")
}

func readSubjects(path string) ([]models.Subject, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return content.DecodeSubjects(f)
}

func readQuestions(path string) ([]models.Question, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return content.DecodeQuestions(f)
}

// openSeeder connects strictly: unlike the server, seeding cannot proceed
// without a reachable store.
func openSeeder(ctx context.Context, cfg *config.Config) (content.Seeder, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			if client != nil {
				_ = client.Disconnect(ctx)
			}
			return nil, nil, err
		}
		store := content.NewMongoStore(client.Database(cfg.Mongo.Database))
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		return store, func() { _ = client.Disconnect(context.Background()) }, nil

	case config.DriverPostgres:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			if db != nil {
				db.Close()
			}
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return content.NewPostgresStore(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Store.Driver)
	}
}
