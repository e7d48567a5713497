package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"knowledge-backend/internal/ingest"
	"knowledge-backend/internal/knowledge"
	"knowledge-backend/internal/llm"
	openai "knowledge-backend/internal/llm/openai"
	"knowledge-backend/internal/ocr"
	"knowledge-backend/internal/ocr/tesseract"
	"knowledge-backend/internal/qa"
	"knowledge-backend/internal/shared/config"
	"knowledge-backend/internal/shared/server"
	"knowledge-backend/internal/shared/storage/db"
)

var errDatabaseRequired = errors.New("DATABASE_URL is required")

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	KnowledgeRepo    knowledge.Repo
	Pipeline         *ingest.Pipeline
	KnowledgeService *knowledge.Service
	QAService        *qa.Service
	KnowledgeHandler *knowledge.Handler
	QAHandler        *qa.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		KnowledgeHandler: app.KnowledgeHandler,
		QAHandler:        app.QAHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	var repo knowledge.Repo
	if app.DB != nil {
		repo = &knowledge.PGRepo{DB: app.DB}
	} else {
		repo = knowledge.NewMemoryRepo()
	}

	ocrClient := ocr.Client(ocr.PlaceholderClient{})
	if app.Config.OCREngine == "tesseract" {
		ocrClient = tesseract.NewEngine()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" && strings.TrimSpace(app.Config.LLMModel) != "" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	pipeline := ingest.NewPipeline(ocrClient, app.Config.OCRLanguage)

	knowledgeSvc := &knowledge.Service{
		Pipeline: pipeline,
		Repo:     repo,
	}
	qaSvc := &qa.Service{
		Repo: repo,
		LLM:  llmClient,
	}

	app.KnowledgeRepo = repo
	app.Pipeline = pipeline
	app.KnowledgeService = knowledgeSvc
	app.QAService = qaSvc
	app.KnowledgeHandler = knowledge.NewHandler(knowledgeSvc)
	app.QAHandler = qa.NewHandler(qaSvc)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
