package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/cache"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/postgres"
	deckrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/deck"
	settingrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/setting"
	storyrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/story"
	vocabrepo "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres/vocab"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/article"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/config"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
	"github.com/heartmarshall/storylingo-backend/internal/service/deck"
	"github.com/heartmarshall/storylingo-backend/internal/service/lookup"
	"github.com/heartmarshall/storylingo-backend/internal/service/settings"
	"github.com/heartmarshall/storylingo-backend/internal/service/story"
	"github.com/heartmarshall/storylingo-backend/internal/service/translation"
	"github.com/heartmarshall/storylingo-backend/internal/transport/middleware"
	"github.com/heartmarshall/storylingo-backend/internal/transport/rest"
	"github.com/heartmarshall/storylingo-backend/migrations"
)

const translationKeyPrefix = "translation:"

// translationCache is satisfied by both the Redis cache and the no-op cache.
type translationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional Redis cache, wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	// --- Storage ---

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var translations translationCache = cache.Noop{}
	var redisCache *cache.Redis
	if cfg.Redis.URL != "" {
		redisCache, err = cache.Connect(ctx, cfg.Redis.URL, translationKeyPrefix)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer redisCache.Close() //nolint:errcheck
		translations = redisCache
		logger.Info("translation cache enabled")
	} else {
		logger.Info("translation cache disabled, REDIS_URL is empty")
	}

	// --- Providers ---

	model, err := llm.New(cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}
	dict := freedict.NewProvider(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)
	articles := article.NewFetcher(cfg.LLM.Timeout, logger)

	seg, err := reader.NewSegmenter()
	if err != nil {
		logger.Warn("japanese segmenter unavailable, falling back to character mode",
			slog.String("error", err.Error()))
		seg = nil
	}
	annotator := reader.NewAnnotator(seg)

	// --- Repositories ---

	txm := postgres.NewTxManager(pool)
	stories := storyrepo.New(pool)
	decks := deckrepo.New(pool)
	vocab := vocabrepo.New(pool)
	settingStore := settingrepo.New(pool)

	// --- Services ---

	native, ok := domain.ParseLanguage(cfg.Dictionary.NativeLanguage)
	if !ok {
		logger.Warn("unsupported native language, using default",
			slog.String("native_language", cfg.Dictionary.NativeLanguage))
		native = domain.DefaultLanguage
	}

	settingsSvc := settings.NewService(logger, settingStore)
	deckSvc := deck.NewService(logger, decks, vocab, txm)
	storySvc := story.NewService(logger, stories, settingsSvc, model, articles, annotator)
	translationSvc := translation.NewService(logger, model, translations, cfg.Translation.CacheTTL)
	lookupSvc := lookup.NewDispatcher(logger, model, dict, native)

	// --- HTTP ---

	health := rest.NewHealthHandler(pool, BuildVersion())
	if redisCache != nil {
		health = health.WithCache(redisCache)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Health:    health,
		Story:     rest.NewStoryHandler(storySvc, logger),
		Translate: rest.NewTranslateHandler(translationSvc, logger),
		Word:      rest.NewWordHandler(lookupSvc, logger),
		Deck:      rest.NewDeckHandler(deckSvc, logger),
		Vocab:     rest.NewVocabHandler(deckSvc, logger),
		Settings:  rest.NewSettingsHandler(settingsSvc, logger),
	}, limiter.Limit(cfg.RateLimit.GeneratePerMinute))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
