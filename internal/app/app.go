package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"yatube/config"
	"yatube/internal/adapter/in/web"
	"yatube/internal/adapter/out/filestore"
	memstore "yatube/internal/adapter/out/storage/inmemory"
	pgstore "yatube/internal/adapter/out/storage/postgres"
	"yatube/internal/service"
	"yatube/pkg/logger"
	"yatube/pkg/rendercache"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		postStorage    service.PostStorage
		groupStorage   service.GroupStorage
		userStorage    service.UserStorage
		commentStorage service.CommentStorage
		followStorage  service.FollowStorage
		pool           *pgxpool.Pool
	)

	switch cfg.StorageType {
	case "postgres":
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		postStorage = pgstore.NewPostStorage(pool, trmpgx.DefaultCtxGetter)
		groupStorage = pgstore.NewGroupStorage(pool, trmpgx.DefaultCtxGetter)
		userStorage = pgstore.NewUserStorage(pool, trmpgx.DefaultCtxGetter)
		commentStorage = pgstore.NewCommentStorage(pool, trmpgx.DefaultCtxGetter)
		followStorage = pgstore.NewFollowStorage(pool, trmpgx.DefaultCtxGetter)

	default:
		follows := memstore.NewFollowStorage()
		postStorage = memstore.NewPostStorage(follows)
		groupStorage = memstore.NewGroupStorage()
		userStorage = memstore.NewUserStorage()
		commentStorage = memstore.NewCommentStorage()
		followStorage = follows
	}

	postSvc := service.NewPostService(postStorage, cfg.PageSize)
	groupSvc := service.NewGroupService(groupStorage)
	userSvc := service.NewUserService(userStorage)
	commentSvc := service.NewCommentService(commentStorage, postStorage)
	followSvc := service.NewFollowService(followStorage)

	files, err := filestore.NewLocalStore(cfg.Media.Root)
	if err != nil {
		return nil, fmt.Errorf("filestore: %w", err)
	}

	handlers := web.NewHandlers(
		postSvc,
		groupSvc,
		userSvc,
		commentSvc,
		followSvc,
		files,
		web.JSONRenderer{},
		rendercache.New(cfg.CacheTTL),
	)

	router := web.NewRouter(handlers, web.NewHeaderAuthenticator(userSvc), log)

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType)
	return &App{cfg: cfg, srv: srv, pool: pool}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shCtx)
		if a.pool != nil {
			a.pool.Close()
		}
		return nil

	case err := <-errCh:
		if a.pool != nil {
			a.pool.Close()
		}
		return err
	}
}
