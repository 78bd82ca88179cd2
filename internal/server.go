package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pawpawapp/pawpaw-backend/internal/config"
	minioClient "github.com/pawpawapp/pawpaw-backend/internal/datastore/minio"
	"github.com/pawpawapp/pawpaw-backend/internal/datastore/postgres"
	redisClient "github.com/pawpawapp/pawpaw-backend/internal/datastore/redis"
	"github.com/pawpawapp/pawpaw-backend/internal/media"
	"github.com/pawpawapp/pawpaw-backend/internal/realtime"
	chatRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/chat"
	giftRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/gift"
	matchRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/match"
	profileRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/profile"
	streamRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/stream"
	swipeRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/swipe"
	userRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/user"
	walletRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/wallet"
	routesV1 "github.com/pawpawapp/pawpaw-backend/internal/routes/v1"
	authUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/auth"
	chatUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/chat"
	giftUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/gift"
	matchUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/match"
	profileUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/profile"
	streamUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/stream"
	swipeUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/swipe"
	"github.com/pawpawapp/pawpaw-backend/pkg/jwt"
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
	database   *gorm.DB
}

// Run wires the whole service and serves until ctx is cancelled. The first
// arg selects the config environment (dev, test, ...).
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "dev"
	if len(args) > 0 && args[0] != "" {
		env = args[0]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	server, err := NewServer(ctx, w, cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartServer()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func NewServer(ctx context.Context, w io.Writer, cfg *config.Config) (*Server, error) {
	jwt.SetSecret(cfg.Get("JWT_SECRET"))

	e := echo.New()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	rdb, err := redisClient.Connect(cfg.Get("REDIS_HOST"), cfg.Get("REDIS_PORT"))
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	var mediaService media.IMediaService
	if endpoint := cfg.Get("MINIO_ENDPOINT"); endpoint != "" {
		mc, err := minioClient.Connect(endpoint, cfg.Get("MINIO_ACCESS_KEY"), cfg.Get("MINIO_SECRET_KEY"))
		if err != nil {
			return nil, fmt.Errorf("connect minio: %w", err)
		}
		mediaService, err = media.New(mc, cfg.Get("MINIO_BUCKET"))
		if err != nil {
			return nil, fmt.Errorf("prepare media bucket: %w", err)
		}
	} else {
		logrus.Warn("MINIO_ENDPOINT not set, media uploads disabled")
	}

	hub := realtime.NewHub()

	users := userRepo.New(database)
	profiles := profileRepo.New(database)
	swipes := swipeRepo.New(database, rdb)
	matches := matchRepo.New(database)
	wallets := walletRepo.New(database)
	gifts := giftRepo.New(database)
	chats := chatRepo.New(database)
	streams := streamRepo.New(database, rdb)

	routesV1.InitV1Routes(e, routesV1.Handlers{
		UserRepo:    users,
		AuthCase:    authUseCase.New(users),
		ProfileCase: profileUseCase.New(profiles, swipes),
		SwipeCase:   swipeUseCase.New(profiles, swipes, matches, hub),
		GiftCase:    giftUseCase.New(database, wallets, gifts, profiles, streams, hub),
		MatchCase:   matchUseCase.New(matches, profiles),
		ChatCase:    chatUseCase.New(matches, chats, hub),
		StreamCase:  streamUseCase.New(streams, hub),
		Media:       mediaService,
		Hub:         hub,
	})

	server := &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
		database: database,
	}

	server.RegisterRoutes(e)
	return server, nil
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.handleHealthCheck)
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
