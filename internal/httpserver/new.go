package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"art-historian/internal/artwork"
	"art-historian/internal/chat"
	"art-historian/internal/conversation"
	"art-historian/internal/feedback"
	"art-historian/internal/middleware"
	"art-historian/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	rateLimit       middleware.Config

	// Domains
	chatUC     chat.UseCase
	artworkUC  artwork.UseCase
	feedbackUC feedback.UseCase

	// Readiness
	store     conversation.Store
	providers []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimit       middleware.Config

	ChatUC     chat.UseCase
	ArtworkUC  artwork.UseCase
	FeedbackUC feedback.UseCase

	Store     conversation.Store
	Providers []string
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		rateLimit:       cfg.RateLimit,
		chatUC:          cfg.ChatUC,
		artworkUC:       cfg.ArtworkUC,
		feedbackUC:      cfg.FeedbackUC,
		store:           cfg.Store,
		providers:       cfg.Providers,
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.artworkUC == nil {
		return errors.New("artwork usecase is required")
	}
	if srv.feedbackUC == nil {
		return errors.New("feedback usecase is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
