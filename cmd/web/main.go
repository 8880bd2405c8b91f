package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"omgagents.ai/web/content"
	"omgagents.ai/web/internal/config"
	"omgagents.ai/web/internal/contact"
	legal "omgagents.ai/web/internal/content"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	mw "omgagents.ai/web/internal/middleware"
	"omgagents.ai/web/internal/observability"
	"omgagents.ai/web/internal/relay"
	"omgagents.ai/web/locales"
	"omgagents.ai/web/public"
)

// requestOverhead is the multipart envelope allowance on top of the
// attachment budget.
const requestOverhead = 1 << 20

func main() {
	envFile := flag.String("env-file", ".env", "optional .env file with local overrides")
	flag.Parse()

	cfg, err := config.Load(config.WithEnvFile(*envFile))
	if err != nil {
		// logger is not configured yet
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.DevMode)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundle, err := i18n.Load(locales.FS, "en", []string{"en", "ja"})
	if err != nil {
		return err
	}
	for lang, lerr := range bundle.Degraded() {
		logger.Warn("locale degraded to fallback", zap.String("lang", lang), zap.Error(lerr))
	}

	sessions, err := mw.NewSessionStore([]byte(cfg.Session.HashKey), []byte(cfg.Session.BlockKey), cfg.IsProduction())
	if err != nil {
		return err
	}

	gate := contact.Gate{
		MinDwell:    cfg.Contact.MinDwell,
		RateWindow:  cfg.RateLimit.Window,
		MaxFiles:    cfg.Contact.MaxFiles,
		MaxFileSize: cfg.Contact.MaxFileSize,
	}
	var limiter contact.Limiter
	if cfg.RateLimit.RedisURL != "" {
		rdb, err := contact.DialRedis(ctx, cfg.RateLimit.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		limiter = contact.NewRedisLimiter(rdb, cfg.RateLimit.Window)
		logger.Info("contact rate limit backed by redis")
	}
	forwarder := relay.New(cfg.Relay.Endpoint, cfg.Relay.AccessKey, cfg.Relay.Timeout)

	srv := &server{
		cfg:       cfg,
		bundle:    bundle,
		sessions:  sessions,
		legal:     legal.NewStore(dirOr(cfg.ContentDir, content.FS), bundle),
		contact:   contact.NewService(gate, limiter, forwarder),
		analytics: handlers.AnalyticsFromConfig(cfg.Analytics),
		sleep:     time.Sleep,
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(srv, logger, dirOr(cfg.PublicDir, public.FS)),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", httpSrv.Addr), zap.String("env", cfg.Env))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return httpSrv.Shutdown(shutdownCtx)
}

// newRouter wires middleware and routes. assets is the public file tree.
func newRouter(srv *server, logger *zap.Logger, assets fs.FS) http.Handler {
	maxBody := int64(srv.contact.Gate().MaxAttachments())*srv.contact.Gate().MaxAttachmentSize() + requestOverhead

	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	// The client address keys the contact rate limit; forwarded headers are
	// client-controlled unless a proxy rewrites them.
	if srv.cfg.Server.TrustProxy {
		r.Use(chiMid.RealIP)
	}
	r.Use(mw.Logger(logger))
	r.Use(mw.Recovery)
	r.Use(observability.TraceMiddleware)
	r.Use(chiMid.Compress(5))
	r.Use(chiMid.RequestSize(maxBody))
	r.Use(mw.HTMX)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		r.Handle("/assets/*", mw.AssetsWithCache(sub, "/assets"))
	}

	r.Group(func(r chi.Router) {
		r.Use(srv.sessions.Session)
		r.Use(mw.Locale(srv.bundle))
		r.Use(mw.CSRF(srv.sessions.Secure()))
		r.Use(mw.VaryLocale)

		// No timeout here: the stream ends with the page-load timeline.
		r.Get("/pageload", srv.pageLoadStream)

		r.Group(func(r chi.Router) {
			r.Use(chiMid.Timeout(srv.cfg.Server.RequestTimeout))

			r.Get("/", srv.home)
			r.Get("/lang/{code}", srv.switchLang)

			r.Get("/about/{id}", srv.aboutOverlay)
			r.Get("/products/{id}", srv.productOverlay)
			r.Get("/legal/{kind}", srv.legalOverlay)
			r.Get("/menu", srv.menuOverlay)
			r.Get("/overlay/close", srv.closeOverlay)

			r.Get("/contact", srv.contactOverlay)
			r.Post("/contact", srv.submitContact)
			r.Post("/contact/attachments", srv.checkAttachments)
			r.Get("/contact/status", srv.contactStatus)

			r.Post("/reveal", srv.observeReveal)
		})
	})
	r.NotFound(srv.notFound)
	return r
}

// dirOr prefers an on-disk directory so content can be edited without a
// rebuild, and falls back to the embedded copy.
func dirOr(dir string, embedded fs.FS) fs.FS {
	if dir == "" {
		return embedded
	}
	if st, err := os.Stat(dir); err == nil && st.IsDir() {
		return os.DirFS(dir)
	}
	return embedded
}
