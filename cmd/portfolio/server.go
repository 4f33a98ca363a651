package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/config"
	"github.com/nailaham15/nailah-s-portfolio/internal/contact"
	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/i18n"
	mw "github.com/nailaham15/nailah-s-portfolio/internal/middleware"
	"github.com/nailaham15/nailah-s-portfolio/internal/observability"
	"github.com/nailaham15/nailah-s-portfolio/locales"
	"github.com/nailaham15/nailah-s-portfolio/public"
)

var (
	// templatesDir overrides the embedded templates when set (PORTFOLIO_TEMPLATES_DIR).
	templatesDir string
	// devMode reparses templates on each request.
	devMode   bool
	tmplCache *template.Template

	siteCfg       config.Config
	i18nBundle    *i18n.Bundle
	contentSvc    content.Service
	contactAction *contact.Action
)

// setup loads every dependency the handlers read from package state.
func setup(cfg config.Config) error {
	siteCfg = cfg
	devMode = cfg.Server.Dev
	templatesDir = cfg.Content.TemplatesDir

	bundle, err := i18n.Load(locales.FS(), cfg.I18n.DefaultLang, cfg.I18n.Langs)
	if err != nil {
		return err
	}
	i18nBundle = bundle

	src := content.Source(cfg.Content.Dir)
	if devMode && cfg.Content.CacheTTL > 0 {
		svc, err := content.NewReloadingService(src, cfg.Content.CacheTTL)
		if err != nil {
			return err
		}
		contentSvc = svc
	} else {
		lib, err := content.Load(src)
		if err != nil {
			return err
		}
		contentSvc = content.NewStaticService(lib)
	}

	action, err := contact.NewAction(contact.ActionDeps{
		Notifier:      contact.LogNotifier{},
		Delay:         cfg.Contact.Delay,
		MinMessageLen: cfg.Contact.MinMessageLen,
	})
	if err != nil {
		return err
	}
	contactAction = action

	tmplCache = nil
	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			return fmt.Errorf("parse templates: %w", err)
		}
		tmplCache = tc
	}
	return nil
}

// newRouter builds the full route tree on top of the state prepared by setup.
func newRouter(logger *zap.Logger) (*chi.Mux, error) {
	staticFS, err := public.StaticFS()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that overwrites it.
	r.Use(chimw.RealIP)
	r.Use(observability.InjectLoggerMiddleware(logger))
	r.Use(observability.TraceMiddleware())
	r.Use(observability.RequestLoggerMiddleware())
	r.Use(observability.RecoveryMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", mw.AssetsWithCache(staticFS, "/assets"))
	media := mw.Media(siteCfg.Content.MediaDir)
	for _, prefix := range []string{"/media", "/images", "/pdf", "/cv", "/videos"} {
		r.Handle(prefix+"/*", media)
	}
	r.Get("/robots.txt", RobotsHandler)
	r.Get("/sitemap.xml", SitemapHandler)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5))
		r.Use(chimw.Timeout(requestTimeout()))
		r.Use(mw.HTMX)
		r.Use(mw.Locale(i18nBundle))
		r.Use(mw.VaryLocale)
		if limit := siteCfg.Contact.MaxMessageSize; limit > 0 {
			r.Use(chimw.RequestSize(int64(limit)))
		}
		r.Use(mw.CSRF(strings.HasPrefix(siteCfg.Site.BaseURL, "https://")))

		r.Get("/", HomeHandler)
		r.Get("/projects", ProjectsHandler)
		r.Post("/contact", ContactHandler)

		r.Route("/fragments", func(r chi.Router) {
			r.Use(mw.RequireHTMX)
			r.Get("/portfolio", PortfolioFrag)
			r.Get("/records/{section}/{id}", RecordFrag)
			r.Get("/gallery/{section}/{id}", GalleryFrag)
			r.Get("/gallery/{section}/{id}/fullscreen", GalleryFullscreenFrag)
			r.Get("/modal/close", ModalCloseFrag)
		})
		r.NotFound(NotFoundHandler)
	})
	return r, nil
}

func requestTimeout() time.Duration {
	if d := siteCfg.Server.RequestTimeout; d > 0 {
		return d
	}
	return 30 * time.Second
}

// serve runs the HTTP server until ctx ends or SIGINT/SIGTERM arrives, then drains connections.
func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if err := setup(cfg); err != nil {
		return err
	}
	router, err := newRouter(logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("portfolio listening",
			zap.String("addr", srv.Addr),
			zap.Bool("devMode", devMode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("grace", cfg.Server.ShutdownGrace))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
