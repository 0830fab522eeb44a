package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/dolphinder-social/dolphinder/appview"
	"github.com/dolphinder-social/dolphinder/sui"
)

const defaultCacheTTL = 30 * time.Second

type Server struct {
	echo           *echo.Echo
	httpd          *http.Server
	view           *appview.Cache
	logger         *slog.Logger
	requestTimeout time.Duration
}

func runServeCmd(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stdout)

	ledger := sui.NewClient(cctx.String("network"))
	if host := cctx.String("fullnode-host"); host != "" {
		ledger.Host = host
	}
	if rps := cctx.Int("rpc-rate-limit"); rps > 0 {
		ledger.Limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}

	loader := appview.NewLoader(ledger, cctx.String("package-id"))
	view := appview.NewCache(loader, cctx.Int("cache-size"), cctx.Duration("cache-ttl"))

	e := echo.New()
	e.HideBanner = true

	srv := &Server{
		echo:           e,
		view:           view,
		logger:         logger,
		requestTimeout: 15 * time.Second,
	}
	srv.httpd = &http.Server{
		Handler:        e,
		Addr:           cctx.String("bind"),
		ReadTimeout:    time.Minute,
		WriteTimeout:   time.Minute,
		MaxHeaderBytes: 1 * 1024 * 1024,
	}

	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/api/profile/:address", srv.HandleGetProfile)
	e.GET("/api/profile/:address/experience", srv.HandleGetExperience)
	e.GET("/api/profile/:address/education", srv.HandleGetEducation)
	e.GET("/api/profile/:address/certificates", srv.HandleGetCertificates)
	e.GET("/api/post/:id", srv.HandleGetPost)
	e.GET("/api/post/:id/comments", srv.HandleGetComments)
	e.GET("/api/author/:address/posts", srv.HandleListPosts)

	// metrics on a separate listener, not exposed on the public port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cctx.String("metrics-listen"), mux); err != nil {
			logger.Error("metrics listener failed", "err", err)
		}
	}()

	logger.Info("starting server", "bind", cctx.String("bind"))
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	quit := make(chan struct{})
	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSignals
		logger.Info("received OS exit signal", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.httpd.Shutdown(ctx); err != nil {
			logger.Error("HTTP server shutdown error", "err", err)
		}
		close(quit)
	}()
	<-quit
	logger.Info("graceful shutdown complete")
	return nil
}
