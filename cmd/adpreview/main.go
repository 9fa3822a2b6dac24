// Command adpreview serves a live preview of a secure ad surface: it mounts
// a container into a synthetic host page, optionally loads an ad tag, and
// exposes the rendered host and frame documents over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/adkit-io/adsurface"
	"github.com/adkit-io/adsurface/dom"
	"github.com/adkit-io/adsurface/internal/logging"
)

// Config is loaded from ADPREVIEW_* environment variables.
type Config struct {
	Addr           string `envconfig:"ADDR" default:":8080"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev         bool   `envconfig:"LOG_DEV" default:"false"`
	ViewportWidth  int    `envconfig:"VIEWPORT_WIDTH" default:"1280"`
	ViewportHeight int    `envconfig:"VIEWPORT_HEIGHT" default:"720"`
	SlotWidth      int    `envconfig:"SLOT_WIDTH" default:"640"`
	SlotHeight     int    `envconfig:"SLOT_HEIGHT" default:"360"`
	AdTagURL       string `envconfig:"AD_TAG_URL" default:""`
}

func main() {
	var cfg Config
	if err := envconfig.Process("adpreview", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	doc := dom.NewDocument(cfg.ViewportWidth, cfg.ViewportHeight)
	placeholder := doc.CreateElement("div")
	placeholder.SetID("ad-slot")
	placeholder.SetStyle("width", fmt.Sprintf("%dpx", cfg.SlotWidth))
	placeholder.SetStyle("height", fmt.Sprintf("%dpx", cfg.SlotHeight))
	doc.Body().AppendChild(placeholder)

	surface, err := adsurface.NewSecure(placeholder, adsurface.Options{Logger: logger.Logger})
	if err != nil {
		logger.Fatal("failed to create surface", zap.Error(err))
	}
	defer surface.Destroy()

	readyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := surface.Ready(readyCtx); err != nil {
		logger.Fatal("surface setup failed", zap.Error(err))
	}

	if cfg.AdTagURL != "" {
		if _, err := surface.AddScript(readyCtx, cfg.AdTagURL, nil); err != nil {
			logger.Warn("ad tag failed to load", zap.String("url", cfg.AdTagURL), zap.Error(err))
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(g *gin.Context) {
		g.Header("Content-Type", "text/html; charset=utf-8")
		g.String(http.StatusOK, doc.RenderHTML())
	})

	router.GET("/frame", func(g *gin.Context) {
		video := surface.VideoElement()
		if video == nil {
			g.String(http.StatusGone, "surface destroyed")
			return
		}
		g.Header("Content-Type", "text/html; charset=utf-8")
		g.String(http.StatusOK, video.Document().RenderHTML())
	})

	// Resizes the slot and notifies the surface's subscription.
	router.POST("/resize", func(g *gin.Context) {
		width, werr := strconv.Atoi(g.Query("width"))
		height, herr := strconv.Atoi(g.Query("height"))
		if werr != nil || herr != nil || width <= 0 || height <= 0 {
			g.String(http.StatusBadRequest, "width and height must be positive integers")
			return
		}
		placeholder.SetStyle("width", fmt.Sprintf("%dpx", width))
		placeholder.SetStyle("height", fmt.Sprintf("%dpx", height))
		if el := surface.Element(); el != nil {
			el.Dispatch(dom.Event{Type: dom.EventResize})
		}
		g.Status(http.StatusNoContent)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("adpreview listening", zap.String("addr", cfg.Addr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		logger.Fatal("server error", zap.Error(err))
	}
}
