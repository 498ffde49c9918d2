//go:build !js
// +build !js

package main

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/pflag"
)

//go:embed index.html
var indexHTML []byte

// Config holds the host settings.
type Config struct {
	Port      int
	StaticDir string // directory holding the compiled bundle
	DevCORS   bool   // allow any origin
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (Config, error) {
	var cfg Config
	flagSet := pflag.NewFlagSet("jokes101", pflag.ContinueOnError)
	flagSet.IntVar(&cfg.Port, "port", 8080, "HTTP server port")
	flagSet.StringVar(&cfg.StaticDir, "static", ".", "directory to serve the compiled bundle from")
	flagSet.BoolVar(&cfg.DevCORS, "dev-cors", false, "allow cross-origin requests from any origin")
	if err := flagSet.Parse(args); err != nil {
		return cfg, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return cfg, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	static, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("static dir: %w", err)
	}
	if info, err := os.Stat(static); err != nil || !info.IsDir() {
		return fmt.Errorf("static dir %s is not a directory", static)
	}
	cfg.StaticDir = static

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Jokes 101 starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", cfg.StaticDir)
	if cfg.DevCORS {
		log.Printf("CORS: any origin allowed")
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func newRouter(cfg Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.DevCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			MaxAge:         300,
		}))
	}

	serveIndex := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(indexHTML)
	}
	r.Get("/", serveIndex)
	r.Get("/index.html", serveIndex)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	return r
}
