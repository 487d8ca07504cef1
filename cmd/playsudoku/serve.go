package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/playsudoku/internal/adapters/http"
	"svw.info/playsudoku/internal/generator"
	"svw.info/playsudoku/internal/infrastructure/storage"
	"svw.info/playsudoku/internal/solver"
	"svw.info/playsudoku/internal/usecase"
	"svw.info/playsudoku/internal/validator"
	"svw.info/playsudoku/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func newServeCommand() *cobra.Command {
	var (
		addr     string
		persist  string
		levelStr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := slog.LevelInfo
			switch strings.ToLower(levelStr) {
			case "debug":
				lvl = slog.LevelDebug
			case "warn":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
			_ = os.MkdirAll(persist, 0o755)

			uc := usecase.NewService(
				generator.NewRandomized(),
				solver.NewBacktracking(),
				validator.New(),
				storage.NewFS(persist),
			)
			manager := httpadapter.NewManager()
			manager.Start()
			defer manager.Stop()
			h := httpadapter.New(uc, manager)

			tmpl := web.Templates()
			mux := http.NewServeMux()
			mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
			mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
					http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
				}
			})
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persist)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	return cmd
}
