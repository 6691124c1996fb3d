package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/market-intel/internal/engine"
	"github.com/sells-group/market-intel/internal/model"
	"github.com/sells-group/market-intel/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEngine(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		api := &apiServer{env: env}

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", api.health)
		r.Route("/api", func(r chi.Router) {
			r.Post("/analyze", api.analyze)
			r.Get("/progress/{sessionID}", api.progress)
			r.Get("/providers", api.providers)
			r.Route("/analyses", func(r chi.Router) {
				r.Get("/", api.listAnalyses)
				r.Get("/{id}", api.getAnalysis)
				r.Delete("/{id}", api.deleteAnalysis)
			})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

type apiServer struct {
	env *engineEnv
}

func (s *apiServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *apiServer) analyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	req.EnsureSession()
	rep := engine.MultiReporter{
		engine.LogReporter{},
		s.env.Tracker.Session(req.SessionID),
	}

	doc, err := s.env.Engine.Run(r.Context(), req, rep)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, engine.ErrInferenceUnavailable):
			writeError(w, http.StatusServiceUnavailable, "serviço de IA indisponível, tente novamente")
		case errors.Is(err, engine.ErrMalformedResponse), errors.Is(err, engine.ErrSimulatedContent):
			zap.L().Error("api: analysis rejected", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "análise inválida, configure as APIs corretamente")
		default:
			zap.L().Error("api: analysis failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "falha na análise")
		}
		return
	}

	resp := map[string]any{"analise": doc}

	// Persistence is best-effort: a save failure is surfaced as a warning
	// annotation on the output, never as an analysis failure.
	rec, err := s.env.Store.SaveAnalysis(r.Context(), store.AnalysisRecord{
		SessionID: doc.Request.SessionID,
		Segment:   doc.Request.TrimmedSegment(),
		Score:     doc.Metadata.QualityScore,
		Document:  *doc,
	})
	if err != nil {
		zap.L().Error("api: save analysis failed", zap.Error(err))
		resp["database_warning"] = "análise concluída mas não persistida no banco de dados"
	} else {
		resp["id"] = rec.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *apiServer) progress(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	cps := s.env.Tracker.Checkpoints(sessionID)
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":  sessionID,
		"total_steps": engine.TotalSteps,
		"checkpoints": cps,
	})
}

func (s *apiServer) providers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"search": s.env.Search.Status(),
	})
}

func (s *apiServer) listAnalyses(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{
		Segment: r.URL.Query().Get("segmento"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	recs, err := s.env.Store.ListAnalyses(r.Context(), filter)
	if err != nil {
		zap.L().Error("api: list analyses failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "falha ao listar análises")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analises": recs, "count": len(recs)})
}

func (s *apiServer) getAnalysis(w http.ResponseWriter, r *http.Request) {
	rec, err := s.env.Store.GetAnalysis(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "análise não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *apiServer) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := s.env.Store.DeleteAnalysis(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "análise não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
