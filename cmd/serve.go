package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/offerdesk/internal/export"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/pricing"
	"github.com/sells-group/offerdesk/internal/research"
	"github.com/sells-group/offerdesk/internal/state"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the configurator HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(e, cfg.HubSpot.PipelineID),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(context.Background())
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// quoteView is the totals breakdown returned by GET /quote.
type quoteView struct {
	License             pricing.LicenseTotals `json:"license"`
	ImplementationGrosz int64                 `json:"implementation_grosz"`
	SupportGrosz        int64                 `json:"support_grosz"`
	ExtrasGrosz         int64                 `json:"extras_grosz"`
	TotalGrosz          int64                 `json:"total_grosz"`
	PaybackMonths       float64               `json:"payback_months"`
	ROI                 model.ROIResults      `json:"roi"`
}

func newRouter(e *env, pipelineID string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/state", func(w http.ResponseWriter, req *http.Request) {
		s, err := e.loadState(req.Context())
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	})

	r.Get("/quote", func(w http.ResponseWriter, req *http.Request) {
		s, err := e.loadState(req.Context())
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, quoteView{
			License:             s.LicenseTotals(),
			ImplementationGrosz: s.ImplementationTotal(),
			SupportGrosz:        s.SupportPrice(),
			ExtrasGrosz:         s.ExtrasTotal(),
			TotalGrosz:          s.ProjectCostTotal(),
			PaybackMonths:       s.PaybackMonths(),
			ROI:                 s.ROIResults(),
		})
	})

	r.Get("/lineitems", func(w http.ResponseWriter, req *http.Request) {
		s, err := e.loadState(req.Context())
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, s.LineItems())
	})

	r.Patch("/roi", func(w http.ResponseWriter, req *http.Request) {
		var p state.ROIPatch
		if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
			httpError(w, http.StatusBadRequest, eris.Wrap(err, "decode patch"))
			return
		}
		e.update(w, req, func(s state.State) (state.State, any) {
			s = state.SetROIInputs(s, p)
			return s, s.ROIResults()
		})
	})

	r.Patch("/config", func(w http.ResponseWriter, req *http.Request) {
		var p state.ConfigPatch
		if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
			httpError(w, http.StatusBadRequest, eris.Wrap(err, "decode patch"))
			return
		}
		e.update(w, req, func(s state.State) (state.State, any) {
			s = state.SetConfig(s, p)
			return s, map[string]int64{"total_grosz": s.ProjectCostTotal()}
		})
	})

	r.Post("/roi/committee", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Name     string             `json:"name"`
			Position string             `json:"position"`
			Status   model.MemberStatus `json:"status"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			httpError(w, http.StatusBadRequest, eris.Wrap(err, "decode member"))
			return
		}
		e.update(w, req, func(s state.State) (state.State, any) {
			s, id := state.AddCommitteeMember(s, body.Name, body.Position, body.Status)
			return s, map[string]string{"id": id}
		})
	})

	r.Delete("/roi/committee/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		e.update(w, req, func(s state.State) (state.State, any) {
			return state.RemoveCommitteeMember(s, id), nil
		})
	})

	r.Post("/roi/schedule", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Name   string           `json:"name"`
			Status model.StepStatus `json:"status"`
			Date   string           `json:"date"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			httpError(w, http.StatusBadRequest, eris.Wrap(err, "decode step"))
			return
		}
		e.update(w, req, func(s state.State) (state.State, any) {
			s, id := state.AddScheduleStep(s, body.Name, body.Status, body.Date)
			return s, map[string]string{"id": id}
		})
	})

	r.Delete("/roi/schedule/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		e.update(w, req, func(s state.State) (state.State, any) {
			return state.RemoveScheduleStep(s, id), nil
		})
	})

	r.Post("/config/extras", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Text        string `json:"text"`
			AmountGrosz int64  `json:"amount_grosz"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			httpError(w, http.StatusBadRequest, eris.Wrap(err, "decode extra"))
			return
		}

		e.mu.Lock()
		defer e.mu.Unlock()
		s, err := e.loadState(req.Context())
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		s, id := state.AddExtraArrangement(s, body.Text, body.AmountGrosz)
		if id == "" {
			httpError(w, http.StatusConflict, eris.Errorf("extra arrangements are capped at %d", model.MaxExtraArrangements))
			return
		}
		if err := e.saveState(req.Context(), s); err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	})

	r.Delete("/config/extras/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		e.update(w, req, func(s state.State) (state.State, any) {
			return state.RemoveExtraArrangement(s, id), nil
		})
	})

	r.Post("/reset", func(w http.ResponseWriter, req *http.Request) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if err := e.saveState(req.Context(), e.freshState()); err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	})

	r.Post("/push", func(w http.ResponseWriter, req *http.Request) {
		if e.crm == nil {
			httpError(w, http.StatusServiceUnavailable, eris.New("hubspot token not configured"))
			return
		}
		s, err := e.loadState(req.Context())
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}

		payload := export.CRMPayload(s)
		dealID, err := pushDeal(req.Context(), e.crm, payload, pipelineID)
		if err != nil {
			httpError(w, http.StatusBadGateway, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{
			"deal_id":   dealID,
			"deal_name": payload.DealName,
		})
	})

	r.Post("/research", func(w http.ResponseWriter, req *http.Request) {
		if e.researcher == nil {
			httpError(w, http.StatusServiceUnavailable, eris.New("anthropic key not configured"))
			return
		}

		e.mu.Lock()
		defer e.mu.Unlock()
		s, err := e.loadState(req.Context())
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		if s.Lead.CompanyName == "" {
			httpError(w, http.StatusBadRequest, eris.New("no company name set"))
			return
		}

		s = state.SetResearchStatus(s, model.ResearchProcessing)
		if err := e.saveState(req.Context(), s); err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}

		// Research runs in the background; clients poll GET /state.
		go func() {
			ctx := context.Background()
			done := research.RunLeadResearch(ctx, s, e.researcher, "claude")
			e.mu.Lock()
			defer e.mu.Unlock()
			if err := e.saveState(ctx, done); err != nil {
				zap.L().Error("save research result failed", zap.Error(err))
			}
		}()

		writeJSON(w, http.StatusAccepted, map[string]string{"status": string(model.ResearchProcessing)})
	})

	return r
}

// update runs a load-modify-save cycle under the session lock and writes the
// function's result as JSON.
func (e *env) update(w http.ResponseWriter, req *http.Request, fn func(state.State) (state.State, any)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.loadState(req.Context())
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}

	s, result := fn(s)
	if err := e.saveState(req.Context(), s); err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
