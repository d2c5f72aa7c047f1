package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/internal/config"
	"github.com/cloud-ru/npv-dashboard/internal/dashboard"
	"github.com/cloud-ru/npv-dashboard/internal/metrics"
	"github.com/cloud-ru/npv-dashboard/internal/narrative"
	"github.com/cloud-ru/npv-dashboard/internal/validators"
)

// Server обслуживает HTML дашборд и JSON API
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	tracer   trace.Tracer
	view     *dashboard.View
	narrator *narrative.Narrator
}

// NewServer создает сервер поверх уже посчитанного представления
func NewServer(cfg *config.Config, logger *zap.Logger, tracer trace.Tracer, view *dashboard.View, narrator *narrative.Narrator) *Server {
	return &Server{cfg: cfg, logger: logger, tracer: tracer, view: view, narrator: narrator}
}

// Routes возвращает маршрутизатор со всеми эндпоинтами
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.instrument("dashboard", s.handleDashboard))
	mux.HandleFunc("POST /narrative", s.instrument("narrative_form", s.handleNarrativeForm))
	mux.HandleFunc("GET /api/analysis", s.instrument("analysis_default", s.handleDefaultAnalysis))
	mux.HandleFunc("POST /api/analysis", s.instrument("analysis", s.handleAnalysis))
	mux.HandleFunc("GET /api/narrative", s.instrument("narrative_state", s.handleNarrativeState))
	mux.HandleFunc("POST /api/narrative", s.instrument("narrative_start", s.handleNarrativeStart))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// AnalysisRequest - входные данные произвольного расчета
type AnalysisRequest struct {
	InitialInvestment float64   `json:"initial_investment"`
	DiscountRate      float64   `json:"discount_rate"`
	CashFlows         []float64 `json:"cash_flows"`
}

// AnalysisResponse - результат расчета для API
type AnalysisResponse struct {
	Metrics    calculations.ProjectMetrics `json:"metrics"`
	Table      []calculations.PeriodRecord `json:"table"`
	Comparison calculations.RateComparison `json:"comparison"`
	Charts     *dashboard.Charts           `json:"charts,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusRecorder запоминает код ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := s.tracer.Start(r.Context(), endpoint)
		defer span.End()
		span.SetAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.path", r.URL.Path),
		)

		metrics.APICalls.WithLabelValues(endpoint, "started").Inc()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.status_code", rec.status))
		status := "success"
		if rec.status >= 400 {
			status = "error"
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}
		metrics.APICalls.WithLabelValues(endpoint, status).Inc()
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	mode, err := dashboard.ParseViewMode(r.URL.Query().Get("view"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := dashboard.Page{
		View:        s.view,
		Mode:        mode,
		ShowSidebar: r.URL.Query().Get("sidebar") != "0",
		Narrative:   s.narrator.State(),
	}

	// страница отдается целиком или не отдается вовсе
	var buf bytes.Buffer
	if err := dashboard.Render(&buf, page); err != nil {
		s.logger.Error("dashboard render failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("dashboard write failed", zap.Error(err))
	}
}

func (s *Server) handleNarrativeForm(w http.ResponseWriter, r *http.Request) {
	a := s.view.Analysis
	if _, err := s.narrator.Start(a.Metrics, a.Table); err != nil && !errors.Is(err, narrative.ErrRequestInFlight) {
		s.logger.Error("narrative start failed", zap.Error(err))
	}
	sidebar := "1"
	if r.URL.Query().Get("sidebar") == "0" {
		sidebar = "0"
	}
	http.Redirect(w, r, "/?view=ai&sidebar="+sidebar, http.StatusSeeOther)
}

func (s *Server) handleDefaultAnalysis(w http.ResponseWriter, r *http.Request) {
	metrics.Calculations.WithLabelValues("default", "success").Inc()
	a := s.view.Analysis
	charts := s.view.Charts
	s.writeJSON(w, http.StatusOK, AnalysisResponse{
		Metrics:    a.Metrics,
		Table:      a.Table,
		Comparison: s.view.Comparison,
		Charts:     &charts,
	})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	const source = "api"
	span := trace.SpanFromContext(r.Context())

	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.CalculationErrors.WithLabelValues(source, "decode").Inc()
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	span.SetAttributes(
		attribute.Float64("initial_investment", req.InitialInvestment),
		attribute.Float64("discount_rate", req.DiscountRate),
		attribute.Int("periods", len(req.CashFlows)),
	)

	if err := validators.CheckScenario(s.cfg, req.InitialInvestment, req.DiscountRate, req.CashFlows); err != nil {
		span.SetAttributes(attribute.String("error", "validation_error"))
		metrics.Calculations.WithLabelValues(source, "validation_error").Inc()
		metrics.CalculationErrors.WithLabelValues(source, "validation").Inc()
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("неверные параметры: %v", err)})
		return
	}

	schedule, err := calculations.NewSchedule(req.InitialInvestment, req.CashFlows)
	if err == nil {
		var result *calculations.AnalysisResult
		result, err = calculations.Analyze(schedule, req.DiscountRate)
		if err == nil {
			span.SetAttributes(
				attribute.Bool("success", true),
				attribute.Float64("npv", result.Metrics.NPV),
				attribute.Bool("irr_determined", result.Metrics.IRRDetermined),
			)
			metrics.Calculations.WithLabelValues(source, "success").Inc()
			s.writeJSON(w, http.StatusOK, AnalysisResponse{
				Metrics:    result.Metrics,
				Table:      result.Table,
				Comparison: calculations.CompareRates(result.Metrics),
			})
			return
		}
	}

	errorType := "calculation"
	if errors.Is(err, calculations.ErrNonFiniteResult) {
		errorType = "non_finite_result"
	}
	span.SetAttributes(attribute.String("error", "calculation_error"))
	metrics.Calculations.WithLabelValues(source, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(source, errorType).Inc()
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("ошибка при выполнении расчета: %v", err)})
}

func (s *Server) handleNarrativeState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.narrator.State())
}

func (s *Server) handleNarrativeStart(w http.ResponseWriter, r *http.Request) {
	a := s.view.Analysis
	st, err := s.narrator.Start(a.Metrics, a.Table)
	switch {
	case errors.Is(err, narrative.ErrRequestInFlight):
		s.writeJSON(w, http.StatusConflict, st)
	case err != nil:
		s.logger.Error("narrative start failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: narrative.FailureMessage})
	default:
		s.writeJSON(w, http.StatusAccepted, st)
	}
}

// writeJSON сериализует ответ до записи заголовков: ошибка маршалинга
// превращается в 500, а не в пустое тело с уже отправленным статусом
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("response encoding failed", zap.Int("status", status), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.Warn("response write failed", zap.Error(err))
	}
}
