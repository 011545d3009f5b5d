package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spacesedan/tickerpulse/internal/market"
	"github.com/spacesedan/tickerpulse/internal/models"
)

// DashboardRequest selects the symbols and window for one dashboard
// round.
type DashboardRequest struct {
	Symbols      []string `json:"symbols" validate:"required,min=1,max=50,dive,min=1,max=5"`
	LookbackDays int      `json:"lookback_days" validate:"omitempty,min=1,max=90"`
}

// DashboardResponse bundles everything the front end renders.
type DashboardResponse struct {
	Sentiment map[string]models.SentimentRecord `json:"sentiment"`
	Alerts    []models.Alert                    `json:"alerts"`
	Summary   DashboardSummary                  `json:"summary"`
}

// DashboardSummary is the headline numbers block.
type DashboardSummary struct {
	TotalStocks  int                  `json:"total_stocks"`
	AvgSentiment float64              `json:"avg_sentiment"`
	ActiveAlerts int                  `json:"active_alerts"`
	Market       models.MarketSummary `json:"market"`
	LastUpdated  string               `json:"last_updated"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	symbol := market.NormalizeSymbol(chi.URLParam(r, "symbol"))
	if !market.ValidSymbol(symbol) {
		writeError(w, http.StatusBadRequest, "invalid symbol")
		return
	}

	days := s.defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			writeError(w, http.StatusBadRequest, "days must be an integer between 1 and 90")
			return
		}
		days = parsed
	}

	record, err := s.analyzer.AnalyzeSymbol(r.Context(), symbol, days)
	if err != nil {
		slog.Error("[Server] Sentiment analysis failed",
			slog.String("symbol", symbol),
			slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "sentiment analysis unavailable for "+symbol)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var req DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	for i, symbol := range req.Symbols {
		req.Symbols[i] = market.NormalizeSymbol(symbol)
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	days := req.LookbackDays
	if days == 0 {
		days = s.defaultDays
	}

	result := s.analyzer.AnalyzeBatch(r.Context(), req.Symbols, days)
	triggered := s.engine.Evaluate(result.Records)

	writeJSON(w, http.StatusOK, DashboardResponse{
		Sentiment: result.Records,
		Alerts:    triggered,
		Summary: DashboardSummary{
			TotalStocks:  len(req.Symbols),
			AvgSentiment: result.Summary.OverallMarketSentiment,
			ActiveAlerts: len(triggered),
			Market:       result.Summary,
			LastUpdated:  time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	rawSymbols := r.URL.Query().Get("symbols")
	if rawSymbols == "" {
		writeError(w, http.StatusBadRequest, "symbols query parameter required")
		return
	}

	var symbols []string
	for _, symbol := range strings.Split(rawSymbols, ",") {
		symbol = market.NormalizeSymbol(symbol)
		if !market.ValidSymbol(symbol) {
			writeError(w, http.StatusBadRequest, "invalid symbol: "+symbol)
			return
		}
		symbols = append(symbols, symbol)
	}

	severity := models.Severity(r.URL.Query().Get("severity"))

	result := s.analyzer.AnalyzeBatch(r.Context(), symbols, s.defaultDays)
	triggered := s.engine.Evaluate(result.Records)

	if severity != "" {
		filtered := triggered[:0]
		for _, alert := range triggered {
			if alert.Severity == severity {
				filtered = append(filtered, alert)
			}
		}
		triggered = filtered
	}
	if triggered == nil {
		triggered = []models.Alert{}
	}

	writeJSON(w, http.StatusOK, triggered)
}

func (s *Server) handleMarketStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, market.Status(time.Now()))
}

func (s *Server) handlePopularStocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"symbols": market.PopularSymbols,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("[Server] Failed to encode response",
			slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
