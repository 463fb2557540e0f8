package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/phinics77/back-tracking/internal/collector"
)

// Server exposes the evaluation as a JSON API for browser frontends.
// Responses carry an open CORS header; every request fetches fresh data.
type Server struct {
	Fetcher       collector.Fetcher
	DefaultSymbol string
	DefaultAmount float64
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/backtrack", s.handleBacktrack)
	mux.HandleFunc("/healthz", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleBacktrack(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		symbol = s.DefaultSymbol
	}
	amount := s.DefaultAmount
	if v := r.URL.Query().Get("amount"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid amount", http.StatusBadRequest)
			return
		}
		amount = parsed
	}

	rep, err := collector.NewCollector(s.Fetcher, symbol).Collect(amount, time.Now())
	if err != nil {
		log.Printf("[WARN] backtrack %s: %v", symbol, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Printf("[WARN] encode report: %v", err)
	}
}
