// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// HTTP front end for the equicore module: a single /moves endpoint
// that accepts a board/rack/bag snapshot and returns the generator's
// chosen move, protected by an optional bearer token.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/torfi/equicore"
)

// movesRequest is the JSON body of a POST /moves call: a snapshot of
// the board, the mover's rack, the opponent's rack (if known), and
// the bag's remaining tile count.
type movesRequest struct {
	Board    []string `json:"board"`
	Rack     string   `json:"rack"`
	OppRack  string   `json:"oppRack"`
	BagCount int      `json:"bagCount"`
}

// movesResponse is the JSON body returned by a POST /moves call: a
// human-readable rendering of the chosen move plus its score and
// equity in whole-point units, or Pass=true if no move beats passing.
type movesResponse struct {
	Move   string  `json:"move,omitempty"`
	Score  int     `json:"score,omitempty"`
	Equity float64 `json:"equity,omitempty"`
	Pass   bool    `json:"pass,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("equiserve: encoding response: %v", err)
	}
}

// server bundles the engine state shared across requests: a lexicon
// and leave table loaded once at startup, plus the access key
// guarding the /moves endpoint (empty disables the check).
type server struct {
	lexicon   *equicore.Lexicon
	leaves    *equicore.LeaveTable
	accessKey string
}

func (s *server) checkAuth(r *http.Request) bool {
	if s.accessKey == "" {
		return true
	}
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, prefix) && auth[len(prefix):] == s.accessKey
}

// handleMoves is the /moves endpoint. It recovers from a core panic
// so that a single malformed request can't bring the service down,
// answering with a 500 and a logged stack trace instead.
func (s *server) handleMoves(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("equiserve: panic handling /moves: %v", rec)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}()

	if !s.checkAuth(r) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid bearer token"})
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}

	var req movesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("decoding request: %v", err)})
		return
	}

	board, err := equicore.BoardFromStrings(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	equicore.BoardUpdateCrossSets(board, s.lexicon)

	rack := equicore.NewRack(equicore.SanitizeRackInput(req.Rack))
	var oppRack *equicore.Rack
	if req.OppRack != "" {
		oppRack = equicore.NewRack(equicore.SanitizeRackInput(req.OppRack))
	}

	move, found := equicore.GenerateMoves(board, rack, oppRack, s.lexicon, s.leaves, req.BagCount)
	if !found {
		writeJSON(w, http.StatusOK, movesResponse{Pass: true})
		return
	}
	writeJSON(w, http.StatusOK, movesResponse{
		Move:   move.String(),
		Score:  int(move.Score / equicore.EighthsPerPoint),
		Equity: float64(move.Equity) / float64(equicore.EighthsPerPoint),
	})
}

func main() {
	cfg, err := equicore.LoadEngineConfig()
	if err != nil {
		log.Fatalf("equiserve: %v", err)
	}

	lexData, err := os.ReadFile(cfg.LexiconPath)
	if err != nil {
		log.Fatalf("equiserve: reading lexicon %q: %v", cfg.LexiconPath, err)
	}
	lexicon, err := equicore.LoadLexicon(lexData)
	if err != nil {
		log.Fatalf("equiserve: parsing lexicon %q: %v", cfg.LexiconPath, err)
	}

	var leaves *equicore.LeaveTable
	if cfg.LeavesPath != "" {
		leavesData, err := os.ReadFile(cfg.LeavesPath)
		if err != nil {
			log.Fatalf("equiserve: reading leave table %q: %v", cfg.LeavesPath, err)
		}
		leaves, err = equicore.LoadLeaveTable(leavesData)
		if err != nil {
			log.Fatalf("equiserve: parsing leave table %q: %v", cfg.LeavesPath, err)
		}
	}

	s := &server{lexicon: lexicon, leaves: leaves, accessKey: cfg.AccessKey}
	http.HandleFunc("/moves", s.handleMoves)

	log.SetOutput(os.Stderr)
	log.Printf("equiserve: listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, nil))
}
