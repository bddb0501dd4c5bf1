package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/torfi/equicore"
)

// emptyLexicon mirrors equicore's own minimal-fixture pattern: a
// two-root-word lexicon with no words, enough to exercise the
// request/response plumbing without needing a real dictionary file.
func emptyLexicon(t *testing.T) *equicore.Lexicon {
	t.Helper()
	lx, err := equicore.NewLexicon([]uint32{0, 0})
	if err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}
	return lx
}

func emptyBoardRows() []string {
	rows := make([]string, equicore.BoardSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", equicore.BoardSize)
	}
	return rows
}

func TestHandleMovesRejectsMissingBearerToken(t *testing.T) {
	s := &server{lexicon: emptyLexicon(t), accessKey: "secret"}
	body, _ := json.Marshal(movesRequest{Board: emptyBoardRows(), Rack: "ABCDEFG", BagCount: 50})
	req := httptest.NewRequest(http.MethodPost, "/moves", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleMoves(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleMovesAcceptsValidBearerToken(t *testing.T) {
	s := &server{lexicon: emptyLexicon(t), accessKey: "secret"}
	body, _ := json.Marshal(movesRequest{Board: emptyBoardRows(), Rack: "ABCDEFG", BagCount: 50})
	req := httptest.NewRequest(http.MethodPost, "/moves", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()

	s.handleMoves(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleMovesReportsPassWhenNothingIsPlayable(t *testing.T) {
	// An empty lexicon accepts no words, so the generator can never
	// find a placement, and a nil leave table rules out an exchange:
	// the handler must fall back to reporting a pass.
	s := &server{lexicon: emptyLexicon(t)}
	body, _ := json.Marshal(movesRequest{Board: emptyBoardRows(), Rack: "ABCDEFG", BagCount: 50})
	req := httptest.NewRequest(http.MethodPost, "/moves", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleMoves(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp movesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Pass {
		t.Errorf("expected Pass=true, got %+v", resp)
	}
}

func TestHandleMovesRejectsMalformedBoard(t *testing.T) {
	s := &server{lexicon: emptyLexicon(t)}
	body, _ := json.Marshal(movesRequest{Board: []string{"too short"}, Rack: "ABC", BagCount: 50})
	req := httptest.NewRequest(http.MethodPost, "/moves", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleMoves(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleMovesRejectsNonPostMethod(t *testing.T) {
	s := &server{lexicon: emptyLexicon(t)}
	req := httptest.NewRequest(http.MethodGet, "/moves", nil)
	rec := httptest.NewRecorder()

	s.handleMoves(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
