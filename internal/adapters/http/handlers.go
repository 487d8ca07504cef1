package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/session"
	"svw.info/playsudoku/internal/usecase"
)

// Handler exposes the session engine as a JSON API. All game state lives in
// the Manager; handlers translate requests into engine operations.
type Handler struct {
	UC *usecase.Service
	M  *Manager
}

func New(uc *usecase.Service, m *Manager) *Handler { return &Handler{UC: uc, M: m} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/session", h.handleNew)
	mux.HandleFunc("GET /api/session/{id}", h.handleState)
	mux.HandleFunc("POST /api/session/{id}/select", h.handleSelect)
	mux.HandleFunc("POST /api/session/{id}/place", h.handlePlace)
	mux.HandleFunc("POST /api/session/{id}/check", h.handleCheck)
	mux.HandleFunc("POST /api/session/{id}/hint", h.handleHint)
	mux.HandleFunc("POST /api/session/{id}/autosolve", h.handleAutoSolve)
	mux.HandleFunc("POST /api/session/{id}/reset", h.handleReset)
	mux.HandleFunc("POST /api/session/{id}/save", h.handleSave)
	mux.HandleFunc("POST /api/session/load", h.handleLoad)
	mux.HandleFunc("GET /api/sessions", h.handleList)
	mux.HandleFunc("POST /api/solve", h.handleSolve)
	mux.HandleFunc("GET /api/session/{id}/ws", h.handleWS)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResp struct {
	Error string `json:"error"`
}

// ---- New game ----

type newReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type sessionResp struct {
	ID   string       `json:"id"`
	View session.View `json:"view"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sess, _, err := h.UC.NewGame(r.Context(), seed, domain.ParseDifficulty(req.Difficulty))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	id := h.M.Add(sess)
	v, _ := h.M.ViewOf(id)
	writeJSON(w, http.StatusOK, sessionResp{ID: id, View: v})
}

// ---- State & mutations ----

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	v, ok := h.M.ViewOf(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp{Error: "unknown session"})
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// mutate decodes nothing, applies op, and replies with the fresh view.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op func(*session.Session)) {
	v, ok := h.M.Do(r.PathValue("id"), op)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp{Error: "unknown session"})
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type selectReq struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	h.mutate(w, r, func(s *session.Session) {
		s.Select(domain.CellCoord{Row: req.Row, Col: req.Col})
	})
}

type placeReq struct {
	Digit uint8 `json:"digit"` // 0 clears the selected cell
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	h.mutate(w, r, func(s *session.Session) { s.Place(req.Digit) })
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *session.Session) { s.Check() })
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *session.Session) { s.Hint() })
}

func (h *Handler) handleAutoSolve(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *session.Session) { s.AutoSolve() })
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *session.Session) { s.Reset() })
}

// ---- Save / Load / List ----

type saveReq struct {
	Name string `json:"name,omitempty"`
}
type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	snap, ok := h.M.Snapshot(r.PathValue("id"), req.Name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp{Error: "unknown session"})
		return
	}
	if err := h.UC.SaveSession(r.Context(), snap); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: snap.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON or missing id"})
		return
	}
	sess, err := h.UC.LoadSession(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp{Error: err.Error()})
		return
	}
	id := h.M.Add(sess)
	v, _ := h.M.ViewOf(id)
	writeJSON(w, http.StatusOK, sessionResp{ID: id, View: v})
}

type listResp struct {
	Sessions []domain.SavedGameMeta `json:"sessions"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.ListSessions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Sessions: metas})
}

// ---- Solve (board in, board out; no session involved) ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}
type solveResp struct {
	Board      domain.Grid `json:"board"`
	Unique     bool        `json:"unique"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	solved, st, err := h.UC.Solve(r.Context(), req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}
	unique, ust, _ := h.UC.Unique(r.Context(), req.Board)
	writeJSON(w, http.StatusOK, solveResp{
		Board:      solved,
		Unique:     unique,
		DurationMs: (st.Duration + ust.Duration).Milliseconds(),
		Nodes:      st.Nodes + ust.Nodes,
	})
}
