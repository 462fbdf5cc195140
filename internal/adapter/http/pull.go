package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/k23002/gacha-simulator/internal/core/domain"
	"github.com/k23002/gacha-simulator/internal/core/port"
)

type pullRequest struct {
	PullCount int    `json:"pull_count"`
	Token     string `json:"token,omitempty"`
}

type pullResult struct {
	CharacterID int64 `json:"character_id"`
	Rarity      int   `json:"rarity"`
}

type pullResponse struct {
	Token     string       `json:"token"`
	Results   []pullResult `json:"results"`
	Duplicate bool         `json:"duplicate,omitempty"`
}

// handlePull executes a pull against a campaign. The body carries
// pull_count (1 or 10) and an optional idempotency token; resending the
// token of a failed attempt is safe, and if the original attempt did
// commit the response carries duplicate=true with no results. A missing
// identity header is a 401, a bad count or inactive campaign a 400, and
// transient apply failures surface as 409 so the client retries with
// the same token.
func (h *Handler) handlePull(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid gacha id", http.StatusBadRequest)
		return
	}
	var req pullRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.Pull(r.Context(), port.PullReq{
		UserID:    uid,
		GachaID:   id,
		PullCount: req.PullCount,
		Token:     req.Token,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := pullResponse{
		Token:     resp.Receipt.Token,
		Results:   make([]pullResult, 0, len(resp.Results)),
		Duplicate: resp.Receipt.Duplicate,
	}
	for _, res := range resp.Results {
		out.Results = append(out.Results, toPullResult(res))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func toPullResult(res domain.DrawResult) pullResult {
	return pullResult{CharacterID: res.CharacterID, Rarity: int(res.Rarity)}
}
