package httpadapter

import (
	"net/http"
	"strconv"
	"time"
)

type collectionItem struct {
	Character  characterPayload `json:"character"`
	Quantity   int              `json:"quantity"`
	ObtainedAt time.Time        `json:"obtained_at"`
}

type historyItem struct {
	GachaID   int64            `json:"gacha_id"`
	Character characterPayload `json:"character"`
	Rarity    int              `json:"rarity"`
	PulledAt  time.Time        `json:"pulled_at"`
}

// handleCollection returns the calling user's holdings, rarest first.
func (h *Handler) handleCollection(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
		return
	}
	entries, err := h.svc.GetCollection(r.Context(), uid)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]collectionItem, 0, len(entries))
	for i := range entries {
		out = append(out, collectionItem{
			Character:  fromDomainCharacter(&entries[i].Character),
			Quantity:   entries[i].Owned.Quantity,
			ObtainedAt: entries[i].Owned.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleHistory returns the calling user's pull log, newest first. The
// optional `limit` query parameter caps the page size.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	entries, err := h.svc.GetHistory(r.Context(), uid, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]historyItem, 0, len(entries))
	for i := range entries {
		out = append(out, historyItem{
			GachaID:   entries[i].Record.GachaID,
			Character: fromDomainCharacter(&entries[i].Character),
			Rarity:    int(entries[i].Record.Rarity),
			PulledAt:  entries[i].Record.PulledAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
