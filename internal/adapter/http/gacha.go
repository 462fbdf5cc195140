package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

// gachaPayload is the wire form of a campaign definition, matching the
// admin form: rates as decimal strings and the pool as
// (character_id, is_pickup) pairs.
type gachaPayload struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	RarityRates []rarityRate    `json:"rarity_rates"`
	Pool        []poolEntryBody `json:"character_pool"`
}

type rarityRate struct {
	Rarity int    `json:"rarity"`
	Rate   string `json:"rate"`
}

type poolEntryBody struct {
	CharacterID int64 `json:"character_id"`
	Rarity      int   `json:"rarity,omitempty"`
	IsPickup    bool  `json:"is_pickup"`
}

func (p *gachaPayload) toDomain() *domain.Gacha {
	g := &domain.Gacha{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
	for _, rr := range p.RarityRates {
		g.Rates = append(g.Rates, domain.RarityRate{Rarity: domain.Rarity(rr.Rarity), Rate: rr.Rate})
	}
	for _, e := range p.Pool {
		g.Pool = append(g.Pool, domain.PoolEntry{
			CharacterID: e.CharacterID,
			Rarity:      domain.Rarity(e.Rarity),
			IsPickup:    e.IsPickup,
		})
	}
	return g
}

func fromDomainGacha(g *domain.Gacha) gachaPayload {
	p := gachaPayload{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
		RarityRates: make([]rarityRate, 0, len(g.Rates)),
		Pool:        make([]poolEntryBody, 0, len(g.Pool)),
	}
	for _, rr := range g.Rates {
		p.RarityRates = append(p.RarityRates, rarityRate{Rarity: int(rr.Rarity), Rate: rr.Rate})
	}
	for _, e := range g.Pool {
		p.Pool = append(p.Pool, poolEntryBody{CharacterID: e.CharacterID, Rarity: int(e.Rarity), IsPickup: e.IsPickup})
	}
	return p
}

func (h *Handler) handleListGachas(w http.ResponseWriter, r *http.Request) {
	gachas, err := h.svc.ListGachas(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]gachaPayload, 0, len(gachas))
	for i := range gachas {
		out = append(out, fromDomainGacha(&gachas[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetGacha(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid gacha id", http.StatusBadRequest)
		return
	}
	g, err := h.svc.GetGacha(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fromDomainGacha(g))
}

// handleCreateGacha persists a new campaign. The definition goes through
// full validation first, so an unusable configuration never becomes
// pullable.
func (h *Handler) handleCreateGacha(w http.ResponseWriter, r *http.Request) {
	var p gachaPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateGacha(r.Context(), p.toDomain())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) handleUpdateGacha(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid gacha id", http.StatusBadRequest)
		return
	}
	var p gachaPayload
	if err = json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	g := p.toDomain()
	g.ID = id
	if err = h.svc.UpdateGacha(r.Context(), g); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteGacha(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid gacha id", http.StatusBadRequest)
		return
	}
	if err = h.svc.DeleteGacha(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
