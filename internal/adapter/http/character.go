package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

type characterPayload struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      int    `json:"rarity"`
	Attribute   string `json:"attribute"`
	HP          int    `json:"hp"`
	ATK         int    `json:"atk"`
	AGI         int    `json:"agi"`
}

func (p *characterPayload) toDomain() *domain.Character {
	return &domain.Character{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Rarity:      domain.Rarity(p.Rarity),
		Attribute:   p.Attribute,
		HP:          p.HP,
		ATK:         p.ATK,
		AGI:         p.AGI,
	}
}

func fromDomainCharacter(c *domain.Character) characterPayload {
	return characterPayload{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Rarity:      int(c.Rarity),
		Attribute:   c.Attribute,
		HP:          c.HP,
		ATK:         c.ATK,
		AGI:         c.AGI,
	}
}

func (h *Handler) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	chars, err := h.svc.ListCharacters(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]characterPayload, 0, len(chars))
	for i := range chars {
		out = append(out, fromDomainCharacter(&chars[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}
	c, err := h.svc.GetCharacter(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fromDomainCharacter(c))
}

func (h *Handler) handleCreateCharacter(w http.ResponseWriter, r *http.Request) {
	var p characterPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateCharacter(r.Context(), p.toDomain())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) handleUpdateCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}
	var p characterPayload
	if err = json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c := p.toDomain()
	c.ID = id
	if err = h.svc.UpdateCharacter(r.Context(), c); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid character id", http.StatusBadRequest)
		return
	}
	if err = h.svc.DeleteCharacter(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
