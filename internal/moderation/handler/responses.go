package handler

import (
	"encoding/json"

	"localdir/internal/moderation/models"
)

// PendingResponse is the body of GET /pending. Each registered variant is
// listed under its descriptor's ResponseKey next to the paging totals.
type PendingResponse struct {
	Lists       map[string][]*models.Entity
	Total       int
	PageCount   int
	CurrentPage int
}

func (r PendingResponse) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.Lists)+3)
	for key, list := range r.Lists {
		body[key] = list
	}
	body["total"] = r.Total
	body["pageCount"] = r.PageCount
	body["currentPage"] = r.CurrentPage
	return json.Marshal(body)
}

func toPendingResponse(p *models.PendingPage) PendingResponse {
	lists := make(map[string][]*models.Entity, len(models.Registry))
	for t, desc := range models.Registry {
		items := p.Items[t]
		if items == nil {
			items = []*models.Entity{}
		}
		lists[desc.ResponseKey] = items
	}
	return PendingResponse{
		Lists:       lists,
		Total:       p.Total,
		PageCount:   p.PageCount,
		CurrentPage: p.CurrentPage,
	}
}
