package dto

import (
	"strconv"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// StatusEntryResponse is one workflow stage of the catalog.
type StatusEntryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// NewStatusCatalogResponse converts the catalog preserving order.
func NewStatusCatalogResponse(entries []model.StatusEntry) []StatusEntryResponse {
	out := make([]StatusEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StatusEntryResponse{Key: string(e.Key), Label: e.Label})
	}
	return out
}

// StatusUpdateRequest maps line item ids to status keys.
type StatusUpdateRequest struct {
	Statuses map[string]string `json:"statuses"`
}

// Edits parses item ids. Entries whose id is not a positive integer in
// canonical decimal form ("01", "+1") are dropped, so each item has one key.
func (r StatusUpdateRequest) Edits() map[int64]model.ItemStatus {
	edits := make(map[int64]model.ItemStatus, len(r.Statuses))
	for rawID, key := range r.Statuses {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 || strconv.FormatInt(id, 10) != rawID {
			continue
		}
		edits[id] = model.ItemStatus(key)
	}
	return edits
}

// StatusUpdateResponse lists the line items that were written.
type StatusUpdateResponse struct {
	Updated []int64 `json:"updated"`
}
