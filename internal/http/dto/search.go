package dto

import "emcee.events/emcee/internal/search"

type SearchHit struct {
	ID        int64  `json:"id,string"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code,omitempty"`
}

type SearchResponse struct {
	Query   string      `json:"query"`
	Results []SearchHit `json:"results"`
}

type ReindexResponse struct {
	Indexed int `json:"indexed"`
}

func ToSearchHits(hits []search.Hit) []SearchHit {
	out := make([]SearchHit, 0, len(hits))
	for _, hit := range hits {
		out = append(out, SearchHit{
			ID:        hit.ID,
			Type:      hit.Type,
			Name:      hit.Name,
			ShortCode: hit.ShortCode,
		})
	}
	return out
}
