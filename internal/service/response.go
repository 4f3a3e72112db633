package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
)

// StyleResponse is the outward projection of a domain.Style.
type StyleResponse struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}

// VersionResponse is the outward projection of a domain.Version.
type VersionResponse struct {
	Version     string  `json:"version"`
	Parameter   string  `json:"parameter"`
	ReleaseDate *string `json:"release_date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// PropertyResponse is the outward projection of a domain.Property.
type PropertyResponse struct {
	Version      string   `json:"version"`
	Name         string   `json:"name"`
	Parameters   []string `json:"parameters"`
	DefaultValue *string  `json:"default_value,omitempty"`
	MinValue     *string  `json:"min_value,omitempty"`
	MaxValue     *string  `json:"max_value,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// HistoryResponse is the outward projection of a domain.PromptHistory.
type HistoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Prompt    string    `json:"prompt"`
	Version   string    `json:"version"`
	CreatedOn time.Time `json:"created_on"`
}

// HistoryPage is one page of prompt history, newest first.
type HistoryPage struct {
	Items      []HistoryResponse `json:"items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
}

// stringer is implemented by every domain value object.
type stringer interface{ Value() string }

// optional returns the value of v, or nil when v is nil.
func optional[V stringer](v *V) *string {
	if v == nil {
		return nil
	}
	s := (*v).Value()
	return &s
}

func values[V stringer](vs []V) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Value()
	}
	return out
}

// each lifts a projection of one item to a projection of a slice.
func each[T, U any](fn func(T) U) func([]T) []U {
	return func(ts []T) []U {
		out := make([]U, len(ts))
		for i, t := range ts {
			out[i] = fn(t)
		}
		return out
	}
}

func toStyleResponse(s domain.Style) StyleResponse {
	return StyleResponse{
		Name:        s.Name().Value(),
		Type:        s.Type().Value(),
		Description: optional(s.Description()),
		Tags:        values(s.Tags()),
	}
}

func toVersionResponse(v domain.Version) VersionResponse {
	var releaseDate *string
	if d := v.ReleaseDate(); d != nil {
		s := d.String()
		releaseDate = &s
	}
	return VersionResponse{
		Version:     v.Version().Value(),
		Parameter:   v.Parameter().Value(),
		ReleaseDate: releaseDate,
		Description: optional(v.Description()),
	}
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		Version:      p.Version().Value(),
		Name:         p.Name().Value(),
		Parameters:   values(p.Parameters()),
		DefaultValue: optional(p.DefaultValue()),
		MinValue:     optional(p.MinValue()),
		MaxValue:     optional(p.MaxValue()),
		Description:  optional(p.Description()),
	}
}

func toHistoryResponse(h domain.PromptHistory) HistoryResponse {
	return HistoryResponse{
		ID:        h.ID,
		Prompt:    h.Prompt.Value(),
		Version:   h.Version.Value(),
		CreatedOn: h.CreatedOn,
	}
}

func toHistoryPage(p domain.Page[domain.PromptHistory]) HistoryPage {
	return HistoryPage{
		Items:      each(toHistoryResponse)(p.Items),
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
	}
}
