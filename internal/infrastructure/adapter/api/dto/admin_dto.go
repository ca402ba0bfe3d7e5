package dto

import (
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// OverviewResponse represents the admin dashboard counts
type OverviewResponse struct {
	Users               int64 `json:"users"`
	PendingKYC          int64 `json:"pendingKyc"`
	PendingTransactions int64 `json:"pendingTransactions"`
}

// ContentRequest represents POST and PUT on /api/admin/content
type ContentRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Body        string `json:"body"`
	IsPublished bool   `json:"isPublished"`
}

// ToUseCase maps the body
func (r ContentRequest) ToUseCase() usecase.ContentRequest {
	return usecase.ContentRequest{
		Title:       r.Title,
		Slug:        r.Slug,
		Body:        r.Body,
		IsPublished: r.IsPublished,
	}
}

// ContentResponse represents a page
type ContentResponse struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Body        string    `json:"body"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewContentResponse maps a page
func NewContentResponse(c *entity.Content) ContentResponse {
	return ContentResponse{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Body:        c.Body,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewContentList maps pages
func NewContentList(pages []*entity.Content) []ContentResponse {
	out := make([]ContentResponse, 0, len(pages))
	for _, c := range pages {
		out = append(out, NewContentResponse(c))
	}
	return out
}

// SettingRequest represents POST /api/admin/settings
type SettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// SettingResponse represents a setting
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Type      string    `json:"type"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSettingResponse maps a setting
func NewSettingResponse(s *entity.Setting) SettingResponse {
	return SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		Type:      string(s.Type),
		UpdatedAt: s.UpdatedAt,
	}
}

// NewSettingList maps settings
func NewSettingList(settings []*entity.Setting) []SettingResponse {
	out := make([]SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, NewSettingResponse(s))
	}
	return out
}
