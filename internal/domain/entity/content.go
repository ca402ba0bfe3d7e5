package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Content is an admin-managed page
type Content struct {
	ID          uint64
	Title       string
	Slug        string
	Body        string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewContent validates and creates a page
func NewContent(title, slug, body string, published bool, timeProvider coreport.TimeProvider) (*Content, error) {
	c := &Content{CreatedAt: timeProvider.Now()}
	if err := c.Apply(title, slug, body, published, timeProvider); err != nil {
		return nil, err
	}
	c.UpdatedAt = c.CreatedAt
	return c, nil
}

// Apply replaces the editable fields
func (c *Content) Apply(title, slug, body string, published bool, timeProvider coreport.TimeProvider) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValidationError("title", errs.ErrValidation)
	}

	slug = strings.TrimSpace(slug)
	if !slugPattern.MatchString(slug) {
		return errs.ErrInvalidSlug
	}

	c.Title = title
	c.Slug = slug
	c.Body = body
	c.IsPublished = published
	c.UpdatedAt = timeProvider.Now()
	return nil
}
