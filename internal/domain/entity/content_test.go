package entity

import (
	"testing"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coremocks "github.com/simplecyberhub/txc/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContent(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	content, err := NewContent("About us", "about-us", "<p>hi</p>", true, mockTime)
	require.NoError(t, err)
	assert.Equal(t, "about-us", content.Slug)
	assert.True(t, content.IsPublished)
	assert.Equal(t, fixedTime, content.UpdatedAt)

	for _, slug := range []string{"", "About", "two words", "trailing-", "-lead"} {
		_, err := NewContent("Title", slug, "", false, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidSlug, slug)
	}

	_, err = NewContent(" ", "ok", "", false, mockTime)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewSetting(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	testCases := []struct {
		name        string
		value       string
		settingType string
		valid       bool
	}{
		{"DefaultsToString", "anything", "", true},
		{"Number", "1.5", "number", true},
		{"NotANumber", "abc", "number", false},
		{"Boolean", "true", "boolean", true},
		{"NotABoolean", "yes", "boolean", false},
		{"JSON", `{"a":1}`, "json", true},
		{"BrokenJSON", `{"a":`, "json", false},
		{"UnknownType", "x", "date", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setting, err := NewSetting("site.name", tc.value, tc.settingType, mockTime)
			if !tc.valid {
				assert.ErrorIs(t, err, errs.ErrInvalidSetting)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, setting.Value)
		})
	}

	_, err := NewSetting(" ", "x", "string", mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidSetting)
}
