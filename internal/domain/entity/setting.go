package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// SettingType declares how a setting value is interpreted
type SettingType string

// Setting types
const (
	SettingString  SettingType = "string"
	SettingNumber  SettingType = "number"
	SettingBoolean SettingType = "boolean"
	SettingJSON    SettingType = "json"
)

// Setting is a typed key/value pair
type Setting struct {
	ID        uint64
	Key       string
	Value     string
	Type      SettingType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSetting validates the value against its declared type
func NewSetting(key, value, settingType string, timeProvider coreport.TimeProvider) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", errs.ErrInvalidSetting)
	}

	if settingType == "" {
		settingType = string(SettingString)
	}
	t := SettingType(settingType)
	if err := validateSettingValue(t, value); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Setting{
		Key:       key,
		Value:     value,
		Type:      t,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func validateSettingValue(t SettingType, value string) error {
	switch t {
	case SettingString:
		return nil
	case SettingNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%w: %q is not a number", errs.ErrInvalidSetting, value)
		}
	case SettingBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%w: %q is not a boolean", errs.ErrInvalidSetting, value)
		}
	case SettingJSON:
		if !json.Valid([]byte(value)) {
			return fmt.Errorf("%w: value is not valid json", errs.ErrInvalidSetting)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", errs.ErrInvalidSetting, t)
	}
	return nil
}
