package entity

import (
	"strings"
	"time"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// WatchlistEntry is an asset a user follows
type WatchlistEntry struct {
	ID          uint64
	UserID      uint64
	AssetSymbol string
	AssetName   string
	AssetType   string
	Exchange    *string
	CreatedAt   time.Time
}

// NewWatchlistEntry validates and creates a watchlist entry
func NewWatchlistEntry(userID uint64, assetSymbol, assetName, assetType, exchange string, timeProvider coreport.TimeProvider) (*WatchlistEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	symbol, kind, err := NormalizeAsset(assetSymbol, assetType)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(assetName)
	if name == "" {
		name = symbol
	}

	return &WatchlistEntry{
		UserID:      userID,
		AssetSymbol: symbol,
		AssetName:   name,
		AssetType:   kind,
		Exchange:    optionalString(exchange),
		CreatedAt:   timeProvider.Now(),
	}, nil
}
