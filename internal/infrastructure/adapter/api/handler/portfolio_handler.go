package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/dto"
)

// PortfolioHandler handles holdings and the watchlist
type PortfolioHandler struct {
	portfolio    usecase.PortfolioUseCase
	watchlist    usecase.WatchlistUseCase
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(
	portfolio usecase.PortfolioUseCase,
	watchlist usecase.WatchlistUseCase,
	transactions usecase.TransactionUseCase,
	logger coreport.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolio:    portfolio,
		watchlist:    watchlist,
		transactions: transactions,
		logger:       logger,
	}
}

// List handles GET /api/portfolio
func (h *PortfolioHandler) List(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "list portfolio", err)
		return
	}

	entries, err := h.portfolio.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list portfolio", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPortfolioList(entries))
}

// Buy handles POST /api/portfolio
func (h *PortfolioHandler) Buy(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "buy", err)
		return
	}

	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "buy", bindError(err))
		return
	}

	result, err := h.transactions.Buy(c.Request.Context(), req.ToUseCase(userID))
	if err != nil {
		respondError(c, h.logger, "buy", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBuyResponse(result))
}

// ListWatchlist handles GET /api/watchlist
func (h *PortfolioHandler) ListWatchlist(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "list watchlist", err)
		return
	}

	entries, err := h.watchlist.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list watchlist", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWatchlist(entries))
}

// AddToWatchlist handles POST /api/watchlist
func (h *PortfolioHandler) AddToWatchlist(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "add to watchlist", err)
		return
	}

	var req dto.WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "add to watchlist", bindError(err))
		return
	}

	entry, err := h.watchlist.Add(c.Request.Context(), usecase.WatchlistAddRequest{
		UserID:      userID,
		AssetSymbol: req.AssetSymbol,
		AssetName:   req.AssetName,
		AssetType:   req.AssetType,
		Exchange:    req.Exchange,
	})
	if err != nil {
		respondError(c, h.logger, "add to watchlist", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewWatchlistEntryResponse(entry))
}

// RemoveFromWatchlist handles DELETE /api/watchlist/:id
func (h *PortfolioHandler) RemoveFromWatchlist(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "remove from watchlist", err)
		return
	}
	entryID, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "remove from watchlist", err)
		return
	}

	if err := h.watchlist.Remove(c.Request.Context(), userID, entryID); err != nil {
		respondError(c, h.logger, "remove from watchlist", err)
		return
	}
	c.Status(http.StatusNoContent)
}
