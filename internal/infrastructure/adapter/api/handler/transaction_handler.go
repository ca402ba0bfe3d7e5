package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles wallet and transaction requests
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
	ledger       usecase.LedgerUseCase
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactions usecase.TransactionUseCase,
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		ledger:       ledger,
		logger:       logger,
	}
}

// GetWallet handles GET /api/wallet
func (h *TransactionHandler) GetWallet(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "get wallet", err)
		return
	}

	wallet, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get wallet", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(wallet))
}

// Create handles POST /api/transactions. Deposits complete at once; withdrawals wait for an admin.
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "create transaction", err)
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "create transaction", bindError(err))
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), req.ToUseCase(userID))
	if err != nil {
		respondError(c, h.logger, "create transaction", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}

	txs, err := h.transactions.ListForUser(c.Request.Context(), userID, pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(txs))
}

// ListPending handles GET /api/admin/transactions/pending
func (h *TransactionHandler) ListPending(c *gin.Context) {
	txs, err := h.transactions.ListPendingForAdmin(c.Request.Context(), pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list pending transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(txs))
}

// Decide handles PUT /api/admin/transactions/:id
func (h *TransactionHandler) Decide(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, "decide transaction", err)
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "decide transaction", bindError(err))
		return
	}

	tx, err := h.transactions.Decide(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, "decide transaction", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}
