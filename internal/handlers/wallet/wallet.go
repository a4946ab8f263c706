package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrewards/backend/internal/domain"
	"github.com/adrewards/backend/internal/dto"
	withdrawalservice "github.com/adrewards/backend/internal/service/withdrawalservice"
	"github.com/adrewards/backend/pkg/auth"
	"github.com/adrewards/backend/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type WithdrawService interface {
	Withdraw(ctx context.Context, userID string, req withdrawalservice.Request) (*domain.Withdrawal, error)
	RefreshStatuses(ctx context.Context, userID string) ([]domain.Withdrawal, error)
}

type WalletHandler struct {
	walletService   Service
	withdrawService WithdrawService
}

func New(walletService Service, withdrawService WithdrawService) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		withdrawService: withdrawService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current balances
//	@Description	Coin and cash balances plus lifetime totals for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		CoinsBalance:       wallet.CoinsBalance,
		CashBalanceUsd:     wallet.CashBalanceUsd,
		TotalCoinsEarned:   wallet.TotalCoinsEarned,
		TotalCashEarnedUsd: wallet.TotalCashEarnedUsd,
		TotalWithdrawnUsd:  wallet.TotalWithdrawnUsd,
	})
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	The authenticated user's ledger entries in append order, with post-mutation balance snapshots.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetTransactionsResponseDTO	"Ledger entries"
//	@Success		204	{object}	utils.Response					"No transactions"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	txns, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.GetTransactionsResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.GetTransactionsResponseDTO{
			ID:                  txn.ID,
			Type:                txn.Type,
			CoinsDelta:          txn.CoinsDelta,
			CashDeltaUsd:        txn.CashDeltaUsd,
			CoinsBalanceAfter:   txn.CoinsBalanceAfter,
			CashBalanceAfterUsd: txn.CashBalanceAfterUsd,
			ReferenceID:         txn.ReferenceID,
			ReferenceType:       txn.ReferenceType,
			CreatedAt:           txn.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Request a cash withdrawal
//	@Description	Submit a payout to the payment provider and debit the cash balance. A provider failure leaves the balance untouched and is retryable.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO			true	"Withdrawal request payload"
//	@Success		200		{object}	dto.GetWithdrawalsResponseDTO	"Submitted withdrawal"
//	@Failure		400		{object}	utils.Response					"Invalid amount"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		503		{object}	utils.Response					"Payout provider unavailable"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawService.Withdraw(r.Context(), userID, withdrawalservice.Request{
		AmountUsd: req.AmountUsd,
		Currency:  req.Currency,
		Recipient: req.Recipient,
	})
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientCash):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrPayoutUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Payout provider unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(*withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawal history for the authenticated user, with pending payout statuses refreshed from the provider.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetWithdrawalsResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response					"Withdrawals not found"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	withdrawals, err := h.withdrawService.RefreshStatuses(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.GetWithdrawalsResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toWithdrawalDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toWithdrawalDTO(wd domain.Withdrawal) dto.GetWithdrawalsResponseDTO {
	return dto.GetWithdrawalsResponseDTO{
		ID:            wd.ID,
		AmountUsd:     wd.AmountUsd,
		Currency:      wd.Currency,
		PayoutBatchID: wd.PayoutBatchID,
		Status:        wd.Status,
		ProcessedAt:   wd.ProcessedAt,
	}
}
