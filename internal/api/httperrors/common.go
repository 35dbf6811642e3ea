package httperrors

import (
	"net/http"
)

var (
	ErrNotFoundChain          = NewHTTPError(http.StatusNotFound, "CHAIN_NOT_FOUND", "The requested chain is not configured.")
	ErrNotFoundDepositAddress = NewHTTPError(http.StatusNotFound, "DEPOSIT_ADDRESS_NOT_FOUND", "No deposit address exists for the given user and chain.")
	ErrNotFoundWithdrawal     = NewHTTPError(http.StatusNotFound, "WITHDRAWAL_NOT_FOUND", "The requested withdrawal does not exist.")
	ErrNotFoundHotWallet      = NewHTTPError(http.StatusNotFound, "HOT_WALLET_NOT_FOUND", "No active hot wallet is configured for the given chain.")
	ErrConflictAdminWallet    = NewHTTPError(http.StatusConflict, "ADMIN_WALLET_EXISTS", "An active aggregation wallet already exists for the given chain.")
	ErrBadRequestAmount       = NewHTTPError(http.StatusBadRequest, "INVALID_AMOUNT", "The amount must be a positive integer in base units.")
	ErrBadRequestAddress      = NewHTTPError(http.StatusBadRequest, "INVALID_ADDRESS", "The address is not valid for the given chain.")
	ErrBadRequestDestTag      = NewHTTPError(http.StatusBadRequest, "INVALID_DESTINATION_TAG", "The destination tag must be between 0 and 4294967295.")
	ErrConflictBalance        = NewHTTPError(http.StatusConflict, "INSUFFICIENT_BALANCE", "The available balance does not cover the requested amount.")
	ErrBadRequestLimit        = NewHTTPError(http.StatusBadRequest, "AMOUNT_ABOVE_LIMIT", "The amount exceeds the single withdrawal limit for the given chain.")
	ErrServiceUnavailableKeystore = NewHTTPError(http.StatusServiceUnavailable, "KEYSTORE_LOCKED", "The custody keystore is locked.")
)
