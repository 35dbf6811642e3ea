package models

// Status and type constants for custody tables. Kept separate from the
// generated files so re-generation does not wipe them.

// Chain types
const (
	ChainTypeEVM  = "evm"
	ChainTypeXRPL = "xrpl"
)

// Deposit statuses
const (
	DepositStatusPending   = "pending"
	DepositStatusConfirmed = "confirmed"
	DepositStatusFailed    = "failed"
)

// Sweep job statuses
const (
	SweepJobStatusPlanned     = "planned"
	SweepJobStatusSigned      = "signed"
	SweepJobStatusBroadcasted = "broadcasted"
	SweepJobStatusConfirmed   = "confirmed"
	SweepJobStatusFailed      = "failed"
)

// SweepJobTerminalStatuses are the statuses a sweep job can never leave again.
var SweepJobTerminalStatuses = []string{SweepJobStatusConfirmed, SweepJobStatusFailed}

// Withdrawal statuses
const (
	WithdrawalStatusPending     = "pending"
	WithdrawalStatusProcessing  = "processing"
	WithdrawalStatusBroadcasted = "broadcasted"
	WithdrawalStatusConfirmed   = "confirmed"
	WithdrawalStatusFailed      = "failed"
)
