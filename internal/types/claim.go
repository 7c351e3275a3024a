package types

// ClaimResult is what the service layer returns for a successful claim.
type ClaimResult struct {
	Network   string `json:"network"`
	Recipient string `json:"recipient"`
	TxHash    string `json:"txHash"`
	// AmountWei is the per-claim payout reported by the contract at dispatch
	// time, in wei. Empty when the pre-dispatch read failed; the read is
	// informational only and never blocks a claim.
	AmountWei string `json:"amountWei,omitempty"`
}

// FaucetInfo describes one configured network faucet for frontend consumption.
type FaucetInfo struct {
	Network         string `json:"network"`
	ContractAddress string `json:"contractAddress"`
	ClaimAmountWei  string `json:"claimAmountWei"`
	CooldownSeconds uint64 `json:"cooldownSeconds"`
	FaucetBalance   string `json:"faucetBalanceWei"`
}
