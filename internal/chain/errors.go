package chain

import (
	"errors"
	"fmt"
	"strings"
)

// RejectReason is a closed classification of contract revert reasons. The
// upstream reasons are free text, so anything unrecognized maps to
// ReasonUnknown rather than being guessed at.
type RejectReason string

const (
	ReasonCooldownActive   RejectReason = "cooldown-active"
	ReasonFaucetEmpty      RejectReason = "faucet-empty"
	ReasonFaucetPaused     RejectReason = "faucet-paused"
	ReasonInvalidRecipient RejectReason = "invalid-recipient"
	ReasonNotOwner         RejectReason = "not-owner"
	ReasonUnknown          RejectReason = "unknown"
)

// Revert strings emitted by the deployed faucet contract.
const (
	revertCooldown         = "Wait before next claim"
	revertEmpty            = "Faucet empty"
	revertPaused           = "Faucet paused"
	revertInvalidRecipient = "Invalid recipient"
	revertNotOwner         = "Not owner"
)

// RejectedError means the contract itself refused the claim: the transaction
// (or its gas estimation) reverted. Raw preserves the upstream revert text.
type RejectedError struct {
	Reason RejectReason
	Raw    string
}

func (e *RejectedError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("claim rejected by contract (%s)", e.Reason)
	}
	return fmt.Sprintf("claim rejected by contract: %s", e.Raw)
}

// TransportError means the RPC transport failed before a contract-level
// verdict could be obtained. Distinct from RejectedError so callers can tell
// "the contract said no" from "we could not ask".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chain transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

const revertPrefix = "execution reverted"

// classifyDispatchError sorts a dispatch failure into a rejection or a
// transport error. Revert reasons commonly surface through gas estimation as
// "execution reverted: <reason>"; everything else is treated as transport.
func classifyDispatchError(op string, err error) error {
	msg := err.Error()
	idx := strings.Index(msg, revertPrefix)
	if idx < 0 {
		return &TransportError{Op: op, Err: err}
	}

	raw := strings.TrimSpace(msg[idx+len(revertPrefix):])
	raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	return &RejectedError{Reason: classifyRevertReason(raw), Raw: raw}
}

func classifyRevertReason(raw string) RejectReason {
	switch {
	case strings.Contains(raw, revertCooldown):
		return ReasonCooldownActive
	case strings.Contains(raw, revertEmpty):
		return ReasonFaucetEmpty
	case strings.Contains(raw, revertPaused):
		return ReasonFaucetPaused
	case strings.Contains(raw, revertInvalidRecipient):
		return ReasonInvalidRecipient
	case strings.Contains(raw, revertNotOwner):
		return ReasonNotOwner
	default:
		return ReasonUnknown
	}
}

// AsRejected unwraps err into a RejectedError if it is one.
func AsRejected(err error) (*RejectedError, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}
