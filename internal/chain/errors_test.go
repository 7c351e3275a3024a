package chain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDispatchErrorRevertReasons(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		reason RejectReason
	}{
		{"cooldown", "execution reverted: Wait before next claim", ReasonCooldownActive},
		{"empty", "execution reverted: Faucet empty", ReasonFaucetEmpty},
		{"paused", "execution reverted: Faucet paused", ReasonFaucetPaused},
		{"invalid recipient", "execution reverted: Invalid recipient", ReasonInvalidRecipient},
		{"not owner", "execution reverted: Not owner", ReasonNotOwner},
		{"unrecognized reason", "execution reverted: Something else entirely", ReasonUnknown},
		{"no reason at all", "execution reverted", ReasonUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyDispatchError("adminClaimFor", errors.New(tc.msg))

			rejected, ok := AsRejected(err)
			require.True(t, ok, "revert should classify as RejectedError")
			assert.Equal(t, tc.reason, rejected.Reason)
		})
	}
}

func TestClassifyDispatchErrorWrappedRevert(t *testing.T) {
	// Some RPC clients wrap the revert in transport context.
	err := classifyDispatchError("adminClaimFor",
		fmt.Errorf("failed to estimate gas needed: execution reverted: Wait before next claim"))

	rejected, ok := AsRejected(err)
	require.True(t, ok)
	assert.Equal(t, ReasonCooldownActive, rejected.Reason)
	assert.Equal(t, "Wait before next claim", rejected.Raw)
}

func TestClassifyDispatchErrorTransport(t *testing.T) {
	cause := errors.New("connection refused")
	err := classifyDispatchError("adminClaimFor", cause)

	_, ok := AsRejected(err)
	assert.False(t, ok)

	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, "adminClaimFor", transport.Op)
	assert.ErrorIs(t, err, cause)
}
