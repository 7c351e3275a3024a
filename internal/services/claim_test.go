package services

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/chain"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/events"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/lockstore"
)

const (
	testClientID  = "203.0.113.7"
	testNetwork   = "sepolia"
	testRecipient = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	testTxHash    = "0x1111111111111111111111111111111111111111111111111111111111111111"
	testToken     = "valid-token"
)

// mockFaucet is a testify mock of the per-network chain adapter.
type mockFaucet struct {
	mock.Mock
}

func (m *mockFaucet) Network() string {
	return testNetwork
}

func (m *mockFaucet) ContractAddress() common.Address {
	return common.HexToAddress("0x2222222222222222222222222222222222222222")
}

func (m *mockFaucet) ClaimAmount(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *mockFaucet) CooldownSeconds(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockFaucet) LastClaimTimestamp(ctx context.Context, recipient common.Address) (uint64, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockFaucet) Balance(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *mockFaucet) DispatchClaim(ctx context.Context, recipient common.Address) (common.Hash, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *mockFaucet) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockFaucet) Close() {}

// stubFaucets serves a single mocked network.
type stubFaucets struct {
	faucet chain.Faucet
}

func (s *stubFaucets) Get(network string) (chain.Faucet, bool) {
	if network == testNetwork {
		return s.faucet, true
	}
	return nil, false
}

func (s *stubFaucets) Networks() []string {
	return []string{testNetwork}
}

func (s *stubFaucets) Ping(ctx context.Context) error {
	return nil
}

func (s *stubFaucets) Close() {}

// stubVerifier accepts exactly one token, anything else fails closed.
type stubVerifier struct {
	accepted string
}

func (v *stubVerifier) Verify(ctx context.Context, token, remoteIP string) bool {
	return token != "" && token == v.accepted
}

// recordingPublisher captures published claim events.
type recordingPublisher struct {
	published []events.ClaimEvent
	fail      bool
}

func (p *recordingPublisher) PublishClaim(ctx context.Context, event events.ClaimEvent) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

type claimFixture struct {
	services  *Services
	store     *lockstore.MemoryStore
	faucet    *mockFaucet
	publisher *recordingPublisher
}

func setupClaimFixture(t *testing.T) *claimFixture {
	t.Helper()

	store := lockstore.NewMemoryStore()
	faucet := &mockFaucet{}
	publisher := &recordingPublisher{}

	cfg := &config.Config{
		LockStore: config.LockStoreConfig{
			Backend:     config.LockStoreBackendMemory,
			PendingTTL:  60 * time.Second,
			CooldownTTL: 24 * time.Hour,
		},
	}

	svc := New(cfg, store, &stubVerifier{accepted: testToken}, &stubFaucets{faucet: faucet}, publisher)
	return &claimFixture{services: svc, store: store, faucet: faucet, publisher: publisher}
}

func (f *claimFixture) lockRemaining(t *testing.T, kind lockstore.Kind) time.Duration {
	t.Helper()
	remaining, err := f.store.GetRemaining(context.Background(), testClientID, testNetwork, kind)
	require.NoError(t, err)
	return remaining
}

func TestClaimMissingCaptchaToken(t *testing.T) {
	f := setupClaimFixture(t)

	result, claimErr := f.services.Claim(context.Background(), testClientID, testNetwork, testRecipient, "")

	assert.Nil(t, result)
	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusBadRequest, claimErr.StatusCode)
	assert.Equal(t, "INVALID_CAPTCHA", claimErr.ErrorCode.String())

	// Neither the lock store nor the chain adapter may be touched.
	assert.Zero(t, f.lockRemaining(t, lockstore.KindPending))
	f.faucet.AssertNotCalled(t, "DispatchClaim", mock.Anything, mock.Anything)
}

func TestClaimRejectedCaptcha(t *testing.T) {
	f := setupClaimFixture(t)

	_, claimErr := f.services.Claim(context.Background(), testClientID, testNetwork, testRecipient, "wrong-token")

	require.NotNil(t, claimErr)
	assert.Equal(t, "INVALID_CAPTCHA", claimErr.ErrorCode.String())
	f.faucet.AssertNotCalled(t, "DispatchClaim", mock.Anything, mock.Anything)
}

func TestClaimCooldownLockActive(t *testing.T) {
	f := setupClaimFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, testClientID, testNetwork, lockstore.KindCooldown, 30*time.Second, nil))

	_, claimErr := f.services.Claim(ctx, testClientID, testNetwork, testRecipient, testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusTooManyRequests, claimErr.StatusCode)
	assert.Equal(t, "RATE_LIMITED", claimErr.ErrorCode.String())
	require.NotNil(t, claimErr.WaitSeconds)
	assert.InDelta(t, 30, *claimErr.WaitSeconds, 1, "wait must be the remaining cooldown rounded up")

	f.faucet.AssertNotCalled(t, "DispatchClaim", mock.Anything, mock.Anything)
	f.faucet.AssertNotCalled(t, "ClaimAmount", mock.Anything)
}

func TestClaimPendingLockActive(t *testing.T) {
	f := setupClaimFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, testClientID, testNetwork, lockstore.KindPending, 45*time.Second, nil))

	_, claimErr := f.services.Claim(ctx, testClientID, testNetwork, testRecipient, testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusTooManyRequests, claimErr.StatusCode)
	require.NotNil(t, claimErr.WaitSeconds)
	assert.InDelta(t, 45, *claimErr.WaitSeconds, 1)

	f.faucet.AssertNotCalled(t, "DispatchClaim", mock.Anything, mock.Anything)
}

func TestClaimSuccess(t *testing.T) {
	f := setupClaimFixture(t)
	ctx := context.Background()

	f.faucet.On("ClaimAmount", mock.Anything).Return(big.NewInt(1_000_000_000_000_000), nil)
	f.faucet.On("DispatchClaim", mock.Anything, common.HexToAddress(testRecipient)).
		Return(common.HexToHash(testTxHash), nil)

	result, claimErr := f.services.Claim(ctx, testClientID, testNetwork, testRecipient, testToken)

	require.Nil(t, claimErr)
	require.NotNil(t, result)
	assert.Equal(t, common.HexToHash(testTxHash).Hex(), result.TxHash)
	assert.Equal(t, testNetwork, result.Network)
	assert.Equal(t, "1000000000000000", result.AmountWei)

	// Pending lock promoted to cooldown.
	assert.Zero(t, f.lockRemaining(t, lockstore.KindPending), "pending lock must be cleared on success")
	cooldownRemaining := f.lockRemaining(t, lockstore.KindCooldown)
	assert.Greater(t, cooldownRemaining, 23*time.Hour, "cooldown lock must expire roughly a day out")
	assert.LessOrEqual(t, cooldownRemaining, 24*time.Hour)

	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, common.HexToHash(testTxHash).Hex(), f.publisher.published[0].TxHash)
	assert.Equal(t, testNetwork, f.publisher.published[0].Network)
}

func TestClaimSuccessSurvivesPublishFailure(t *testing.T) {
	f := setupClaimFixture(t)
	f.publisher.fail = true

	f.faucet.On("ClaimAmount", mock.Anything).Return(big.NewInt(1), nil)
	f.faucet.On("DispatchClaim", mock.Anything, mock.Anything).Return(common.HexToHash(testTxHash), nil)

	result, claimErr := f.services.Claim(context.Background(), testClientID, testNetwork, testRecipient, testToken)

	require.Nil(t, claimErr)
	assert.Equal(t, common.HexToHash(testTxHash).Hex(), result.TxHash)
}

func TestClaimUnknownNetwork(t *testing.T) {
	f := setupClaimFixture(t)

	_, claimErr := f.services.Claim(context.Background(), testClientID, "unknown", testRecipient, testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusBadRequest, claimErr.StatusCode)
	assert.Equal(t, "INVALID_NETWORK", claimErr.ErrorCode.String())
	f.faucet.AssertNotCalled(t, "DispatchClaim", mock.Anything, mock.Anything)
}

func TestClaimInvalidRecipientClearsPendingLock(t *testing.T) {
	f := setupClaimFixture(t)
	ctx := context.Background()

	_, claimErr := f.services.Claim(ctx, testClientID, testNetwork, "not-an-address", testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusBadRequest, claimErr.StatusCode)
	assert.Equal(t, "INVALID_ADDRESS", claimErr.ErrorCode.String())

	assert.Zero(t, f.lockRemaining(t, lockstore.KindPending), "pending lock must be released on validation failure")
	f.faucet.AssertNotCalled(t, "DispatchClaim", mock.Anything, mock.Anything)
}

func TestClaimChainCooldownComputesWait(t *testing.T) {
	f := setupClaimFixture(t)
	ctx := context.Background()

	lastClaim := uint64(time.Now().Unix()) - 3600
	f.faucet.On("ClaimAmount", mock.Anything).Return(big.NewInt(1), nil)
	f.faucet.On("DispatchClaim", mock.Anything, mock.Anything).
		Return(common.Hash{}, &chain.RejectedError{Reason: chain.ReasonCooldownActive, Raw: "Wait before next claim"})
	f.faucet.On("LastClaimTimestamp", mock.Anything, common.HexToAddress(testRecipient)).Return(lastClaim, nil)
	f.faucet.On("CooldownSeconds", mock.Anything).Return(uint64(86400), nil)

	_, claimErr := f.services.Claim(ctx, testClientID, testNetwork, testRecipient, testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusBadRequest, claimErr.StatusCode)
	assert.Equal(t, "CHAIN_COOLDOWN_ACTIVE", claimErr.ErrorCode.String())
	require.NotNil(t, claimErr.WaitSeconds)
	assert.InDelta(t, 86400-3600, *claimErr.WaitSeconds, 2)

	assert.Zero(t, f.lockRemaining(t, lockstore.KindPending), "pending lock must be released on chain cooldown")
	assert.Zero(t, f.lockRemaining(t, lockstore.KindCooldown), "no local cooldown on a failed claim")
}

func TestClaimChainCooldownWaitClampedToZero(t *testing.T) {
	f := setupClaimFixture(t)

	// lastClaim + cooldown already elapsed; the hint must clamp at zero
	// rather than going negative.
	f.faucet.On("ClaimAmount", mock.Anything).Return(big.NewInt(1), nil)
	f.faucet.On("DispatchClaim", mock.Anything, mock.Anything).
		Return(common.Hash{}, &chain.RejectedError{Reason: chain.ReasonCooldownActive, Raw: "Wait before next claim"})
	f.faucet.On("LastClaimTimestamp", mock.Anything, mock.Anything).Return(uint64(1), nil)
	f.faucet.On("CooldownSeconds", mock.Anything).Return(uint64(60), nil)

	_, claimErr := f.services.Claim(context.Background(), testClientID, testNetwork, testRecipient, testToken)

	require.NotNil(t, claimErr)
	require.NotNil(t, claimErr.WaitSeconds)
	assert.Zero(t, *claimErr.WaitSeconds)
}

func TestClaimOtherContractRejection(t *testing.T) {
	f := setupClaimFixture(t)

	f.faucet.On("ClaimAmount", mock.Anything).Return(big.NewInt(1), nil)
	f.faucet.On("DispatchClaim", mock.Anything, mock.Anything).
		Return(common.Hash{}, &chain.RejectedError{Reason: chain.ReasonFaucetPaused, Raw: "Faucet paused"})

	_, claimErr := f.services.Claim(context.Background(), testClientID, testNetwork, testRecipient, testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusBadRequest, claimErr.StatusCode)
	assert.Equal(t, "FAUCET_REJECTED", claimErr.ErrorCode.String())
	assert.Nil(t, claimErr.WaitSeconds)

	assert.Zero(t, f.lockRemaining(t, lockstore.KindPending))
}

func TestClaimTransportErrorClearsPendingLock(t *testing.T) {
	f := setupClaimFixture(t)

	f.faucet.On("ClaimAmount", mock.Anything).Return(big.NewInt(1), nil)
	f.faucet.On("DispatchClaim", mock.Anything, mock.Anything).
		Return(common.Hash{}, &chain.TransportError{Op: "adminClaimFor", Err: errors.New("connection refused")})

	_, claimErr := f.services.Claim(context.Background(), testClientID, testNetwork, testRecipient, testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusInternalServerError, claimErr.StatusCode)
	assert.Equal(t, "INTERNAL_SERVICE_ERROR", claimErr.ErrorCode.String())

	assert.Zero(t, f.lockRemaining(t, lockstore.KindPending))
}

func TestClaimAmountReadFailureDoesNotBlockDispatch(t *testing.T) {
	f := setupClaimFixture(t)

	f.faucet.On("ClaimAmount", mock.Anything).
		Return(nil, &chain.TransportError{Op: "claimAmount", Err: errors.New("timeout")})
	f.faucet.On("DispatchClaim", mock.Anything, mock.Anything).Return(common.HexToHash(testTxHash), nil)

	result, claimErr := f.services.Claim(context.Background(), testClientID, testNetwork, testRecipient, testToken)

	require.Nil(t, claimErr)
	assert.Empty(t, result.AmountWei)
	assert.Equal(t, common.HexToHash(testTxHash).Hex(), result.TxHash)
}

func TestClaimRepeatAfterSuccessIsRateLimited(t *testing.T) {
	f := setupClaimFixture(t)
	ctx := context.Background()

	f.faucet.On("ClaimAmount", mock.Anything).Return(big.NewInt(1), nil)
	f.faucet.On("DispatchClaim", mock.Anything, mock.Anything).Return(common.HexToHash(testTxHash), nil).Once()

	_, claimErr := f.services.Claim(ctx, testClientID, testNetwork, testRecipient, testToken)
	require.Nil(t, claimErr)

	// Same client, different recipient: still blocked by the local cooldown,
	// the chain's per-recipient cooldown would not catch this on its own.
	_, claimErr = f.services.Claim(ctx, testClientID, testNetwork, "0xab5801a7d398351b8be11c439e05c5b3259aec9b", testToken)

	require.NotNil(t, claimErr)
	assert.Equal(t, http.StatusTooManyRequests, claimErr.StatusCode)
	f.faucet.AssertNumberOfCalls(t, "DispatchClaim", 1)
}
