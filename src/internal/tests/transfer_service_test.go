package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/api-sage/fund-transfer-service/src/internal/adapter/http/models"
	"github.com/api-sage/fund-transfer-service/src/internal/adapter/repository/memory"
	"github.com/api-sage/fund-transfer-service/src/internal/domain"
	"github.com/api-sage/fund-transfer-service/src/internal/usecase/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (n *recordingNotifier) NotifyAboutTransfer(_ context.Context, accountID string, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, accountID+": "+message)
	return n.err
}

func (n *recordingNotifier) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type transferFixture struct {
	store     *memory.AccountStore
	transfers *memory.TransferRepository
	notifier  *recordingNotifier
	service   *services.TransferService
}

func newTransferFixture(t *testing.T, balances map[string]int64) *transferFixture {
	t.Helper()

	store := memory.NewAccountStore()
	for id, balance := range balances {
		amount, err := domain.NewMoney(decimal.NewFromInt(balance))
		require.NoError(t, err)
		_, err = store.Create(context.Background(), id, amount)
		require.NoError(t, err)
	}

	transfers := memory.NewTransferRepository()
	notifier := &recordingNotifier{}
	return &transferFixture{
		store:     store,
		transfers: transfers,
		notifier:  notifier,
		service:   services.NewTransferService(store, transfers, notifier),
	}
}

func (f *transferFixture) balance(t *testing.T, accountID string) string {
	t.Helper()
	account, err := f.store.Get(context.Background(), accountID)
	require.NoError(t, err)
	return account.Balance().String()
}

func transferReq(senderID, receiverID string, amount int64) models.TransferRequest {
	return models.TransferRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     decimal.NewFromInt(amount),
	}
}

func TestTransferFundsSuccess(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})

	response, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 100))
	require.NoError(t, err)
	require.True(t, response.Success)
	require.NotNil(t, response.Data)

	assert.Equal(t, "1900", f.balance(t, "A"))
	assert.Equal(t, "2100", f.balance(t, "B"))
	assert.NotEmpty(t, response.Data.TransferID)
	assert.Equal(t, "SUCCESS", response.Data.Status)
	assert.Equal(t, 2, f.notifier.callCount())
}

func TestTransferFundsRecordsTransfer(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})

	response, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 100))
	require.NoError(t, err)
	require.NotNil(t, response.Data)

	fetched, err := f.service.GetTransfer(context.Background(), response.Data.TransferID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Data)
	assert.Equal(t, "A", fetched.Data.SenderID)
	assert.Equal(t, "B", fetched.Data.ReceiverID)
	assert.Equal(t, "100", fetched.Data.Amount.String())
}

func TestTransferFundsUnknownSender(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"B": 2000})

	response, err := f.service.TransferFunds(context.Background(), transferReq("X", "B", 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Contains(t, err.Error(), "X")
	assert.Equal(t, "Sender account not found", response.Message)

	assert.Equal(t, "2000", f.balance(t, "B"))
	assert.Equal(t, 0, f.notifier.callCount())
}

func TestTransferFundsUnknownReceiver(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000})

	response, err := f.service.TransferFunds(context.Background(), transferReq("A", "X", 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Equal(t, "Receiver account not found", response.Message)

	assert.Equal(t, "2000", f.balance(t, "A"))
}

func TestTransferFundsSameAccount(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000})

	_, err := f.service.TransferFunds(context.Background(), transferReq("A", "A", 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameAccountTransfer)

	assert.Equal(t, "2000", f.balance(t, "A"))
	assert.Equal(t, 0, f.notifier.callCount())
}

func TestTransferFundsInsufficientBalance(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})

	response, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 2500))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, "Insufficient balance", response.Message)

	assert.Equal(t, "2000", f.balance(t, "A"))
	assert.Equal(t, "2000", f.balance(t, "B"))
	assert.Equal(t, 0, f.notifier.callCount())
}

func TestTransferFundsNonPositiveAmount(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})

	for _, amount := range []int64{0, -5} {
		response, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", amount))
		require.Error(t, err)
		assert.Equal(t, "validation failed", response.Message)
	}

	assert.Equal(t, "2000", f.balance(t, "A"))
	assert.Equal(t, "2000", f.balance(t, "B"))
}

func TestTransferFundsRepeatedRejectionIsIdempotent(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})

	for i := 0; i < 3; i++ {
		_, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 2500))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	}

	assert.Equal(t, "2000", f.balance(t, "A"))
	assert.Equal(t, "2000", f.balance(t, "B"))
}

func TestTransferFundsNotificationFailureDoesNotFailTransfer(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})
	f.notifier.err = errors.New("notification endpoint unreachable")

	response, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 100))
	require.NoError(t, err)
	assert.True(t, response.Success)

	assert.Equal(t, "1900", f.balance(t, "A"))
	assert.Equal(t, "2100", f.balance(t, "B"))
}

func TestTransferFundsConcurrentSameDirection(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			_, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 100))
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, "1800", f.balance(t, "A"))
	assert.Equal(t, "2200", f.balance(t, "B"))
}

func TestTransferFundsConcurrentOppositeDirections(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000})

	var g errgroup.Group
	g.Go(func() error {
		_, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 100))
		return err
	})
	g.Go(func() error {
		_, err := f.service.TransferFunds(context.Background(), transferReq("B", "A", 100))
		return err
	})
	require.NoError(t, g.Wait())

	assert.Equal(t, "2000", f.balance(t, "A"))
	assert.Equal(t, "2000", f.balance(t, "B"))
}

func TestTransferFundsContentionExactlyFiveSucceed(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 200, "B": 200})

	var succeeded, failed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.TransferFunds(context.Background(), transferReq("A", "B", 40))
			if err == nil {
				succeeded.Add(1)
				return
			}
			if errors.Is(err, domain.ErrInsufficientBalance) {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), succeeded.Load())
	assert.Equal(t, int32(5), failed.Load())
	assert.Equal(t, "0", f.balance(t, "A"))
	assert.Equal(t, "400", f.balance(t, "B"))
}

func TestTransferFundsManyWorkersTerminate(t *testing.T) {
	f := newTransferFixture(t, map[string]int64{"A": 2000, "B": 2000, "C": 2000})

	pairs := [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "B"}, {"A", "C"}, {"C", "A"}}

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for w := 0; w < 12; w++ {
			pair := pairs[w%len(pairs)]
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					_, _ = f.service.TransferFunds(context.Background(), transferReq(pair[0], pair[1], 10))
				}
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(15 * time.Second):
		t.Fatal("concurrent transfer workload did not terminate")
	}

	total := decimal.Zero
	for _, id := range []string{"A", "B", "C"} {
		account, err := f.store.Get(context.Background(), id)
		require.NoError(t, err)
		balance := account.Balance().Decimal()
		assert.False(t, balance.IsNegative(), "account %s went negative", id)
		total = total.Add(balance)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(6000)), fmt.Sprintf("total balance drifted to %s", total.String()))
}

func TestGetTransferUnknownID(t *testing.T) {
	f := newTransferFixture(t, nil)

	response, err := f.service.GetTransfer(context.Background(), "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Equal(t, "Transfer not found", response.Message)
}

func TestGetTransferEmptyID(t *testing.T) {
	f := newTransferFixture(t, nil)

	response, err := f.service.GetTransfer(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, "validation failed", response.Message)
}
