package inventory

import (
	"context"
	"sync"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

var _ transactionRepo = &transactionRepoMock{}

type transactionRepoMock struct {
	PrependFunc func(ctx context.Context, tx *domain.StockTransaction) error
	ListFunc    func(ctx context.Context, filter domain.TransactionFilter) ([]domain.StockTransaction, error)

	calls struct {
		Prepend []struct {
			Ctx context.Context
			Tx  *domain.StockTransaction
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TransactionFilter
		}
	}
	lockPrepend sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *transactionRepoMock) Prepend(ctx context.Context, tx *domain.StockTransaction) error {
	if mock.PrependFunc == nil {
		panic("transactionRepoMock.PrependFunc: method is nil but transactionRepo.Prepend was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tx  *domain.StockTransaction
	}{Ctx: ctx, Tx: tx}
	mock.lockPrepend.Lock()
	mock.calls.Prepend = append(mock.calls.Prepend, callInfo)
	mock.lockPrepend.Unlock()
	return mock.PrependFunc(ctx, tx)
}

func (mock *transactionRepoMock) PrependCalls() []struct {
	Ctx context.Context
	Tx  *domain.StockTransaction
} {
	mock.lockPrepend.RLock()
	calls := mock.calls.Prepend
	mock.lockPrepend.RUnlock()
	return calls
}

func (mock *transactionRepoMock) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.StockTransaction, error) {
	if mock.ListFunc == nil {
		panic("transactionRepoMock.ListFunc: method is nil but transactionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TransactionFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *transactionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TransactionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
