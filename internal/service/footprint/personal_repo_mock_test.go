package footprint

import (
	"context"
	"sync"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

var _ personalRepo = &personalRepoMock{}

type personalRepoMock struct {
	CreateFunc  func(ctx context.Context, rec *domain.PersonalRecord) (*domain.PersonalRecord, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.PersonalRecord, error)
	ListFunc    func(ctx context.Context, filter domain.RecordFilter) ([]domain.PersonalRecord, int, error)
	StatsFunc   func(ctx context.Context) (domain.PersonalStats, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.PersonalRecord
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.RecordFilter
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockStats   sync.RWMutex
}

func (mock *personalRepoMock) Create(ctx context.Context, rec *domain.PersonalRecord) (*domain.PersonalRecord, error) {
	if mock.CreateFunc == nil {
		panic("personalRepoMock.CreateFunc: method is nil but personalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.PersonalRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *personalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.PersonalRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *personalRepoMock) GetByID(ctx context.Context, id int64) (*domain.PersonalRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("personalRepoMock.GetByIDFunc: method is nil but personalRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *personalRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *personalRepoMock) List(ctx context.Context, filter domain.RecordFilter) ([]domain.PersonalRecord, int, error) {
	if mock.ListFunc == nil {
		panic("personalRepoMock.ListFunc: method is nil but personalRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.RecordFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *personalRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RecordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *personalRepoMock) Stats(ctx context.Context) (domain.PersonalStats, error) {
	if mock.StatsFunc == nil {
		panic("personalRepoMock.StatsFunc: method is nil but personalRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *personalRepoMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
