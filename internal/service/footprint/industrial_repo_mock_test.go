package footprint

import (
	"context"
	"sync"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
)

var _ industrialRepo = &industrialRepoMock{}

type industrialRepoMock struct {
	CreateFunc  func(ctx context.Context, rec *domain.IndustrialRecord) (*domain.IndustrialRecord, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.IndustrialRecord, error)
	ListFunc    func(ctx context.Context, filter domain.RecordFilter) ([]domain.IndustrialRecord, int, error)
	StatsFunc   func(ctx context.Context) (domain.IndustrialStats, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.IndustrialRecord
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

func (mock *industrialRepoMock) Create(ctx context.Context, rec *domain.IndustrialRecord) (*domain.IndustrialRecord, error) {
	if mock.CreateFunc == nil {
		panic("industrialRepoMock.CreateFunc: method is nil but industrialRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.IndustrialRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *industrialRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.IndustrialRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *industrialRepoMock) GetByID(ctx context.Context, id int64) (*domain.IndustrialRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("industrialRepoMock.GetByIDFunc: method is nil but industrialRepo.GetByID was just called")
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

func (mock *industrialRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *industrialRepoMock) List(ctx context.Context, filter domain.RecordFilter) ([]domain.IndustrialRecord, int, error) {
	if mock.ListFunc == nil {
		panic("industrialRepoMock.ListFunc: method is nil but industrialRepo.List was just called")
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

func (mock *industrialRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RecordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *industrialRepoMock) Stats(ctx context.Context) (domain.IndustrialStats, error) {
	if mock.StatsFunc == nil {
		panic("industrialRepoMock.StatsFunc: method is nil but industrialRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *industrialRepoMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
