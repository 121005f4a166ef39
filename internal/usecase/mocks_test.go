package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/siyam-display/catalog-api/internal/entity"
	"github.com/siyam-display/catalog-api/internal/infra/queue"
)

type MockPartRepository struct {
	mock.Mock
}

func (m *MockPartRepository) Find(ctx context.Context, filter entity.PartFilter) ([]*entity.Part, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Part), args.Error(1)
}

func (m *MockPartRepository) FindOne(ctx context.Context, category, siyamRef string) (*entity.Part, error) {
	args := m.Called(ctx, category, siyamRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Part), args.Error(1)
}

func (m *MockPartRepository) FindBySiyamRef(ctx context.Context, siyamRef string) (*entity.Part, error) {
	args := m.Called(ctx, siyamRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Part), args.Error(1)
}

func (m *MockPartRepository) Autocomplete(ctx context.Context, query string) ([]*entity.Part, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Part), args.Error(1)
}

func (m *MockPartRepository) AutocompleteFallback(ctx context.Context, query string, limit int) ([]*entity.Part, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Part), args.Error(1)
}

func (m *MockPartRepository) Insert(ctx context.Context, p *entity.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartRepository) Update(ctx context.Context, p *entity.Part) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
