package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/siyam-display/catalog-api/internal/entity"
)

func TestListProductsUnknownCategoryReturnsEmptyWithoutQuery(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	output, err := svc.ListProducts(context.Background(), ListProductsInput{Category: "boilers"})

	assert.NoError(t, err)
	assert.Empty(t, output.Products)
	assert.Equal(t, 0, output.Count)
	repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestListProductsCategoryKeyIsCanonicalized(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	parts := []*entity.Part{{SiyamRef: "R100", Category: "PTR"}}
	repo.On("Find", mock.Anything, entity.PartFilter{Category: "ptr"}).Return(parts, nil)

	output, err := svc.ListProducts(context.Background(), ListProductsInput{Category: "PTR"})

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	repo.AssertExpectations(t)
}

func TestListProductsPassesSearchToken(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	repo.On("Find", mock.Anything, entity.PartFilter{Search: "volvo"}).Return([]*entity.Part{}, nil)

	output, err := svc.ListProducts(context.Background(), ListProductsInput{Search: "volvo"})

	assert.NoError(t, err)
	assert.Equal(t, 0, output.Count)
	repo.AssertExpectations(t)
}

func TestListProductsStoreErrorIsTechnical(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	repo.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.ListProducts(context.Background(), ListProductsInput{Category: "bt"})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}

func TestSearchEmptyQueryMakesNoBackendCalls(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	output, err := svc.Search(context.Background(), "")

	assert.NoError(t, err)
	assert.Empty(t, output.Results)
	assert.Equal(t, 0, output.Count)
	repo.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "AutocompleteFallback", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchUsesIndexedPath(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	parts := []*entity.Part{{SiyamRef: "R12"}, {SiyamRef: "R120"}}
	repo.On("Autocomplete", mock.Anything, "R12").Return(parts, nil)

	output, err := svc.Search(context.Background(), "R12")

	assert.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	assert.False(t, output.UsedFallback)
	repo.AssertNotCalled(t, "AutocompleteFallback", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchFallsBackWhenIndexedPathFails(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	parts := []*entity.Part{{SiyamRef: "R12"}}
	repo.On("Autocomplete", mock.Anything, "R12").Return(nil, errors.New("index unavailable"))
	repo.On("AutocompleteFallback", mock.Anything, "R12", 50).Return(parts, nil)

	output, err := svc.Search(context.Background(), "R12")

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	assert.True(t, output.UsedFallback)
	repo.AssertExpectations(t)
}

func TestSearchErrorsWhenBothPathsFail(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	repo.On("Autocomplete", mock.Anything, "R12").Return(nil, errors.New("index unavailable"))
	repo.On("AutocompleteFallback", mock.Anything, "R12", 50).Return(nil, errors.New("connection refused"))

	_, err := svc.Search(context.Background(), "R12")

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}

func TestGetProductUnknownCategoryIsNotFound(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	part, err := svc.GetProduct(context.Background(), "boilers", "R100")

	assert.NoError(t, err)
	assert.Nil(t, part)
	repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProductMissingRefIsNotFoundNotError(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	repo.On("FindOne", mock.Anything, "ptr", "NOPE").Return(nil, nil)

	part, err := svc.GetProduct(context.Background(), "ptr", "NOPE")

	assert.NoError(t, err)
	assert.Nil(t, part)
}

func TestGetProductFound(t *testing.T) {
	repo := new(MockPartRepository)
	svc := NewCatalogService(repo)

	want := &entity.Part{SiyamRef: "R100", Category: "ptr"}
	repo.On("FindOne", mock.Anything, "ptr", "R100").Return(want, nil)

	part, err := svc.GetProduct(context.Background(), "PTR", "R100")

	assert.NoError(t, err)
	assert.Equal(t, want, part)
}
