package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductService(t *testing.T) *ProductService {
	t.Helper()
	return &ProductService{Repo: newTestRepo(t)}
}

func intPtr(v int) *int { return &v }

func TestProductService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ProductInput
	}{
		{name: "missing name", in: ProductInput{Description: "d", Price: 1, QuantityAvailable: intPtr(1), ImageURL: "u"}},
		{name: "missing description", in: ProductInput{Name: "n", Price: 1, QuantityAvailable: intPtr(1), ImageURL: "u"}},
		{name: "zero price", in: ProductInput{Name: "n", Description: "d", QuantityAvailable: intPtr(1), ImageURL: "u"}},
		{name: "missing quantity", in: ProductInput{Name: "n", Description: "d", Price: 1, ImageURL: "u"}},
		{name: "missing image", in: ProductInput{Name: "n", Description: "d", Price: 1, QuantityAvailable: intPtr(1)}},
		{name: "negative quantity", in: ProductInput{Name: "n", Description: "d", Price: 1, QuantityAvailable: intPtr(-1), ImageURL: "u"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Create(ctx, tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductService_Create_Success(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)

	product, err := svc.Create(context.Background(), ProductInput{
		Name:              "Cherry Red Set",
		Description:       "Hand painted press-ons",
		Price:             24.99,
		QuantityAvailable: intPtr(10),
		ImageURL:          "https://cdn.example.com/cherry.png",
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, 10, product.QuantityAvailable)
}

func TestProductService_Update_PartialFields(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{
		Name:              "Cherry Red Set",
		Description:       "Hand painted press-ons",
		Price:             24.99,
		QuantityAvailable: intPtr(10),
		ImageURL:          "https://cdn.example.com/cherry.png",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, product.ID, ProductInput{Price: 19.99})
	require.NoError(t, err)

	assert.InDelta(t, 19.99, updated.Price, 1e-9)
	assert.Equal(t, "Cherry Red Set", updated.Name)
	assert.Equal(t, 10, updated.QuantityAvailable)
}

func TestProductService_Update_UnknownProduct(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)

	_, err := svc.Update(context.Background(), 999, ProductInput{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_Delete(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{
		Name:              "Retired Set",
		Description:       "Discontinued",
		Price:             5.00,
		QuantityAvailable: intPtr(1),
		ImageURL:          "https://cdn.example.com/old.png",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, product.ID))

	_, err = svc.Get(ctx, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_List_Pagination(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, ProductInput{
			Name:              "Set",
			Description:       "d",
			Price:             1.00,
			QuantityAvailable: intPtr(1),
			ImageURL:          "u",
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)

	last, err := svc.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
}

func TestProductService_Search_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)

	_, _, err := svc.Search(context.Background(), "", 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductService_Search_NoIndexConfigured(t *testing.T) {
	t.Parallel()

	svc := newTestProductService(t)

	_, _, err := svc.Search(context.Background(), "chrome", 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
}
