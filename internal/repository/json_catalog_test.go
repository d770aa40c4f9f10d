package repository_test

import (
	"testing"

	"github.com/nikolayk812/baht-pos/internal/assets"
	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONCatalog(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantIDs   []string
		wantError string
	}{
		{
			name: "listing: ok",
			data: `{"success":true,"totalProduct":2,"productList":[
				{"no":1,"productId":"A-1","productName":"Alpha","category":"x","price":120.5,"imageUrl":"a.jpg","stock":3},
				{"no":2,"productId":"B-1","productName":"Beta","category":"y","price":"99","imageUrl":"b.jpg","stock":0}
			]}`,
			wantIDs: []string{"A-1", "B-1"},
		},
		{
			name:    "empty listing: ok",
			data:    `{"success":true,"totalProduct":0,"productList":[]}`,
			wantIDs: []string{},
		},
		{
			name: "duplicate id: error",
			data: `{"productList":[
				{"productId":"A-1","productName":"Alpha","price":1},
				{"productId":"A-1","productName":"Again","price":2}
			]}`,
			wantError: "duplicate product id A-1",
		},
		{
			name:      "negative price: error",
			data:      `{"productList":[{"productId":"A-1","price":-1}]}`,
			wantError: "validateItem: price of A-1 is negative",
		},
		{
			name:      "missing id: error",
			data:      `{"productList":[{"productName":"anonymous","price":1}]}`,
			wantError: "validateItem: id is empty",
		},
		{
			name:      "malformed json: error",
			data:      `{"productList":[`,
			wantError: "json.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := repository.NewJSONCatalog([]byte(tt.data))
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)

			items, err := repo.ListItems(t.Context())
			require.NoError(t, err)

			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
				assert.Equal(t, domain.THB, item.Price.Currency)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestJSONCatalogGetItem(t *testing.T) {
	repo, err := repository.NewJSONCatalog(assets.Products)
	require.NoError(t, err)

	item, err := repo.GetItem(t.Context(), "SH-002")
	require.NoError(t, err)
	assert.Equal(t, "Leather Loafers", item.Name)
	assert.Equal(t, "shoes", item.Category)
	assert.True(t, decimal.NewFromInt(2490).Equal(item.Price.Amount))
	assert.Equal(t, 12, item.Stock)
	assert.Equal(t, 8, item.No)

	_, err = repo.GetItem(t.Context(), "SH-999")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestJSONCatalogListItemsReturnsCopy(t *testing.T) {
	repo, err := repository.NewJSONCatalog(assets.Products)
	require.NoError(t, err)

	items, err := repo.ListItems(t.Context())
	require.NoError(t, err)
	items[0].Name = "changed"

	again, err := repo.ListItems(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Basic Cotton T-Shirt", again[0].Name)
}
