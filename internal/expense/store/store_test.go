package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/afiliado/internal/expense"
	"github.com/MrJamesThe3rd/afiliado/internal/expense/store"
)

func seed(ids ...int) []expense.Expense {
	out := make([]expense.Expense, len(ids))
	for i, id := range ids {
		out[i] = expense.Expense{ID: id, Description: "seed", Amount: decimal.NewFromInt(int64(id))}
	}

	return out
}

func TestStore_Create_IssuesNextID(t *testing.T) {
	type testCase struct {
		name   string
		seed   []int
		wantID int
	}

	tests := []testCase{
		{name: "Contiguous", seed: []int{1, 2, 3}, wantID: 4},
		{name: "GapIsNotFilled", seed: []int{1, 5}, wantID: 6},
		{name: "Empty", seed: nil, wantID: 1},
		{name: "Unordered", seed: []int{7, 2}, wantID: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New(seed(tt.seed...))

			e := expense.Expense{Description: "new"}
			require.NoError(t, s.Create(context.Background(), &e))
			assert.Equal(t, tt.wantID, e.ID)

			all, err := s.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, all, len(tt.seed)+1)
			assert.Equal(t, e, all[len(all)-1])
		})
	}
}

func TestStore_Create_NeverReusesDeletedID(t *testing.T) {
	ctx := context.Background()
	s := store.New(seed(1, 2, 3))

	require.NoError(t, s.Delete(ctx, 3))

	e := expense.Expense{}
	require.NoError(t, s.Create(ctx, &e))
	assert.Equal(t, 4, e.ID)
}

func TestStore_Replace(t *testing.T) {
	ctx := context.Background()
	s := store.New(seed(1, 2, 3))

	replacement := expense.Expense{ID: 2, Description: "X", Amount: decimal.RequireFromString("12.5")}
	require.NoError(t, s.Replace(ctx, replacement))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []expense.Expense{seed(1)[0], replacement, seed(3)[0]}, all)

	err = s.Replace(ctx, expense.Expense{ID: 9})
	assert.ErrorIs(t, err, expense.ErrNotFound)
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	s := store.New(seed(1, 2))

	got, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)

	_, err = s.Get(ctx, 3)
	assert.ErrorIs(t, err, expense.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := store.New(seed(1, 2))

	require.NoError(t, s.Delete(ctx, 1))
	assert.ErrorIs(t, s.Delete(ctx, 1), expense.ErrNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed(2), all)
}

func TestStore_List_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := store.New(seed(1))

	all, err := s.List(ctx)
	require.NoError(t, err)

	all[0].Description = "mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "seed", again[0].Description)
}
