package repo

import (
	"StockKeeper/internal/model"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, r UserRepository, email string) *model.User {
	t.Helper()
	u, err := r.CreateUser(context.Background(), &model.User{
		Name: "Seed", Email: email, Password: "hash", Role: model.RoleStaff,
	})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func TestInventoryRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewInventoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@x.com")

	item := &model.InventoryItem{
		ID:          uuid.NewString(),
		UserID:      owner.ID,
		Name:        "Bolts M6",
		Description: "Steel bolts, 6mm",
		Quantity:    120,
		Price:       0.15,
	}
	assert.NoError(t, r.Create(ctx, item))

	got, err := r.GetByID(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Bolts M6", got.Name)
	assert.Equal(t, 120, got.Quantity)
	assert.Equal(t, owner.ID, got.UserID)
	assert.False(t, got.CreatedAt.IsZero())
	// владелец подгружается вместе с позицией
	if assert.NotNil(t, got.User) {
		assert.Equal(t, "owner@x.com", got.User.Email)
	}

	_, err = r.GetByID(ctx, uuid.NewString())
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestInventoryRepository_ListOrderAndSlice(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewInventoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@x.com")

	// создаём с явными метками времени, чтобы порядок был детерминированным
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		item := &model.InventoryItem{
			ID:          uuid.NewString(),
			UserID:      owner.ID,
			Name:        fmt.Sprintf("item-%d", i),
			Description: "d",
			Quantity:    i,
			Price:       1,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, r.Create(ctx, item))
	}

	total, err := r.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)

	// новые первыми
	items, err := r.List(ctx, 0, 10)
	assert.NoError(t, err)
	if assert.Len(t, items, 5) {
		assert.Equal(t, "item-4", items[0].Name)
		assert.Equal(t, "item-0", items[4].Name)
	}

	// offset/limit
	pageTwo, err := r.List(ctx, 2, 2)
	assert.NoError(t, err)
	if assert.Len(t, pageTwo, 2) {
		assert.Equal(t, "item-2", pageTwo[0].Name)
		assert.Equal(t, "item-1", pageTwo[1].Name)
	}
}

func TestInventoryRepository_UpdatePartial(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewInventoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@x.com")
	item := &model.InventoryItem{
		ID: uuid.NewString(), UserID: owner.ID,
		Name: "Nuts", Description: "d", Quantity: 10, Price: 2,
	}
	assert.NoError(t, r.Create(ctx, item))

	updated, err := r.Update(ctx, item.ID, map[string]any{"quantity": 7})
	assert.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	// остальные поля не тронуты
	assert.Equal(t, "Nuts", updated.Name)
	assert.InDelta(t, 2, updated.Price, 1e-9)

	// обновление несуществующей записи
	_, err = r.Update(ctx, uuid.NewString(), map[string]any{"quantity": 1})
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestInventoryRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	r := NewInventoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@x.com")
	item := &model.InventoryItem{
		ID: uuid.NewString(), UserID: owner.ID,
		Name: "Washers", Description: "d", Quantity: 1, Price: 1,
	}
	assert.NoError(t, r.Create(ctx, item))

	affected, err := r.Delete(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = r.GetByID(ctx, item.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	// повторное удаление — ноль затронутых строк, без ошибки
	affected, err = r.Delete(ctx, item.ID)
	assert.NoError(t, err)
	assert.Zero(t, affected)
}
