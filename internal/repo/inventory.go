package repo

import (
	"StockKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// InventoryRepository определяет контракт доступа к складским позициям.
// Сортировка списка — по времени создания, новые первыми.
type InventoryRepository interface {
	// List возвращает срез позиций с подгруженным владельцем.
	List(ctx context.Context, offset, limit int) ([]model.InventoryItem, error)

	// Count возвращает общее количество позиций.
	Count(ctx context.Context) (int64, error)

	// GetByID возвращает позицию по ID или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.InventoryItem, error)

	// Create сохраняет новую позицию.
	Create(ctx context.Context, item *model.InventoryItem) error

	// Update применяет частичное обновление и возвращает свежую запись.
	Update(ctx context.Context, id string, updates map[string]any) (*model.InventoryItem, error)

	// Delete удаляет позицию. Возвращает число затронутых строк:
	// 0 означает, что запись уже исчезла (проигранная гонка).
	Delete(ctx context.Context, id string) (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepository создаёт реализацию репозитория для InventoryItem.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) List(ctx context.Context, offset, limit int) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.InventoryItem, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.InventoryItem{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InventoryItem{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
