package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	maxNameLen        = 50
	maxDescriptionLen = 500
)

// ItemInput — входные поля позиции. Указатели позволяют отличить
// отсутствующее поле от нулевого значения (qty=0 и price=0 валидны).
type ItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// PageRef — ссылка на соседнюю страницу.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PageInfo — метаданные пагинации ответа списка.
type PageInfo struct {
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	TotalItems  int64    `json:"totalItems"`
	Next        *PageRef `json:"next,omitempty"`
	Prev        *PageRef `json:"prev,omitempty"`
}

// InventoryService — бизнес-логика складских позиций: валидация,
// назначение владельца, проверка политики доступа, пагинация.
type InventoryService struct {
	repo repo.InventoryRepository
}

func NewInventoryService(r repo.InventoryRepository) *InventoryService {
	return &InventoryService{repo: r}
}

// NormalizePage приводит page/limit к значениям по умолчанию вместо отказа.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// BuildPageInfo считает totalPages и ссылки next/prev.
// next присутствует, только если за текущей страницей ещё есть данные,
// prev — только если текущая страница не первая.
func BuildPageInfo(page, limit int, total int64) PageInfo {
	info := PageInfo{
		CurrentPage: page,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		TotalItems:  total,
	}
	if int64(page)*int64(limit) < total {
		info.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		info.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	return info
}

// List возвращает страницу позиций, новые первыми.
func (s *InventoryService) List(ctx context.Context, actor Actor, page, limit int) ([]model.InventoryItem, PageInfo, error) {
	if !CanMutate(actor.ID, actor.Role, 0, OpRead) {
		return nil, PageInfo{}, ErrForbidden
	}
	page, limit = NormalizePage(page, limit)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, PageInfo{}, err
	}
	items, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return items, BuildPageInfo(page, limit, total), nil
}

// Get возвращает позицию по ID.
func (s *InventoryService) Get(ctx context.Context, actor Actor, id string) (*model.InventoryItem, error) {
	if !CanMutate(actor.ID, actor.Role, 0, OpRead) {
		return nil, ErrForbidden
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create валидирует поля, назначает владельцем автора запроса и сохраняет позицию.
func (s *InventoryService) Create(ctx context.Context, actor Actor, in ItemInput) (*model.InventoryItem, error) {
	if !CanMutate(actor.ID, actor.Role, 0, OpCreate) {
		return nil, ErrForbidden
	}
	if violations := validateInput(in, true); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	item := &model.InventoryItem{
		ID:          uuid.NewString(),
		UserID:      actor.ID,
		Name:        strings.TrimSpace(*in.Name),
		Description: *in.Description,
		Quantity:    *in.Quantity,
		Price:       *in.Price,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, item.ID)
}

// Update применяет частичное обновление. Владелец никогда не меняется,
// даже если клиент прислал поле владельца.
func (s *InventoryService) Update(ctx context.Context, actor Actor, id string, in ItemInput) (*model.InventoryItem, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanMutate(actor.ID, actor.Role, existing.UserID, OpUpdate) {
		return nil, ErrForbidden
	}
	if violations := validateInput(in, false); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Quantity != nil {
		updates["quantity"] = *in.Quantity
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if len(updates) == 0 {
		return existing, nil
	}

	item, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// запись исчезла между проверкой и записью
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete удаляет позицию немедленно и безвозвратно.
func (s *InventoryService) Delete(ctx context.Context, actor Actor, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !CanMutate(actor.ID, actor.Role, existing.UserID, OpDelete) {
		return ErrForbidden
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		// конкурентное удаление успело раньше
		return ErrNotFound
	}
	return nil
}

// validateInput проверяет ограничения полей. При required=true отсутствующие
// поля считаются нарушением (create); иначе проверяются только присланные (update).
func validateInput(in ItemInput, required bool) []string {
	var violations []string

	switch {
	case in.Name == nil:
		if required {
			violations = append(violations, "Please add a name")
		}
	case strings.TrimSpace(*in.Name) == "":
		violations = append(violations, "Please add a name")
	case len(strings.TrimSpace(*in.Name)) > maxNameLen:
		violations = append(violations, "Name cannot be more than 50 characters")
	}

	switch {
	case in.Description == nil:
		if required {
			violations = append(violations, "Please add a description")
		}
	case *in.Description == "":
		violations = append(violations, "Please add a description")
	case len(*in.Description) > maxDescriptionLen:
		violations = append(violations, "Description cannot be more than 500 characters")
	}

	if in.Quantity == nil {
		if required {
			violations = append(violations, "Please add a quantity")
		}
	} else if *in.Quantity < 0 {
		violations = append(violations, "Quantity cannot be negative")
	}

	if in.Price == nil {
		if required {
			violations = append(violations, "Please add a price")
		}
	} else if *in.Price < 0 {
		violations = append(violations, "Price cannot be negative")
	}

	return violations
}
