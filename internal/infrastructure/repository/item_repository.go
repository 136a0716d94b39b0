package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new catalog repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item, group string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Groups").Create(item).Error; err != nil {
			return err
		}
		return linkGroup(tx, item, group)
	})
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Preload("Groups").First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item, group string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Groups").Save(item).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&entity.GroupItem{}).Error; err != nil {
			return err
		}
		return linkGroup(tx, item, group)
	})
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&entity.GroupItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Item{}, "id = ?", id).Error
	})
}

func (r *itemRepository) List(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).
		Preload("Groups").
		Order("items.name ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) ListForRegister(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.Item, error) {
	var items []entity.Item
	if params == nil {
		params = &domainRepo.ItemFilterParams{}
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Item{}).
		Scopes(InGroups(params.Groups), NameSearch(params.Search)).
		Preload("Groups").
		Order("items.name ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) Groups(ctx context.Context) ([]string, error) {
	var groups []string
	err := r.db.WithContext(ctx).
		Model(&entity.GroupItem{}).
		Distinct("group_name").
		Order("group_name ASC").
		Pluck("group_name", &groups).Error
	return groups, err
}

func linkGroup(tx *gorm.DB, item *entity.Item, group string) error {
	item.Groups = nil
	if group == "" {
		return nil
	}
	link := entity.GroupItem{GroupName: group, ItemID: item.ID}
	if err := tx.Create(&link).Error; err != nil {
		return err
	}
	item.Groups = []entity.GroupItem{link}
	return nil
}
