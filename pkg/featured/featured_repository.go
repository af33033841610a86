package featured

import (
	"context"
	"restaurant-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FeaturedRepository interface {
		GetFeaturedItems(ctx context.Context) ([]*entities.FeaturedItem, error)
		ReplaceFeaturedItems(ctx context.Context, items []entities.FeaturedItem) error
		DeleteAllFeaturedItems(ctx context.Context) error
	}

	featuredRepository struct {
		db *gorm.DB
	}
)

func NewFeaturedRepository(db *gorm.DB) FeaturedRepository {
	return &featuredRepository{db: db}
}

// GetFeaturedItems returns every slot relation joined with its menu item,
// ordered by slot.
func (r *featuredRepository) GetFeaturedItems(ctx context.Context) ([]*entities.FeaturedItem, error) {
	var items []*entities.FeaturedItem
	if err := r.db.WithContext(ctx).
		Preload("MenuItem").
		Order("slot_number asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceFeaturedItems makes the stored relation set equal to items inside a
// single transaction: rows that disagree with the new set are pruned, missing
// rows are inserted. Either all of it lands or none of it does.
func (r *featuredRepository) ReplaceFeaturedItems(ctx context.Context, items []entities.FeaturedItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slots := make([]int, 0, len(items))
		for _, item := range items {
			slots = append(slots, item.SlotNumber)
		}

		prune := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if len(slots) > 0 {
			prune = prune.Where("slot_number NOT IN ?", slots)
		}
		if err := prune.Delete(&entities.FeaturedItem{}).Error; err != nil {
			return err
		}

		for _, item := range items {
			if err := tx.
				Where("(slot_number = ? AND menu_item_id <> ?) OR (menu_item_id = ? AND slot_number <> ?)",
					item.SlotNumber, item.MenuItemID, item.MenuItemID, item.SlotNumber).
				Delete(&entities.FeaturedItem{}).Error; err != nil {
				return err
			}
		}

		for _, item := range items {
			row := entities.FeaturedItem{SlotNumber: item.SlotNumber, MenuItemID: item.MenuItemID}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slot_number"}},
				DoNothing: true,
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *featuredRepository) DeleteAllFeaturedItems(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.FeaturedItem{}).Error
}

func NewFeaturedItem(slot int, menuItemID uuid.UUID) entities.FeaturedItem {
	return entities.FeaturedItem{SlotNumber: slot, MenuItemID: menuItemID}
}
