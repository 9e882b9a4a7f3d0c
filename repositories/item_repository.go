package repositories

import (
	"strings"

	"gin-inventory/constants"
	"gin-inventory/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindPage(userID uint, offset int, limit int, search string, category string) ([]models.Item, int64, error)
	FindById(itemID uint, userID uint) (*models.Item, error)
	Create(newItem models.Item) (*models.Item, error)
	Update(itemID uint, userID uint, updates map[string]interface{}) (*models.Item, error)
	Delete(itemID uint, userID uint) error
	Stats(userID uint) (*models.ItemStats, error)
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

// filtered は一覧とカウントで同じ絞り込みを共有する
func (r *ItemRepository) filtered(userID uint, search string, category string) *gorm.DB {
	query := r.db.Model(&models.Item{}).Where("user_id = ?", userID)
	if search != "" {
		// LIKEの大文字小文字の扱いはドライバごとに異なるためLOWERで揃える
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	return query
}

func (r *ItemRepository) FindPage(userID uint, offset int, limit int, search string, category string) ([]models.Item, int64, error) {
	var total int64
	if err := r.filtered(userID, search, category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Item
	result := r.filtered(userID, search, category).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return items, total, nil
}

func (r *ItemRepository) FindById(itemID uint, userID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *ItemRepository) Update(itemID uint, userID uint, updates map[string]interface{}) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var updatedItem models.Item
	if err := r.db.First(&updatedItem, "id = ?", itemID).Error; err != nil {
		return nil, err
	}

	return &updatedItem, nil
}

func (r *ItemRepository) Delete(itemID uint, userID uint) error {
	// 物理削除。論理削除だと一意インデックスがSKUを塞いだままになる
	result := r.db.Unscoped().Delete(&models.Item{}, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepository) Stats(userID uint) (*models.ItemStats, error) {
	var stats models.ItemStats
	result := r.db.Model(&models.Item{}).
		Select("COUNT(*) AS total_items, COALESCE(SUM(price * quantity), 0) AS total_value, COUNT(CASE WHEN quantity < ? THEN 1 END) AS low_stock", constants.LowStockThreshold).
		Where("user_id = ?", userID).
		Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	return &stats, nil
}
