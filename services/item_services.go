package services

import (
	"errors"
	"math"

	"gin-inventory/dto"
	"gin-inventory/models"
	"gin-inventory/repositories"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrDuplicateSKU = errors.New("sku already exists")
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type IItemService interface {
	FindPage(userID uint, query dto.ListItemsQuery) (*dto.ItemListResponse, error)
	FindById(itemID uint, userID uint) (*models.Item, error)
	Create(input dto.ItemInput, userID uint) (*models.Item, error)
	Update(itemID uint, userID uint, input dto.ItemInput) (*models.Item, error)
	Delete(itemID uint, userID uint) error
	Stats(userID uint) (*models.ItemStats, error)
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindPage(userID uint, query dto.ListItemsQuery) (*dto.ItemListResponse, error) {
	page := query.Page
	if page < 1 {
		page = defaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	items, total, err := s.repository.FindPage(userID, offset, limit, query.Search, query.Category)
	if err != nil {
		return nil, err
	}

	return &dto.ItemListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *ItemService) FindById(itemID uint, userID uint) (*models.Item, error) {
	item, err := s.repository.FindById(itemID, userID)
	if err != nil {
		// 他ユーザー所有のIDも存在しないIDと同じ扱い
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Create(input dto.ItemInput, userID uint) (*models.Item, error) {
	newItem := models.Item{
		Name:        input.Name,
		SKU:         input.SKU,
		Quantity:    *input.Quantity,
		Price:       *input.Price,
		Description: input.Description,
		Category:    input.Category,
		UserID:      userID,
	}

	created, err := s.repository.Create(newItem)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateSKU
		}
		return nil, err
	}
	return created, nil
}

func (s *ItemService) Update(itemID uint, userID uint, input dto.ItemInput) (*models.Item, error) {
	updates := map[string]interface{}{
		"name":        input.Name,
		"sku":         input.SKU,
		"quantity":    *input.Quantity,
		"price":       *input.Price,
		"description": input.Description,
		"category":    input.Category,
	}

	updatedItem, err := s.repository.Update(itemID, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateSKU
		}
		return nil, err
	}
	return updatedItem, nil
}

func (s *ItemService) Delete(itemID uint, userID uint) error {
	err := s.repository.Delete(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (s *ItemService) Stats(userID uint) (*models.ItemStats, error) {
	return s.repository.Stats(userID)
}
