package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gin-inventory/constants"
	"gin-inventory/dto"
	"gin-inventory/services"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Stats(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func currentUserID(ctx *gin.Context) (uint, bool) {
	userID, exists := ctx.Get("userID")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrUnauthorized})
		return 0, false
	}
	return userID.(uint), true
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	response, err := c.service.FindPage(userID, dto.ListItemsQuery{
		Page:     page,
		Limit:    limit,
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
	})
	if err != nil {
		log.Printf("List items error (request %s): %v", ctx.GetString("requestID"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *ItemController) FindById(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	item, err := c.service.FindById(uint(itemID), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (c *ItemController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var input dto.ItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newItem, err := c.service.Create(input, userID)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateSKU) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrDuplicateSKU})
			return
		}
		log.Printf("Create item error (request %s): %v", ctx.GetString("requestID"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, newItem)
}

func (c *ItemController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.ItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedItem, err := c.service.Update(uint(itemID), userID, input)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
			return
		}
		if errors.Is(err, services.ErrDuplicateSKU) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrDuplicateSKU})
			return
		}
		log.Printf("Update item error (request %s): %v", ctx.GetString("requestID"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, updatedItem)
}

func (c *ItemController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := c.service.Delete(uint(itemID), userID); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
			return
		}
		log.Printf("Delete item error (request %s): %v", ctx.GetString("requestID"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func (c *ItemController) Stats(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.service.Stats(userID)
	if err != nil {
		log.Printf("Item stats error (request %s): %v", ctx.GetString("requestID"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
