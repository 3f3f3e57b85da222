package domain

import (
	"errors"
	"time"
)

const (
	CategoryCoffee = "coffee"
	CategoryToast  = "toast"
	CategorySweet  = "sweet"

	GroupBasic       = "basic"
	GroupAlternative = "alternative"
	GroupOther       = "other"
	GroupAddon       = "addon"
)

// CoffeeGroups is the fixed display order of the coffee sub-sections.
var CoffeeGroups = []string{GroupBasic, GroupAlternative, GroupOther, GroupAddon}

var (
	MessageSuccessCreateMenuItem  = "menu item created successfully"
	MessageSuccessUpdateMenuItem  = "menu item updated successfully"
	MessageSuccessDeleteMenuItem  = "menu item deleted successfully"
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessArchiveMenuItem = "menu item archived"
	MessageSuccessRestoreMenuItem = "menu item restored"
	MessageSuccessUploadImage     = "image uploaded successfully"

	MessageFailedCreateMenuItem  = "failed to create menu item"
	MessageFailedUpdateMenuItem  = "failed to update menu item"
	MessageFailedDeleteMenuItem  = "failed to delete menu item"
	MessageFailedGetMenuItems    = "failed to retrieve menu items"
	MessageFailedArchiveMenuItem = "failed to archive menu item"
	MessageFailedRestoreMenuItem = "failed to restore menu item"
	MessageFailedUploadImage     = "failed to upload image"

	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownGroup     = errors.New("unknown coffee group")
	ErrGroupNotAllowed  = errors.New("group is only valid for coffee items")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

type (
	CreateMenuItemRequest struct {
		Name              string   `json:"name" validate:"required"`
		Group             string   `json:"group" validate:"omitempty,oneof=basic alternative other addon"`
		Price             float64  `json:"price" validate:"min=0"`
		Price2            *float64 `json:"price_2" validate:"omitempty,min=0"`
		Temperature       string   `json:"temperature" validate:"omitempty,oneof=hot cold both"`
		Description       string   `json:"description"`
		Ingredients       string   `json:"ingredients"`
		Allergens         string   `json:"allergens"`
		MilkAlternatives  string   `json:"milk_alternatives"`
		PreparationMethod string   `json:"preparation_method"`
	}

	UpdateMenuItemRequest struct {
		Name              string   `json:"name" validate:"omitempty"`
		Group             string   `json:"group" validate:"omitempty,oneof=basic alternative other addon"`
		Price             *float64 `json:"price" validate:"omitempty,min=0"`
		Price2            *float64 `json:"price_2" validate:"omitempty,min=0"`
		Temperature       string   `json:"temperature" validate:"omitempty,oneof=hot cold both"`
		Description       *string  `json:"description"`
		Ingredients       *string  `json:"ingredients"`
		Allergens         *string  `json:"allergens"`
		MilkAlternatives  *string  `json:"milk_alternatives"`
		PreparationMethod *string  `json:"preparation_method"`
	}

	// UpdateOrderRequest carries the drag-and-drop result: item ids in
	// their new display order, optionally scoped to one coffee group.
	UpdateOrderRequest struct {
		Items []uint `json:"items" validate:"required"`
		Group string `json:"group"`
	}

	MenuItemResponse struct {
		ID                uint      `json:"id"`
		Category          string    `json:"category"`
		Name              string    `json:"name"`
		Group             string    `json:"group,omitempty"`
		Price             float64   `json:"price"`
		PriceDisplay      string    `json:"price_display"`
		Price2            *float64  `json:"price_2,omitempty"`
		Price2Display     string    `json:"price_2_display,omitempty"`
		HasTwoPrices      bool      `json:"has_two_prices"`
		Temperature       string    `json:"temperature,omitempty"`
		Description       string    `json:"description,omitempty"`
		Ingredients       string    `json:"ingredients,omitempty"`
		Allergens         string    `json:"allergens,omitempty"`
		MilkAlternatives  string    `json:"milk_alternatives,omitempty"`
		PreparationMethod string    `json:"preparation_method,omitempty"`
		ImageURL          string    `json:"image_url,omitempty"`
		SortOrder         int       `json:"sort_order"`
		IsActive          bool      `json:"is_active"`
		CreatedAt         time.Time `json:"created_at"`
	}

	// GroupSection is one coffee sub-sequence, sorted independently.
	GroupSection struct {
		Group string             `json:"group"`
		Items []MenuItemResponse `json:"items"`
	}

	CategorySection struct {
		Category string             `json:"category"`
		Groups   []GroupSection     `json:"groups,omitempty"`
		Items    []MenuItemResponse `json:"items,omitempty"`
	}
)
