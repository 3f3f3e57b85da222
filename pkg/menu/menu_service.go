package menu

import (
	"cafe-menu-backend/domain"
	"cafe-menu-backend/entities"
	"cafe-menu-backend/internal/utils"
	"cafe-menu-backend/internal/utils/storage"
	"context"
	"errors"
	"log"
	"mime/multipart"

	"gorm.io/gorm"
)

type (
	MenuService interface {
		CreateItem(ctx context.Context, category string, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error)
		GetItem(ctx context.Context, category string, id uint) (domain.MenuItemResponse, error)
		UpdateItem(ctx context.Context, category string, id uint, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error)
		DeleteItem(ctx context.Context, category string, id uint) error
		ArchiveItem(ctx context.Context, category string, id uint) error
		RestoreItem(ctx context.Context, category string, id uint) error
		UploadItemImage(ctx context.Context, category string, id uint, image *multipart.FileHeader) (string, error)

		PublicMenu(ctx context.Context, category string) (domain.CategorySection, error)
		Dashboard(ctx context.Context) ([]domain.CategorySection, error)
		Archive(ctx context.Context) ([]domain.CategorySection, error)

		UpdateOrder(ctx context.Context, category string, req domain.UpdateOrderRequest) error
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) CreateItem(ctx context.Context, category string, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error) {
	spec, ok := lookupCategory(category)
	if !ok {
		return domain.MenuItemResponse{}, domain.ErrUnknownCategory
	}

	item := &entities.MenuItem{
		Category:          category,
		Name:              req.Name,
		Price:             req.Price,
		Description:       req.Description,
		Ingredients:       req.Ingredients,
		Allergens:         req.Allergens,
		PreparationMethod: req.PreparationMethod,
		SortOrder:         0,
		IsActive:          true,
	}

	if spec.hasGroups() {
		item.Group = req.Group
		if item.Group == "" {
			item.Group = spec.groups[0]
		} else if !spec.validGroup(item.Group) {
			return domain.MenuItemResponse{}, domain.ErrUnknownGroup
		}
		item.Temperature = req.Temperature
		item.MilkAlternatives = req.MilkAlternatives
		if spec.dualPrice {
			item.Price2 = req.Price2
		}
	} else if req.Group != "" {
		return domain.MenuItemResponse{}, domain.ErrGroupNotAllowed
	}

	if err := s.menuRepository.Create(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) GetItem(ctx context.Context, category string, id uint) (domain.MenuItemResponse, error) {
	if _, ok := lookupCategory(category); !ok {
		return domain.MenuItemResponse{}, domain.ErrUnknownCategory
	}

	item, err := s.menuRepository.GetByID(ctx, category, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

// UpdateItem edits descriptive fields only. SortOrder is owned by
// UpdateOrder and IsActive by ArchiveItem/RestoreItem.
func (s *menuService) UpdateItem(ctx context.Context, category string, id uint, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error) {
	spec, ok := lookupCategory(category)
	if !ok {
		return domain.MenuItemResponse{}, domain.ErrUnknownCategory
	}

	item, err := s.menuRepository.GetByID(ctx, category, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Ingredients != nil {
		item.Ingredients = *req.Ingredients
	}
	if req.Allergens != nil {
		item.Allergens = *req.Allergens
	}
	if req.PreparationMethod != nil {
		item.PreparationMethod = *req.PreparationMethod
	}

	if spec.hasGroups() {
		if req.Group != "" {
			if !spec.validGroup(req.Group) {
				return domain.MenuItemResponse{}, domain.ErrUnknownGroup
			}
			item.Group = req.Group
		}
		if req.Temperature != "" {
			item.Temperature = req.Temperature
		}
		if req.MilkAlternatives != nil {
			item.MilkAlternatives = *req.MilkAlternatives
		}
		if spec.dualPrice && req.Price2 != nil {
			item.Price2 = req.Price2
		}
	} else if req.Group != "" {
		return domain.MenuItemResponse{}, domain.ErrGroupNotAllowed
	}

	if err := s.menuRepository.Update(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) DeleteItem(ctx context.Context, category string, id uint) error {
	if _, ok := lookupCategory(category); !ok {
		return domain.ErrUnknownCategory
	}
	if _, err := s.menuRepository.GetByID(ctx, category, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	return s.menuRepository.Delete(ctx, category, id)
}

func (s *menuService) ArchiveItem(ctx context.Context, category string, id uint) error {
	return s.setActive(ctx, category, id, false)
}

func (s *menuService) RestoreItem(ctx context.Context, category string, id uint) error {
	return s.setActive(ctx, category, id, true)
}

// setActive flips visibility without touching SortOrder, so a restored
// item keeps its old position until the next reorder of its partition.
func (s *menuService) setActive(ctx context.Context, category string, id uint, active bool) error {
	if _, ok := lookupCategory(category); !ok {
		return domain.ErrUnknownCategory
	}
	if _, err := s.menuRepository.GetByID(ctx, category, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	return s.menuRepository.SetActive(ctx, category, id, active)
}

func (s *menuService) UploadItemImage(ctx context.Context, category string, id uint, image *multipart.FileHeader) (string, error) {
	if _, ok := lookupCategory(category); !ok {
		return "", domain.ErrUnknownCategory
	}

	item, err := s.menuRepository.GetByID(ctx, category, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMenuItemNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, image, "menu/"+category)
	if err != nil {
		return "", err
	}

	item.ImageURL = url
	if err := s.menuRepository.Update(ctx, item); err != nil {
		return "", err
	}
	return url, nil
}

// PublicMenu returns the customer-facing sequence for one category: active
// items only, coffee partitioned into its group sections in fixed order.
func (s *menuService) PublicMenu(ctx context.Context, category string) (domain.CategorySection, error) {
	active := true
	return s.categorySection(ctx, category, &active)
}

func (s *menuService) Dashboard(ctx context.Context) ([]domain.CategorySection, error) {
	active := true
	return s.allSections(ctx, &active)
}

func (s *menuService) Archive(ctx context.Context) ([]domain.CategorySection, error) {
	active := false
	return s.allSections(ctx, &active)
}

func (s *menuService) allSections(ctx context.Context, active *bool) ([]domain.CategorySection, error) {
	sections := make([]domain.CategorySection, 0, 3)
	for _, category := range []string{domain.CategoryCoffee, domain.CategoryToast, domain.CategorySweet} {
		section, err := s.categorySection(ctx, category, active)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func (s *menuService) categorySection(ctx context.Context, category string, active *bool) (domain.CategorySection, error) {
	spec, ok := lookupCategory(category)
	if !ok {
		return domain.CategorySection{}, domain.ErrUnknownCategory
	}

	section := domain.CategorySection{Category: category}

	if !spec.hasGroups() {
		items, err := s.menuRepository.List(ctx, category, ListFilter{Active: active})
		if err != nil {
			return domain.CategorySection{}, err
		}
		section.Items = toMenuItemResponses(items)
		return section, nil
	}

	for _, group := range spec.groups {
		items, err := s.menuRepository.List(ctx, category, ListFilter{Active: active, Group: group})
		if err != nil {
			return domain.CategorySection{}, err
		}
		section.Groups = append(section.Groups, domain.GroupSection{
			Group: group,
			Items: toMenuItemResponses(items),
		})
	}
	return section, nil
}

// UpdateOrder applies a drag-and-drop permutation. Positions are assigned
// densely from zero to the items that actually resolve, in the order they
// appear in the payload; unknown ids and items outside the supplied group
// scope consume no position. Writes are applied one by one, so a store
// failure mid-loop leaves the earlier positions committed.
func (s *menuService) UpdateOrder(ctx context.Context, category string, req domain.UpdateOrderRequest) error {
	spec, ok := lookupCategory(category)
	if !ok {
		return domain.ErrUnknownCategory
	}

	position := 0
	for _, id := range req.Items {
		item, err := s.menuRepository.GetByID(ctx, category, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			log.Printf("update order: lookup failed category=%s group=%s id=%d: %v", category, req.Group, id, err)
			return err
		}

		// A stale or mixed payload must not renumber another group's
		// partition, so out-of-scope items are skipped, not failed.
		if spec.hasGroups() && req.Group != "" && item.Group != req.Group {
			continue
		}

		if err := s.menuRepository.UpdateSortOrder(ctx, category, id, position); err != nil {
			log.Printf("update order: write failed category=%s group=%s id=%d position=%d: %v", category, req.Group, id, position, err)
			return err
		}
		position++
	}
	return nil
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	res := domain.MenuItemResponse{
		ID:                item.ID,
		Category:          item.Category,
		Name:              item.Name,
		Group:             item.Group,
		Price:             item.Price,
		PriceDisplay:      utils.FormatPrice(item.Price),
		Price2:            item.Price2,
		Temperature:       item.Temperature,
		Description:       item.Description,
		Ingredients:       item.Ingredients,
		Allergens:         item.Allergens,
		MilkAlternatives:  item.MilkAlternatives,
		PreparationMethod: item.PreparationMethod,
		ImageURL:          item.ImageURL,
		SortOrder:         item.SortOrder,
		IsActive:          item.IsActive,
		CreatedAt:         item.CreatedAt,
	}
	if item.Price2 != nil {
		res.Price2Display = utils.FormatPrice(*item.Price2)
		res.HasTwoPrices = true
	}
	return res
}

func toMenuItemResponses(items []*entities.MenuItem) []domain.MenuItemResponse {
	responses := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toMenuItemResponse(item))
	}
	return responses
}
