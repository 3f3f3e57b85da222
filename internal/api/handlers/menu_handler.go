package handlers

import (
	"cafe-menu-backend/domain"
	"cafe-menu-backend/internal/api/presenters"
	"cafe-menu-backend/pkg/menu"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetPublicMenu(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		GetArchive(c *fiber.Ctx) error
		CreateItem(c *fiber.Ctx) error
		GetItemDetails(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		ArchiveItem(c *fiber.Ctx) error
		RestoreItem(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
		UpdateOrder(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func statusForMenuError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrUnknownGroup),
		errors.Is(err, domain.ErrGroupNotAllowed):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrMenuItemNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func parseItemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, domain.ErrMenuItemNotFound
	}
	return uint(id), nil
}

func (h *menuHandler) GetPublicMenu(c *fiber.Ctx) error {
	section, err := h.menuService.PublicMenu(c.Context(), c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, section, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) GetDashboard(c *fiber.Ctx) error {
	sections, err := h.menuService.Dashboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"sections": sections}, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) GetArchive(c *fiber.Ctx) error {
	sections, err := h.menuService.Archive(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"sections": sections}, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) CreateItem(c *fiber.Ctx) error {
	req := new(domain.CreateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	res, err := h.menuService.CreateItem(c.Context(), c.Params("category"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedCreateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenuItem)
}

func (h *menuHandler) GetItemDetails(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenuItems, err)
	}

	res, err := h.menuService.GetItem(c.Context(), c.Params("category"), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateMenuItem, err)
	}

	req := new(domain.UpdateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	res, err := h.menuService.UpdateItem(c.Context(), c.Params("category"), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedUpdateMenuItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMenuItem, err)
	}

	if err := h.menuService.DeleteItem(c.Context(), c.Params("category"), id); err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedDeleteMenuItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *menuHandler) ArchiveItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedArchiveMenuItem, err)
	}

	if err := h.menuService.ArchiveItem(c.Context(), c.Params("category"), id); err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedArchiveMenuItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessArchiveMenuItem)
}

func (h *menuHandler) RestoreItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRestoreMenuItem, err)
	}

	if err := h.menuService.RestoreItem(c.Context(), c.Params("category"), id); err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedRestoreMenuItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRestoreMenuItem)
}

func (h *menuHandler) UploadItemImage(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadImage, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	url, err := h.menuService.UploadItemImage(c.Context(), c.Params("category"), id, file)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuError(err), domain.MessageFailedUploadImage, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

// UpdateOrder keeps the dashboard's drag-and-drop wire contract:
// 200 {"success": true} on success, {"error": "..."} otherwise.
func (h *menuHandler) UpdateOrder(c *fiber.Ctx) error {
	category := c.Params("category")

	req := new(domain.UpdateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.MessageFailedBodyRequest})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.menuService.UpdateOrder(c.Context(), category, *req); err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
