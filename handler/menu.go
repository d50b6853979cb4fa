package handler

import (
	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/database"
	"lalibela_manager/helper"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

// GetMenu is the public menu read, grouped for the site by category order.
func GetMenu(c *fiber.Ctx) error {
	var items []model.MenuItem
	if err := database.DB.Order("category ASC").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not fetch the menu", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateMenuItemInput)

	imageUrl, err := helper.UploadImage(c.Context(), input.Image, "lalibela_menu")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	item := model.MenuItem{
		Name:        input.Name,
		Slug:        helper.GenerateUniqueMenuSlug(database.DB, input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       imageUrl,
		IsAvailable: true,
		ChefTip:     input.ChefTip,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create the menu item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateMenuItem(c *fiber.Ctx) error {
	itemId := c.Locals("itemId").(int)
	input := c.Locals("updateInput").(model.UpdateMenuItemInput)

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Item not found", err)
	}

	if input.Name != nil {
		item.Name = *input.Name
		item.Slug = helper.GenerateUniqueMenuSlug(database.DB, *input.Name)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Image != nil {
		imageUrl, err := helper.UploadImage(c.Context(), *input.Image, "lalibela_menu")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
		}
		item.Image = imageUrl
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.ChefTip != nil {
		item.ChefTip = *input.ChefTip
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update the menu item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Item not found", err)
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Item removed from the menu",
	})
}
