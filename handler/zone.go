package handler

import (
	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/database"
	"lalibela_manager/helper"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

// GetZones is the public availability map for the atmosphere step, each zone
// with its fixed table layout.
func GetZones(c *fiber.Ctx) error {
	var zones []model.Zone
	if err := database.DB.Order("id ASC").Find(&zones).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	type zoneView struct {
		model.Zone
		Tables []helper.Table `json:"tables"`
	}
	views := make([]zoneView, 0, len(zones))
	for _, z := range zones {
		views = append(views, zoneView{Zone: z, Tables: helper.ZoneTables(z.Name)})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, views)
}

// CloseZone takes a dining room out of the booking flow, e.g. for
// maintenance. Date-independent: closed means closed.
func CloseZone(c *fiber.Ctx) error {
	zoneId := c.Locals("inputId").(int)

	var input model.CloseZoneInput
	c.BodyParser(&input)

	var zone model.Zone
	if err := database.DB.First(&zone, zoneId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	zone.IsOpen = false
	zone.Note = input.Note
	if err := database.DB.Save(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zone)
}

func OpenZone(c *fiber.Ctx) error {
	zoneId := c.Locals("inputId").(int)

	var zone model.Zone
	if err := database.DB.First(&zone, zoneId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	zone.IsOpen = true
	zone.Note = ""
	if err := database.DB.Save(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zone)
}
