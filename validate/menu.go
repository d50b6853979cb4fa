package validate

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if !utils.IsValidValueOfConstant(input.Category, constants.MenuCategories) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown menu category", errors.New("category not recognized"))
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateMenuItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateMenuItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if input.Category != nil && !utils.IsValidValueOfConstant(*input.Category, constants.MenuCategories) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown menu category", errors.New("category not recognized"))
		}

		c.Locals("itemId", itemId)
		c.Locals("updateInput", input)
		return c.Next()
	}
}
