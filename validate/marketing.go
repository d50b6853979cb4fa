package validate

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

func CreateMarketingPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMarketingPostInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if input.Status == constants.MARKETING_SCHEDULED && input.PublishAt == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Scheduled posts need a publish time", errors.New("publishAt is required"))
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateMarketingPost(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateMarketingPostInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("postId", postId)
		c.Locals("updateInput", input)
		return c.Next()
	}
}
