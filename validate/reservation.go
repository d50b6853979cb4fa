package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if !utils.IsValidValueOfConstant(input.TableZone, constants.TableZones) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown table zone", errors.New("tableZone must be one of the dining rooms"))
		}

		// Absent status falls back to the schema default.
		status := input.Status
		if status == "" {
			status = constants.STATUS_PENDING
		}
		if !utils.IsValidValueOfConstant(status, constants.ReservationStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown reservation status", errors.New("status not recognized"))
		}

		c.Locals("createInput", model.Reservation{
			Date:      input.Date,
			Time:      input.Time,
			Guests:    input.Guests,
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			Notes:     input.Notes,
			TableZone: input.TableZone,
			TableId:   input.TableId,
			Status:    status,
		})

		return c.Next()
	}
}

func UpdateReservationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateReservationStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if !utils.IsValidValueOfConstant(input.Status, constants.ReservationStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown reservation status", errors.New("status not recognized"))
		}

		c.Locals("statusInput", input.Status)
		return c.Next()
	}
}
