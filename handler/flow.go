package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/config"
	"lalibela_manager/constants"
	"lalibela_manager/database"
	"lalibela_manager/helper"
	"lalibela_manager/model"
	"lalibela_manager/utils"
	"lalibela_manager/workflow"
)

// flowStore holds in-flight guest bookings. Abandoned sessions are reclaimed
// by SweepFlows from the ticker in main.
var flowStore = workflow.NewStore(30 * time.Minute)

func SweepFlows() {
	if n := flowStore.Sweep(); n > 0 {
		log.Printf("Swept %d abandoned reservation session(s)", n)
	}
}

func flowError(c *fiber.Ctx, err error) error {
	if errors.Is(err, workflow.ErrSessionNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot continue the booking", err)
}

func StartFlow(c *fiber.Ctx) error {
	sess := flowStore.Start()
	return utils.SuccessResponse(c, fiber.StatusCreated, sess)
}

func GetFlow(c *fiber.Ctx) error {
	sess, err := flowStore.Get(c.Params("sessionId"))
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sess)
}

func FlowArrival(c *fiber.Ctx) error {
	var input workflow.ArrivalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	sess, err := flowStore.Arrival(c.Params("sessionId"), input)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sess)
}

func FlowAtmosphere(c *fiber.Ctx) error {
	var input struct {
		TableZone string `json:"tableZone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	sess, err := flowStore.Atmosphere(c.Params("sessionId"), input.TableZone, zoneIsOpen)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sess)
}

func FlowTable(c *fiber.Ctx) error {
	var input struct {
		TableId string `json:"tableId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	sessionId := c.Params("sessionId")
	sess, err := flowStore.Get(sessionId)
	if err != nil {
		return flowError(c, err)
	}

	reservations, err := helper.ReservationsForDate(c.Context(), sess.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sess, err = flowStore.Table(sessionId, input.TableId, reservations)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sess)
}

// FlowContact finalizes the booking. A failed insert keeps the guest on the
// contact step with everything they typed; the reference code in the success
// payload always comes from the stored record.
func FlowContact(c *fiber.Ctx) error {
	var input workflow.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	create := func(r *model.Reservation) error {
		if err := helper.CreateReservationWithCode(database.DB, r); err != nil {
			return err
		}
		helper.InvalidateReservationCache(c.Context(), r.Date)
		if r.Status == constants.STATUS_CONFIRMED {
			utils.SendReservationConfirmationEmail(r.Email, utils.ReservationEmailData{
				Name:          r.Name,
				ReferenceCode: r.ReferenceCode,
				Date:          r.Date,
				Time:          r.Time,
				Guests:        r.Guests,
				TableZone:     r.TableZone,
				TableId:       r.TableId,
			})
		}
		return nil
	}

	autoConfirm := config.ConfigBool("RESERVATION_AUTO_CONFIRM", true)
	sess, err := flowStore.Contact(c.Params("sessionId"), input, create, autoConfirm)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sess)
}

func FlowBack(c *fiber.Ctx) error {
	sess, err := flowStore.Back(c.Params("sessionId"))
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sess)
}

func zoneIsOpen(name string) bool {
	var zone model.Zone
	if err := database.DB.Where("name = ?", name).First(&zone).Error; err != nil {
		return false
	}
	return zone.IsOpen
}
