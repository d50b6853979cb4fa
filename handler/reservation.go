package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/database"
	"lalibela_manager/helper"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

// CreateReservation persists a booking. The reference code is always issued
// server-side. Note there is no cross-request lock here: two guests racing
// for the same table can both succeed, which staff detect on the dashboard
// afterwards.
func CreateReservation(c *fiber.Ctx) error {
	reservation := c.Locals("createInput").(model.Reservation)

	if err := helper.CreateReservationWithCode(database.DB, &reservation); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not save the reservation", err)
	}

	helper.InvalidateReservationCache(c.Context(), reservation.Date)

	if reservation.Status == constants.STATUS_CONFIRMED {
		utils.SendReservationConfirmationEmail(reservation.Email, utils.ReservationEmailData{
			Name:          reservation.Name,
			ReferenceCode: reservation.ReferenceCode,
			Date:          reservation.Date,
			Time:          reservation.Time,
			Guests:        reservation.Guests,
			TableZone:     reservation.TableZone,
			TableId:       reservation.TableId,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

// GetReservations lists bookings for the admin dashboard, newest first.
func GetReservations(c *fiber.Ctx) error {
	filter := new(model.ReservationFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Reservation{})
	if filter.Date != nil {
		db = db.Where("date = ?", *filter.Date)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var reservations []model.Reservation
	if err := db.Order("created_at DESC").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       reservations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// UpdateReservationStatus sets any recognized status on any reservation.
// No transition table is enforced; Cancelled and No-show are closed states
// by convention only.
func UpdateReservationStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	status := c.Locals("statusInput").(string)

	var reservation model.Reservation
	if err := database.DB.First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	reservation.Status = status
	if err := database.DB.Save(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update the reservation", err)
	}

	helper.InvalidateReservationCache(c.Context(), reservation.Date)
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func DeleteReservation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var reservation model.Reservation
	if err := database.DB.First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := database.DB.Delete(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete the reservation", err)
	}

	helper.InvalidateReservationCache(c.Context(), reservation.Date)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Reservation deleted",
	})
}

// GetAvailability is the server-side availability read: the slot list for a
// date and, when a time is supplied, which tables are taken around it.
// Backed by the per-date cache so the public site cannot hammer the table.
func GetAvailability(c *fiber.Ctx) error {
	date := c.Query("date")
	timeLabel := c.Query("time")
	if date == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "date query param is required", errors.New("missing date"))
	}

	slots := helper.AvailableSlots(date)
	if slots == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", errors.New("unparseable date"))
	}

	occupied := []string{}
	if timeLabel != "" {
		reservations, err := helper.ReservationsForDate(c.Context(), date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		occupied = helper.OccupiedTableIDs(date, timeLabel, reservations)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":             date,
		"slots":            slots,
		"occupiedTableIds": occupied,
	})
}

// GetReservationQR serves the scannable check-in code for a booking.
func GetReservationQR(c *fiber.Ctx) error {
	code := c.Params("code")

	var reservation model.Reservation
	if err := database.DB.Where("reference_code = ?", code).First(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	png, err := utils.GenerateQRCode(reservation.ReferenceCode, 250)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
