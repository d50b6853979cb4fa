// Package workflow drives a guest through the booking steps:
// arrival -> atmosphere -> table -> contact -> success. Session state lives
// in memory for the duration of the flow; nothing touches the database until
// the contact step submits.
package workflow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"

	"lalibela_manager/constants"
	"lalibela_manager/helper"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

type Step string

const (
	StepArrival    Step = "arrival"
	StepAtmosphere Step = "atmosphere"
	StepTable      Step = "table"
	StepContact    Step = "contact"
	StepSuccess    Step = "success"
)

var ErrSessionNotFound = errors.New("reservation session not found")

// Session is one guest's in-flight booking. Field names line up with
// model.Reservation so the final record is assembled by copier.
type Session struct {
	ID            string    `json:"id" copier:"-"`
	Step          Step      `json:"step" copier:"-"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Guests        string    `json:"guests"`
	TableZone     string    `json:"tableZone"`
	TableId       string    `json:"tableId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Notes         string    `json:"notes"`
	ReferenceCode string    `json:"referenceCode,omitempty" copier:"-"`
	CreatedAt     time.Time `json:"createdAt" copier:"-"`
	UpdatedAt     time.Time `json:"updatedAt" copier:"-"`
}

type ArrivalInput struct {
	Date             string `json:"date"`
	Time             string `json:"time"`
	Guests           string `json:"guests"`
	CustomGuestCount string `json:"customGuestCount"`
}

type ContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// Arrival validates the date/time/party-size step. The sentinel guest value
// "more" unlocks the free-text count.
func (s *Session) arrival(in ArrivalInput, today string) error {
	if s.Step != StepArrival {
		return fmt.Errorf("not at the %s step", StepArrival)
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	// YYYY-MM-DD compares correctly as a string.
	if in.Date < today {
		return errors.New("date must be today or later")
	}

	if !utils.IsValidValueOfConstant(in.Time, helper.AvailableSlots(in.Date)) {
		return errors.New("time is not an offered slot for that date")
	}

	guests := in.Guests
	if guests == "more" {
		guests = strings.TrimSpace(in.CustomGuestCount)
		if guests == "" {
			return errors.New("exact guest count is required for parties over 8")
		}
	}
	n, err := strconv.Atoi(guests)
	if err != nil || n < 1 {
		return errors.New("guests must be a positive number")
	}

	s.Date = in.Date
	s.Time = in.Time
	s.Guests = guests
	s.Step = StepAtmosphere
	return nil
}

// atmosphere picks a dining zone. zoneOpen supplies the availability map;
// a closed zone cannot be chosen regardless of date. Changing zone resets
// any earlier table choice.
func (s *Session) atmosphere(zone string, zoneOpen func(string) bool) error {
	if s.Step != StepAtmosphere {
		return fmt.Errorf("not at the %s step", StepAtmosphere)
	}

	if !utils.IsValidValueOfConstant(zone, constants.TableZones) {
		return errors.New("unknown dining zone")
	}
	if zoneOpen != nil && !zoneOpen(zone) {
		return errors.New("this zone is temporarily closed")
	}

	s.TableZone = zone
	s.TableId = ""
	s.Step = StepTable
	return nil
}

// table picks a specific table, rejecting ids outside the zone layout and
// tables occupied per the dining-duration rule.
func (s *Session) table(tableId string, reservations []model.Reservation) error {
	if s.Step != StepTable {
		return fmt.Errorf("not at the %s step", StepTable)
	}

	if !helper.IsTableInZone(s.TableZone, tableId) {
		return fmt.Errorf("table %s is not in the %s zone", tableId, s.TableZone)
	}
	occupied := helper.OccupiedTableIDs(s.Date, s.Time, reservations)
	if utils.IsValidValueOfConstant(tableId, occupied) {
		return fmt.Errorf("table %s is already booked around that time", tableId)
	}

	s.TableId = tableId
	s.Step = StepContact
	return nil
}

// contact collects the guest details and submits through the lifecycle
// create path. On failure the session stays in contact with its data intact;
// the reference code only ever comes back from a successful insert.
func (s *Session) contact(in ContactInput, create func(*model.Reservation) error, autoConfirm bool) error {
	if s.Step != StepContact {
		return fmt.Errorf("not at the %s step", StepContact)
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return errors.New("name, email and phone are required")
	}

	s.Name = in.Name
	s.Email = in.Email
	s.Phone = in.Phone
	s.Notes = in.Notes

	var r model.Reservation
	if err := copier.Copy(&r, s); err != nil {
		return err
	}
	r.Status = constants.STATUS_PENDING
	if autoConfirm {
		r.Status = constants.STATUS_CONFIRMED
	}

	if err := create(&r); err != nil {
		return err
	}

	s.ReferenceCode = r.ReferenceCode
	s.Step = StepSuccess
	return nil
}

// back steps to the previous screen. Success is terminal.
func (s *Session) back() error {
	switch s.Step {
	case StepAtmosphere:
		s.Step = StepArrival
	case StepTable:
		s.Step = StepAtmosphere
	case StepContact:
		s.Step = StepTable
	default:
		return fmt.Errorf("cannot go back from the %s step", s.Step)
	}
	return nil
}
