package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"lalibela_manager/constants"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

// DiningDuration is the assumed minutes a party holds its table. Two
// reservations on the same table conflict when their arrival times are
// closer than this. Conservative: adjacent non-overlapping slots still
// count as busy.
const DiningDuration = 120

var weekendSlots = []string{
	"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM", "8:00 PM",
	"8:30 PM", "9:00 PM", "9:30 PM", "10:00 PM",
}

var weekdaySlots = []string{
	"6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM",
}

// AvailableSlots returns the bookable arrival times for a YYYY-MM-DD date.
// Fri/Sat/Sun run the 30-minute weekend grid, other days the hourly one.
// The lists are fixed configuration, not derived from opening hours.
func AvailableSlots(date string) []string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}

	switch d.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return append([]string(nil), weekendSlots...)
	default:
		return append([]string(nil), weekdaySlots...)
	}
}

// TimeToMinutes converts a 12-hour slot label ("7:30 PM") to minutes since
// midnight.
func TimeToMinutes(label string) (int, error) {
	parts := strings.Split(label, " ")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}

	clock := strings.Split(parts[0], ":")
	if len(clock) != 2 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}

	hours, err := strconv.Atoi(clock[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	minutes, err := strconv.Atoi(clock[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time label %q", label)
	}

	switch strings.ToUpper(parts[1]) {
	case "PM":
		if hours < 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	default:
		return 0, fmt.Errorf("invalid time label %q", label)
	}

	return hours*60 + minutes, nil
}

// OccupiedTableIDs returns the tables considered busy for a date and arrival
// time, given the reservation set. Cancelled bookings free their table;
// everything else blocks it inside the dining-duration window.
func OccupiedTableIDs(date, timeLabel string, reservations []model.Reservation) []string {
	target, err := TimeToMinutes(timeLabel)
	if err != nil {
		return nil
	}

	occupied := []string{}
	for _, r := range reservations {
		if r.Date != date || r.Status == constants.STATUS_CANCELLED || r.TableId == "" {
			continue
		}
		m, err := TimeToMinutes(r.Time)
		if err != nil {
			continue
		}
		diff := target - m
		if diff < 0 {
			diff = -diff
		}
		if diff < DiningDuration {
			occupied = append(occupied, r.TableId)
		}
	}

	return occupied
}

// Table is one selectable spot on a zone's floor map. Top/Left are layout
// percentages for the blueprint view.
type Table struct {
	Id   string `json:"id"`
	Top  string `json:"top"`
	Left string `json:"left"`
}

// ZoneTables returns the fixed 3x3 layout of a zone. Table ids carry the
// zone initial, e.g. "Bar Room" -> B1..B9.
func ZoneTables(zone string) []Table {
	if !utils.IsValidValueOfConstant(zone, constants.TableZones) {
		return nil
	}

	prefix := zone[:1]
	tables := make([]Table, 0, constants.TABLES_PER_ZONE)
	for i := 0; i < constants.TABLES_PER_ZONE; i++ {
		tables = append(tables, Table{
			Id:   fmt.Sprintf("%s%d", prefix, i+1),
			Top:  fmt.Sprintf("%d%%", 15+(i/3)*30),
			Left: fmt.Sprintf("%d%%", 10+(i%3)*30),
		})
	}

	return tables
}

// IsTableInZone reports whether tableId belongs to the zone's fixed layout.
func IsTableInZone(zone, tableId string) bool {
	for _, t := range ZoneTables(zone) {
		if t.Id == tableId {
			return true
		}
	}
	return false
}
