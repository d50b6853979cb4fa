package constants

// Response messages
const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_INPUT              = "Invalid input"
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_CREDENTIALS      = "Invalid credentials"
	NOT_FOUND                = "Not found"
	UNAUTHORIZED             = "Unauthorized"
	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"
)

// Reservation statuses
const (
	STATUS_PENDING   = "Pending"
	STATUS_CONFIRMED = "Confirmed"
	STATUS_CANCELLED = "Cancelled"
	STATUS_NO_SHOW   = "No-show"
)

var ReservationStatuses = []string{STATUS_PENDING, STATUS_CONFIRMED, STATUS_CANCELLED, STATUS_NO_SHOW}

// Dining zones. Table ids are prefixed with the zone initial (B1..B9, V1..).
const (
	ZONE_BAR     = "Bar Room"
	ZONE_VILLAGE = "Village (Bet)"
	ZONE_OUTDOOR = "Outdoor"
	ZONE_CHURCH  = "Church"
)

var TableZones = []string{ZONE_BAR, ZONE_VILLAGE, ZONE_OUTDOOR, ZONE_CHURCH}

const TABLES_PER_ZONE = 9

// Reference codes look like LAL-9F3C2A.
const REF_CODE_PREFIX = "LAL"

// Marketing post statuses
const (
	MARKETING_DRAFT     = "draft"
	MARKETING_SCHEDULED = "scheduled"
	MARKETING_LIVE      = "live"
)

var MarketingStatuses = []string{MARKETING_DRAFT, MARKETING_SCHEDULED, MARKETING_LIVE}

const DEFAULT_HASHTAGS = "#LalibelaTerminal"

var MenuCategories = []string{
	"Starters",
	"Meat Mains",
	"Vegetarian & Vegan",
	"Signature Combos",
	"Red Wines",
	"White Wines",
	"Spirits & Beers",
	"Beers",
	"Soft Drinks",
	"Hot Drinks",
	"Desserts",
}
