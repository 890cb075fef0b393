package domain

import "time"

type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Week lists the seven day identifiers in display order.
var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidDay reports whether day is one of the seven fixed identifiers.
// Matching is case-sensitive.
func ValidDay(day DayOfWeek) bool {
	for _, d := range Week {
		if d == day {
			return true
		}
	}
	return false
}

// TimeOfDay is a normalized time value derived once from raw input.
// Display carries the canonical rendering ("6:00am"); Meridiem is "am",
// "pm", or "" when no meridiem could be recognized.
type TimeOfDay struct {
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Display  string `json:"display"`
	Meridiem string `json:"meridiem,omitempty"`
}

type ScheduleEntry struct {
	Time  TimeOfDay `json:"time"`
	Event string    `json:"event"`
}

type DaySchedule struct {
	Day    DayOfWeek       `json:"day"`
	Events []ScheduleEntry `json:"events"`
}

// BinaryAsset is the metadata record for an uploaded byte payload. The
// payload itself lives in object storage under Filename.
type BinaryAsset struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"contentType"`
	OriginalName string    `json:"originalName"`
	ByteLength   int64     `json:"byteLength"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Devotee is a profile record holding a required reference to a stored
// image asset. The asset is owned by exactly this record.
type Devotee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageAssetID string    `json:"imageAssetId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Venue       string    `json:"venue"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Volunteer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Interest  string    `json:"interest"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Pledge struct {
	ID          string    `json:"id"`
	Salutation  string    `json:"salutation"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address1    string    `json:"address1"`
	Address2    string    `json:"address2"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Country     string    `json:"country"`
	PledgeType  string    `json:"pledgeType"`
	FulfillDate string    `json:"fulfillDate"`
	Amount      float64   `json:"amount"`
	Anonymity   string    `json:"anonymity"`
	PledgeDate  string    `json:"pledgeDate"`
	Signature   string    `json:"signature"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Booking struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"serviceName"`
	ClientName  string    `json:"clientName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DirectorPosition string

const (
	PositionEsteemedDonors   DirectorPosition = "Esteemed Donors"
	PositionBoardOfTrustees  DirectorPosition = "Board Of Trustees"
	PositionBoardOfDirectors DirectorPosition = "Board of Directors"
)

// ValidDirectorPosition checks position against the fixed enumeration.
func ValidDirectorPosition(p DirectorPosition) bool {
	switch p {
	case PositionEsteemedDonors, PositionBoardOfTrustees, PositionBoardOfDirectors:
		return true
	}
	return false
}

type Director struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Position  DirectorPosition `json:"position"`
	CreatedAt time.Time        `json:"createdAt"`
}
