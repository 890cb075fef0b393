package store

import (
	"time"

	"gorm.io/datatypes"
)

// GORM models used for persistence.
type UserModel struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
	CreatedAt    time.Time
}

// DayScheduleModel stores one weekday's ordered event list as a JSONB
// document, mirroring the day-keyed document shape of the data.
type DayScheduleModel struct {
	Day       string         `gorm:"primaryKey"`
	Events    datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

type AssetModel struct {
	ID           string `gorm:"primaryKey"`
	Filename     string `gorm:"uniqueIndex;not null"`
	ContentType  string `gorm:"not null"`
	OriginalName string `gorm:"not null"`
	ByteLength   int64  `gorm:"not null"`
	CreatedAt    time.Time
}

type DevoteeModel struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Description  string
	ImageAssetID string `gorm:"not null;index"`
	CreatedAt    time.Time
}

type EventModel struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Date        string
	Time        string
	Venue       string
	CreatedBy   string
	CreatedAt   time.Time
}

type VolunteerModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     string
	Address   string
	Interest  string
	Message   string
	CreatedAt time.Time
}

type ContactMessageModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Message   string `gorm:"not null"`
	CreatedAt time.Time
}

type PledgeModel struct {
	ID          string `gorm:"primaryKey"`
	Salutation  string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address1    string
	Address2    string
	City        string
	State       string
	Zip         string
	Country     string
	PledgeType  string
	FulfillDate string
	Amount      float64
	Anonymity   string
	PledgeDate  string
	Signature   string
	CreatedAt   time.Time
}

type SubscriberModel struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

type BookingModel struct {
	ID          string `gorm:"primaryKey"`
	ServiceName string
	ClientName  string
	Phone       string
	Email       string
	Time        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DirectorModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Position  string `gorm:"not null"`
	CreatedAt time.Time
}
