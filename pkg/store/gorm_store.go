package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"templehub/pkg/domain"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(
		&UserModel{},
		&DayScheduleModel{},
		&AssetModel{},
		&DevoteeModel{},
		&EventModel{},
		&VolunteerModel{},
		&ContactMessageModel{},
		&PledgeModel{},
		&SubscriberModel{},
		&BookingModel{},
		&DirectorModel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// users

// SaveUser registers or updates a user.
func (s *GormStore) SaveUser(u domain.User) error {
	model := UserModel{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "password_hash", "role"}),
	}).Create(&model).Error
}

func (s *GormStore) GetUserByUsername(username string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

func (s *GormStore) GetUserByID(id string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

func (s *GormStore) ListUsers() ([]domain.User, error) {
	var models []UserModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.User, 0, len(models))
	for _, m := range models {
		res = append(res, userFromModel(m))
	}
	return res, nil
}

func (s *GormStore) DeleteUser(id string) (bool, error) {
	res := s.db.Delete(&UserModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func userFromModel(m UserModel) domain.User {
	return domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}

// weekly schedule

// ReplaceWeek swaps the entire schedule inside one transaction so a
// partial replacement is never visible to readers.
func (s *GormStore) ReplaceWeek(days []domain.DaySchedule) error {
	models := make([]DayScheduleModel, 0, len(days))
	for _, day := range days {
		model, err := dayToModel(day)
		if err != nil {
			return err
		}
		models = append(models, model)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&DayScheduleModel{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.Create(&models).Error
	})
}

// SaveDaySchedule upserts one weekday's event list.
func (s *GormStore) SaveDaySchedule(day domain.DaySchedule) error {
	model, err := dayToModel(day)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"events", "updated_at"}),
	}).Create(&model).Error
}

func (s *GormStore) GetDaySchedule(day domain.DayOfWeek) (domain.DaySchedule, bool, error) {
	var model DayScheduleModel
	if err := s.db.First(&model, "day = ?", string(day)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.DaySchedule{}, false, nil
		}
		return domain.DaySchedule{}, false, err
	}
	ds, err := dayFromModel(model)
	if err != nil {
		return domain.DaySchedule{}, false, err
	}
	return ds, true, nil
}

func (s *GormStore) ListDaySchedules() ([]domain.DaySchedule, error) {
	var models []DayScheduleModel
	if err := s.db.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.DaySchedule, 0, len(models))
	for _, m := range models {
		ds, err := dayFromModel(m)
		if err != nil {
			return nil, err
		}
		res = append(res, ds)
	}
	return res, nil
}

func dayToModel(day domain.DaySchedule) (DayScheduleModel, error) {
	events := day.Events
	if events == nil {
		events = []domain.ScheduleEntry{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return DayScheduleModel{}, fmt.Errorf("encode events for %s: %w", day.Day, err)
	}
	return DayScheduleModel{
		Day:       string(day.Day),
		Events:    datatypes.JSON(raw),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func dayFromModel(m DayScheduleModel) (domain.DaySchedule, error) {
	events := []domain.ScheduleEntry{}
	if len(m.Events) > 0 {
		if err := json.Unmarshal(m.Events, &events); err != nil {
			return domain.DaySchedule{}, fmt.Errorf("decode events for %s: %w", m.Day, err)
		}
	}
	return domain.DaySchedule{Day: domain.DayOfWeek(m.Day), Events: events}, nil
}

// binary assets

func (s *GormStore) SaveAsset(a domain.BinaryAsset) error {
	model := AssetModel{
		ID:           a.ID,
		Filename:     a.Filename,
		ContentType:  a.ContentType,
		OriginalName: a.OriginalName,
		ByteLength:   a.ByteLength,
		CreatedAt:    a.CreatedAt,
	}
	return s.db.Create(&model).Error
}

func (s *GormStore) GetAsset(id string) (domain.BinaryAsset, bool, error) {
	var model AssetModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.BinaryAsset{}, false, nil
		}
		return domain.BinaryAsset{}, false, err
	}
	return assetFromModel(model), true, nil
}

func (s *GormStore) GetAssetByFilename(name string) (domain.BinaryAsset, bool, error) {
	var model AssetModel
	if err := s.db.Where("filename = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.BinaryAsset{}, false, nil
		}
		return domain.BinaryAsset{}, false, err
	}
	return assetFromModel(model), true, nil
}

func (s *GormStore) ListAssets() ([]domain.BinaryAsset, error) {
	var models []AssetModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.BinaryAsset, 0, len(models))
	for _, m := range models {
		res = append(res, assetFromModel(m))
	}
	return res, nil
}

func (s *GormStore) DeleteAsset(id string) (bool, error) {
	res := s.db.Delete(&AssetModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func assetFromModel(m AssetModel) domain.BinaryAsset {
	return domain.BinaryAsset{
		ID:           m.ID,
		Filename:     m.Filename,
		ContentType:  m.ContentType,
		OriginalName: m.OriginalName,
		ByteLength:   m.ByteLength,
		CreatedAt:    m.CreatedAt,
	}
}

// devotees

func (s *GormStore) SaveDevotee(d domain.Devotee) error {
	model := DevoteeModel{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		ImageAssetID: d.ImageAssetID,
		CreatedAt:    d.CreatedAt,
	}
	return s.db.Create(&model).Error
}

func (s *GormStore) GetDevotee(id string) (domain.Devotee, bool, error) {
	var model DevoteeModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Devotee{}, false, nil
		}
		return domain.Devotee{}, false, err
	}
	return devoteeFromModel(model), true, nil
}

func (s *GormStore) ListDevotees() ([]domain.Devotee, error) {
	var models []DevoteeModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Devotee, 0, len(models))
	for _, m := range models {
		res = append(res, devoteeFromModel(m))
	}
	return res, nil
}

func (s *GormStore) DeleteDevotee(id string) (bool, error) {
	res := s.db.Delete(&DevoteeModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func devoteeFromModel(m DevoteeModel) domain.Devotee {
	return domain.Devotee{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		ImageAssetID: m.ImageAssetID,
		CreatedAt:    m.CreatedAt,
	}
}

// events

func (s *GormStore) SaveEvent(e domain.Event) error {
	model := EventModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Venue:       e.Venue,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "date", "time", "venue"}),
	}).Create(&model).Error
}

func (s *GormStore) GetEvent(id string) (domain.Event, bool, error) {
	var model EventModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Event{}, false, nil
		}
		return domain.Event{}, false, err
	}
	return eventFromModel(model), true, nil
}

func (s *GormStore) ListEvents() ([]domain.Event, error) {
	var models []EventModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Event, 0, len(models))
	for _, m := range models {
		res = append(res, eventFromModel(m))
	}
	return res, nil
}

func (s *GormStore) DeleteEvent(id string) (bool, error) {
	res := s.db.Delete(&EventModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func eventFromModel(m EventModel) domain.Event {
	return domain.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		Time:        m.Time,
		Venue:       m.Venue,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// volunteers

func (s *GormStore) SaveVolunteer(v domain.Volunteer) error {
	model := VolunteerModel{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Address:   v.Address,
		Interest:  v.Interest,
		Message:   v.Message,
		CreatedAt: v.CreatedAt,
	}
	return s.db.Create(&model).Error
}

func (s *GormStore) HasVolunteerEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&VolunteerModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) ListVolunteers() ([]domain.Volunteer, error) {
	var models []VolunteerModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Volunteer, 0, len(models))
	for _, m := range models {
		res = append(res, domain.Volunteer{
			ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone,
			Address: m.Address, Interest: m.Interest, Message: m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

// contact messages

func (s *GormStore) SaveContactMessage(c domain.ContactMessage) error {
	model := ContactMessageModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
	return s.db.Create(&model).Error
}

func (s *GormStore) ListContactMessages() ([]domain.ContactMessage, error) {
	var models []ContactMessageModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.ContactMessage, 0, len(models))
	for _, m := range models {
		res = append(res, domain.ContactMessage{
			ID: m.ID, Name: m.Name, Email: m.Email, Message: m.Message, CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

// pledges

func (s *GormStore) SavePledge(p domain.Pledge) error {
	model := PledgeModel{
		ID:         p.ID,
		Salutation: p.Salutation, FirstName: p.FirstName, LastName: p.LastName,
		Email: p.Email, Phone: p.Phone,
		Address1: p.Address1, Address2: p.Address2,
		City: p.City, State: p.State, Zip: p.Zip, Country: p.Country,
		PledgeType: p.PledgeType, FulfillDate: p.FulfillDate,
		Amount: p.Amount, Anonymity: p.Anonymity,
		PledgeDate: p.PledgeDate, Signature: p.Signature,
		CreatedAt: p.CreatedAt,
	}
	return s.db.Create(&model).Error
}

func (s *GormStore) ListPledges() ([]domain.Pledge, error) {
	var models []PledgeModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Pledge, 0, len(models))
	for _, m := range models {
		res = append(res, domain.Pledge{
			ID:         m.ID,
			Salutation: m.Salutation, FirstName: m.FirstName, LastName: m.LastName,
			Email: m.Email, Phone: m.Phone,
			Address1: m.Address1, Address2: m.Address2,
			City: m.City, State: m.State, Zip: m.Zip, Country: m.Country,
			PledgeType: m.PledgeType, FulfillDate: m.FulfillDate,
			Amount: m.Amount, Anonymity: m.Anonymity,
			PledgeDate: m.PledgeDate, Signature: m.Signature,
			CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

func (s *GormStore) DeletePledge(id string) (bool, error) {
	res := s.db.Delete(&PledgeModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// subscribers

func (s *GormStore) SaveSubscriber(sub domain.Subscriber) error {
	model := SubscriberModel{ID: sub.ID, Email: sub.Email, CreatedAt: sub.CreatedAt}
	return s.db.Create(&model).Error
}

func (s *GormStore) HasSubscriberEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&SubscriberModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) ListSubscribers() ([]domain.Subscriber, error) {
	var models []SubscriberModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Subscriber, 0, len(models))
	for _, m := range models {
		res = append(res, domain.Subscriber{ID: m.ID, Email: m.Email, CreatedAt: m.CreatedAt})
	}
	return res, nil
}

func (s *GormStore) DeleteSubscriberByEmail(email string) (bool, error) {
	res := s.db.Delete(&SubscriberModel{}, "email = ?", email)
	return res.RowsAffected > 0, res.Error
}

// bookings

func (s *GormStore) SaveBooking(b domain.Booking) error {
	model := BookingModel{
		ID:          b.ID,
		ServiceName: b.ServiceName,
		ClientName:  b.ClientName,
		Phone:       b.Phone,
		Email:       b.Email,
		Time:        b.Time,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"service_name", "client_name", "phone", "email", "time", "updated_at"}),
	}).Create(&model).Error
}

func (s *GormStore) GetBooking(id string) (domain.Booking, bool, error) {
	var model BookingModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Booking{}, false, nil
		}
		return domain.Booking{}, false, err
	}
	return bookingFromModel(model), true, nil
}

func (s *GormStore) ListBookings() ([]domain.Booking, error) {
	var models []BookingModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		res = append(res, bookingFromModel(m))
	}
	return res, nil
}

func (s *GormStore) DeleteBooking(id string) (bool, error) {
	res := s.db.Delete(&BookingModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func bookingFromModel(m BookingModel) domain.Booking {
	return domain.Booking{
		ID:          m.ID,
		ServiceName: m.ServiceName,
		ClientName:  m.ClientName,
		Phone:       m.Phone,
		Email:       m.Email,
		Time:        m.Time,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// directors

func (s *GormStore) SaveDirector(d domain.Director) error {
	model := DirectorModel{
		ID:        d.ID,
		Name:      d.Name,
		Position:  string(d.Position),
		CreatedAt: d.CreatedAt,
	}
	return s.db.Create(&model).Error
}

func (s *GormStore) ListDirectors() ([]domain.Director, error) {
	var models []DirectorModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Director, 0, len(models))
	for _, m := range models {
		res = append(res, domain.Director{
			ID:        m.ID,
			Name:      m.Name,
			Position:  domain.DirectorPosition(m.Position),
			CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

func (s *GormStore) DeleteDirector(id string) (bool, error) {
	res := s.db.Delete(&DirectorModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
