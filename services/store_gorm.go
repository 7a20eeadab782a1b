package services

import (
	"errors"

	"roomops/constants"
	apperrors "roomops/errors"
	"roomops/models"

	"gorm.io/gorm"
)

// gormRoomStatusStore là RoomStatusStore trên Postgres
type gormRoomStatusStore struct {
	db *gorm.DB
}

// NewGormRoomStatusStore tạo RoomStatusStore trên gorm
func NewGormRoomStatusStore(db *gorm.DB) RoomStatusStore {
	return &gormRoomStatusStore{db: db}
}

func (s *gormRoomStatusStore) GetByKey(roomKey string) (*models.RoomStatus, error) {
	var status models.RoomStatus
	if err := s.db.Where("room_key = ?", roomKey).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (s *gormRoomStatusStore) List() ([]models.RoomStatus, error) {
	var statuses []models.RoomStatus
	if err := s.db.Order("room_key").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (s *gormRoomStatusStore) CompareAndSave(status *models.RoomStatus, entry *models.HistoryEntry) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Compare-and-set theo version để tránh lost update giữa hai writer
		result := tx.Model(&models.RoomStatus{}).
			Where("room_key = ? AND version = ?", status.RoomKey, status.Version).
			Updates(map[string]interface{}{
				"occupancy":    status.Occupancy,
				"reservation":  status.Reservation,
				"housekeeping": status.Housekeeping,
				"maintenance":  status.Maintenance,
				"last_updated": status.LastUpdated,
				"updated_by":   status.UpdatedBy,
				"version":      status.Version + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrStatusConflict
		}
		// History ghi trong cùng transaction nên thứ tự theo thứ tự commit
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		status.Version++
		return nil
	})
}

// gormBookingStore là BookingStore trên Postgres
type gormBookingStore struct {
	db *gorm.DB
}

// NewGormBookingStore tạo BookingStore trên gorm
func NewGormBookingStore(db *gorm.DB) BookingStore {
	return &gormBookingStore{db: db}
}

func (s *gormBookingStore) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *gormBookingStore) Save(booking *models.Booking) error {
	return s.db.Save(booking).Error
}

func (s *gormBookingStore) Delete(id uint) error {
	return s.db.Delete(&models.Booking{}, id).Error
}

// gormAssignmentStore là AssignmentStore trên Postgres
type gormAssignmentStore struct {
	db *gorm.DB
}

// NewGormAssignmentStore tạo AssignmentStore trên gorm
func NewGormAssignmentStore(db *gorm.DB) AssignmentStore {
	return &gormAssignmentStore{db: db}
}

func (s *gormAssignmentStore) LatestByRoom(roomID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := s.db.Where("room_id = ?", roomID).Order("id DESC").First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *gormAssignmentStore) CurrentByRoom(roomID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := s.db.Where("room_id = ? AND status <> ?", roomID, constants.AssignmentStatusCompleted).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *gormAssignmentStore) Create(assignment *models.Assignment) error {
	return s.db.Create(assignment).Error
}

func (s *gormAssignmentStore) Save(assignment *models.Assignment) error {
	return s.db.Save(assignment).Error
}

func (s *gormAssignmentStore) Delete(id uint) error {
	return s.db.Delete(&models.Assignment{}, id).Error
}

func (s *gormAssignmentStore) Current() ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.Where("status <> ?", constants.AssignmentStatusCompleted).
		Order("assigned_at").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *gormAssignmentStore) ByStaff(staffID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.Where("staff_id = ?", staffID).Order("assigned_at DESC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// gormStaffQueueStore là StaffQueueStore trên Postgres
type gormStaffQueueStore struct {
	db *gorm.DB
}

// NewGormStaffQueueStore tạo StaffQueueStore trên gorm
func NewGormStaffQueueStore(db *gorm.DB) StaffQueueStore {
	return &gormStaffQueueStore{db: db}
}

func (s *gormStaffQueueStore) All() ([]uint, error) {
	var entries []models.StaffQueueEntry
	if err := s.db.Order("position").Find(&entries).Error; err != nil {
		return nil, err
	}
	staffIDs := make([]uint, 0, len(entries))
	for _, entry := range entries {
		staffIDs = append(staffIDs, entry.StaffID)
	}
	return staffIDs, nil
}

func (s *gormStaffQueueStore) Rotate() (uint, error) {
	var staffID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var front models.StaffQueueEntry
		if err := tx.Order("position").First(&front).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNoStaffAvailable
			}
			return err
		}
		var maxPosition int64
		if err := tx.Model(&models.StaffQueueEntry{}).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error; err != nil {
			return err
		}
		// Pop đầu hàng và push xuống cuối trong cùng giao dịch
		if err := tx.Model(&front).Update("position", maxPosition+1).Error; err != nil {
			return err
		}
		staffID = front.StaffID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return staffID, nil
}

func (s *gormStaffQueueStore) Add(staffID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.StaffQueueEntry
		err := tx.Where("staff_id = ?", staffID).First(&existing).Error
		if err == nil {
			// Đã có mặt trong hàng đợi, giữ invariant không trùng lặp
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		var maxPosition int64
		if err := tx.Model(&models.StaffQueueEntry{}).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error; err != nil {
			return err
		}
		entry := models.StaffQueueEntry{StaffID: staffID, Position: maxPosition + 1}
		return tx.Create(&entry).Error
	})
}

func (s *gormStaffQueueStore) Remove(staffID uint) error {
	return s.db.Where("staff_id = ?", staffID).Delete(&models.StaffQueueEntry{}).Error
}

func (s *gormStaffQueueStore) Position(staffID uint) (int, error) {
	staffIDs, err := s.All()
	if err != nil {
		return -1, err
	}
	for i, id := range staffIDs {
		if id == staffID {
			return i, nil
		}
	}
	return -1, nil
}

// gormHistoryStore là HistoryStore trên Postgres
type gormHistoryStore struct {
	db *gorm.DB
}

// NewGormHistoryStore tạo HistoryStore trên gorm
func NewGormHistoryStore(db *gorm.DB) HistoryStore {
	return &gormHistoryStore{db: db}
}

func (s *gormHistoryStore) List(roomKey string, page, limit int) ([]models.HistoryEntry, int64, error) {
	var entries []models.HistoryEntry
	var total int64

	tx := s.db.Model(&models.HistoryEntry{})
	if roomKey != "" {
		tx = tx.Where("room_key = ?", roomKey)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("timestamp DESC, id DESC").
		Offset(page * limit).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
