package services

import (
	"errors"

	"roomops/constants"
	"roomops/models"

	"gorm.io/gorm"
)

// GuestService quản lý hồ sơ khách gắn với booking
type GuestService interface {
	ActivateGuest(bookingID uint, name, email, phone string) error
	CheckOutGuest(bookingID uint) error
	GetGuestByBooking(bookingID uint) (*models.GuestRecord, error)
}

type guestService struct {
	db *gorm.DB
}

// NewGuestService tạo instance mới của GuestService
func NewGuestService(db *gorm.DB) GuestService {
	return &guestService{db: db}
}

// ActivateGuest mở hồ sơ khách khi booking được xác nhận. Gọi lại lần hai
// cho cùng booking chỉ cập nhật thông tin liên hệ, không tạo bản ghi mới.
func (s *guestService) ActivateGuest(bookingID uint, name, email, phone string) error {
	var record models.GuestRecord
	err := s.db.Where("booking_id = ?", bookingID).First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		record = models.GuestRecord{
			BookingID:  bookingID,
			GuestName:  name,
			GuestEmail: email,
			GuestPhone: phone,
			Status:     constants.GuestStatusActive,
		}
		return s.db.Create(&record).Error
	}
	record.GuestName = name
	record.GuestEmail = email
	record.GuestPhone = phone
	record.Status = constants.GuestStatusActive
	return s.db.Save(&record).Error
}

// CheckOutGuest đóng hồ sơ khách khi booking trả phòng
func (s *guestService) CheckOutGuest(bookingID uint) error {
	return s.db.Model(&models.GuestRecord{}).
		Where("booking_id = ?", bookingID).
		Update("status", constants.GuestStatusCheckedOut).Error
}

// GetGuestByBooking đọc hồ sơ khách theo booking, nil nếu chưa có
func (s *guestService) GetGuestByBooking(bookingID uint) (*models.GuestRecord, error) {
	var record models.GuestRecord
	err := s.db.Where("booking_id = ?", bookingID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
