package services

import (
	"errors"
	"fmt"

	"roomops/constants"
	apperrors "roomops/errors"
	"roomops/models"
	"roomops/services/logger"
)

// CleaningRequester là phần của Assignment Queue Engine mà booking flow cần:
// checkout luôn phải sinh ra nhiệm vụ dọn phòng
type CleaningRequester interface {
	RequestCleaning(roomKey string) (*models.Assignment, error)
}

// BookingSyncService dịch các sự kiện vòng đời booking (accept / decline /
// check-out) thành các lời gọi Room Status State Machine và hồ sơ khách.
// Các bước multi-write dùng compensating rollback: lỗi ở bước nào thì hoàn
// tác các bước trước đó và trả về ErrTransactionFailed, không để lại
// trạng thái nửa vời.
type BookingSyncService struct {
	bookings BookingStore
	status   RoomStatusApplier
	cleaning CleaningRequester
	guests   GuestService
	logger   logger.Logger
}

// NewBookingSyncService tạo instance mới của BookingSyncService
func NewBookingSyncService(bookings BookingStore, status RoomStatusApplier, cleaning CleaningRequester, guests GuestService, l logger.Logger) *BookingSyncService {
	return &BookingSyncService{
		bookings: bookings,
		status:   status,
		cleaning: cleaning,
		guests:   guests,
		logger:   l,
	}
}

// Accept xác nhận một booking Pending: phòng chuyển Reserved + Occupied,
// booking chuyển Active và hồ sơ khách được kích hoạt
func (s *BookingSyncService) Accept(bookingID uint, actorID string) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	prev, err := s.status.Get(booking.RoomKey)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).Accept(booking); err != nil {
		return nil, err
	}

	// Gắn tham chiếu booking vào thay đổi trạng thái phòng
	actor := fmt.Sprintf("booking:%d", booking.ID)
	if _, err := s.status.ApplySet(booking.RoomKey, map[string]int{
		constants.AxisReservation: constants.ReservationReserved,
		constants.AxisOccupancy:   constants.OccupancyOccupied,
	}, actor); err != nil {
		s.logger.Error("Accept booking %d: cập nhật trạng thái phòng %s thất bại: %v", booking.ID, booking.RoomKey, err)
		return nil, apperrors.ErrTransactionFailed
	}

	if err := s.bookings.Save(booking); err != nil {
		s.logger.Error("Accept booking %d: lưu booking thất bại: %v", booking.ID, err)
		s.revertRoomStatus(booking.RoomKey, prev, actor)
		return nil, apperrors.ErrTransactionFailed
	}

	if err := s.guests.ActivateGuest(booking.ID, booking.GuestName, booking.GuestEmail, booking.GuestPhone); err != nil {
		s.logger.Error("Accept booking %d: kích hoạt hồ sơ khách thất bại: %v", booking.ID, err)
		booking.Status = constants.BookingStatusPending
		if err := s.bookings.Save(booking); err != nil {
			s.logger.Error("Accept booking %d: hoàn tác booking thất bại: %v", booking.ID, err)
		}
		s.revertRoomStatus(booking.RoomKey, prev, actor)
		return nil, apperrors.ErrTransactionFailed
	}

	s.logger.Info("Booking %d được xác nhận cho phòng %s", booking.ID, booking.RoomKey)
	return booking, nil
}

// Decline từ chối một booking Pending: xóa hẳn booking, trạng thái phòng
// giữ nguyên vì phòng chưa từng được giữ cho booking Pending
func (s *BookingSyncService) Decline(bookingID uint, actorID string) error {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return err
	}
	if err := models.GetBookingState(booking.Status).Decline(booking); err != nil {
		return err
	}
	if err := s.bookings.Delete(booking.ID); err != nil {
		return err
	}
	s.logger.Info("Booking %d bị từ chối bởi %s", booking.ID, actorID)
	return nil
}

// CheckOut trả phòng cho một booking Active: booking chuyển CheckedOut,
// hồ sơ khách đóng lại, phòng chuyển Vacant + NotReserved + Dirty và
// nhiệm vụ dọn phòng được tạo ngay, không cần thao tác tay
func (s *BookingSyncService) CheckOut(bookingID uint, actorID string) (*models.Assignment, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	prev, err := s.status.Get(booking.RoomKey)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).CheckOut(booking); err != nil {
		return nil, err
	}

	actor := fmt.Sprintf("booking:%d", booking.ID)
	if _, err := s.status.ApplySet(booking.RoomKey, map[string]int{
		constants.AxisOccupancy:    constants.OccupancyVacant,
		constants.AxisReservation:  constants.ReservationNotReserved,
		constants.AxisHousekeeping: constants.HousekeepingDirty,
	}, actor); err != nil {
		s.logger.Error("CheckOut booking %d: cập nhật trạng thái phòng %s thất bại: %v", booking.ID, booking.RoomKey, err)
		return nil, apperrors.ErrTransactionFailed
	}

	if err := s.bookings.Save(booking); err != nil {
		s.logger.Error("CheckOut booking %d: lưu booking thất bại: %v", booking.ID, err)
		s.revertRoomStatus(booking.RoomKey, prev, actor)
		return nil, apperrors.ErrTransactionFailed
	}

	if err := s.guests.CheckOutGuest(booking.ID); err != nil {
		s.logger.Error("CheckOut booking %d: đóng hồ sơ khách thất bại: %v", booking.ID, err)
		booking.Status = constants.BookingStatusActive
		if err := s.bookings.Save(booking); err != nil {
			s.logger.Error("CheckOut booking %d: hoàn tác booking thất bại: %v", booking.ID, err)
		}
		s.revertRoomStatus(booking.RoomKey, prev, actor)
		return nil, apperrors.ErrTransactionFailed
	}

	// Checkout luôn kéo theo yêu cầu dọn phòng. Hàng đợi rỗng không phải
	// lỗi của checkout: phòng giữ Dirty và cron sweep sẽ thử lại.
	assignment, err := s.cleaning.RequestCleaning(booking.RoomKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoStaffAvailable) {
			s.logger.Warn("Phòng %s chờ dọn: không có nhân viên trong hàng đợi", booking.RoomKey)
		} else {
			s.logger.Error("CheckOut booking %d: tạo nhiệm vụ dọn phòng thất bại: %v", booking.ID, err)
		}
		return nil, nil
	}

	s.logger.Info("Booking %d trả phòng, phòng %s giao cho nhân viên %d dọn", booking.ID, booking.RoomKey, assignment.StaffID)
	return assignment, nil
}

// revertRoomStatus hoàn tác các trục về giá trị trước giao dịch
func (s *BookingSyncService) revertRoomStatus(roomKey string, prev *models.RoomStatus, actorID string) {
	if _, err := s.status.ApplySet(roomKey, map[string]int{
		constants.AxisOccupancy:    prev.Occupancy,
		constants.AxisReservation:  prev.Reservation,
		constants.AxisHousekeeping: prev.Housekeeping,
	}, actorID); err != nil {
		s.logger.Error("Hoàn tác trạng thái phòng %s thất bại: %v", roomKey, err)
	}
}
