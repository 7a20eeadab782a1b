package services

import (
	"errors"
	"time"

	apperrors "roomops/errors"
	"roomops/models"
	"roomops/services/logger"
	"roomops/validator"
)

// Số lần thử lại khi compare-and-set bị xung đột version
const applyMaxRetries = 5

// RoomStatusApplier là cửa vào duy nhất cho mọi thay đổi trạng thái phòng.
// Booking flow, staff flow và manual override đều đi qua đây để không
// bypass được invariant và audit log.
type RoomStatusApplier interface {
	Apply(roomKey, axis string, value int, actorID string) (*models.RoomStatus, error)
	ApplySet(roomKey string, changes map[string]int, actorID string) (*models.RoomStatus, error)
	Get(roomKey string) (*models.RoomStatus, error)
	List() ([]models.RoomStatus, error)
}

// RoomStatusService quản lý trạng thái tổng hợp của phòng trên bốn trục
type RoomStatusService struct {
	store  RoomStatusStore
	logger logger.Logger
}

// NewRoomStatusService tạo instance mới của RoomStatusService
func NewRoomStatusService(store RoomStatusStore, l logger.Logger) *RoomStatusService {
	return &RoomStatusService{
		store:  store,
		logger: l,
	}
}

// Apply cập nhật một trục trạng thái của phòng, các trục khác giữ nguyên
func (s *RoomStatusService) Apply(roomKey, axis string, value int, actorID string) (*models.RoomStatus, error) {
	return s.ApplySet(roomKey, map[string]int{axis: value}, actorID)
}

// ApplySet cập nhật một hoặc nhiều trục trạng thái trong một thao tác
// nguyên tử và ghi đúng một history entry cho thay đổi đó.
// Không kiểm tra tính hợp lệ chéo giữa các trục; đó là trách nhiệm caller.
func (s *RoomStatusService) ApplySet(roomKey string, changes map[string]int, actorID string) (*models.RoomStatus, error) {
	if len(changes) == 0 {
		return s.Get(roomKey)
	}
	for axis, value := range changes {
		if err := validator.ValidateAxisValue(axis, value); err != nil {
			return nil, err
		}
	}

	for attempt := 0; attempt < applyMaxRetries; attempt++ {
		status, err := s.store.GetByKey(roomKey)
		if err != nil {
			return nil, err
		}
		for axis, value := range changes {
			status.SetAxisValue(axis, value)
		}
		now := time.Now()
		status.LastUpdated = now
		status.UpdatedBy = actorID

		entry := &models.HistoryEntry{
			RoomKey:      roomKey,
			Occupancy:    status.Occupancy,
			Reservation:  status.Reservation,
			Housekeeping: status.Housekeeping,
			Maintenance:  status.Maintenance,
			Timestamp:    now,
			ActorID:      actorID,
		}
		err = s.store.CompareAndSave(status, entry)
		if err == nil {
			s.logger.Debug("Cập nhật trạng thái phòng %s bởi %s", roomKey, actorID)
			return status, nil
		}
		if !errors.Is(err, apperrors.ErrStatusConflict) {
			return nil, err
		}
		// Version đã đổi bởi writer khác, đọc lại và thử lại
	}
	s.logger.Error("Cập nhật trạng thái phòng %s thất bại sau %d lần thử", roomKey, applyMaxRetries)
	return nil, apperrors.ErrStatusConflict
}

// Get đọc trạng thái hiện tại của phòng theo roomKey
func (s *RoomStatusService) Get(roomKey string) (*models.RoomStatus, error) {
	return s.store.GetByKey(roomKey)
}

// List đọc trạng thái của tất cả các phòng
func (s *RoomStatusService) List() ([]models.RoomStatus, error) {
	return s.store.List()
}

// ListBookable trả về roomKey của các phòng có thể nhận đặt ngay:
// Vacant + NotReserved + Clean + Operational
func (s *RoomStatusService) ListBookable() ([]string, error) {
	statuses, err := s.store.List()
	if err != nil {
		return nil, err
	}
	var roomKeys []string
	for _, status := range statuses {
		if status.BookableNow() {
			roomKeys = append(roomKeys, status.RoomKey)
		}
	}
	return roomKeys, nil
}
