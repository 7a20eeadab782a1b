package services

import (
	"errors"
	"testing"

	"roomops/constants"
	apperrors "roomops/errors"
	"roomops/services/logger"
)

func newStatusServiceForTest() (*RoomStatusService, *memRoomStatusStore) {
	store := newMemRoomStatusStore()
	return NewRoomStatusService(store, logger.NewDefaultLogger(logger.ErrorLevel)), store
}

func TestApplyUpdatesSingleAxis(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")

	status, err := service.Apply("DELUXE-101", constants.AxisHousekeeping, constants.HousekeepingDirty, "user:7")
	if err != nil {
		t.Fatalf("Apply thất bại: %v", err)
	}
	if status.Housekeeping != constants.HousekeepingDirty {
		t.Errorf("housekeeping = %d, want Dirty", status.Housekeeping)
	}
	if status.Occupancy != constants.OccupancyVacant || status.Reservation != constants.ReservationNotReserved {
		t.Error("các trục khác phải giữ nguyên")
	}
	if status.UpdatedBy != "user:7" {
		t.Errorf("UpdatedBy = %q, want user:7", status.UpdatedBy)
	}
}

func TestApplyRejectsUnknownRoom(t *testing.T) {
	service, _ := newStatusServiceForTest()

	_, err := service.Apply("NOPE-1", constants.AxisOccupancy, constants.OccupancyOccupied, "user:1")
	if !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Errorf("phòng lạ phải trả ErrRoomNotFound, got %v", err)
	}
}

func TestApplyRejectsInvalidAxis(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")

	_, err := service.Apply("DELUXE-101", "temperature", 1, "user:1")
	if !errors.Is(err, apperrors.ErrInvalidAxisValue) {
		t.Errorf("trục lạ phải trả ErrInvalidAxisValue, got %v", err)
	}
	if len(store.history) != 0 {
		t.Error("apply thất bại không được ghi history")
	}
}

func TestApplyRejectsInvalidValue(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")

	_, err := service.Apply("DELUXE-101", constants.AxisOccupancy, 9, "user:1")
	if !errors.Is(err, apperrors.ErrInvalidAxisValue) {
		t.Errorf("giá trị ngoài tập hợp lệ phải trả ErrInvalidAxisValue, got %v", err)
	}
}

func TestApplyAppendsOneHistoryEntry(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")

	if _, err := service.Apply("DELUXE-101", constants.AxisHousekeeping, constants.HousekeepingDirty, "user:1"); err != nil {
		t.Fatalf("Apply thất bại: %v", err)
	}
	if len(store.history) != 1 {
		t.Fatalf("mỗi apply ghi đúng một history entry, got %d", len(store.history))
	}

	entry := store.history[0]
	if entry.RoomKey != "DELUXE-101" || entry.Housekeeping != constants.HousekeepingDirty || entry.ActorID != "user:1" {
		t.Errorf("history entry phải chụp lại trạng thái sau thay đổi: %+v", entry)
	}
}

func TestApplySetMultiAxisOneHistoryEntry(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")

	status, err := service.ApplySet("DELUXE-101", map[string]int{
		constants.AxisOccupancy:    constants.OccupancyVacant,
		constants.AxisReservation:  constants.ReservationNotReserved,
		constants.AxisHousekeeping: constants.HousekeepingDirty,
	}, "booking:5")
	if err != nil {
		t.Fatalf("ApplySet thất bại: %v", err)
	}
	if status.Housekeeping != constants.HousekeepingDirty {
		t.Errorf("housekeeping = %d, want Dirty", status.Housekeeping)
	}
	if len(store.history) != 1 {
		t.Fatalf("thay đổi ba trục một lượt vẫn ghi đúng một history entry, got %d", len(store.history))
	}
}

func TestApplyRetriesOnConflict(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")
	store.conflictsLeft = 2

	status, err := service.Apply("DELUXE-101", constants.AxisMaintenance, constants.MaintenanceUnderMaintenance, "user:1")
	if err != nil {
		t.Fatalf("Apply phải thử lại và thành công sau xung đột tạm thời, got %v", err)
	}
	if status.Maintenance != constants.MaintenanceUnderMaintenance {
		t.Errorf("maintenance = %d, want UnderMaintenance", status.Maintenance)
	}
}

func TestApplyGivesUpAfterRepeatedConflicts(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")
	store.conflictsLeft = applyMaxRetries + 1

	_, err := service.Apply("DELUXE-101", constants.AxisMaintenance, constants.MaintenanceUnderMaintenance, "user:1")
	if !errors.Is(err, apperrors.ErrStatusConflict) {
		t.Errorf("xung đột liên tục phải trả ErrStatusConflict, got %v", err)
	}
}

func TestListBookable(t *testing.T) {
	service, store := newStatusServiceForTest()
	store.seed(1, "DELUXE-101")
	dirty := store.seed(2, "SINGLE-201")
	dirty.Housekeeping = constants.HousekeepingDirty

	roomKeys, err := service.ListBookable()
	if err != nil {
		t.Fatalf("ListBookable thất bại: %v", err)
	}
	if len(roomKeys) != 1 || roomKeys[0] != "DELUXE-101" {
		t.Errorf("chỉ phòng sạch, trống, chưa giữ mới nhận đặt được, got %v", roomKeys)
	}
}
