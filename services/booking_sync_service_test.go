package services

import (
	"errors"
	"testing"

	"roomops/constants"
	apperrors "roomops/errors"
	"roomops/models"
	"roomops/services/logger"
)

type syncFixture struct {
	service     *BookingSyncService
	bookings    *memBookingStore
	status      *RoomStatusService
	statusStore *memRoomStatusStore
	queueSvc    *AssignmentQueueService
	queue       *memStaffQueueStore
	assignments *memAssignmentStore
	guests      *memGuestService
}

func newSyncFixture() *syncFixture {
	l := logger.NewDefaultLogger(logger.ErrorLevel)
	statusStore := newMemRoomStatusStore()
	statusService := NewRoomStatusService(statusStore, l)
	assignments := newMemAssignmentStore()
	queue := newMemStaffQueueStore()
	queueService := NewAssignmentQueueService(assignments, queue, statusService, nil, l)
	bookings := newMemBookingStore()
	guests := newMemGuestService()
	return &syncFixture{
		service:     NewBookingSyncService(bookings, statusService, queueService, guests, l),
		bookings:    bookings,
		status:      statusService,
		statusStore: statusStore,
		queueSvc:    queueService,
		queue:       queue,
		assignments: assignments,
		guests:      guests,
	}
}

func (f *syncFixture) seedPendingBooking(roomID uint, roomKey string) *models.Booking {
	f.statusStore.seed(roomID, roomKey)
	return f.bookings.add(&models.Booking{
		RoomID:    roomID,
		RoomKey:   roomKey,
		Status:    constants.BookingStatusPending,
		GuestName: "Nguyen Van A",
	})
}

func (f *syncFixture) seedActiveBooking(roomID uint, roomKey string) *models.Booking {
	booking := f.seedPendingBooking(roomID, roomKey)
	if _, err := f.service.Accept(booking.ID, "user:1"); err != nil {
		panic(err)
	}
	updated, _ := f.bookings.GetByID(booking.ID)
	return updated
}

func TestAcceptBookingReservesRoom(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedPendingBooking(1, "DELUXE-101")

	accepted, err := f.service.Accept(booking.ID, "user:1")
	if err != nil {
		t.Fatalf("Accept thất bại: %v", err)
	}
	if accepted.Status != constants.BookingStatusActive {
		t.Errorf("booking phải Active, got %d", accepted.Status)
	}

	status, _ := f.status.Get("DELUXE-101")
	if status.Reservation != constants.ReservationReserved || status.Occupancy != constants.OccupancyOccupied {
		t.Errorf("phòng phải Reserved + Occupied, got %+v", status)
	}
	if status.UpdatedBy != "booking:1" {
		t.Errorf("thay đổi trạng thái phải mang tham chiếu booking, got %q", status.UpdatedBy)
	}

	if f.guests.active[booking.ID] != constants.GuestStatusActive {
		t.Error("hồ sơ khách phải được kích hoạt")
	}
}

func TestAcceptTwiceIllegal(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedActiveBooking(1, "DELUXE-101")

	_, err := f.service.Accept(booking.ID, "user:1")
	if !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("accept lần hai phải bị từ chối, got %v", err)
	}
}

func TestDeclinePendingDeletesBooking(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedPendingBooking(1, "DELUXE-101")

	if err := f.service.Decline(booking.ID, "user:1"); err != nil {
		t.Fatalf("Decline thất bại: %v", err)
	}
	if _, err := f.bookings.GetByID(booking.ID); !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Error("booking bị từ chối phải bị xóa")
	}

	// Phòng chưa từng được giữ nên không có gì thay đổi
	status, _ := f.status.Get("DELUXE-101")
	if !status.BookableNow() {
		t.Errorf("trạng thái phòng phải giữ nguyên sau decline, got %+v", status)
	}
	if len(f.statusStore.history) != 0 {
		t.Errorf("decline không được ghi history, got %d entries", len(f.statusStore.history))
	}
}

func TestDeclineActiveIllegal(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedActiveBooking(1, "DELUXE-101")

	if err := f.service.Decline(booking.ID, "user:1"); !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("decline booking Active phải bị từ chối, got %v", err)
	}
}

func TestCheckOutReleasesRoomAndAssignsCleaning(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedActiveBooking(1, "DELUXE-101")
	f.queue.Add(11)

	historyBefore := len(f.statusStore.history)

	assignment, err := f.service.CheckOut(booking.ID, "user:1")
	if err != nil {
		t.Fatalf("CheckOut thất bại: %v", err)
	}
	if assignment == nil || assignment.StaffID != 11 {
		t.Fatalf("checkout phải giao nhiệm vụ dọn cho nhân viên 11, got %+v", assignment)
	}

	updated, _ := f.bookings.GetByID(booking.ID)
	if updated.Status != constants.BookingStatusCheckedOut {
		t.Errorf("booking phải CheckedOut, got %d", updated.Status)
	}

	status, _ := f.status.Get("DELUXE-101")
	if status.Occupancy != constants.OccupancyVacant ||
		status.Reservation != constants.ReservationNotReserved ||
		status.Housekeeping != constants.HousekeepingDirty {
		t.Errorf("phòng phải Vacant + NotReserved + Dirty, got %+v", status)
	}

	// Ba trục đổi một lượt vẫn chỉ sinh đúng một history entry
	if got := len(f.statusStore.history) - historyBefore; got != 1 {
		t.Errorf("checkout ghi %d history entry, want 1", got)
	}

	if f.guests.active[booking.ID] != constants.GuestStatusCheckedOut {
		t.Error("hồ sơ khách phải được đóng lại")
	}
}

func TestCheckOutWithEmptyQueueLeavesRoomDirty(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedActiveBooking(1, "DELUXE-101")

	assignment, err := f.service.CheckOut(booking.ID, "user:1")
	if err != nil {
		t.Fatalf("hàng đợi rỗng không được làm checkout thất bại: %v", err)
	}
	if assignment != nil {
		t.Errorf("không có nhân viên thì không có nhiệm vụ, got %+v", assignment)
	}

	status, _ := f.status.Get("DELUXE-101")
	if status.Housekeeping != constants.HousekeepingDirty {
		t.Errorf("phòng phải giữ Dirty chờ lần quét sau, got %d", status.Housekeeping)
	}
}

func TestCheckOutPendingIllegal(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedPendingBooking(1, "DELUXE-101")

	_, err := f.service.CheckOut(booking.ID, "user:1")
	if !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("checkout booking Pending phải bị từ chối, got %v", err)
	}
}

func TestAcceptCompensatesOnGuestFailure(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedPendingBooking(1, "DELUXE-101")
	f.guests.activateErr = errors.New("guest store down")

	_, err := f.service.Accept(booking.ID, "user:1")
	if !errors.Is(err, apperrors.ErrTransactionFailed) {
		t.Fatalf("lỗi giữa chừng phải trả ErrTransactionFailed, got %v", err)
	}

	// Không để lại trạng thái nửa vời
	reverted, _ := f.bookings.GetByID(booking.ID)
	if reverted.Status != constants.BookingStatusPending {
		t.Errorf("booking phải được hoàn tác về Pending, got %d", reverted.Status)
	}
	status, _ := f.status.Get("DELUXE-101")
	if !status.BookableNow() {
		t.Errorf("trạng thái phòng phải được hoàn tác, got %+v", status)
	}
}

func TestCheckOutCompensatesOnSaveFailure(t *testing.T) {
	f := newSyncFixture()
	booking := f.seedActiveBooking(1, "DELUXE-101")
	f.bookings.saveErr = errors.New("db down")

	_, err := f.service.CheckOut(booking.ID, "user:1")
	if !errors.Is(err, apperrors.ErrTransactionFailed) {
		t.Fatalf("lỗi lưu booking phải trả ErrTransactionFailed, got %v", err)
	}

	f.bookings.saveErr = nil
	unchanged, _ := f.bookings.GetByID(booking.ID)
	if unchanged.Status != constants.BookingStatusActive {
		t.Errorf("booking phải còn Active, got %d", unchanged.Status)
	}
	status, _ := f.status.Get("DELUXE-101")
	if status.Occupancy != constants.OccupancyOccupied || status.Reservation != constants.ReservationReserved {
		t.Errorf("trạng thái phòng phải được hoàn tác về Occupied + Reserved, got %+v", status)
	}
}
