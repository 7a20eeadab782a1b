package services

import (
	"sort"

	"roomops/constants"
	apperrors "roomops/errors"
	"roomops/models"
)

// Các store in-memory cho test, giữ đúng hợp đồng của bản gorm.

type memRoomStatusStore struct {
	statuses map[string]*models.RoomStatus
	history  []models.HistoryEntry
	// conflictsLeft ép CompareAndSave trả ErrStatusConflict n lần đầu
	conflictsLeft int
}

func newMemRoomStatusStore() *memRoomStatusStore {
	return &memRoomStatusStore{statuses: make(map[string]*models.RoomStatus)}
}

func (s *memRoomStatusStore) seed(roomID uint, roomKey string) *models.RoomStatus {
	status := &models.RoomStatus{
		ID:           roomID,
		RoomID:       roomID,
		RoomKey:      roomKey,
		Occupancy:    constants.OccupancyVacant,
		Reservation:  constants.ReservationNotReserved,
		Housekeeping: constants.HousekeepingClean,
		Maintenance:  constants.MaintenanceOperational,
	}
	s.statuses[roomKey] = status
	return status
}

func (s *memRoomStatusStore) GetByKey(roomKey string) (*models.RoomStatus, error) {
	status, ok := s.statuses[roomKey]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	copied := *status
	return &copied, nil
}

func (s *memRoomStatusStore) List() ([]models.RoomStatus, error) {
	keys := make([]string, 0, len(s.statuses))
	for key := range s.statuses {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	statuses := make([]models.RoomStatus, 0, len(keys))
	for _, key := range keys {
		statuses = append(statuses, *s.statuses[key])
	}
	return statuses, nil
}

func (s *memRoomStatusStore) CompareAndSave(status *models.RoomStatus, entry *models.HistoryEntry) error {
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		return apperrors.ErrStatusConflict
	}
	current, ok := s.statuses[status.RoomKey]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if current.Version != status.Version {
		return apperrors.ErrStatusConflict
	}
	copied := *status
	copied.Version++
	s.statuses[status.RoomKey] = &copied
	status.Version++

	entry.ID = uint(len(s.history) + 1)
	s.history = append(s.history, *entry)
	return nil
}

type memBookingStore struct {
	bookings map[uint]*models.Booking
	nextID   uint
	saveErr  error
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{bookings: make(map[uint]*models.Booking), nextID: 1}
}

func (s *memBookingStore) add(booking *models.Booking) *models.Booking {
	if booking.ID == 0 {
		booking.ID = s.nextID
		s.nextID++
	}
	copied := *booking
	s.bookings[booking.ID] = &copied
	return booking
}

func (s *memBookingStore) GetByID(id uint) (*models.Booking, error) {
	booking, ok := s.bookings[id]
	if !ok {
		return nil, apperrors.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (s *memBookingStore) Save(booking *models.Booking) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *booking
	s.bookings[booking.ID] = &copied
	return nil
}

func (s *memBookingStore) Delete(id uint) error {
	delete(s.bookings, id)
	return nil
}

type memAssignmentStore struct {
	assignments map[uint]*models.Assignment
	nextID      uint
}

func newMemAssignmentStore() *memAssignmentStore {
	return &memAssignmentStore{assignments: make(map[uint]*models.Assignment), nextID: 1}
}

func (s *memAssignmentStore) sortedIDs() []uint {
	ids := make([]uint, 0, len(s.assignments))
	for id := range s.assignments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *memAssignmentStore) LatestByRoom(roomID uint) (*models.Assignment, error) {
	ids := s.sortedIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		assignment := s.assignments[ids[i]]
		if assignment.RoomID == roomID {
			copied := *assignment
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memAssignmentStore) CurrentByRoom(roomID uint) (*models.Assignment, error) {
	for _, id := range s.sortedIDs() {
		assignment := s.assignments[id]
		if assignment.RoomID == roomID && assignment.Status != constants.AssignmentStatusCompleted {
			copied := *assignment
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memAssignmentStore) Create(assignment *models.Assignment) error {
	assignment.ID = s.nextID
	s.nextID++
	copied := *assignment
	s.assignments[assignment.ID] = &copied
	return nil
}

func (s *memAssignmentStore) Save(assignment *models.Assignment) error {
	copied := *assignment
	s.assignments[assignment.ID] = &copied
	return nil
}

func (s *memAssignmentStore) Delete(id uint) error {
	delete(s.assignments, id)
	return nil
}

func (s *memAssignmentStore) Current() ([]models.Assignment, error) {
	var result []models.Assignment
	for _, id := range s.sortedIDs() {
		assignment := s.assignments[id]
		if assignment.Status != constants.AssignmentStatusCompleted {
			result = append(result, *assignment)
		}
	}
	return result, nil
}

func (s *memAssignmentStore) ByStaff(staffID uint) ([]models.Assignment, error) {
	var result []models.Assignment
	for _, id := range s.sortedIDs() {
		assignment := s.assignments[id]
		if assignment.StaffID == staffID {
			result = append(result, *assignment)
		}
	}
	return result, nil
}

type memStaffQueueStore struct {
	queue []uint
}

func newMemStaffQueueStore() *memStaffQueueStore {
	return &memStaffQueueStore{}
}

func (s *memStaffQueueStore) All() ([]uint, error) {
	return append([]uint(nil), s.queue...), nil
}

func (s *memStaffQueueStore) Rotate() (uint, error) {
	if len(s.queue) == 0 {
		return 0, apperrors.ErrNoStaffAvailable
	}
	front := s.queue[0]
	s.queue = append(s.queue[1:], front)
	return front, nil
}

func (s *memStaffQueueStore) Add(staffID uint) error {
	for _, id := range s.queue {
		if id == staffID {
			return nil
		}
	}
	s.queue = append(s.queue, staffID)
	return nil
}

func (s *memStaffQueueStore) Remove(staffID uint) error {
	for i, id := range s.queue {
		if id == staffID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memStaffQueueStore) Position(staffID uint) (int, error) {
	for i, id := range s.queue {
		if id == staffID {
			return i, nil
		}
	}
	return -1, nil
}

type memGuestService struct {
	active      map[uint]int
	activateErr error
}

func newMemGuestService() *memGuestService {
	return &memGuestService{active: make(map[uint]int)}
}

func (s *memGuestService) ActivateGuest(bookingID uint, name, email, phone string) error {
	if s.activateErr != nil {
		return s.activateErr
	}
	s.active[bookingID] = constants.GuestStatusActive
	return nil
}

func (s *memGuestService) CheckOutGuest(bookingID uint) error {
	s.active[bookingID] = constants.GuestStatusCheckedOut
	return nil
}

func (s *memGuestService) GetGuestByBooking(bookingID uint) (*models.GuestRecord, error) {
	status, ok := s.active[bookingID]
	if !ok {
		return nil, nil
	}
	return &models.GuestRecord{BookingID: bookingID, Status: status}, nil
}
