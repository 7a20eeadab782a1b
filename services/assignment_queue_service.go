package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"roomops/constants"
	apperrors "roomops/errors"
	"roomops/models"
	"roomops/services/logger"
)

// AssignmentNotifier đẩy sự kiện assignment ra kênh realtime (websocket)
type AssignmentNotifier interface {
	NotifyAssignment(event string, assignment *models.Assignment)
}

// AssignmentQueueService điều phối nhiệm vụ dọn phòng theo hàng đợi luân
// phiên. Mutex bảo vệ cặp thao tác đọc-rồi-ghi trên hàng đợi và assignment
// để hai request đồng thời cho cùng một phòng không xoay hàng đợi hai lần.
type AssignmentQueueService struct {
	mu          sync.Mutex
	assignments AssignmentStore
	queue       StaffQueueStore
	status      RoomStatusApplier
	notifier    AssignmentNotifier
	logger      logger.Logger
}

// NewAssignmentQueueService tạo instance mới của AssignmentQueueService.
// notifier có thể nil khi chạy không có websocket (trong test chẳng hạn).
func NewAssignmentQueueService(assignments AssignmentStore, queue StaffQueueStore, status RoomStatusApplier, notifier AssignmentNotifier, l logger.Logger) *AssignmentQueueService {
	return &AssignmentQueueService{
		assignments: assignments,
		queue:       queue,
		status:      status,
		notifier:    notifier,
		logger:      l,
	}
}

// RequestCleaning yêu cầu dọn một phòng. Nếu phòng đã có nhiệm vụ chưa
// hoàn tất thì trả về nhiệm vụ đó, hàng đợi không xoay. Nếu hàng đợi
// rỗng trả về errors.ErrNoStaffAvailable.
func (s *AssignmentQueueService) RequestCleaning(roomKey string) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestCleaningLocked(roomKey)
}

func (s *AssignmentQueueService) requestCleaningLocked(roomKey string) (*models.Assignment, error) {
	status, err := s.status.Get(roomKey)
	if err != nil {
		return nil, err
	}

	existing, err := s.assignments.CurrentByRoom(status.RoomID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Idempotent: yêu cầu lặp lại không tạo nhiệm vụ mới
		return existing, nil
	}

	staffID, err := s.queue.Rotate()
	if err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		RoomID:     status.RoomID,
		RoomKey:    roomKey,
		StaffID:    staffID,
		Status:     constants.AssignmentStatusAssigned,
		AssignedAt: time.Now(),
	}
	if err := s.assignments.Create(assignment); err != nil {
		return nil, err
	}

	s.logger.Info("Phòng %s giao cho nhân viên %d dọn", roomKey, staffID)
	s.notify("assignment_created", assignment)
	return assignment, nil
}

// StartCleaning đánh dấu nhân viên bắt đầu dọn phòng. Chỉ nhân viên được
// giao mới thao tác được trên nhiệm vụ của mình.
func (s *AssignmentQueueService) StartCleaning(roomKey string, staffID uint) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, err := s.lookupLocked(roomKey)
	if err != nil {
		return nil, err
	}
	if assignment.StaffID != staffID {
		return nil, apperrors.ErrNotOwner
	}
	if err := models.GetAssignmentState(assignment.Status).Start(assignment); err != nil {
		return nil, err
	}
	if err := s.assignments.Save(assignment); err != nil {
		return nil, err
	}

	s.notify("assignment_started", assignment)
	return assignment, nil
}

// CompleteCleaning đánh dấu nhiệm vụ hoàn tất và chuyển trục housekeeping
// của phòng sang Clean. Hoàn tất một nhiệm vụ đã Completed là lỗi chuyển
// trạng thái, không phải not-found.
func (s *AssignmentQueueService) CompleteCleaning(roomKey string, staffID uint) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, err := s.lookupLocked(roomKey)
	if err != nil {
		return nil, err
	}
	if assignment.StaffID != staffID {
		return nil, apperrors.ErrNotOwner
	}
	prevStatus := assignment.Status
	if err := models.GetAssignmentState(assignment.Status).Complete(assignment); err != nil {
		return nil, err
	}
	now := time.Now()
	assignment.CompletedAt = &now
	if err := s.assignments.Save(assignment); err != nil {
		assignment.Status = prevStatus
		assignment.CompletedAt = nil
		return nil, err
	}

	actor := fmt.Sprintf("staff:%d", staffID)
	if _, err := s.status.Apply(roomKey, constants.AxisHousekeeping, constants.HousekeepingClean, actor); err != nil {
		s.logger.Error("Hoàn tất dọn phòng %s: cập nhật trạng thái thất bại: %v", roomKey, err)
		assignment.Status = prevStatus
		assignment.CompletedAt = nil
		if err := s.assignments.Save(assignment); err != nil {
			s.logger.Error("Hoàn tác assignment %d thất bại: %v", assignment.ID, err)
		}
		return nil, apperrors.ErrTransactionFailed
	}

	s.logger.Info("Nhân viên %d dọn xong phòng %s", staffID, roomKey)
	s.notify("assignment_completed", assignment)
	return assignment, nil
}

// EnqueueStaff đưa nhân viên vào cuối hàng đợi khi lên ca. Có thêm người
// là có thêm cơ hội gán các phòng đang chờ dọn nên sweep chạy luôn.
func (s *AssignmentQueueService) EnqueueStaff(staffID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.queue.Add(staffID); err != nil {
		return err
	}
	s.logger.Info("Nhân viên %d vào hàng đợi dọn phòng", staffID)
	if _, err := s.sweepLocked(); err != nil {
		s.logger.Error("Quét phòng chờ dọn sau khi nhân viên %d vào ca thất bại: %v", staffID, err)
	}
	return nil
}

// DequeueStaff rút nhân viên khỏi hàng đợi khi xuống ca. Nhiệm vụ chưa
// hoàn tất của họ bị hủy và các phòng đó được giao lại cho người còn lại.
func (s *AssignmentQueueService) DequeueStaff(staffID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.queue.Remove(staffID); err != nil {
		return err
	}

	assignments, err := s.assignments.ByStaff(staffID)
	if err != nil {
		return err
	}
	var orphanedRoomKeys []string
	for i := range assignments {
		if assignments[i].Status == constants.AssignmentStatusCompleted {
			continue
		}
		if err := s.assignments.Delete(assignments[i].ID); err != nil {
			return err
		}
		orphanedRoomKeys = append(orphanedRoomKeys, assignments[i].RoomKey)
	}

	for _, roomKey := range orphanedRoomKeys {
		if _, err := s.requestCleaningLocked(roomKey); err != nil {
			if errors.Is(err, apperrors.ErrNoStaffAvailable) {
				s.logger.Warn("Phòng %s chờ dọn: hết nhân viên sau khi %d xuống ca", roomKey, staffID)
				continue
			}
			return err
		}
	}

	s.logger.Info("Nhân viên %d rời hàng đợi, %d phòng được giao lại", staffID, len(orphanedRoomKeys))
	return nil
}

// SweepDirtyRooms giao các phòng Dirty chưa có nhiệm vụ cho nhân viên
// trong hàng đợi. Trả về số nhiệm vụ tạo được. Cron gọi định kỳ để các
// phòng checkout lúc hàng đợi rỗng không bị bỏ quên.
func (s *AssignmentQueueService) SweepDirtyRooms() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *AssignmentQueueService) sweepLocked() (int, error) {
	statuses, err := s.status.List()
	if err != nil {
		return 0, err
	}
	created := 0
	for i := range statuses {
		if statuses[i].Housekeeping != constants.HousekeepingDirty {
			continue
		}
		existing, err := s.assignments.CurrentByRoom(statuses[i].RoomID)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		if _, err := s.requestCleaningLocked(statuses[i].RoomKey); err != nil {
			if errors.Is(err, apperrors.ErrNoStaffAvailable) {
				// Hàng đợi cạn, các phòng còn lại chờ lần quét sau
				return created, nil
			}
			return created, err
		}
		created++
	}
	return created, nil
}

// CurrentAssignments liệt kê các nhiệm vụ chưa hoàn tất
func (s *AssignmentQueueService) CurrentAssignments() ([]models.Assignment, error) {
	return s.assignments.Current()
}

// AssignmentsFor liệt kê nhiệm vụ của một nhân viên, mới nhất trước
func (s *AssignmentQueueService) AssignmentsFor(staffID uint) ([]models.Assignment, error) {
	return s.assignments.ByStaff(staffID)
}

// Queue trả về hàng đợi hiện tại theo thứ tự sẽ được gán
func (s *AssignmentQueueService) Queue() ([]uint, error) {
	return s.queue.All()
}

// QueuePosition trả về vị trí của nhân viên trong hàng, -1 nếu vắng mặt
func (s *AssignmentQueueService) QueuePosition(staffID uint) (int, error) {
	return s.queue.Position(staffID)
}

// lookupLocked tìm nhiệm vụ mới nhất của phòng theo roomKey
func (s *AssignmentQueueService) lookupLocked(roomKey string) (*models.Assignment, error) {
	status, err := s.status.Get(roomKey)
	if err != nil {
		return nil, err
	}
	assignment, err := s.assignments.LatestByRoom(status.RoomID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apperrors.ErrAssignmentNotFound
	}
	return assignment, nil
}

func (s *AssignmentQueueService) notify(event string, assignment *models.Assignment) {
	if s.notifier != nil {
		s.notifier.NotifyAssignment(event, assignment)
	}
}
