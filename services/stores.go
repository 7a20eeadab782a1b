package services

import "roomops/models"

// RoomStatusStore trừu tượng hóa nơi lưu trạng thái phòng và history log.
// Mọi thay đổi trạng thái đều đi qua CompareAndSave để giữ invariant và audit.
type RoomStatusStore interface {
	GetByKey(roomKey string) (*models.RoomStatus, error)
	List() ([]models.RoomStatus, error)
	// CompareAndSave ghi status kèm history entry trong cùng một giao dịch.
	// Trả về errors.ErrStatusConflict nếu version trong store đã thay đổi
	// so với version đọc ra trước đó.
	CompareAndSave(status *models.RoomStatus, entry *models.HistoryEntry) error
}

// BookingStore trừu tượng hóa nơi lưu booking
type BookingStore interface {
	GetByID(id uint) (*models.Booking, error)
	Save(booking *models.Booking) error
	Delete(id uint) error
}

// AssignmentStore trừu tượng hóa nơi lưu nhiệm vụ dọn phòng
type AssignmentStore interface {
	// LatestByRoom trả về assignment mới nhất của phòng, kể cả đã Completed.
	// Trả về nil nếu phòng chưa từng có assignment.
	LatestByRoom(roomID uint) (*models.Assignment, error)
	// CurrentByRoom trả về assignment chưa Completed của phòng; nil nếu không có
	CurrentByRoom(roomID uint) (*models.Assignment, error)
	Create(assignment *models.Assignment) error
	Save(assignment *models.Assignment) error
	Delete(id uint) error
	Current() ([]models.Assignment, error)
	ByStaff(staffID uint) ([]models.Assignment, error)
}

// StaffQueueStore trừu tượng hóa hàng đợi luân phiên của nhân viên dọn phòng
type StaffQueueStore interface {
	All() ([]uint, error)
	// Rotate lấy nhân viên đầu hàng và đẩy xuống cuối hàng trong một thao
	// tác nguyên tử; trả về errors.ErrNoStaffAvailable nếu hàng đợi rỗng.
	Rotate() (uint, error)
	// Add thêm nhân viên vào cuối hàng, bỏ qua nếu đã có mặt
	Add(staffID uint) error
	Remove(staffID uint) error
	// Position trả về vị trí trong hàng (0 là đầu hàng), -1 nếu vắng mặt
	Position(staffID uint) (int, error)
}

// HistoryStore đọc audit log, mới nhất trước
type HistoryStore interface {
	List(roomKey string, page, limit int) ([]models.HistoryEntry, int64, error)
}
