package services

import "roomops/models"

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryService đọc audit log trạng thái phòng
type HistoryService struct {
	store HistoryStore
}

// NewHistoryService tạo instance mới của HistoryService
func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Feed trả về lịch sử thay đổi trạng thái, mới nhất trước. roomKey rỗng
// nghĩa là tất cả các phòng.
func (s *HistoryService) Feed(roomKey string, page, limit int) ([]models.HistoryEntry, int64, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.store.List(roomKey, page, limit)
}
