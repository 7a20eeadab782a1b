package models

import "time"

// HistoryEntry là bản ghi audit bất biến cho mỗi thay đổi trạng thái phòng.
// Ghi trong cùng transaction với thay đổi trạng thái nên thứ tự theo commit.
type HistoryEntry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RoomKey      string    `json:"roomKey" gorm:"index"`
	Occupancy    int       `json:"occupancy"`
	Reservation  int       `json:"reservation"`
	Housekeeping int       `json:"housekeeping"`
	Maintenance  int       `json:"maintenance"`
	Timestamp    time.Time `json:"timestamp" gorm:"index"`
	ActorID      string    `json:"actorId"`
}
