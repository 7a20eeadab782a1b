package dto

import "time"

// HistoryEntryResponse là DTO cho một dòng audit log trạng thái phòng
type HistoryEntryResponse struct {
	ID           uint      `json:"id"`
	RoomKey      string    `json:"roomKey"`
	Occupancy    int       `json:"occupancy"`
	Reservation  int       `json:"reservation"`
	Housekeeping int       `json:"housekeeping"`
	Maintenance  int       `json:"maintenance"`
	Timestamp    time.Time `json:"timestamp"`
	ActorID      string    `json:"actorId"`
}
