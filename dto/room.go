package dto

import "time"

// CreateRoomRequest là DTO cho request tạo room
type CreateRoomRequest struct {
	Type      string   `json:"type" binding:"required"`
	Number    int      `json:"number" binding:"required"`
	Floor     int      `json:"floor"`
	Amenities []string `json:"amenities"`
}

// RoomStatusRequest là DTO cho request cập nhật một trục trạng thái
type RoomStatusRequest struct {
	Axis  string `json:"axis" binding:"required"`
	Value *int   `json:"value" binding:"required"`
}

// RoomStatusResponse là DTO trạng thái tổng hợp của một phòng
type RoomStatusResponse struct {
	RoomKey      string    `json:"roomKey"`
	Occupancy    int       `json:"occupancy"`
	Reservation  int       `json:"reservation"`
	Housekeeping int       `json:"housekeeping"`
	Maintenance  int       `json:"maintenance"`
	Bookable     bool      `json:"bookable"`
	LastUpdated  time.Time `json:"lastUpdated"`
	UpdatedBy    string    `json:"updatedBy"`
}

// RoomResponse là DTO cho danh sách phòng
type RoomResponse struct {
	RoomId    uint                `json:"id"`
	RoomKey   string              `json:"roomKey"`
	Type      string              `json:"type"`
	Number    int                 `json:"number"`
	Floor     int                 `json:"floor"`
	Amenities []string            `json:"amenities"`
	Status    *RoomStatusResponse `json:"status,omitempty"`
}

// ScoredRoom gắn điểm phù hợp cho kết quả tìm kiếm gần đúng
type ScoredRoom struct {
	Room  RoomResponse `json:"room"`
	Score int          `json:"score"`
}
