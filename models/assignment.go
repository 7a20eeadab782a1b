package models

import "time"

// Assignment là một nhiệm vụ dọn phòng gắn với một phòng và một nhân viên.
// Mỗi phòng có tối đa một assignment chưa Completed tại mọi thời điểm.
type Assignment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	RoomID      uint       `json:"roomId" gorm:"index"`
	RoomKey     string     `json:"roomKey" gorm:"index"`
	StaffID     uint       `json:"staffId" gorm:"index"`
	Status      int        `json:"status" gorm:"default:0"`
	AssignedAt  time.Time  `json:"assignedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
