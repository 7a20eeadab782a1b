package dto

import "time"

// AssignmentResponse là DTO cho nhiệm vụ dọn phòng
type AssignmentResponse struct {
	ID          uint       `json:"id"`
	RoomKey     string     `json:"roomKey"`
	StaffID     uint       `json:"staffId"`
	Status      int        `json:"status"`
	AssignedAt  time.Time  `json:"assignedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// QueueResponse là DTO cho hàng đợi luân phiên của nhân viên
type QueueResponse struct {
	StaffIDs []uint `json:"staffIds"`
}

// DutyRequest là DTO cho request lên ca / xuống ca
type DutyRequest struct {
	OnDuty *bool `json:"onDuty" binding:"required"`
}
