package models

import "time"

// StaffQueueEntry là một vị trí trong hàng đợi luân phiên dọn phòng.
// Mỗi nhân viên xuất hiện tối đa một lần; position tăng dần theo thứ tự.
type StaffQueueEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StaffID   uint      `json:"staffId" gorm:"uniqueIndex"`
	Position  int64     `json:"position" gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
