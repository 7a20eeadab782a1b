package models

import "time"

// GuestRecord là hồ sơ khách gắn với một booking đã được xác nhận
type GuestRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BookingID  uint      `json:"bookingId" gorm:"uniqueIndex"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail,omitempty"`
	GuestPhone string    `json:"guestPhone"`
	Status     int       `json:"status" gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
