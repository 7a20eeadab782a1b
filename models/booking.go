package models

import "time"

type Booking struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomID     uint      `json:"roomId" gorm:"index"`
	RoomKey    string    `json:"roomKey" gorm:"index"`
	Room       *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Status     int       `json:"status" gorm:"default:0"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail,omitempty"`
	GuestPhone string    `json:"guestPhone"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
