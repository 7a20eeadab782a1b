package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomId    uint           `json:"id" gorm:"primaryKey"`
	RoomKey   string         `json:"roomKey" gorm:"uniqueIndex"`
	Type      string         `json:"type"`
	Number    int            `json:"number"`
	Floor     int            `json:"floor"`
	Amenities pq.StringArray `json:"amenities" gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Status    *RoomStatus    `json:"status,omitempty" gorm:"foreignKey:RoomID"`
}

// DeriveKey sinh roomKey từ loại phòng và số phòng, ví dụ "DELUXE-101"
func (r *Room) DeriveKey() string {
	return fmt.Sprintf("%s-%d", strings.ToUpper(r.Type), r.Number)
}
