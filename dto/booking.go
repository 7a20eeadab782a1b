package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	RoomKey    string `json:"roomKey" binding:"required"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone" binding:"required"`
}

// BookingResponse là DTO cho thông tin booking
type BookingResponse struct {
	ID         uint      `json:"id"`
	RoomKey    string    `json:"roomKey"`
	Status     int       `json:"status"`
	GuestName  string    `json:"guestName"`
	GuestPhone string    `json:"guestPhone"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
