package models

import (
	"roomops/constants"
	"roomops/errors"
)

// BookingState định nghĩa interface cho các trạng thái booking.
// Chuyển trạng thái hợp lệ: Pending --accept--> Active, Pending --decline--> (xóa),
// Active --checkout--> CheckedOut. Mọi chuyển khác trả về ErrIllegalBookingTransition.
type BookingState interface {
	Accept(booking *Booking) error
	Decline(booking *Booking) error
	CheckOut(booking *Booking) error
}

// PendingBookingState trạng thái chờ xác nhận
type PendingBookingState struct{}

func (s *PendingBookingState) Accept(booking *Booking) error {
	booking.Status = constants.BookingStatusActive
	return nil
}

func (s *PendingBookingState) Decline(booking *Booking) error {
	// Booking chưa xác nhận bị xóa hẳn, caller thực hiện việc xóa
	return nil
}

func (s *PendingBookingState) CheckOut(booking *Booking) error {
	return errors.ErrIllegalBookingTransition
}

// ActiveBookingState trạng thái đang lưu trú
type ActiveBookingState struct{}

func (s *ActiveBookingState) Accept(booking *Booking) error {
	return errors.ErrIllegalBookingTransition
}

func (s *ActiveBookingState) Decline(booking *Booking) error {
	return errors.ErrIllegalBookingTransition
}

func (s *ActiveBookingState) CheckOut(booking *Booking) error {
	booking.Status = constants.BookingStatusCheckedOut
	return nil
}

// CheckedOutBookingState trạng thái đã trả phòng, không chuyển tiếp được nữa
type CheckedOutBookingState struct{}

func (s *CheckedOutBookingState) Accept(booking *Booking) error {
	return errors.ErrIllegalBookingTransition
}

func (s *CheckedOutBookingState) Decline(booking *Booking) error {
	return errors.ErrIllegalBookingTransition
}

func (s *CheckedOutBookingState) CheckOut(booking *Booking) error {
	return errors.ErrIllegalBookingTransition
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingBookingState{}
	case constants.BookingStatusActive:
		return &ActiveBookingState{}
	case constants.BookingStatusCheckedOut:
		return &CheckedOutBookingState{}
	default:
		return &CheckedOutBookingState{}
	}
}
