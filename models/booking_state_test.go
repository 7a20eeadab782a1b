package models

import (
	"errors"
	"testing"

	"roomops/constants"
	apperrors "roomops/errors"
)

func TestPendingBookingAccept(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusPending}

	if err := GetBookingState(booking.Status).Accept(booking); err != nil {
		t.Fatalf("Accept trên booking Pending phải thành công, got %v", err)
	}
	if booking.Status != constants.BookingStatusActive {
		t.Errorf("booking phải chuyển sang Active, got %d", booking.Status)
	}
}

func TestPendingBookingDecline(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusPending}

	if err := GetBookingState(booking.Status).Decline(booking); err != nil {
		t.Fatalf("Decline trên booking Pending phải thành công, got %v", err)
	}
}

func TestPendingBookingCheckOutIllegal(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusPending}

	err := GetBookingState(booking.Status).CheckOut(booking)
	if !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("CheckOut trên booking Pending phải bị từ chối, got %v", err)
	}
}

func TestActiveBookingCheckOut(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusActive}

	if err := GetBookingState(booking.Status).CheckOut(booking); err != nil {
		t.Fatalf("CheckOut trên booking Active phải thành công, got %v", err)
	}
	if booking.Status != constants.BookingStatusCheckedOut {
		t.Errorf("booking phải chuyển sang CheckedOut, got %d", booking.Status)
	}
}

func TestActiveBookingAcceptIllegal(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusActive}

	if err := GetBookingState(booking.Status).Accept(booking); !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("Accept lần hai phải bị từ chối, got %v", err)
	}
	if booking.Status != constants.BookingStatusActive {
		t.Errorf("trạng thái booking không được thay đổi, got %d", booking.Status)
	}
}

func TestActiveBookingDeclineIllegal(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusActive}

	if err := GetBookingState(booking.Status).Decline(booking); !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("Decline trên booking Active phải bị từ chối, got %v", err)
	}
}

func TestCheckedOutBookingTerminal(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusCheckedOut}
	state := GetBookingState(booking.Status)

	if err := state.Accept(booking); !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("Accept sau checkout phải bị từ chối, got %v", err)
	}
	if err := state.Decline(booking); !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("Decline sau checkout phải bị từ chối, got %v", err)
	}
	if err := state.CheckOut(booking); !errors.Is(err, apperrors.ErrIllegalBookingTransition) {
		t.Errorf("CheckOut lần hai phải bị từ chối, got %v", err)
	}
}
