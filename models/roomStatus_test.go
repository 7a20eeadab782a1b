package models

import (
	"testing"

	"roomops/constants"
)

func TestBookableNow(t *testing.T) {
	status := &RoomStatus{
		Occupancy:    constants.OccupancyVacant,
		Reservation:  constants.ReservationNotReserved,
		Housekeeping: constants.HousekeepingClean,
		Maintenance:  constants.MaintenanceOperational,
	}
	if !status.BookableNow() {
		t.Error("phòng trống, chưa giữ, sạch, hoạt động phải nhận đặt được")
	}

	cases := []struct {
		name   string
		mutate func(*RoomStatus)
	}{
		{"occupied", func(s *RoomStatus) { s.Occupancy = constants.OccupancyOccupied }},
		{"reserved", func(s *RoomStatus) { s.Reservation = constants.ReservationReserved }},
		{"dirty", func(s *RoomStatus) { s.Housekeeping = constants.HousekeepingDirty }},
		{"cleaning", func(s *RoomStatus) { s.Housekeeping = constants.HousekeepingCleaning }},
		{"maintenance", func(s *RoomStatus) { s.Maintenance = constants.MaintenanceUnderMaintenance }},
	}
	for _, tc := range cases {
		s := *status
		tc.mutate(&s)
		if s.BookableNow() {
			t.Errorf("%s: phòng không được nhận đặt", tc.name)
		}
	}
}

func TestAxisValueRoundTrip(t *testing.T) {
	status := &RoomStatus{}

	if ok := status.SetAxisValue(constants.AxisHousekeeping, constants.HousekeepingDirty); !ok {
		t.Fatal("SetAxisValue với trục hợp lệ phải thành công")
	}
	value, ok := status.AxisValue(constants.AxisHousekeeping)
	if !ok || value != constants.HousekeepingDirty {
		t.Errorf("AxisValue phải trả về giá trị vừa ghi, got %d, %v", value, ok)
	}

	if ok := status.SetAxisValue("bogus", 1); ok {
		t.Error("SetAxisValue với trục lạ phải bị từ chối")
	}
	if _, ok := status.AxisValue("bogus"); ok {
		t.Error("AxisValue với trục lạ phải bị từ chối")
	}
}

func TestDeriveKey(t *testing.T) {
	room := &Room{Type: "Deluxe", Number: 101}
	if key := room.DeriveKey(); key != "DELUXE-101" {
		t.Errorf("DeriveKey = %q, want DELUXE-101", key)
	}
}
