package models

import (
	"time"

	"roomops/constants"
)

// RoomStatus là trạng thái tổng hợp của một phòng trên bốn trục độc lập.
// Mỗi phòng có đúng một dòng, chỉ được ghi đè, không bao giờ xóa.
type RoomStatus struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RoomID       uint      `json:"roomId" gorm:"index"`
	RoomKey      string    `json:"roomKey" gorm:"uniqueIndex"`
	Occupancy    int       `json:"occupancy" gorm:"default:0"`
	Reservation  int       `json:"reservation" gorm:"default:0"`
	Housekeeping int       `json:"housekeeping" gorm:"default:0"`
	Maintenance  int       `json:"maintenance" gorm:"default:0"`
	Version      int64     `json:"-" gorm:"default:0"`
	LastUpdated  time.Time `json:"lastUpdated"`
	UpdatedBy    string    `json:"updatedBy"`
}

// BookableNow kiểm tra phòng có thể nhận đặt ngay hay không
func (s *RoomStatus) BookableNow() bool {
	return s.Occupancy == constants.OccupancyVacant &&
		s.Reservation == constants.ReservationNotReserved &&
		s.Housekeeping == constants.HousekeepingClean &&
		s.Maintenance == constants.MaintenanceOperational
}

// AxisValue đọc giá trị của một trục theo tên
func (s *RoomStatus) AxisValue(axis string) (int, bool) {
	switch axis {
	case constants.AxisOccupancy:
		return s.Occupancy, true
	case constants.AxisReservation:
		return s.Reservation, true
	case constants.AxisHousekeeping:
		return s.Housekeeping, true
	case constants.AxisMaintenance:
		return s.Maintenance, true
	default:
		return 0, false
	}
}

// SetAxisValue ghi giá trị cho một trục theo tên, các trục khác giữ nguyên
func (s *RoomStatus) SetAxisValue(axis string, value int) bool {
	switch axis {
	case constants.AxisOccupancy:
		s.Occupancy = value
	case constants.AxisReservation:
		s.Reservation = value
	case constants.AxisHousekeeping:
		s.Housekeeping = value
	case constants.AxisMaintenance:
		s.Maintenance = value
	default:
		return false
	}
	return true
}
