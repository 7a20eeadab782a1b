package constants

// User status
const (
	UserStatusOffDuty = 0
	UserStatusOnDuty  = 1
)

// User role
const (
	RoleHousekeeper  = 0
	RoleReceptionist = 1
	RoleAdmin        = 2
)

// Các trục trạng thái của phòng
const (
	AxisOccupancy    = "occupancy"
	AxisReservation  = "reservation"
	AxisHousekeeping = "housekeeping"
	AxisMaintenance  = "maintenance"
)

// Occupancy
const (
	OccupancyVacant   = 0
	OccupancyOccupied = 1
)

// Reservation
const (
	ReservationNotReserved = 0
	ReservationReserved    = 1
)

// Housekeeping
const (
	HousekeepingClean    = 0
	HousekeepingCleaning = 1
	HousekeepingDirty    = 2
)

// Maintenance
const (
	MaintenanceOperational      = 0
	MaintenanceUnderMaintenance = 1
)

// Booking status
const (
	BookingStatusPending    = 0
	BookingStatusActive     = 1
	BookingStatusCheckedOut = 2
)

// Assignment status
const (
	AssignmentStatusAssigned  = 0
	AssignmentStatusCleaning  = 1
	AssignmentStatusCompleted = 2
)

// Guest record status
const (
	GuestStatusActive     = 0
	GuestStatusCheckedOut = 1
)

// AxisValues ánh xạ mỗi trục sang tập giá trị hợp lệ của trục đó
var AxisValues = map[string][]int{
	AxisOccupancy:    {OccupancyVacant, OccupancyOccupied},
	AxisReservation:  {ReservationNotReserved, ReservationReserved},
	AxisHousekeeping: {HousekeepingClean, HousekeepingCleaning, HousekeepingDirty},
	AxisMaintenance:  {MaintenanceOperational, MaintenanceUnderMaintenance},
}
