package routes

import (
	"roomops/constants"
	"roomops/controllers"
	middlewares "roomops/middleware"
	"roomops/services"
	"roomops/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"gorm.io/gorm"
)

// BuildServices lắp ráp các service nghiệp vụ trên cùng một kết nối DB.
// Tách riêng để main còn gắn AssignmentQueueService vào cron sweep.
func BuildServices(db *gorm.DB, m *melody.Melody) (*services.RoomStatusService, *services.BookingSyncService, *services.AssignmentQueueService, *services.HistoryService, services.GuestService, *services.WsNotifier) {
	l := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := services.NewWsNotifier(m)

	statusService := services.NewRoomStatusService(services.NewGormRoomStatusStore(db), l)
	queueService := services.NewAssignmentQueueService(
		services.NewGormAssignmentStore(db),
		services.NewGormStaffQueueStore(db),
		statusService,
		notifier,
		l,
	)
	guestService := services.NewGuestService(db)
	bookingSync := services.NewBookingSyncService(
		services.NewGormBookingStore(db),
		statusService,
		queueService,
		guestService,
		l,
	)
	historyService := services.NewHistoryService(services.NewGormHistoryStore(db))

	return statusService, bookingSync, queueService, historyService, guestService, notifier
}

// SetupRoutes đăng ký toàn bộ route và trả về AssignmentQueueService để
// main gắn vào cron sweep, dùng chung một instance với các handler
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *services.AssignmentQueueService {
	statusService, bookingSync, queueService, historyService, guestService, notifier := BuildServices(db, m)
	controllers.InitControllers(statusService, bookingSync, queueService, historyService, guestService, notifier)

	reception := middlewares.AuthMiddleware(constants.RoleReceptionist, constants.RoleAdmin)
	housekeeping := middlewares.AuthMiddleware(constants.RoleHousekeeper)
	admin := middlewares.AuthMiddleware(constants.RoleAdmin)
	anyStaff := middlewares.AuthMiddleware(constants.RoleHousekeeper, constants.RoleReceptionist, constants.RoleAdmin)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", anyStaff, controllers.GetProfile)

	v1.GET("/room", anyStaff, controllers.GetAllRooms)
	v1.POST("/room", admin, controllers.CreateRoom)
	v1.GET("/room/:roomKey", anyStaff, controllers.GetRoomDetail)
	v1.GET("/searchRoom", anyStaff, controllers.SearchRooms)
	v1.GET("/bookableRoom", reception, controllers.GetBookableRooms)
	v1.GET("/roomStatus/:roomKey", anyStaff, controllers.GetRoomStatus)
	v1.PUT("/roomStatus/:roomKey", reception, controllers.ChangeRoomStatus)

	v1.GET("/booking", reception, controllers.GetBookings)
	v1.POST("/booking", reception, controllers.CreateBooking)
	v1.GET("/booking/:id", reception, controllers.GetBookingDetail)
	v1.PUT("/bookingAccept/:id", reception, controllers.AcceptBooking)
	v1.PUT("/bookingDecline/:id", reception, controllers.DeclineBooking)
	v1.PUT("/bookingCheckout/:id", reception, controllers.CheckOutBooking)

	v1.GET("/assignment", reception, controllers.GetCurrentAssignments)
	v1.GET("/myAssignment", housekeeping, controllers.GetMyAssignments)
	v1.GET("/cleaningQueue", anyStaff, controllers.GetQueue)
	v1.POST("/cleaningRequest/:roomKey", reception, controllers.RequestCleaning)
	v1.PUT("/cleaningStart/:roomKey", housekeeping, controllers.StartCleaning)
	v1.PUT("/cleaningComplete/:roomKey", housekeeping, controllers.CompleteCleaning)

	v1.GET("/staff", reception, controllers.GetStaffs)
	v1.POST("/staff", admin, controllers.CreateStaff)
	v1.PUT("/duty", housekeeping, controllers.ChangeDuty)

	v1.GET("/history", anyStaff, controllers.GetHistory)

	return queueService
}
