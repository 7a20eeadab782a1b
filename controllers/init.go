package controllers

import "roomops/services"

var (
	statusService  *services.RoomStatusService
	bookingSync    *services.BookingSyncService
	queueService   *services.AssignmentQueueService
	historyService *services.HistoryService
	guestService   services.GuestService
	wsNotifier     *services.WsNotifier
)

// InitControllers nhận các service đã được lắp ráp sẵn từ routes
func InitControllers(status *services.RoomStatusService, sync *services.BookingSyncService, queue *services.AssignmentQueueService, history *services.HistoryService, guests services.GuestService, notifier *services.WsNotifier) {
	statusService = status
	bookingSync = sync
	queueService = queue
	historyService = history
	guestService = guests
	wsNotifier = notifier
}
