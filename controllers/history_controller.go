package controllers

import (
	"strconv"

	"roomops/dto"
	"roomops/response"

	"github.com/gin-gonic/gin"
)

// GetHistory đọc audit log trạng thái phòng, mới nhất trước, có phân trang.
// Bỏ trống roomKey để xem lịch sử của tất cả các phòng.
func GetHistory(c *gin.Context) {
	roomKey := c.DefaultQuery("roomKey", "")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, total, err := historyService.Feed(roomKey, page, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	entryResponses := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		entryResponses = append(entryResponses, dto.HistoryEntryResponse{
			ID:           entry.ID,
			RoomKey:      entry.RoomKey,
			Occupancy:    entry.Occupancy,
			Reservation:  entry.Reservation,
			Housekeeping: entry.Housekeeping,
			Maintenance:  entry.Maintenance,
			Timestamp:    entry.Timestamp,
			ActorID:      entry.ActorID,
		})
	}

	response.SuccessWithPagination(c, entryResponses, page, limit, int(total))
}
