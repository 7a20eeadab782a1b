package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"roomops/config"
	"roomops/constants"
	"roomops/dto"
	"roomops/models"
	"roomops/response"
	"roomops/services"
	"roomops/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func toBookingResponse(booking *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:         booking.ID,
		RoomKey:    booking.RoomKey,
		Status:     booking.Status,
		GuestName:  booking.GuestName,
		GuestPhone: booking.GuestPhone,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}
}

func bookingIDFromParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

func actorFromContext(c *gin.Context) string {
	if userID, exists := c.Get("userID"); exists {
		return fmt.Sprintf("user:%v", userID)
	}
	return "manual"
}

// CreateBooking tạo booking mới ở trạng thái Pending. Phòng phải đang đủ
// điều kiện nhận đặt, trạng thái phòng chưa thay đổi cho đến khi Accept.
func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, err := statusService.Get(request.RoomKey)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !status.BookableNow() {
		response.Conflict(c, fmt.Sprintf("Phòng %s hiện không nhận đặt", request.RoomKey))
		return
	}

	booking := models.Booking{
		RoomID:     status.RoomID,
		RoomKey:    request.RoomKey,
		Status:     constants.BookingStatusPending,
		GuestName:  request.GuestName,
		GuestEmail: request.GuestEmail,
		GuestPhone: request.GuestPhone,
	}

	if err := validator.ValidateBooking(&booking); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toBookingResponse(&booking))
}

// AcceptBooking xác nhận booking: phòng được giữ và đánh dấu có khách
func AcceptBooking(c *gin.Context) {
	id, ok := bookingIDFromParam(c)
	if !ok {
		return
	}

	booking, err := bookingSync.Accept(id, actorFromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.InvalidateRoomCache(config.Ctx, config.RedisClient)
	response.Success(c, toBookingResponse(booking))
}

// DeclineBooking từ chối booking đang chờ, phòng giữ nguyên trạng thái
func DeclineBooking(c *gin.Context) {
	id, ok := bookingIDFromParam(c)
	if !ok {
		return
	}

	if err := bookingSync.Decline(id, actorFromContext(c)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, nil)
}

// CheckOutBooking trả phòng: phòng chuyển sang chờ dọn và nhiệm vụ dọn
// được giao ngay nếu có nhân viên trong ca
func CheckOutBooking(c *gin.Context) {
	id, ok := bookingIDFromParam(c)
	if !ok {
		return
	}

	assignment, err := bookingSync.CheckOut(id, actorFromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.InvalidateRoomCache(config.Ctx, config.RedisClient)

	var assignmentResponse *dto.AssignmentResponse
	if assignment != nil {
		ar := toAssignmentResponse(assignment)
		assignmentResponse = &ar
	}
	response.Success(c, gin.H{
		"bookingId":  id,
		"assignment": assignmentResponse,
	})
}

// GetBookings liệt kê booking, lọc được theo status
func GetBookings(c *gin.Context) {
	tx := config.DB.Model(&models.Booking{})
	if statusParam := c.Query("status"); statusParam != "" {
		statusValue, err := strconv.Atoi(statusParam)
		if err != nil {
			response.BadRequest(c, "status không hợp lệ")
			return
		}
		tx = tx.Where("status = ?", statusValue)
	}

	var bookings []models.Booking
	if err := tx.Order("created_at DESC").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(&bookings[i]))
	}
	response.Success(c, bookingResponses)
}

// GetBookingDetail lấy chi tiết booking kèm hồ sơ khách nếu có
func GetBookingDetail(c *gin.Context) {
	id, ok := bookingIDFromParam(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	guest, err := guestService.GetGuestByBooking(booking.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"booking": toBookingResponse(&booking),
		"guest":   guest,
	})
}
