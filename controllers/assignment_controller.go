package controllers

import (
	"roomops/dto"
	"roomops/models"
	"roomops/response"

	"github.com/gin-gonic/gin"
)

func toAssignmentResponse(assignment *models.Assignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:          assignment.ID,
		RoomKey:     assignment.RoomKey,
		StaffID:     assignment.StaffID,
		Status:      assignment.Status,
		AssignedAt:  assignment.AssignedAt,
		CompletedAt: assignment.CompletedAt,
	}
}

func staffIDFromContext(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return 0, false
	}
	staffID, ok := userID.(uint)
	if !ok {
		response.Unauthorized(c)
		return 0, false
	}
	return staffID, true
}

// RequestCleaning yêu cầu dọn một phòng theo thao tác tay của lễ tân.
// Gọi lặp lại cho phòng đã có nhiệm vụ chỉ trả về nhiệm vụ hiện tại.
func RequestCleaning(c *gin.Context) {
	roomKey := c.Param("roomKey")

	assignment, err := queueService.RequestCleaning(roomKey)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toAssignmentResponse(assignment))
}

// StartCleaning nhân viên bắt đầu dọn phòng được giao cho mình
func StartCleaning(c *gin.Context) {
	roomKey := c.Param("roomKey")
	staffID, ok := staffIDFromContext(c)
	if !ok {
		return
	}

	assignment, err := queueService.StartCleaning(roomKey, staffID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toAssignmentResponse(assignment))
}

// CompleteCleaning nhân viên hoàn tất việc dọn, phòng trở lại sạch
func CompleteCleaning(c *gin.Context) {
	roomKey := c.Param("roomKey")
	staffID, ok := staffIDFromContext(c)
	if !ok {
		return
	}

	assignment, err := queueService.CompleteCleaning(roomKey, staffID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toAssignmentResponse(assignment))
}

// GetCurrentAssignments liệt kê các nhiệm vụ dọn phòng chưa hoàn tất
func GetCurrentAssignments(c *gin.Context) {
	assignments, err := queueService.CurrentAssignments()
	if err != nil {
		response.ServerError(c)
		return
	}

	assignmentResponses := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		assignmentResponses = append(assignmentResponses, toAssignmentResponse(&assignments[i]))
	}
	response.Success(c, assignmentResponses)
}

// GetMyAssignments liệt kê nhiệm vụ của nhân viên đang đăng nhập
func GetMyAssignments(c *gin.Context) {
	staffID, ok := staffIDFromContext(c)
	if !ok {
		return
	}

	assignments, err := queueService.AssignmentsFor(staffID)
	if err != nil {
		response.ServerError(c)
		return
	}

	assignmentResponses := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		assignmentResponses = append(assignmentResponses, toAssignmentResponse(&assignments[i]))
	}
	response.Success(c, assignmentResponses)
}

// GetQueue xem hàng đợi luân phiên hiện tại
func GetQueue(c *gin.Context) {
	staffIDs, err := queueService.Queue()
	if err != nil {
		response.ServerError(c)
		return
	}
	if staffIDs == nil {
		staffIDs = []uint{}
	}
	response.Success(c, dto.QueueResponse{StaffIDs: staffIDs})
}
