package controllers

import (
	"errors"
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

// CreateStaff admin tạo tài khoản nhân viên dọn phòng hoặc lễ tân
func CreateStaff(c *gin.Context) {
	var request dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        request.Role,
	}
	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	created, err := services.CreateStaffUser(user)
	if err != nil {
		response.FromError(c, err)
		return
	}

	created.Password = ""
	response.Success(c, created)
}

// GetStaffs liệt kê nhân viên, lọc được theo role và vị trí trong hàng đợi
func GetStaffs(c *gin.Context) {
	tx := config.DB.Model(&models.User{})
	if roleParam := c.Query("role"); roleParam != "" {
		roleValue, err := strconv.Atoi(roleParam)
		if err != nil {
			response.BadRequest(c, "role không hợp lệ")
			return
		}
		tx = tx.Where("role = ?", roleValue)
	}

	var users []models.User
	if err := tx.Order("id").Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	type staffView struct {
		models.User
		QueuePosition int `json:"queuePosition"`
	}

	staffViews := make([]staffView, 0, len(users))
	for _, user := range users {
		user.Password = ""
		position := -1
		if user.Role == constants.RoleHousekeeper {
			p, err := queueService.QueuePosition(user.ID)
			if err == nil {
				position = p
			}
		}
		staffViews = append(staffViews, staffView{User: user, QueuePosition: position})
	}

	response.Success(c, staffViews)
}

// ChangeDuty nhân viên dọn phòng lên ca hoặc xuống ca. Lên ca đưa họ vào
// cuối hàng đợi luân phiên; xuống ca rút họ khỏi hàng và giao lại các
// phòng dang dở cho người còn lại.
func ChangeDuty(c *gin.Context) {
	staffID, ok := staffIDFromContext(c)
	if !ok {
		return
	}

	var request dto.DutyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}
	if user.Role != constants.RoleHousekeeper {
		response.Forbidden(c)
		return
	}

	if *request.OnDuty {
		if err := queueService.EnqueueStaff(staffID); err != nil {
			response.FromError(c, err)
			return
		}
		user.Status = constants.UserStatusOnDuty
	} else {
		if err := queueService.DequeueStaff(staffID); err != nil {
			response.FromError(c, err)
			return
		}
		user.Status = constants.UserStatusOffDuty
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	position, _ := queueService.QueuePosition(staffID)
	response.Success(c, gin.H{
		"staffId":       staffID,
		"onDuty":        user.Status == constants.UserStatusOnDuty,
		"queuePosition": position,
	})
}
