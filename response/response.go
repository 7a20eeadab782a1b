package response

import (
	"errors"
	"net/http"

	apperrors "roomops/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error trả về response lỗi
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Không tìm thấy",
	})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError map lỗi nghiệp vụ sang response HTTP tương ứng
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, Response{Code: 0, Mess: "Không tìm thấy phòng"})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, Response{Code: 0, Mess: "Không tìm thấy booking"})
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, Response{Code: 0, Mess: "Phòng chưa có nhiệm vụ dọn"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, Response{Code: 0, Mess: "Không tìm thấy người dùng"})
	case errors.Is(err, apperrors.ErrInvalidAxisValue):
		ValidationError(c, "Giá trị trạng thái không hợp lệ")
	case errors.Is(err, apperrors.ErrStatusConflict):
		Conflict(c, "Trạng thái phòng vừa bị thay đổi, vui lòng thử lại")
	case errors.Is(err, apperrors.ErrIllegalBookingTransition):
		Conflict(c, "Booking không ở trạng thái cho phép thao tác này")
	case errors.Is(err, apperrors.ErrIllegalAssignmentTransition):
		Conflict(c, "Nhiệm vụ dọn phòng không ở trạng thái cho phép thao tác này")
	case errors.Is(err, apperrors.ErrNoStaffAvailable):
		Conflict(c, "Không có nhân viên dọn phòng đang trong ca")
	case errors.Is(err, apperrors.ErrNotOwner):
		Forbidden(c)
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		Conflict(c, "Tài khoản đã tồn tại")
	case errors.Is(err, apperrors.ErrTransactionFailed):
		c.JSON(http.StatusInternalServerError, Response{Code: 0, Mess: "Thao tác thất bại, không có thay đổi nào được áp dụng"})
	default:
		if appErr := apperrors.GetAppError(err); appErr != nil {
			Error(c, 0, appErr.Message)
			return
		}
		ServerError(c)
	}
}
