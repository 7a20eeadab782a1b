package validator

import (
	"fmt"
	"regexp"

	"roomops/constants"
	"roomops/errors"
	"roomops/models"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// ValidateStruct validate struct theo các tag `validate`
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ValidateAxisValue kiểm tra trục và giá trị thuộc tập đóng của trục đó
func ValidateAxisValue(axis string, value int) error {
	values, ok := constants.AxisValues[axis]
	if !ok {
		return errors.NewAppError(errors.ErrCodeInvalidAxis,
			fmt.Sprintf("Trục trạng thái không hợp lệ: %s", axis), errors.ErrInvalidAxisValue)
	}
	for _, v := range values {
		if v == value {
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeInvalidAxisValue,
		fmt.Sprintf("Giá trị %d không hợp lệ cho trục %s", value, axis), errors.ErrInvalidAxisValue)
}

// ValidateRoom validate thông tin phòng khi tạo mới
func ValidateRoom(room *models.Room) error {
	if room.Type == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}
	if room.Number <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateBooking validate thông tin booking khi tạo mới
func ValidateBooking(booking *models.Booking) error {
	if booking.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if booking.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if booking.GuestPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}
	if !isValidPhone(booking.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
	}
	if booking.GuestEmail != "" && !isValidEmail(booking.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
	}
	return nil
}

// ValidateUser validate thông tin nhân viên
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	if user.Role < constants.RoleHousekeeper || user.Role > constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
