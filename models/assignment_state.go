package models

import (
	"roomops/constants"
	"roomops/errors"
)

// AssignmentState định nghĩa interface cho các trạng thái assignment.
// Chuyển trạng thái tuyến tính Assigned -> Cleaning -> Completed; cho phép
// Complete thẳng từ Assigned khi nhân viên hoàn thành mà không bấm bắt đầu.
type AssignmentState interface {
	Start(assignment *Assignment) error
	Complete(assignment *Assignment) error
}

// AssignedState trạng thái vừa được giao
type AssignedState struct{}

func (s *AssignedState) Start(assignment *Assignment) error {
	assignment.Status = constants.AssignmentStatusCleaning
	return nil
}

func (s *AssignedState) Complete(assignment *Assignment) error {
	assignment.Status = constants.AssignmentStatusCompleted
	return nil
}

// CleaningState trạng thái đang dọn
type CleaningState struct{}

func (s *CleaningState) Start(assignment *Assignment) error {
	return errors.ErrIllegalAssignmentTransition
}

func (s *CleaningState) Complete(assignment *Assignment) error {
	assignment.Status = constants.AssignmentStatusCompleted
	return nil
}

// CompletedState trạng thái đã hoàn thành, không chuyển tiếp được nữa
type CompletedState struct{}

func (s *CompletedState) Start(assignment *Assignment) error {
	return errors.ErrIllegalAssignmentTransition
}

func (s *CompletedState) Complete(assignment *Assignment) error {
	return errors.ErrIllegalAssignmentTransition
}

// GetAssignmentState trả về state tương ứng với trạng thái assignment
func GetAssignmentState(status int) AssignmentState {
	switch status {
	case constants.AssignmentStatusAssigned:
		return &AssignedState{}
	case constants.AssignmentStatusCleaning:
		return &CleaningState{}
	case constants.AssignmentStatusCompleted:
		return &CompletedState{}
	default:
		return &CompletedState{}
	}
}
