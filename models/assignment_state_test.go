package models

import (
	"errors"
	"testing"

	"roomops/constants"
	apperrors "roomops/errors"
)

func TestAssignedStart(t *testing.T) {
	assignment := &Assignment{Status: constants.AssignmentStatusAssigned}

	if err := GetAssignmentState(assignment.Status).Start(assignment); err != nil {
		t.Fatalf("Start trên assignment vừa giao phải thành công, got %v", err)
	}
	if assignment.Status != constants.AssignmentStatusCleaning {
		t.Errorf("assignment phải chuyển sang Cleaning, got %d", assignment.Status)
	}
}

func TestAssignedCompleteDirect(t *testing.T) {
	// Nhân viên dọn xong mà không bấm bắt đầu vẫn hoàn tất được
	assignment := &Assignment{Status: constants.AssignmentStatusAssigned}

	if err := GetAssignmentState(assignment.Status).Complete(assignment); err != nil {
		t.Fatalf("Complete thẳng từ Assigned phải thành công, got %v", err)
	}
	if assignment.Status != constants.AssignmentStatusCompleted {
		t.Errorf("assignment phải chuyển sang Completed, got %d", assignment.Status)
	}
}

func TestCleaningStartIllegal(t *testing.T) {
	assignment := &Assignment{Status: constants.AssignmentStatusCleaning}

	if err := GetAssignmentState(assignment.Status).Start(assignment); !errors.Is(err, apperrors.ErrIllegalAssignmentTransition) {
		t.Errorf("Start lần hai phải bị từ chối, got %v", err)
	}
}

func TestCleaningComplete(t *testing.T) {
	assignment := &Assignment{Status: constants.AssignmentStatusCleaning}

	if err := GetAssignmentState(assignment.Status).Complete(assignment); err != nil {
		t.Fatalf("Complete trên assignment đang dọn phải thành công, got %v", err)
	}
	if assignment.Status != constants.AssignmentStatusCompleted {
		t.Errorf("assignment phải chuyển sang Completed, got %d", assignment.Status)
	}
}

func TestCompletedTerminal(t *testing.T) {
	assignment := &Assignment{Status: constants.AssignmentStatusCompleted}
	state := GetAssignmentState(assignment.Status)

	if err := state.Start(assignment); !errors.Is(err, apperrors.ErrIllegalAssignmentTransition) {
		t.Errorf("Start sau khi hoàn tất phải bị từ chối, got %v", err)
	}
	if err := state.Complete(assignment); !errors.Is(err, apperrors.ErrIllegalAssignmentTransition) {
		t.Errorf("Complete lần hai phải bị từ chối, got %v", err)
	}
}
