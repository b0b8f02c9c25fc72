package services

import (
	"errors"

	"gorm.io/gorm"
)

// Branch console actions. Each transition is guarded on the current status and
// scoped to the caller's branch.

func (s *OrderService) Accept(branchID, orderID uint) error {
	return s.transition(branchID, orderID, s.Status.Pending, s.Status.Preparing)
}

func (s *OrderService) Complete(branchID, orderID uint) error {
	return s.transition(branchID, orderID, s.Status.Preparing, s.Status.Completed)
}

func (s *OrderService) Cancel(branchID, orderID uint) error {
	return s.transition(branchID, orderID, s.Status.Pending, s.Status.Cancelled)
}

func (s *OrderService) transition(branchID, orderID, fromID, toID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		// branchID 0 means an HQ account acting across branches.
		if branchID != 0 && o.BranchID != branchID {
			return ErrOrderNotFound
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, fromID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
