package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
)

// Advance moves an order one step along its lifecycle. Operator only; the
// route layer enforces the admin role.
func (s *OrderService) Advance(ctx context.Context, orderID uint, target entity.OrderStatus) (*entity.Order, error) {
	if !target.Valid() {
		return nil, apperr.Validation("status", "unknown status")
	}

	o, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(target) {
		return nil, apperr.InvalidTransition(string(o.Status), string(target))
	}

	return s.commitTransition(ctx, o, target)
}

// Cancel backs an order out of the pipeline. Customers may cancel their own
// orders while still pending or confirmed; operators may cancel any order in
// those states.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID uint, operator bool) (*entity.Order, error) {
	var o *entity.Order
	var err error
	if operator {
		o, err = s.loadOrder(orderID)
	} else {
		o, err = s.loadOrderForUser(userID, orderID)
	}
	if err != nil {
		return nil, err
	}

	if !o.Status.CanCancel() {
		return nil, apperr.InvalidTransition(string(o.Status), string(entity.StatusCancelled))
	}

	return s.commitTransition(ctx, o, entity.StatusCancelled)
}

// commitTransition applies a legality-checked transition with a conditional
// update keyed on the status the caller just read. A concurrent writer makes
// the update match zero rows; the loser re-reads and gets a clear rejection
// instead of silently overwriting the winner.
func (s *OrderService) commitTransition(ctx context.Context, o *entity.Order, target entity.OrderStatus) (*entity.Order, error) {
	prev := o.Status

	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, prev, target)
	if err != nil {
		return nil, apperr.Storage("status update", err)
	}
	if affected == 0 {
		return nil, s.classifyLostUpdate(o.ID, target)
	}

	updated, err := s.loadOrder(o.ID)
	if err != nil {
		return nil, err
	}

	s.Metrics.IncTransition(string(target))
	if err := s.Events.OrderStatusChanged(ctx, updated, prev); err != nil {
		log.Printf("publish status change for order %d: %v", updated.ID, err)
	}
	if s.listener != nil {
		s.listener.OrderStatusChanged(updated.ID, updated.Status)
	}
	return updated, nil
}

// classifyLostUpdate re-reads an order whose guarded update matched nothing
// and decides what the caller should be told.
func (s *OrderService) classifyLostUpdate(orderID uint, target entity.OrderStatus) error {
	current, err := s.loadOrder(orderID)
	if err != nil {
		return err
	}
	if current.Status == target {
		// a concurrent writer already applied the same transition
		return apperr.Conflict("status transition")
	}
	if !current.Status.CanTransitionTo(target) {
		return apperr.InvalidTransition(string(current.Status), string(target))
	}
	// the transition is still legal from the new status; the caller lost a
	// race and should re-read and retry
	return apperr.Conflict("status transition")
}

func (s *OrderService) loadOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("order", orderID)
	}
	if err != nil {
		return nil, apperr.Storage("order lookup", err)
	}
	return o, nil
}

func (s *OrderService) loadOrderForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("order", orderID)
	}
	if err != nil {
		return nil, apperr.Storage("order lookup", err)
	}
	return o, nil
}
