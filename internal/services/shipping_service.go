package services

import (
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// StageRequest is an admin stage transition with optional tracking fields.
type StageRequest struct {
	Stage             string
	TrackingNumber    string
	CarrierName       string
	EstimatedDelivery *time.Time
	Notes             string
}

// ShippingService drives the forward-only shipment state machine and the
// tracking views built on top of it.
type ShippingService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewShippingService creates a new ShippingService. mqClient may be nil.
func NewShippingService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *ShippingService {
	return &ShippingService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// AdvanceStage moves an order forward to targetStage. Valid targets are
// the stages after CONFIRMED (payment verification owns the CONFIRMED
// transition). A target at or before the order's current stage is
// rejected; the transition and its tracking-log entry commit together, so
// each stage gets its timestamp exactly once.
func (s *ShippingService) AdvanceStage(orderID, adminID string, req StageRequest) (*models.Order, error) {
	target := models.StageIndex(req.Stage)
	if target < 1 {
		return nil, ErrInvalidStage
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.OrderStatusCancelled {
		return nil, ErrOrderTerminal
	}
	if models.StageIndex(order.Status) >= target {
		return nil, ErrStageNotForward
	}

	update := repositories.StageUpdate{
		Stage:             req.Stage,
		TrackingNumber:    req.TrackingNumber,
		CarrierName:       req.CarrierName,
		EstimatedDelivery: req.EstimatedDelivery,
		Notes:             req.Notes,
		UpdatedBy:         adminID,
	}
	if err := s.orderRepo.ApplyStageUpdate(orderID, update); err != nil {
		return nil, err
	}

	order.Status = req.Stage
	if req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
	}
	if req.CarrierName != "" {
		order.CarrierName = req.CarrierName
	}
	if req.EstimatedDelivery != nil {
		order.EstimatedDelivery = req.EstimatedDelivery
	}
	if req.Notes != "" {
		order.Notes = req.Notes
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishOrderEvent("order.stage_updated", map[string]interface{}{
			"orderID": order.ID,
			"stage":   req.Stage,
			"by":      adminID,
		}); err != nil {
			log.Printf("Warning: Failed to publish stage update event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// CancelOrder moves an order to the absorbing CANCELLED state. Any
// non-terminal order can be cancelled.
func (s *ShippingService) CancelOrder(orderID, adminID, notes string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalStatus(order.Status) {
		return nil, ErrOrderTerminal
	}

	update := repositories.StageUpdate{
		Stage:     models.OrderStatusCancelled,
		Notes:     notes,
		UpdatedBy: adminID,
	}
	if err := s.orderRepo.ApplyStageUpdate(orderID, update); err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusCancelled
	return order, nil
}

// ListConfirmedOrders returns the fulfillment queue: every order that is
// paid but not yet delivered, newest first, with items, owner, and
// payments joined.
func (s *ShippingService) ListConfirmedOrders() ([]models.Order, error) {
	active := models.ShipmentStages[:len(models.ShipmentStages)-1]
	return s.orderRepo.ListByStatuses(active)
}

// GetTrackingView builds the owner-scoped progress tracker for an order.
// Completion flags derive from the current status's position in the stage
// list; timestamps come from the append-only tracking log.
func (s *ShippingService) GetTrackingView(orderID, userID string) (*models.TrackingView, error) {
	order, err := s.orderRepo.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.orderRepo.GetTrackingLog(orderID)
	if err != nil {
		return nil, err
	}

	// Latest log entry wins per stage.
	stampedAt := make(map[string]time.Time, len(entries))
	for _, entry := range entries {
		stampedAt[entry.Stage] = entry.CreatedAt
	}

	current := models.StageIndex(order.Status)
	stages := make([]models.TrackingStage, 0, len(models.ShipmentStages))
	for i, stage := range models.ShipmentStages {
		ts := models.TrackingStage{
			Stage:     stage,
			Completed: current >= i,
		}
		if at, ok := stampedAt[stage]; ok {
			t := at
			ts.Timestamp = &t
		}
		stages = append(stages, ts)
	}

	return &models.TrackingView{
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		Status:            order.Status,
		TrackingNumber:    order.TrackingNumber,
		CarrierName:       order.CarrierName,
		EstimatedDelivery: order.EstimatedDelivery,
		Notes:             order.Notes,
		Stages:            stages,
	}, nil
}
