package trade

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/shared"
	"github.com/bizmate/backend/internal/domain/trade"
)

// DeliveryService handles delivery business operations
type DeliveryService struct {
	deliveryRepo trade.DeliveryRepository
	companyRepo  partner.CompanyRepository
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(deliveryRepo trade.DeliveryRepository, companyRepo partner.CompanyRepository) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		companyRepo:  companyRepo,
	}
}

// Create schedules a new delivery in 준비중 status
func (s *DeliveryService) Create(ctx context.Context, req CreateDeliveryRequest) (*DeliveryResponse, error) {
	if _, err := s.companyRepo.FindByID(req.CompanyID); err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Delivery refers to an unknown company")
	}

	products := make([]trade.DeliveryProduct, 0, len(req.Products))
	for _, pr := range req.Products {
		product, err := trade.NewDeliveryProduct(pr.Name, pr.Quantity, pr.UnitPrice)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	delivery, err := trade.NewDelivery(req.CompanyID, products, req.DeliveryDate)
	if err != nil {
		return nil, err
	}
	if req.Memo != "" {
		delivery.SetMemo(req.Memo)
	}

	if err := s.deliveryRepo.Add(ctx, delivery); err != nil {
		return nil, err
	}

	response := ToDeliveryResponse(delivery)
	return &response, nil
}

// GetByID retrieves a delivery by ID
func (s *DeliveryService) GetByID(ctx context.Context, id uuid.UUID) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	response := ToDeliveryResponse(delivery)
	return &response, nil
}

// List retrieves deliveries, newest delivery date first
func (s *DeliveryService) List(ctx context.Context, filter DeliveryListFilter) ([]DeliveryResponse, error) {
	var deliveries []trade.Delivery
	if filter.Search != "" {
		deliveries = s.deliveryRepo.Search(filter.Search)
	} else {
		deliveries = s.deliveryRepo.All()
	}

	responses := make([]DeliveryResponse, 0, len(deliveries))
	for i := range deliveries {
		if filter.CompanyID != nil && deliveries[i].CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Status != "" && deliveries[i].Status.String() != filter.Status {
			continue
		}
		responses = append(responses, ToDeliveryResponse(&deliveries[i]))
	}

	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].DeliveryDate.After(responses[j].DeliveryDate)
	})

	return responses, nil
}

// UpdateStatus moves a delivery to the requested status. Illegal transitions
// surface as INVALID_STATE.
func (s *DeliveryService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateDeliveryStatusRequest) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.Update(ctx, id, func(d *trade.Delivery) error {
		return d.TransitionTo(trade.DeliveryStatus(req.Status))
	})
	if err != nil {
		return nil, err
	}

	response := ToDeliveryResponse(delivery)
	return &response, nil
}

// Delete removes a delivery
func (s *DeliveryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deliveryRepo.Remove(ctx, id)
}
