package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/metrics"
	"github.com/classquest/classquest-api/internal/repository"
)

var (
	ErrItemNotFound       = repository.ErrItemNotFound
	ErrInsufficientPoints = repository.ErrInsufficientPoints
)

type MarketRepository interface {
	FindAllItems(ctx context.Context) ([]domain.MarketItem, error)
	Buy(ctx context.Context, studentID string, itemID uint) (domain.Purchase, domain.Student, error)
	FindPurchasesByStudentID(ctx context.Context, studentID string) ([]domain.Purchase, error)
}

type MarketService struct {
	repo   MarketRepository
	events EventPublisher
}

func NewMarketService(repo MarketRepository, events EventPublisher) *MarketService {
	return &MarketService{
		repo:   repo,
		events: events,
	}
}

func (s *MarketService) ListItems(ctx context.Context) ([]domain.MarketItem, error) {
	items, err := s.repo.FindAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllItems -> %w", err)
	}

	return items, nil
}

// BuyItem debits the item price from the student and logs the purchase.
func (s *MarketService) BuyItem(ctx context.Context, studentID string, itemID uint) (domain.Purchase, error) {
	purchase, student, err := s.repo.Buy(ctx, studentID, itemID)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("s.repo.Buy -> %w", err)
	}

	metrics.Purchases.Inc()
	zap.L().Info("item purchased",
		zap.String("student_id", studentID),
		zap.Uint("item_id", itemID),
		zap.Int("points_left", student.Points),
	)
	publish(s.events, domain.ClassEvent{
		Type:      domain.EventItemPurchased,
		ClassCode: student.ClassCode,
		StudentID: student.ID,
		ItemID:    purchase.ItemID,
		Balance:   &student.Points,
		At:        purchase.PurchasedAt,
	})

	return purchase, nil
}

func (s *MarketService) ListPurchases(ctx context.Context, studentID string) ([]domain.Purchase, error) {
	purchases, err := s.repo.FindPurchasesByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPurchasesByStudentID -> %w", err)
	}

	return purchases, nil
}
