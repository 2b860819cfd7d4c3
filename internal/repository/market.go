package repository

import (
	"context"
	"fmt"

	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/repository/dao"
)

var (
	ErrItemNotFound       = dao.ErrItemNotFound
	ErrInsufficientPoints = dao.ErrInsufficientPoints
)

type MarketDAO interface {
	FindAllItems(ctx context.Context) ([]dao.MarketItem, error)
	Buy(ctx context.Context, studentID string, itemID uint) (dao.Purchase, dao.Student, error)
	FindPurchasesByStudentID(ctx context.Context, studentID string) ([]dao.Purchase, error)
}

type MarketRepository struct {
	dao MarketDAO
}

func NewMarketRepository(dao MarketDAO) *MarketRepository {
	return &MarketRepository{
		dao: dao,
	}
}

func (r *MarketRepository) FindAllItems(ctx context.Context) ([]domain.MarketItem, error) {
	found, err := r.dao.FindAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllItems -> %w", err)
	}

	items := make([]domain.MarketItem, len(found))
	for i, item := range found {
		items[i] = domain.MarketItem{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Icon:  item.Icon,
		}
	}

	return items, nil
}

func (r *MarketRepository) Buy(ctx context.Context, studentID string, itemID uint) (domain.Purchase, domain.Student, error) {
	purchase, student, err := r.dao.Buy(ctx, studentID, itemID)
	if err != nil {
		return domain.Purchase{}, domain.Student{}, fmt.Errorf("r.dao.Buy -> %w", err)
	}

	return r.purchaseDaoToDomain(purchase), studentDaoToDomain(student), nil
}

func (r *MarketRepository) FindPurchasesByStudentID(ctx context.Context, studentID string) ([]domain.Purchase, error) {
	found, err := r.dao.FindPurchasesByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPurchasesByStudentID -> %w", err)
	}

	purchases := make([]domain.Purchase, len(found))
	for i, p := range found {
		purchases[i] = r.purchaseDaoToDomain(p)
	}

	return purchases, nil
}

func (r *MarketRepository) purchaseDaoToDomain(p dao.Purchase) domain.Purchase {
	return domain.Purchase{
		ID:          p.ID,
		StudentID:   p.StudentID,
		ItemID:      p.ItemID,
		ItemName:    p.ItemName,
		PurchasedAt: p.PurchasedAt,
	}
}
