package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type MarketItem struct {
	ID    uint `gorm:"primaryKey;autoIncrement"`
	Name  string
	Price int
	Icon  string
}

type Purchase struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	StudentID   string `gorm:"index;not null"`
	ItemID      uint   `gorm:"not null"`
	ItemName    string
	PurchasedAt time.Time `gorm:"not null"`
}

type MarketDAO struct {
	db  *gorm.DB
	now func() time.Time
}

func NewMarketDAO(db *gorm.DB) *MarketDAO {
	return &MarketDAO{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (d *MarketDAO) FindAllItems(ctx context.Context) ([]MarketItem, error) {
	var items []MarketItem

	result := d.db.WithContext(ctx).Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Buy debits the item price and appends the purchase in one transaction. The
// debit is conditional on the balance, so concurrent purchases can never take
// a student below zero.
func (d *MarketDAO) Buy(ctx context.Context, studentID string, itemID uint) (Purchase, Student, error) {
	var (
		purchase Purchase
		student  Student
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, "id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		var item MarketItem
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		debit := tx.Model(&Student{}).
			Where("id = ? AND points >= ?", studentID, item.Price).
			UpdateColumn("points", gorm.Expr("points - ?", item.Price))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrInsufficientPoints
		}

		purchase = Purchase{
			StudentID:   studentID,
			ItemID:      item.ID,
			ItemName:    item.Name,
			PurchasedAt: d.now(),
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		return tx.First(&student, "id = ?", studentID).Error
	})
	if err != nil {
		return Purchase{}, Student{}, err
	}

	return purchase, student, nil
}

// FindPurchasesByStudentID returns the purchase log of a student, newest first.
func (d *MarketDAO) FindPurchasesByStudentID(ctx context.Context, studentID string) ([]Purchase, error) {
	var purchases []Purchase

	result := d.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("purchased_at DESC").
		Order("id DESC").
		Find(&purchases)
	if result.Error != nil {
		return nil, result.Error
	}

	return purchases, nil
}
