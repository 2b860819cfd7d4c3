package domain

import "time"

type MarketItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Icon  string `json:"icon"`
}

// Purchase keeps a copy of the item name taken at purchase time, so renaming
// an item never rewrites history.
type Purchase struct {
	ID          uint      `json:"id"`
	StudentID   string    `json:"student_id"`
	ItemID      uint      `json:"item_id"`
	ItemName    string    `json:"item_name"`
	PurchasedAt time.Time `json:"purchased_at"`
}
