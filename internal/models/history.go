package models

// HistoryEntry is one recorded stock change for a product.
type HistoryEntry struct {
	ID          int     `json:"id"`
	ProductID   *int    `json:"product_id"`
	OldQuantity *int    `json:"old_quantity"`
	NewQuantity *int    `json:"new_quantity"`
	ChangeDate  *string `json:"change_date"`
	UserInfo    *string `json:"user_info"`
}
