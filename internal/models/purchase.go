package models

import "time"

// Purchase is an append-only acquisition record: a snapshot of the artwork
// at purchase time plus a receipt id and timestamp. The snapshot is embedded
// so the persisted record stays readable even if the catalog entry is later
// edited or deleted.
type Purchase struct {
	Artwork
	ReceiptID   string    `json:"receiptId"`
	PurchasedAt time.Time `json:"purchasedAt"`
}
