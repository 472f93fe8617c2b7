package models

import "time"

// Ephemeral per-session records held in Redis. A session spreads over four
// independent keys (cart, packaging, phone, completion marker); any subset
// may be absent at a given moment.

const SessionTimeLayout = "2006-01-02T15:04:05"

type CartLine struct {
	MenuID   uint `json:"menuId"`
	Quantity int  `json:"quantity"`
}

type CartRecord struct {
	Items     []CartLine `json:"items"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

// NewCartRecord returns an empty cart stamped with the current time.
func NewCartRecord() *CartRecord {
	now := time.Now().Format(SessionTimeLayout)
	return &CartRecord{
		Items:     []CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindLine returns the cart line for menuID, or nil.
func (c *CartRecord) FindLine(menuID uint) *CartLine {
	for i := range c.Items {
		if c.Items[i].MenuID == menuID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveLine deletes the line for menuID, reporting whether it existed.
func (c *CartRecord) RemoveLine(menuID uint) bool {
	for i := range c.Items {
		if c.Items[i].MenuID == menuID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

type PackagingRecord struct {
	PackagingType string `json:"packagingType"`
	UpdatedAt     string `json:"updatedAt"`
}

type PhoneRecord struct {
	PhoneNumber string `json:"phone_number"`
	UpdatedAt   string `json:"updatedAt"`
}

// CompletionRecord marks a session as already committed. It lives only a few
// minutes; its presence blocks a re-commit of the same session.
type CompletionRecord struct {
	OrderID     uint   `json:"order_id"`
	CompletedAt string `json:"completed_at"`
}
