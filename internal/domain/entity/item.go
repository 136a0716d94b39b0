package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a product sold at the register
type Item struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Price     int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	ImagePath string    `gorm:"size:500" json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Groups []GroupItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

// MarshalJSON converts cents to decimal and flattens the group name
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Group string  `json:"group,omitempty"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
		Group: i.GroupName(),
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// GroupName returns the first group the item belongs to.
func (i *Item) GroupName() string {
	if len(i.Groups) == 0 {
		return ""
	}
	return i.Groups[0].GroupName
}

// GetPriceDecimal returns the price as a decimal
func (i *Item) GetPriceDecimal() float64 {
	return float64(i.Price) / 100
}

// GroupItem links an item to a named register group (e.g. "Drinks")
type GroupItem struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	GroupName string    `gorm:"size:100;not null;index" json:"group_name"`
	ItemID    uuid.UUID `gorm:"type:char(36);not null;index" json:"item_id"`
}

// BeforeCreate generates a UUID before creating a new group link
func (g *GroupItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GroupItem model
func (GroupItem) TableName() string {
	return "group_items"
}
