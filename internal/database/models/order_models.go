package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringArray stores modifier lists as a JSON blob column.
type StringArray []string

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan StringArray: %v", value)
	}

	return json.Unmarshal(bytes, a)
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

// CapturedOrder is the order-history row written at checkout, after the
// WhatsApp handoff payload is frozen. Money columns hold fixed-point
// strings, never floats.
type CapturedOrder struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	CustomerName string  `gorm:"type:varchar(128);not null"`
	Phone        string  `gorm:"type:varchar(64);not null"`
	OrderType    string  `gorm:"type:varchar(16);not null"`
	DeliveryZone string  `gorm:"type:varchar(64)"`
	Street       string  `gorm:"type:varchar(128)"`
	HouseNumber  string  `gorm:"type:varchar(16)"`
	Postcode     string  `gorm:"type:varchar(16)"`
	DeliveryTime string  `gorm:"type:varchar(32)"`
	Note         *string `gorm:"type:text"`

	Subtotal    string `gorm:"type:varchar(32);not null"`
	DeliveryFee string `gorm:"type:varchar(32);not null"`
	TotalAmount string `gorm:"type:varchar(32);not null"`

	Status     string `gorm:"type:varchar(32);not null;default:'pending'"`
	IPAddress  string `gorm:"type:varchar(64)"`
	DeviceInfo string `gorm:"type:varchar(128)"`

	CreatedAt time.Time

	Lines []CapturedOrderLine `gorm:"foreignKey:OrderID"`
}

// CapturedOrderLine is one cart line of a captured order.
type CapturedOrderLine struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	OrderID        int64  `gorm:"index;not null"`
	ItemNumber     string `gorm:"type:varchar(16);not null"`
	ItemName       string `gorm:"type:varchar(128);not null"`
	Quantity       int    `gorm:"not null"`
	SizeName       string `gorm:"type:varchar(32)"`
	PastaType      string `gorm:"type:varchar(32)"`
	Sauce          string `gorm:"type:varchar(32)"`
	SpecialRequest string `gorm:"type:varchar(32)"`

	Ingredients StringArray `gorm:"type:text"`
	Extras      StringArray `gorm:"type:text"`

	UnitPrice string `gorm:"type:varchar(32);not null"`
	LineTotal string `gorm:"type:varchar(32);not null"`
}
