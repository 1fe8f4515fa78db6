package orders

import (
	"fmt"

	"gorm.io/gorm"

	"piccante-system/internal/checkout"
	"piccante-system/internal/database/models"
)

// Repository persists captured orders for the admin order history.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Capture stores the handoff payload as one order row plus its lines.
func (r *Repository) Capture(order checkout.Order, ipAddress, deviceInfo string) (*models.CapturedOrder, error) {
	row := &models.CapturedOrder{
		CustomerName: order.Customer.Name,
		Phone:        order.Customer.Phone,
		OrderType:    string(order.Type),
		Street:       order.Customer.Street,
		HouseNumber:  order.Customer.HouseNumber,
		Postcode:     order.Customer.Postcode,
		DeliveryTime: deliveryTime(order.Customer),
		Subtotal:     order.Totals.Subtotal.StringFixed(2),
		DeliveryFee:  order.Totals.DeliveryFee.StringFixed(2),
		TotalAmount:  order.Totals.Total.StringFixed(2),
		Status:       "pending",
		IPAddress:    ipAddress,
		DeviceInfo:   deviceInfo,
	}
	if order.Zone != nil {
		row.DeliveryZone = order.Zone.Label
	}
	if order.Customer.Note != "" {
		note := order.Customer.Note
		row.Note = &note
	}

	for _, line := range order.Lines {
		row.Lines = append(row.Lines, models.CapturedOrderLine{
			ItemNumber:     line.Number,
			ItemName:       line.Name,
			Quantity:       line.Quantity,
			SizeName:       line.SizeName,
			PastaType:      line.PastaType,
			Sauce:          line.Sauce,
			SpecialRequest: line.SpecialRequest,
			Ingredients:    models.StringArray(line.Ingredients),
			Extras:         models.StringArray(line.Extras),
			UnitPrice:      line.UnitPrice.StringFixed(2),
			LineTotal:      line.LineTotal.StringFixed(2),
		})
	}

	if err := r.db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to capture order: %w", err)
	}
	return row, nil
}

// List returns recent orders newest first.
func (r *Repository) List(limit int) ([]models.CapturedOrder, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []models.CapturedOrder
	err := r.db.Preload("Lines").
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, nil
}

func deliveryTime(c checkout.Customer) string {
	if c.DeliveryTime == "asap" || c.SpecificTime == "" {
		return "asap"
	}
	return c.SpecificTime
}
