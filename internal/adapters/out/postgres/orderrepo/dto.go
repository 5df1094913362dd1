// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored across three tables: orders, order_lines and order_line_categories.
// Line and category positions keep the order of entry, which the fee engine depends on.
package orderrepo

import (
	"time"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// A nil FeeNegotiable means no delivery fee has been recorded yet.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	HasAddress    bool           `gorm:"not null;default:false"`
	Address       AddressDTO     `gorm:"embedded;embeddedPrefix:address_"`
	DeliveryMode  int            `gorm:"type:smallint;not null"`
	FeeAmount     *float64       `gorm:"type:numeric(12,2)"`
	FeeNegotiable *bool          `gorm:"index"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address embedded in the orders table.
type AddressDTO struct {
	Street      string  `gorm:"type:varchar(255)"`
	StreetCode  *string `gorm:"type:varchar(64)"`
	Quarter     string  `gorm:"type:varchar(255)"`
	QuarterCode *string `gorm:"type:varchar(64)"`
	City        string  `gorm:"type:varchar(255)"`
	CityCode    *string `gorm:"type:varchar(64)"`
	Region      string  `gorm:"type:varchar(255)"`
	RegionCode  *string `gorm:"type:varchar(64)"`
	Country     string  `gorm:"type:varchar(255)"`
	CountryCode *string `gorm:"type:varchar(64)"`
	PostalCode  *int
}

type OrderLineDTO struct {
	ID            uint              `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	Position      int               `gorm:"not null"`
	SKU           string            `gorm:"type:varchar(128);not null"`
	ShippingClass int               `gorm:"type:smallint;not null"`
	Quantity      int               `gorm:"not null"`
	TotalPrice    float64           `gorm:"type:numeric(14,2);not null"`
	Categories    []LineCategoryDTO `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

type LineCategoryDTO struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	LineID   uint   `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"type:varchar(255);not null"`
	IsFmcg   bool   `gorm:"not null"`
}

func (LineCategoryDTO) TableName() string {
	return "order_line_categories"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:           orderID,
		DeliveryMode: int(aggregate.DeliveryMode()),
	}

	if addr, ok := aggregate.Address(); ok {
		dto.HasAddress = true
		dto.Address = addressFromDomain(addr)
	}

	if fees := aggregate.DeliveryFees(); fees != nil {
		amount := fees.Amount()
		negotiable := fees.IsNegotiable()
		dto.FeeAmount = &amount
		dto.FeeNegotiable = &negotiable
	}

	lines := aggregate.Lines()
	dto.Lines = make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		variant := line.Variant()
		categories := variant.Categories()

		lineDTO := OrderLineDTO{
			OrderID:       orderID,
			Position:      i,
			SKU:           variant.SKU(),
			ShippingClass: int(variant.ShippingClass()),
			Quantity:      line.Quantity(),
			TotalPrice:    line.TotalPrice(),
			Categories:    make([]LineCategoryDTO, 0, len(categories)),
		}
		for j, c := range categories {
			lineDTO.Categories = append(lineDTO.Categories, LineCategoryDTO{
				Position: j,
				Name:     c.Name(),
				IsFmcg:   c.IsFmcg(),
			})
		}
		dto.Lines = append(dto.Lines, lineDTO)
	}

	return dto
}

func addressFromDomain(addr kernel.Address) AddressDTO {
	return AddressDTO{
		Street:      addr.Street().Name,
		StreetCode:  addr.Street().Code,
		Quarter:     addr.Quarter().Name,
		QuarterCode: addr.Quarter().Code,
		City:        addr.City().Name,
		CityCode:    addr.City().Code,
		Region:      addr.Region().Name,
		RegionCode:  addr.Region().Code,
		Country:     addr.Country().Name,
		CountryCode: addr.Country().Code,
		PostalCode:  addr.PostalCode(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Lines and categories must be loaded sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.HasAddress {
		addr, addrErr := addressToDomain(dto.Address)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &addr
	}

	lines := make([]order.OrderedLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var fees *fee.DeliveryFees
	if dto.FeeNegotiable != nil {
		amount := 0.0
		if dto.FeeAmount != nil {
			amount = *dto.FeeAmount
		}
		recorded, feeErr := fee.NewDeliveryFees(amount, *dto.FeeNegotiable)
		if feeErr != nil {
			return nil, feeErr
		}
		fees = &recorded
	}

	return order.RestoreOrder(id, address, order.DeliveryMode(dto.DeliveryMode), lines, fees)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(
		valueMap(dto.StreetCode, dto.Street),
		valueMap(dto.QuarterCode, dto.Quarter),
		valueMap(dto.CityCode, dto.City),
		valueMap(dto.RegionCode, dto.Region),
		valueMap(dto.CountryCode, dto.Country),
		dto.PostalCode,
	)
}

func valueMap(code *string, name string) kernel.ValueMap {
	return kernel.ValueMap{Code: code, Name: name}
}

func lineToDomain(dto OrderLineDTO) (order.OrderedLine, error) {
	categories := make([]catalog.Category, 0, len(dto.Categories))
	for _, c := range dto.Categories {
		category, err := catalog.NewCategory(c.Name, c.IsFmcg)
		if err != nil {
			return order.OrderedLine{}, err
		}
		categories = append(categories, category)
	}

	variant, err := catalog.NewProductVariant(dto.SKU, catalog.ShippingClass(dto.ShippingClass), categories)
	if err != nil {
		return order.OrderedLine{}, err
	}

	return order.NewOrderedLine(variant, dto.Quantity, dto.TotalPrice)
}

// Migrate creates or updates the order tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &OrderLineDTO{}, &LineCategoryDTO{})
}
