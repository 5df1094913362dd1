package order

import (
	"errors"
	"slices"

	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the read-only view of a customer order that the delivery fee engine prices.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Delivery mode is one of the known modes
//   - Every line is a constructed OrderedLine
//   - The address may be absent; pricing then fails with a missing-destination error
//     instead of the order being unconstructible, because carts are priced while the
//     customer is still filling the checkout form
type Order struct {
	id           kernel.UUID
	address      *kernel.Address
	deliveryMode DeliveryMode
	lines        []OrderedLine

	// deliveryFees is the last recorded result, nil until a fee has been computed.
	deliveryFees *fee.DeliveryFees

	isConstructed bool
}

// NewOrder creates an order with no recorded delivery fee.
//
// Example:
//
//	addr, _ := kernel.NewAddress(street, quarter, city, region, country, nil)
//	o, err := order.NewOrder(kernel.NewUUID(), &addr, order.HomeDelivery, lines)
func NewOrder(id kernel.UUID, address *kernel.Address, mode DeliveryMode, lines []OrderedLine) (*Order, error) {
	return RestoreOrder(id, address, mode, lines, nil)
}

// RestoreOrder rebuilds an order from persistence, including a previously recorded fee.
func RestoreOrder(
	id kernel.UUID,
	address *kernel.Address,
	mode DeliveryMode,
	lines []OrderedLine,
	deliveryFees *fee.DeliveryFees,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAddress(address),
		o.setDeliveryMode(mode),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	if deliveryFees != nil {
		recorded := *deliveryFees
		o.deliveryFees = &recorded
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Address returns the delivery address and whether the order has one.
func (o *Order) Address() (kernel.Address, bool) {
	if o.address == nil {
		return kernel.Address{}, false
	}
	return *o.address, true
}

func (o *Order) DeliveryMode() DeliveryMode {
	return o.deliveryMode
}

// Lines returns the order lines in the order they were entered.
func (o *Order) Lines() []OrderedLine {
	return slices.Clone(o.lines)
}

// UnitCount is the number of units across all lines (sum of quantities), not the
// number of lines.
func (o *Order) UnitCount() int {
	count := 0
	for _, l := range o.lines {
		count += l.Quantity()
	}
	return count
}

// TotalPrice is the sum of line totals.
func (o *Order) TotalPrice() float64 {
	total := 0.0
	for _, l := range o.lines {
		total += l.TotalPrice()
	}
	return total
}

// DeliveryFees returns the recorded fee, or nil if none was recorded yet.
func (o *Order) DeliveryFees() *fee.DeliveryFees {
	if o.deliveryFees == nil {
		return nil
	}
	recorded := *o.deliveryFees
	return &recorded
}

// ApplyDeliveryFees records the result of a fee computation on the order.
func (o *Order) ApplyDeliveryFees(fees fee.DeliveryFees) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.deliveryFees = &fees
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	addr := *address
	o.address = &addr
	return nil
}

func (o *Order) setDeliveryMode(mode DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.deliveryMode = mode
	return nil
}

func (o *Order) setLines(lines []OrderedLine) error {
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}
