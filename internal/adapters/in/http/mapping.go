package http

import (
	"errors"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
)

func toAddress(in *Address) (*kernel.Address, error) {
	if in == nil {
		return nil, nil
	}

	addr, err := kernel.NewAddress(
		toValueMap(in.Street),
		toValueMap(in.Quarter),
		toValueMap(&in.City),
		toValueMap(in.Region),
		toValueMap(in.Country),
		in.PostalCode,
	)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func toValueMap(in *ValueMap) kernel.ValueMap {
	if in == nil {
		return kernel.ValueMap{}
	}
	return kernel.ValueMap{Code: in.Code, Name: in.Name}
}

func toLines(in []Line) ([]order.OrderedLine, error) {
	lines := make([]order.OrderedLine, 0, len(in))
	var lineErrs []error

	for _, l := range in {
		line, err := toLine(l)
		if err != nil {
			lineErrs = append(lineErrs, err)
			continue
		}
		lines = append(lines, line)
	}

	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}
	return lines, nil
}

func toLine(in Line) (order.OrderedLine, error) {
	class, err := catalog.ParseShippingClass(in.ShippingClass)
	if err != nil {
		return order.OrderedLine{}, err
	}

	categories := make([]catalog.Category, 0, len(in.Categories))
	for _, c := range in.Categories {
		category, catErr := catalog.NewCategory(c.Name, c.IsFmcg)
		if catErr != nil {
			return order.OrderedLine{}, catErr
		}
		categories = append(categories, category)
	}

	variant, err := catalog.NewProductVariant(in.SKU, class, categories)
	if err != nil {
		return order.OrderedLine{}, err
	}

	return order.NewOrderedLine(variant, in.Quantity, in.TotalPrice)
}

// toOrderParts converts the fields shared by quote and order bodies, reporting
// every invalid field at once.
func toOrderParts(
	mode string,
	address *Address,
	lines []Line,
) (order.DeliveryMode, *kernel.Address, []order.OrderedLine, error) {
	deliveryMode, modeErr := order.ParseDeliveryMode(mode)
	addr, addrErr := toAddress(address)
	orderLines, linesErr := toLines(lines)

	if err := errors.Join(modeErr, addrErr, linesErr); err != nil {
		return order.UnknownDeliveryMode, nil, nil, err
	}
	return deliveryMode, addr, orderLines, nil
}

// newCart builds an order that is priced but never stored; it gets a throwaway identity.
func newCart(mode order.DeliveryMode, addr *kernel.Address, lines []order.OrderedLine) (*order.Order, error) {
	return order.NewOrder(kernel.NewUUID(), addr, mode, lines)
}
