package catalog

import (
	"errors"
	"slices"

	"deliveryfee/internal/pkg/guard"
)

var ErrProductVariantIsNotConstructed = errors.New(
	"ProductVariant must be created via NewProductVariant constructor",
)

// ProductVariant is the sellable unit referenced by an order line. Categories are
// kept in catalogue order; the first one is the primary category.
type ProductVariant struct { //nolint:recvcheck //using for validation
	sku           string
	shippingClass ShippingClass
	categories    []Category

	guard guard.ConstructorGuard
}

func NewProductVariant(sku string, shippingClass ShippingClass, categories []Category) (ProductVariant, error) {
	v := ProductVariant{
		sku:   sku,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setShippingClass(shippingClass),
		v.setCategories(categories),
	); err != nil {
		return ProductVariant{}, err
	}

	return v, nil
}

func (v ProductVariant) Validate() error {
	return v.guard.Validate(ErrProductVariantIsNotConstructed)
}

func (v ProductVariant) SKU() string { return v.sku }

func (v ProductVariant) ShippingClass() ShippingClass { return v.shippingClass }

// Categories returns a copy of the ordered category list.
func (v ProductVariant) Categories() []Category {
	return slices.Clone(v.categories)
}

// IsFmcg reports whether the variant's primary category is flagged FMCG. Only the
// first category is inspected, even when later ones disagree; a variant without
// categories is not FMCG.
func (v ProductVariant) IsFmcg() bool {
	if len(v.categories) == 0 {
		return false
	}
	return v.categories[0].IsFmcg()
}

func (v *ProductVariant) setShippingClass(shippingClass ShippingClass) error {
	if err := shippingClass.Validate(); err != nil {
		return err
	}

	v.shippingClass = shippingClass
	return nil
}

func (v *ProductVariant) setCategories(categories []Category) error {
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	v.categories = slices.Clone(categories)
	return nil
}
