package catalog

import (
	"errors"
	"strings"

	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/guard"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category is a catalogue category as seen by the fee engine: only its name and
// whether it groups fast-moving consumer goods (FMCG).
type Category struct { //nolint:recvcheck //using for validation
	name   string
	isFmcg bool

	guard guard.ConstructorGuard
}

func NewCategory(name string, isFmcg bool) (Category, error) {
	c := Category{
		isFmcg: isFmcg,
		guard:  guard.NewConstructorGuard(),
	}

	if err := c.setName(name); err != nil {
		return Category{}, err
	}

	return c, nil
}

func (c Category) Validate() error {
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c Category) Name() string { return c.name }

// IsFmcg reports whether products of this category are fast-moving consumer goods.
func (c Category) IsFmcg() bool { return c.isFmcg }

func (c *Category) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("category name")
	}

	c.name = name
	return nil
}
