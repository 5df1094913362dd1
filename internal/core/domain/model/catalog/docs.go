// Package catalog holds the product-side inputs of the delivery fee engine:
// the ordered ShippingClass scale, categories with their FMCG flag, and the
// ProductVariant referenced by order lines.
package catalog
