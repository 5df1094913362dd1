// Package zone holds the reference tables of the delivery fee engine.
//
// A Definition is the plain, ordered content loaded from configuration; NewTables
// validates it and turns it into an immutable Tables value with normalized keys.
// Lookups return (price, found) so that each caller decides, visibly, what a
// missing entry means.
package zone
