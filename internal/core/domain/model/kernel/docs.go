// Package kernel provides the value objects shared by the order and catalog models:
// identifiers (UUID) and delivery addresses (Address, ValueMap).
//
// Values are immutable once constructed and validate their own invariants, so
// they can be handed to the fee engine from concurrent requests without copying.
package kernel
