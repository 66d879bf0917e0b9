package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderItemCommandIsNotConstructed = errors.New(
	"CompleteOrderItemCommand must be created via NewCompleteOrderItemCommand constructor",
)

// CompleteOrderItemCommand represents a request to mark an order item as
// prepared. The current completion policy is all-or-nothing: completing any
// item completes the whole order, and the product code is carried for the
// call shape only, never matched against the order's items. Per-item
// completion tracking is a known limitation.
type CompleteOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	productCode string

	guard guard.ConstructorGuard
}

// NewCompleteOrderItemCommand creates a command to complete an order item.
// Validates that the order number is constructed and the product code is not
// empty.
func NewCompleteOrderItemCommand(orderNumber kernel.OrderNumber, productCode string) (CompleteOrderItemCommand, error) {
	command := CompleteOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setProductCode(productCode),
	); err != nil {
		return CompleteOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderItemCommandIsNotConstructed if validation fails.
func (c CompleteOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderItemCommandIsNotConstructed)
}

// OrderNumber returns the number of the order being completed.
func (c CompleteOrderItemCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// ProductCode returns the code of the item reported as prepared.
func (c CompleteOrderItemCommand) ProductCode() string {
	return c.productCode
}

func (c *CompleteOrderItemCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CompleteOrderItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}
