package commands

import (
	"errors"
	"slices"

	"dispatch/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemRequestsAreRequired = errors.New("at least one item request is required")
	ErrProductCodeIsRequired   = errors.New("product code is required")
	ErrQuantityIsInvalid       = errors.New("quantity must be greater than 0")
)

// ItemRequest is one requested line of a new order: what to prepare, how
// many, and any toppings. The product code is resolved against the catalog
// during handling; requests with unknown codes are dropped there, not here.
type ItemRequest struct {
	ProductCode string
	Quantity    int
	Toppings    []string
}

// PlaceOrderCommand represents a request to place a new order from a list of
// item requests.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand([]ItemRequest{
//	    {ProductCode: "P001", Quantity: 2},
//	    {ProductCode: "D001", Quantity: 1, Toppings: []string{"ice"}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, catalog, orderNumbers)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	itemRequests []ItemRequest

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that at least one item is requested and that every request has a
// product code and a positive quantity.
func NewPlaceOrderCommand(itemRequests []ItemRequest) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setItemRequests(itemRequests); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ItemRequests returns a copy of the requested items in request order.
func (c PlaceOrderCommand) ItemRequests() []ItemRequest {
	return slices.Clone(c.itemRequests)
}

func (c *PlaceOrderCommand) setItemRequests(itemRequests []ItemRequest) error {
	if len(itemRequests) == 0 {
		return ErrItemRequestsAreRequired
	}

	for _, request := range itemRequests {
		if request.ProductCode == "" {
			return ErrProductCodeIsRequired
		}
		if request.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.itemRequests = slices.Clone(itemRequests)
	return nil
}
