package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

const (
	// orderNumberPrefix starts every order number issued by the system.
	orderNumberPrefix = "ORD"
	// orderNumberDateLayout renders the issue date inside the order number.
	orderNumberDateLayout = "02012006"
	// orderNumberSuffixLength is the number of hex characters appended after the date.
	orderNumberSuffixLength = 3
)

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through the generator or OrderNumberFromString. This error is returned when
// validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via OrderNumberGenerator.Next or OrderNumberFromString")

// OrderNumber is a value object identifying an order with a human-readable
// composite of the issue date and a short unique suffix, for example
// "ORD01092026A3F". The zero value is invalid; use OrderNumberGenerator.Next
// for new numbers or OrderNumberFromString when reconstructing from storage.
//
// OrderNumber is immutable and safe to copy.
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// OrderNumberFromString parses an order number from its string representation.
// It is typically used when reconstructing orders from persistence or when
// accepting order numbers from external callers.
//
// Returns an error if the string does not carry the "ORD" prefix or is too
// short to contain a date and suffix.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !strings.HasPrefix(s, orderNumberPrefix) ||
		len(s) < len(orderNumberPrefix)+len(orderNumberDateLayout)+orderNumberSuffixLength {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q is not a valid order number", s),
		)
	}

	return OrderNumber{value: s, guard: guard.NewConstructorGuard()}, nil
}

// String returns the order number text, e.g. "ORD01092026A3F".
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the OrderNumber was properly constructed.
// Returns ErrOrderNumberIsNotConstructed for zero values.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// OrderNumberGenerator issues order numbers that are unique for the lifetime
// of the process. Each number combines the current date with a short random
// suffix; the generator remembers every issued value and regenerates the
// suffix on collision, so uniqueness holds even within a single day.
//
// The generator is safe for concurrent use.
type OrderNumberGenerator struct {
	mu     sync.Mutex
	issued map[string]struct{}
}

// NewOrderNumberGenerator creates a generator with an empty issued set.
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{
		issued: make(map[string]struct{}),
	}
}

// Next issues the next unique order number.
func (g *OrderNumberGenerator) Next() OrderNumber {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		candidate := orderNumberPrefix + time.Now().Format(orderNumberDateLayout) + randomSuffix()
		if _, taken := g.issued[candidate]; taken {
			continue
		}

		g.issued[candidate] = struct{}{}
		return OrderNumber{value: candidate, guard: guard.NewConstructorGuard()}
	}
}

// randomSuffix returns a short uppercase hex string derived from a random UUID.
func randomSuffix() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))[:orderNumberSuffixLength]
}
