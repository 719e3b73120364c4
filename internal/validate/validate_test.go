package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckerCollectsFailures(t *testing.T) {
	var c Checker
	c.Required("name", " ")
	c.NonNegative("price", -5)
	c.Positive("maxCapacity", 0)
	c.Range("taxRate", 101, 0, 100)

	err := c.Err()
	assert.True(t, Is(err))
	assert.Equal(t,
		"name is required; price must not be negative; maxCapacity must be greater than zero; taxRate must be between 0 and 100",
		err.Error())
}

func TestCheckerPasses(t *testing.T) {
	var c Checker
	name := "Tusker"
	c.RequiredPtr("name", &name)
	c.Present("price", true)
	c.NonNegative("price", 0)
	c.OneOf("type", "Beer", true, nil)
	assert.NoError(t, c.Err())
}

func TestRequiredPtrNil(t *testing.T) {
	var c Checker
	c.RequiredPtr("origin", nil)
	assert.EqualError(t, c.Err(), "origin is required")
}

func TestOneOfMessage(t *testing.T) {
	var c Checker
	c.OneOf("paymentMethod", "Card", false, []string{"Mpesa", "Cash"})
	assert.EqualError(t, c.Err(), `paymentMethod "Card" is not one of Mpesa, Cash`)
}

func TestIsSeesWrapped(t *testing.T) {
	err := fmt.Errorf("create: %w", Errorf("bad %s", "input"))
	assert.True(t, Is(err))
	assert.False(t, Is(fmt.Errorf("storage down")))
}

type color string

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"red", "blue"}, Names([]color{"red", "blue"}))
}
