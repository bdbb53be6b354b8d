package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient() Client {
	return Client{
		ClientName:  "Ravi Sharma",
		PhoneNumber: "9876543210",
		Requirement: "Purchase",
		BudgetMin:   "1500000",
		BudgetMax:   "2500000",
		Description: "Looking for a 2 BHK in sector 12",
	}
}

func TestValidateClient(t *testing.T) {
	c := validClient()
	require.NoError(t, ValidateClient(&c))
}

func TestValidateClientRequiredFields(t *testing.T) {
	c := validClient()
	c.ClientName = ""
	assert.Error(t, ValidateClient(&c))

	c = validClient()
	c.PhoneNumber = ""
	assert.Error(t, ValidateClient(&c))

	c = validClient()
	c.Requirement = ""
	assert.Error(t, ValidateClient(&c))
}

func TestValidateClientRequirementEnum(t *testing.T) {
	for _, req := range []string{"Sale", "Purchase", "Rent", "Lease"} {
		c := validClient()
		c.Requirement = req
		assert.NoErrorf(t, ValidateClient(&c), "requirement %q should be accepted", req)
	}

	c := validClient()
	c.Requirement = "Buy"
	assert.Error(t, ValidateClient(&c))
}

func TestValidateClientOptionalFields(t *testing.T) {
	c := validClient()
	c.BudgetMin = ""
	c.BudgetMax = ""
	c.Description = ""
	assert.NoError(t, ValidateClient(&c))
}
