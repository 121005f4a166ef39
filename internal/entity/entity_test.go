package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCategoryIsCaseInsensitive(t *testing.T) {
	for _, key := range []string{"ptr", "PTR", "Bt", "cac", "AUTOMOTIVE_CB", "automotive_pa"} {
		_, ok := LookupCategory(key)
		assert.True(t, ok, key)
	}

	_, ok := LookupCategory("boilers")
	assert.False(t, ok)
	_, ok = LookupCategory("")
	assert.False(t, ok)
}

func TestNewContactValidatesRequiredFields(t *testing.T) {
	_, err := NewContact("", "a@b.c", "", "", "")
	assert.EqualError(t, err, "name is required")

	_, err = NewContact("Jordan", "", "", "", "")
	assert.EqualError(t, err, "email is required")

	contact, err := NewContact("Jordan", "a@b.c", "", "", "R1")
	assert.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "R1", contact.SiyamRef)
}

func TestPartHasDetail(t *testing.T) {
	p := &Part{Details: []Detail{{Name: "Core Size", Data: "650x440"}}}

	assert.True(t, p.HasDetail("Core Size"))
	assert.False(t, p.HasDetail("Weight"))
}
