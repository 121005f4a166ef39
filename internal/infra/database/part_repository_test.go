package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixTSQuery(t *testing.T) {
	assert.Equal(t, "r12:*", prefixTSQuery("R12"))
	assert.Equal(t, "fh12:* & volvo:*", prefixTSQuery("FH12 Volvo"))

	// Punctuation acts as a separator, keeping tsquery syntax out of
	// the expression.
	assert.Equal(t, "a1:* & b2:*", prefixTSQuery("A1/B2"))
	assert.Equal(t, "r12:*", prefixTSQuery("  r12! "))

	// Nothing searchable left means no query at all.
	assert.Equal(t, "", prefixTSQuery("!&|()"))
	assert.Equal(t, "", prefixTSQuery(""))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `r12`, escapeLike("r12"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
}
