package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-corp", slugify("ACME Corp"))
	assert.Equal(t, "maria-perez", slugify("  Maria Perez "))
	assert.Equal(t, "cliente", slugify(""))
	assert.Equal(t, "cliente", slugify("¡¡¡"))
	assert.Equal(t, "a-b-c", slugify("a_b-c"))
}
