package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza/internal/model"
)

func testBudget() model.Budget {
	return model.Budget{Projects: []model.Project{
		{ID: "aaa11111-0000-0000-0000-000000000000", Name: "Website", Items: []model.BudgetItem{
			{ID: "bbb22222-0000-0000-0000-000000000000", Description: "Landing"},
			{ID: "bcc33333-0000-0000-0000-000000000000", Description: "Logo"},
		}},
		{ID: "abc44444-0000-0000-0000-000000000000", Name: "App"},
	}}
}

func TestResolveProjectByIndex(t *testing.T) {
	b := testBudget()

	p, err := resolveProject(b, "2")
	require.NoError(t, err)
	assert.Equal(t, "App", p.Name)

	_, err = resolveProject(b, "0")
	assert.Error(t, err)
	_, err = resolveProject(b, "3")
	assert.Error(t, err)
}

func TestResolveProjectByName(t *testing.T) {
	p, err := resolveProject(testBudget(), "Website")
	require.NoError(t, err)
	assert.Equal(t, "Website", p.Name)
}

func TestResolveProjectByPrefix(t *testing.T) {
	b := testBudget()

	p, err := resolveProject(b, "aaa1")
	require.NoError(t, err)
	assert.Equal(t, "Website", p.Name)

	// "a" prefixes both project ids.
	_, err = resolveProject(b, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "be more specific")

	_, err = resolveProject(b, "zzz")
	assert.Error(t, err)
}

func TestResolveItem(t *testing.T) {
	p := testBudget().Projects[0]

	it, err := resolveItem(p, "1")
	require.NoError(t, err)
	assert.Equal(t, "Landing", it.Description)

	it, err = resolveItem(p, "bcc")
	require.NoError(t, err)
	assert.Equal(t, "Logo", it.Description)

	_, err = resolveItem(p, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "be more specific")

	_, err = resolveItem(p, "9")
	assert.Error(t, err)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "aaa11111", shortID("aaa11111-0000"))
	assert.Equal(t, "short", shortID("short"))
}
