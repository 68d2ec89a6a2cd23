package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	b := DefaultBudget()
	b.Projects = []Project{
		{ID: "p1", Name: "Website", Items: []BudgetItem{
			{ID: "i1", Hours: 10, PricingMode: PricingHourly},
		}},
	}

	c := b.Clone()
	c.Projects[0].Name = "changed"
	c.Projects[0].Items[0].Hours = 99

	assert.Equal(t, "Website", b.Projects[0].Name)
	assert.InDelta(t, 10, b.Projects[0].Items[0].Hours, 1e-9)
}

func TestFindProjectAndItem(t *testing.T) {
	b := Budget{Projects: []Project{
		{ID: "p1", Items: []BudgetItem{{ID: "i1"}, {ID: "i2"}}},
		{ID: "p2"},
	}}

	assert.Equal(t, 0, b.FindProject("p1"))
	assert.Equal(t, 1, b.FindProject("p2"))
	assert.Equal(t, -1, b.FindProject("missing"))

	assert.Equal(t, 1, b.Projects[0].FindItem("i2"))
	assert.Equal(t, -1, b.Projects[0].FindItem("missing"))
	assert.Equal(t, -1, b.Projects[1].FindItem("i1"))
}

func TestItemCount(t *testing.T) {
	b := Budget{Projects: []Project{
		{ID: "p1", Items: []BudgetItem{{ID: "i1"}, {ID: "i2"}}},
		{ID: "p2", Items: []BudgetItem{{ID: "i3"}}},
		{ID: "p3"},
	}}
	assert.Equal(t, 3, b.ItemCount())

	assert.Zero(t, Budget{}.ItemCount())
}

func TestJSONFieldNames(t *testing.T) {
	b := DefaultBudget()
	b.ClientName = "ACME"
	b.Projects = []Project{{ID: "p1", Items: []BudgetItem{
		{ID: "i1", PricingMode: PricingFixed, FixedPrice: 200, UnitPrice: 15},
	}}}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	// Wire names match the interchange format.
	for _, key := range []string{"clientName", "clientEmail", "projects", "hourlyRate", "igvEnabled", "terms", "companyInfo"} {
		assert.Contains(t, raw, key)
	}

	var items []map[string]json.RawMessage
	var projects []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["projects"], &projects))
	require.NoError(t, json.Unmarshal(projects[0]["items"], &items))
	assert.Contains(t, items[0], "pricingMode")
	assert.Contains(t, items[0], "fixedPrice")
	assert.Contains(t, items[0], "unitPrice")
}

func TestDefaultBudget(t *testing.T) {
	b := DefaultBudget()
	assert.InDelta(t, DefaultHourlyRate, b.HourlyRate, 1e-9)
	assert.True(t, b.IGVEnabled)
	assert.Equal(t, "Tu Empresa", b.CompanyInfo.Name)
	assert.NotNil(t, b.Projects)
	assert.Contains(t, b.TimeEstimate, WeeksToken)
}
