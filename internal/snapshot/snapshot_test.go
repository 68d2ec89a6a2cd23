package snapshot

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza/internal/model"
)

func sampleBudget() model.Budget {
	b := model.DefaultBudget()
	b.ClientName = "ACME"
	b.ClientEmail = "hola@acme.pe"
	b.HourlyRate = 20
	b.Projects = []model.Project{
		{ID: "p1", Name: "Website", Items: []model.BudgetItem{
			{ID: "i1", Description: "Landing", PricingMode: model.PricingHourly, Hours: 10, UnitPrice: 20},
			{ID: "i2", Description: "Logo", PricingMode: model.PricingFixed, FixedPrice: 200},
		}},
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	in := sampleBudget()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, in.ClientName, out.ClientName)
	assert.Equal(t, in.ClientEmail, out.ClientEmail)
	assert.InDelta(t, in.HourlyRate, out.HourlyRate, 1e-9)
	assert.Equal(t, in.IGVEnabled, out.IGVEnabled)
	require.Len(t, out.Projects, 1)
	assert.Equal(t, in.Projects[0].Items, out.Projects[0].Items)
}

func TestWriteEnvelopeMetadata(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleBudget()))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	assert.Contains(t, raw, "version")
	assert.Contains(t, raw, "exportedAt")
	assert.JSONEq(t, "2", string(raw["projectCount"]))
	assert.JSONEq(t, "2", string(raw["itemCount"]))
}

func TestParseRejectsMissingRequiredField(t *testing.T) {
	base := sampleBudget()

	for _, drop := range []string{"clientName", "clientEmail", "projects", "terms", "hourlyRate"} {
		data, err := json.Marshal(base)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		delete(raw, drop)
		mangled, err := json.Marshal(raw)
		require.NoError(t, err)

		_, err = Parse(mangled)
		require.Error(t, err, "dropping %s should fail", drop)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}

func TestParseRejectsNonObject(t *testing.T) {
	for _, data := range []string{"[]", `"hello"`, "42", "not json at all"} {
		_, err := Parse([]byte(data))
		assert.ErrorIs(t, err, ErrInvalid, "input %q", data)
	}
}

func TestParseDefaultsIGVWhenAbsent(t *testing.T) {
	data, err := json.Marshal(sampleBudget())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	delete(raw, "igvEnabled")
	mangled, err := json.Marshal(raw)
	require.NoError(t, err)

	b, err := Parse(mangled)
	require.NoError(t, err)
	assert.True(t, b.IGVEnabled)
}

func TestParseKeepsExplicitIGVOff(t *testing.T) {
	in := sampleBudget()
	in.IGVEnabled = false
	data, err := json.Marshal(in)
	require.NoError(t, err)

	b, err := Parse(data)
	require.NoError(t, err)
	assert.False(t, b.IGVEnabled)
}

func TestParseIgnoresEnvelopeAndUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleBudget()))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	raw["someFutureField"] = json.RawMessage(`{"nested": true}`)
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	b, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "ACME", b.ClientName)
}
