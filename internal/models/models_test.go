package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoolingStrategy(t *testing.T) {
	cases := map[string]CoolingStrategy{
		"PASSIVE":            Passive,
		" passive ":          Passive,
		"PASSIVE_COOLING":    Passive,
		"high_active":        HighActive,
		"HI_ACTIVE_COOLING":  HighActive,
		"MEDIUM_ACTIVE":      MediumActive,
		"med_active_cooling": MediumActive,
	}
	for in, want := range cases {
		got, err := ParseCoolingStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCoolingStrategy("liquid")
	assert.Error(t, err)
}

func TestParseTargetAndBreach(t *testing.T) {
	for in, want := range map[string]Target{"controller": ToController, "TO_CONTROLLER": ToController, "email": ToEmail, "to_email": ToEmail} {
		got, err := ParseTarget(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseTarget("pager")
	assert.Error(t, err)

	for in, want := range map[string]Breach{"normal": Normal, "TOO_LOW": TooLow, " too_high": TooHigh} {
		got, err := ParseBreach(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err = ParseBreach("warm")
	assert.Error(t, err)
}

func TestBreachCodes(t *testing.T) {
	assert.Equal(t, 0, Normal.Code())
	assert.Equal(t, 1, TooLow.Code())
	assert.Equal(t, 2, TooHigh.Code())
}

func TestAlertRecordJSON(t *testing.T) {
	rec := AlertRecord{ID: "a", Target: ToEmail, Strategy: MediumActive, TemperatureC: 41, Breach: TooHigh}
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"target":"EMAIL"`)
	assert.Contains(t, string(b), `"strategy":"MEDIUM_ACTIVE"`)
	assert.Contains(t, string(b), `"breach":"TOO_HIGH"`)

	var back AlertRecord
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, rec.Target, back.Target)
	assert.Equal(t, rec.Strategy, back.Strategy)
	assert.Equal(t, rec.Breach, back.Breach)
}

func TestInvalidEnumsDoNotMarshal(t *testing.T) {
	_, err := json.Marshal(DeviceProfile{Strategy: CoolingStrategy(9)})
	assert.Error(t, err)
	assert.False(t, CoolingStrategy(9).Valid())
	assert.Equal(t, "CoolingStrategy(9)", CoolingStrategy(9).String())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleViewer, r)

	r, err = ParseRole(" Operator ")
	require.NoError(t, err)
	assert.Equal(t, RoleOperator, r)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}

func TestRoleAllows(t *testing.T) {
	assert.True(t, RoleOperator.Allows(RoleViewer))
	assert.True(t, RoleOperator.Allows(RoleOperator))
	assert.True(t, RoleViewer.Allows(RoleViewer))
	assert.False(t, RoleViewer.Allows(RoleOperator))
	assert.False(t, Role("").Allows(RoleViewer))
	assert.False(t, Role("root").Allows(RoleViewer))
}
