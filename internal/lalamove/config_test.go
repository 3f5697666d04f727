package lalamove

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func settingsMapForTest() map[string]string {
	return map[string]string{
		"lalamove_market":       "PH",
		"lalamove_service_type": "MOTORCYCLE",
		"lalamove_sandbox":      "true",
		"store_name":            "Beracah Kitchen",
		"store_phone":           "+639170000000",
		"store_address":         "456 Branch Ave, Quezon City",
		"store_latitude":        "14.6331",
		"store_longitude":       "121.0452",
	}
}

func TestConfigFromSettings(t *testing.T) {
	cfg, err := ConfigFromSettings(settingsMapForTest())
	require.NoError(t, err)

	require.Equal(t, "PH", cfg.Market)
	require.Equal(t, "MOTORCYCLE", cfg.ServiceType)
	require.True(t, cfg.Sandbox)
	require.Equal(t, "Beracah Kitchen", cfg.StoreName)
	require.Equal(t, 14.6331, cfg.StoreLatitude)
	require.Equal(t, 121.0452, cfg.StoreLongitude)
}

func TestConfigFromSettingsMissingKey(t *testing.T) {
	values := settingsMapForTest()
	delete(values, "store_phone")

	_, err := ConfigFromSettings(values)
	require.Error(t, err)
	require.Contains(t, err.Error(), "store_phone")
}

func TestConfigFromSettingsInvalidCoordinate(t *testing.T) {
	values := settingsMapForTest()
	values["store_latitude"] = "not-a-number"

	_, err := ConfigFromSettings(values)
	require.Error(t, err)
	require.Contains(t, err.Error(), "store_latitude")
}

func TestConfigFromSettingsSandboxDefaultsToFalse(t *testing.T) {
	values := settingsMapForTest()
	delete(values, "lalamove_sandbox")

	cfg, err := ConfigFromSettings(values)
	require.NoError(t, err)
	require.False(t, cfg.Sandbox)
}
