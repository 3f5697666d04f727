package lalamove

import (
	"fmt"
	"strconv"
)

// Site-setting keys the store config is assembled from.
const (
	SettingKeyMarket         = "lalamove_market"
	SettingKeyServiceType    = "lalamove_service_type"
	SettingKeySandbox        = "lalamove_sandbox"
	SettingKeyStoreName      = "store_name"
	SettingKeyStorePhone     = "store_phone"
	SettingKeyStoreAddress   = "store_address"
	SettingKeyStoreLatitude  = "store_latitude"
	SettingKeyStoreLongitude = "store_longitude"
)

// ConfigFromSettings builds a StoreConfig from a site-settings key/value map.
// Every field except the sandbox flag is required.
func ConfigFromSettings(values map[string]string) (StoreConfig, error) {
	var cfg StoreConfig

	required := []string{
		SettingKeyMarket,
		SettingKeyServiceType,
		SettingKeyStoreName,
		SettingKeyStorePhone,
		SettingKeyStoreAddress,
		SettingKeyStoreLatitude,
		SettingKeyStoreLongitude,
	}
	for _, key := range required {
		if values[key] == "" {
			return cfg, fmt.Errorf("missing site setting %s", key)
		}
	}

	lat, err := strconv.ParseFloat(values[SettingKeyStoreLatitude], 64)
	if err != nil {
		return cfg, fmt.Errorf("invalid site setting %s: %w", SettingKeyStoreLatitude, err)
	}
	lng, err := strconv.ParseFloat(values[SettingKeyStoreLongitude], 64)
	if err != nil {
		return cfg, fmt.Errorf("invalid site setting %s: %w", SettingKeyStoreLongitude, err)
	}

	sandbox, _ := strconv.ParseBool(values[SettingKeySandbox])

	return StoreConfig{
		Market:         values[SettingKeyMarket],
		ServiceType:    values[SettingKeyServiceType],
		Sandbox:        sandbox,
		StoreName:      values[SettingKeyStoreName],
		StorePhone:     values[SettingKeyStorePhone],
		StoreAddress:   values[SettingKeyStoreAddress],
		StoreLatitude:  lat,
		StoreLongitude: lng,
	}, nil
}
