package lalamove

import "strconv"

// localeKey is the address locale convention of this upstream for the
// Philippine market. It is an integration constant, not configurable
// per request.
const localeKey = "en_PH"

// BuildStops constructs the two-stop route for a quotation: stop 0 is the
// pickup at the store, stop 1 the drop-off at the destination. The contact
// name on both stops is the store name; the recipient's own name is only
// attached later at order-creation time.
func BuildStops(cfg StoreConfig, deliveryAddress string, coord Coordinates) []Stop {
	return []Stop{
		{
			Location: Location{
				Lat: formatCoordinate(cfg.StoreLatitude),
				Lng: formatCoordinate(cfg.StoreLongitude),
			},
			Addresses: map[string]StopAddress{
				localeKey: {
					DisplayString: cfg.StoreAddress,
					Country:       cfg.Market,
				},
			},
			ContactName: cfg.StoreName,
		},
		{
			Location: Location{
				Lat: formatCoordinate(coord.Lat),
				Lng: formatCoordinate(coord.Lng),
			},
			Addresses: map[string]StopAddress{
				localeKey: {
					DisplayString: deliveryAddress,
					Country:       cfg.Market,
				},
			},
			ContactName: cfg.StoreName,
		},
	}
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
