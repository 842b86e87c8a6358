package services

import "math"

// ServiceArea is static reference data: a named delivery zone with a fixed
// charge, matched by nearest coordinates at checkout.
type ServiceArea struct {
	Name           string
	DeliveryCharge float64
	Lat            float64
	Long           float64
}

var serviceAreas = []ServiceArea{
	{Name: "Gandhi Nagar", DeliveryCharge: 30, Lat: 23.2156, Long: 72.6369},
	{Name: "Maninagar", DeliveryCharge: 40, Lat: 22.9960, Long: 72.6036},
	{Name: "Satellite", DeliveryCharge: 50, Lat: 23.0300, Long: 72.5150},
	{Name: "Bopal", DeliveryCharge: 60, Lat: 23.0336, Long: 72.4651},
	{Name: "Chandkheda", DeliveryCharge: 45, Lat: 23.1130, Long: 72.5810},
	{Name: "Vastrapur", DeliveryCharge: 35, Lat: 23.0373, Long: 72.5293},
}

// DefaultDeliveryCharge applies when no coordinates and no area name are
// given at checkout.
const DefaultDeliveryCharge = 50

func ServiceAreas() []ServiceArea {
	out := make([]ServiceArea, len(serviceAreas))
	copy(out, serviceAreas)
	return out
}

func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// NearestServiceArea scans the static list and returns the closest area.
// Ties keep the earlier entry, so a coordinate exactly on an area always
// resolves to that area.
func NearestServiceArea(lat, long float64) ServiceArea {
	best := serviceAreas[0]
	bestDist := HaversineDistanceKm(lat, long, best.Lat, best.Long)
	for _, area := range serviceAreas[1:] {
		d := HaversineDistanceKm(lat, long, area.Lat, area.Long)
		if d < bestDist {
			best = area
			bestDist = d
		}
	}
	return best
}

// AreaByName resolves a manually selected area. The bool is false when the
// name is unknown.
func AreaByName(name string) (ServiceArea, bool) {
	for _, area := range serviceAreas {
		if area.Name == name {
			return area, true
		}
	}
	return ServiceArea{}, false
}

// DeliveryChargeFor picks the charge for a destination: a manually selected
// area wins, then nearest-by-coordinates, then the default. It never errors;
// checkout must stay completable with a bare address.
func DeliveryChargeFor(areaName string, lat, long *float64) float64 {
	if areaName != "" {
		if area, ok := AreaByName(areaName); ok {
			return area.DeliveryCharge
		}
	}
	if lat != nil && long != nil {
		return NearestServiceArea(*lat, *long).DeliveryCharge
	}
	return DefaultDeliveryCharge
}
