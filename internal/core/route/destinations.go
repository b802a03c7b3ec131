package route

import (
	"sort"
	"strings"

	"floodaware.app/internal/core/location"
)

var catalog = []Destination{
	{"Abia", "Abia", location.Coordinates{Latitude: 5.4527, Longitude: 7.5248}},
	{"Adamawa", "Adamawa", location.Coordinates{Latitude: 9.3265, Longitude: 12.3984}},
	{"AkwaIbom", "Akwa Ibom", location.Coordinates{Latitude: 5.0513, Longitude: 7.9329}},
	{"Anambra", "Anambra", location.Coordinates{Latitude: 6.2109, Longitude: 7.0758}},
	{"Bauchi", "Bauchi", location.Coordinates{Latitude: 10.3142, Longitude: 9.8463}},
	{"Bayelsa", "Bayelsa", location.Coordinates{Latitude: 4.7719, Longitude: 6.0699}},
	{"Benue", "Benue", location.Coordinates{Latitude: 7.1907, Longitude: 8.1297}},
	{"Borno", "Borno", location.Coordinates{Latitude: 11.8333, Longitude: 13.15}},
	{"CrossRiver", "Cross River", location.Coordinates{Latitude: 5.9631, Longitude: 8.335}},
	{"Delta", "Delta", location.Coordinates{Latitude: 5.8904, Longitude: 5.68}},
	{"Ebonyi", "Ebonyi", location.Coordinates{Latitude: 6.2649, Longitude: 8.0133}},
	{"Edo", "Edo", location.Coordinates{Latitude: 6.5244, Longitude: 5.9339}},
	{"Ekiti", "Ekiti", location.Coordinates{Latitude: 7.6216, Longitude: 5.2289}},
	{"Enugu", "Enugu", location.Coordinates{Latitude: 6.5244, Longitude: 7.5106}},
	{"Gombe", "Gombe", location.Coordinates{Latitude: 10.2897, Longitude: 11.1713}},
	{"Imo", "Imo", location.Coordinates{Latitude: 5.572, Longitude: 7.0588}},
	{"Jigawa", "Jigawa", location.Coordinates{Latitude: 12.1511, Longitude: 9.6517}},
	{"Kaduna", "Kaduna", location.Coordinates{Latitude: 10.5105, Longitude: 7.4165}},
	{"Kano", "Kano", location.Coordinates{Latitude: 12.0022, Longitude: 8.591}},
	{"Katsina", "Katsina", location.Coordinates{Latitude: 12.9849, Longitude: 7.6176}},
	{"Kebbi", "Kebbi", location.Coordinates{Latitude: 12.4508, Longitude: 4.1994}},
	{"Kogi", "Kogi", location.Coordinates{Latitude: 7.7969, Longitude: 6.7396}},
	{"Kwara", "Kwara", location.Coordinates{Latitude: 8.574, Longitude: 4.5501}},
	{"Lagos", "Lagos", location.Coordinates{Latitude: 6.5244, Longitude: 3.3792}},
	{"Nasarawa", "Nasarawa", location.Coordinates{Latitude: 8.538, Longitude: 8.322}},
	{"Niger", "Niger", location.Coordinates{Latitude: 9.081, Longitude: 6.587}},
	{"Ogun", "Ogun", location.Coordinates{Latitude: 6.9976, Longitude: 3.4737}},
	{"Ondo", "Ondo", location.Coordinates{Latitude: 7.2508, Longitude: 5.2103}},
	{"Osun", "Osun", location.Coordinates{Latitude: 7.5629, Longitude: 4.519}},
	{"Oyo", "Oyo", location.Coordinates{Latitude: 7.3776, Longitude: 3.947}},
	{"Plateau", "Plateau", location.Coordinates{Latitude: 9.2182, Longitude: 9.5175}},
	{"Rivers", "Rivers", location.Coordinates{Latitude: 4.8156, Longitude: 7.0498}},
	{"Sokoto", "Sokoto", location.Coordinates{Latitude: 13.0059, Longitude: 5.2476}},
	{"Taraba", "Taraba", location.Coordinates{Latitude: 8.8932, Longitude: 11.3748}},
	{"Yobe", "Yobe", location.Coordinates{Latitude: 12.1872, Longitude: 11.706}},
	{"Zamfara", "Zamfara", location.Coordinates{Latitude: 12.17, Longitude: 6.6618}},
	{"FCT", "Federal Capital Territory", location.Coordinates{Latitude: 9.0765, Longitude: 7.3986}},
}

var catalogIndex = func() map[string]Destination {
	idx := make(map[string]Destination, len(catalog))
	for _, d := range catalog {
		idx[strings.ToLower(d.Key)] = d
	}
	return idx
}()

// Destinations returns the selectable destinations sorted by display name
func Destinations() []Destination {
	out := make([]Destination, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupDestination resolves a destination key, case-insensitively.
// The returned coordinates are nil for an unknown key.
func LookupDestination(key string) (*Destination, *location.Coordinates) {
	d, ok := catalogIndex[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, nil
	}
	coords := d.Coordinates
	return &d, &coords
}

// IsKnownDestination reports whether key names a catalog entry
func IsKnownDestination(key string) bool {
	d, _ := LookupDestination(key)
	return d != nil
}
