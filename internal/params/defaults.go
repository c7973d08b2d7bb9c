package params

// Definition describes one dashboard parameter: the key it is stored under,
// a human-readable label, the unit shown next to the input, and the default
// value used when neither the saved snapshot nor a link override supplies one.
type Definition struct {
	Key     string
	Label   string
	Unit    string
	Default string
}

// Parameter keys. Values are always strings; numeric interpretation is the
// consumer's responsibility (see Float / Int accessors on Store).
const (
	KeyCarrierFrequency  = "carrier-frequency"
	KeyBandwidth         = "bandwidth"
	KeySatelliteCount    = "satellite-count"
	KeyOrbitAltitude     = "orbit-altitude"
	KeyInclination       = "inclination"
	KeyMinElevation      = "min-elevation"
	KeyTxPower           = "tx-power"
	KeyConstellationName = "constellation-name"
)

// Keys reserved for drill-down navigation. They never appear in the store
// itself, only in detail-view URLs.
const (
	KeyDetailType = "detail-type"
	KeyDetailID   = "detail-id"
)

var definitions = []Definition{
	{Key: KeyConstellationName, Label: "Constellation", Unit: "", Default: "NTN-DEMO"},
	{Key: KeyCarrierFrequency, Label: "Carrier frequency", Unit: "GHz", Default: "2.0"},
	{Key: KeyBandwidth, Label: "Bandwidth", Unit: "MHz", Default: "20"},
	{Key: KeySatelliteCount, Label: "Satellites", Unit: "", Default: "6"},
	{Key: KeyOrbitAltitude, Label: "Orbit altitude", Unit: "km", Default: "600"},
	{Key: KeyInclination, Label: "Inclination", Unit: "deg", Default: "53"},
	{Key: KeyMinElevation, Label: "Min elevation", Unit: "deg", Default: "25"},
	{Key: KeyTxPower, Label: "TX power", Unit: "dBm", Default: "33"},
}

// Definitions returns the known parameter definitions in display order.
// The returned slice is a copy.
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// Defaults returns the default value for every known parameter key.
func Defaults() map[string]string {
	m := make(map[string]string, len(definitions))
	for _, d := range definitions {
		m[d.Key] = d.Default
	}
	return m
}

// IsKnown reports whether key belongs to a defined parameter. Unknown keys
// are still accepted by the store; this only drives display decisions.
func IsKnown(key string) bool {
	for _, d := range definitions {
		if d.Key == key {
			return true
		}
	}
	return false
}
