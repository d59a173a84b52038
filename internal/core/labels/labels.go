// Package labels maps catalog type codes to their display labels
package labels

// group type codes carried on the group record
var groupTypes = map[int]string{
	1: "Adhoc",
	2: "Tracker",
	3: "Recontact",
}

// device type codes; 6 is the catch-all every unknown code falls back to
const fallbackDeviceCode = 6

var deviceTypes = map[int]string{
	1: "Desktop",
	2: "Mobile",
	3: "Tablet",
	4: "Desktop/Tablet",
	5: "Mobile/Tablet",
	6: "All Devices",
}

// GroupType returns the display label for a group type code.
// A nil code or an unknown code renders as the empty string
func GroupType(code *int) string {
	if code == nil {
		return ""
	}
	return groupTypes[*code]
}

// DeviceType returns the display label for a device code,
// falling back to the catch-all label for unknown codes
func DeviceType(code int) string {
	if v, ok := deviceTypes[code]; ok {
		return v
	}
	return deviceTypes[fallbackDeviceCode]
}
