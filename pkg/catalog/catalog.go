// Package catalog holds the curated city-to-zone registry used by pickers
// and label resolution. Many cities intentionally share one IANA zone
// (Miami and New York both map to America/New_York): the catalog models
// city aliasing, not a 1:1 zone list. Entry ids are unique; IANA names are
// not.
package catalog

import "strings"

// Entry is one curated city in the picker list.
type Entry struct {
	ID       string
	IANAName string
	Label    string
}

// Sorted by region, then by city.
var entries = []Entry{
	// UTC
	{ID: "utc", IANAName: "UTC", Label: "UTC"},

	// Africa
	{ID: "af-cairo", IANAName: "Africa/Cairo", Label: "Cairo"},
	{ID: "af-casablanca", IANAName: "Africa/Casablanca", Label: "Casablanca"},
	{ID: "af-johannesburg", IANAName: "Africa/Johannesburg", Label: "Johannesburg"},
	{ID: "af-lagos", IANAName: "Africa/Lagos", Label: "Lagos"},
	{ID: "af-nairobi", IANAName: "Africa/Nairobi", Label: "Nairobi"},
	{ID: "af-tunis", IANAName: "Africa/Tunis", Label: "Tunis"},
	{ID: "af-accra", IANAName: "Africa/Accra", Label: "Accra"},
	{ID: "af-addis", IANAName: "Africa/Addis_Ababa", Label: "Addis Ababa"},
	{ID: "af-algiers", IANAName: "Africa/Algiers", Label: "Algiers"},
	{ID: "af-capetown", IANAName: "Africa/Johannesburg", Label: "Cape Town"},

	// Americas - North
	{ID: "na-newyork", IANAName: "America/New_York", Label: "New York"},
	{ID: "na-losangeles", IANAName: "America/Los_Angeles", Label: "Los Angeles"},
	{ID: "na-chicago", IANAName: "America/Chicago", Label: "Chicago"},
	{ID: "na-denver", IANAName: "America/Denver", Label: "Denver"},
	{ID: "na-phoenix", IANAName: "America/Phoenix", Label: "Phoenix"},
	{ID: "na-toronto", IANAName: "America/Toronto", Label: "Toronto"},
	{ID: "na-vancouver", IANAName: "America/Vancouver", Label: "Vancouver"},
	{ID: "na-montreal", IANAName: "America/Montreal", Label: "Montreal"},
	{ID: "na-miami", IANAName: "America/New_York", Label: "Miami"},
	{ID: "na-seattle", IANAName: "America/Los_Angeles", Label: "Seattle"},
	{ID: "na-sanfrancisco", IANAName: "America/Los_Angeles", Label: "San Francisco"},
	{ID: "na-lasvegas", IANAName: "America/Los_Angeles", Label: "Las Vegas"},
	{ID: "na-dallas", IANAName: "America/Chicago", Label: "Dallas"},
	{ID: "na-houston", IANAName: "America/Chicago", Label: "Houston"},
	{ID: "na-atlanta", IANAName: "America/New_York", Label: "Atlanta"},
	{ID: "na-boston", IANAName: "America/New_York", Label: "Boston"},
	{ID: "na-detroit", IANAName: "America/Detroit", Label: "Detroit"},
	{ID: "na-anchorage", IANAName: "America/Anchorage", Label: "Anchorage"},

	// Americas - Central & Caribbean
	{ID: "ca-mexico", IANAName: "America/Mexico_City", Label: "Mexico City"},
	{ID: "ca-cancun", IANAName: "America/Cancun", Label: "Cancun"},
	{ID: "ca-havana", IANAName: "America/Havana", Label: "Havana"},
	{ID: "ca-panama", IANAName: "America/Panama", Label: "Panama City"},
	{ID: "ca-costarica", IANAName: "America/Costa_Rica", Label: "San José (CR)"},
	{ID: "ca-guatemala", IANAName: "America/Guatemala", Label: "Guatemala City"},
	{ID: "ca-jamaica", IANAName: "America/Jamaica", Label: "Kingston"},
	{ID: "ca-puertorico", IANAName: "America/Puerto_Rico", Label: "San Juan (PR)"},
	{ID: "ca-santo", IANAName: "America/Santo_Domingo", Label: "Santo Domingo"},

	// Americas - South
	{ID: "sa-saopaulo", IANAName: "America/Sao_Paulo", Label: "São Paulo"},
	{ID: "sa-buenosaires", IANAName: "America/Argentina/Buenos_Aires", Label: "Buenos Aires"},
	{ID: "sa-rio", IANAName: "America/Sao_Paulo", Label: "Rio de Janeiro"},
	{ID: "sa-lima", IANAName: "America/Lima", Label: "Lima"},
	{ID: "sa-bogota", IANAName: "America/Bogota", Label: "Bogotá"},
	{ID: "sa-santiago", IANAName: "America/Santiago", Label: "Santiago"},
	{ID: "sa-caracas", IANAName: "America/Caracas", Label: "Caracas"},
	{ID: "sa-medellin", IANAName: "America/Bogota", Label: "Medellín"},
	{ID: "sa-montevideo", IANAName: "America/Montevideo", Label: "Montevideo"},
	{ID: "sa-lapaz", IANAName: "America/La_Paz", Label: "La Paz"},
	{ID: "sa-quito", IANAName: "America/Guayaquil", Label: "Quito"},

	// Asia - East
	{ID: "ae-tokyo", IANAName: "Asia/Tokyo", Label: "Tokyo"},
	{ID: "ae-seoul", IANAName: "Asia/Seoul", Label: "Seoul"},
	{ID: "ae-shanghai", IANAName: "Asia/Shanghai", Label: "Shanghai"},
	{ID: "ae-beijing", IANAName: "Asia/Shanghai", Label: "Beijing"},
	{ID: "ae-hongkong", IANAName: "Asia/Hong_Kong", Label: "Hong Kong"},
	{ID: "ae-taipei", IANAName: "Asia/Taipei", Label: "Taipei"},
	{ID: "ae-osaka", IANAName: "Asia/Tokyo", Label: "Osaka"},
	{ID: "ae-shenzhen", IANAName: "Asia/Shanghai", Label: "Shenzhen"},
	{ID: "ae-guangzhou", IANAName: "Asia/Shanghai", Label: "Guangzhou"},

	// Asia - Southeast
	{ID: "as-singapore", IANAName: "Asia/Singapore", Label: "Singapore"},
	{ID: "as-bangkok", IANAName: "Asia/Bangkok", Label: "Bangkok"},
	{ID: "as-jakarta", IANAName: "Asia/Jakarta", Label: "Jakarta"},
	{ID: "as-bali", IANAName: "Asia/Makassar", Label: "Bali"},
	{ID: "as-manila", IANAName: "Asia/Manila", Label: "Manila"},
	{ID: "as-kualalumpur", IANAName: "Asia/Kuala_Lumpur", Label: "Kuala Lumpur"},
	{ID: "as-hochiminhcity", IANAName: "Asia/Ho_Chi_Minh", Label: "Ho Chi Minh City"},
	{ID: "as-hanoi", IANAName: "Asia/Ho_Chi_Minh", Label: "Hanoi"},
	{ID: "as-phnompenh", IANAName: "Asia/Phnom_Penh", Label: "Phnom Penh"},
	{ID: "as-yangon", IANAName: "Asia/Yangon", Label: "Yangon"},

	// Asia - South
	{ID: "ai-mumbai", IANAName: "Asia/Kolkata", Label: "Mumbai"},
	{ID: "ai-delhi", IANAName: "Asia/Kolkata", Label: "New Delhi"},
	{ID: "ai-bangalore", IANAName: "Asia/Kolkata", Label: "Bangalore"},
	{ID: "ai-chennai", IANAName: "Asia/Kolkata", Label: "Chennai"},
	{ID: "ai-kolkata", IANAName: "Asia/Kolkata", Label: "Kolkata"},
	{ID: "ai-dhaka", IANAName: "Asia/Dhaka", Label: "Dhaka"},
	{ID: "ai-karachi", IANAName: "Asia/Karachi", Label: "Karachi"},
	{ID: "ai-lahore", IANAName: "Asia/Karachi", Label: "Lahore"},
	{ID: "ai-colombo", IANAName: "Asia/Colombo", Label: "Colombo"},
	{ID: "ai-kathmandu", IANAName: "Asia/Kathmandu", Label: "Kathmandu"},

	// Asia - West / Middle East
	{ID: "aw-dubai", IANAName: "Asia/Dubai", Label: "Dubai"},
	{ID: "aw-abudhabi", IANAName: "Asia/Dubai", Label: "Abu Dhabi"},
	{ID: "aw-riyadh", IANAName: "Asia/Riyadh", Label: "Riyadh"},
	{ID: "aw-jeddah", IANAName: "Asia/Riyadh", Label: "Jeddah"},
	{ID: "aw-doha", IANAName: "Asia/Qatar", Label: "Doha"},
	{ID: "aw-kuwait", IANAName: "Asia/Kuwait", Label: "Kuwait City"},
	{ID: "aw-bahrain", IANAName: "Asia/Bahrain", Label: "Manama"},
	{ID: "aw-muscat", IANAName: "Asia/Muscat", Label: "Muscat"},
	{ID: "aw-tehran", IANAName: "Asia/Tehran", Label: "Tehran"},
	{ID: "aw-baghdad", IANAName: "Asia/Baghdad", Label: "Baghdad"},
	{ID: "aw-jerusalem", IANAName: "Asia/Jerusalem", Label: "Jerusalem"},
	{ID: "aw-telaviv", IANAName: "Asia/Jerusalem", Label: "Tel Aviv"},
	{ID: "aw-beirut", IANAName: "Asia/Beirut", Label: "Beirut"},
	{ID: "aw-amman", IANAName: "Asia/Amman", Label: "Amman"},

	// Asia - Central
	{ID: "ac-almaty", IANAName: "Asia/Almaty", Label: "Almaty"},
	{ID: "ac-tashkent", IANAName: "Asia/Tashkent", Label: "Tashkent"},
	{ID: "ac-baku", IANAName: "Asia/Baku", Label: "Baku"},
	{ID: "ac-tbilisi", IANAName: "Asia/Tbilisi", Label: "Tbilisi"},
	{ID: "ac-yerevan", IANAName: "Asia/Yerevan", Label: "Yerevan"},

	// Europe - Western
	{ID: "ew-london", IANAName: "Europe/London", Label: "London"},
	{ID: "ew-dublin", IANAName: "Europe/Dublin", Label: "Dublin"},
	{ID: "ew-lisbon", IANAName: "Europe/Lisbon", Label: "Lisbon"},
	{ID: "ew-reykjavik", IANAName: "Atlantic/Reykjavik", Label: "Reykjavik"},

	// Europe - Central
	{ID: "ec-paris", IANAName: "Europe/Paris", Label: "Paris"},
	{ID: "ec-berlin", IANAName: "Europe/Berlin", Label: "Berlin"},
	{ID: "ec-rome", IANAName: "Europe/Rome", Label: "Rome"},
	{ID: "ec-madrid", IANAName: "Europe/Madrid", Label: "Madrid"},
	{ID: "ec-barcelona", IANAName: "Europe/Madrid", Label: "Barcelona"},
	{ID: "ec-amsterdam", IANAName: "Europe/Amsterdam", Label: "Amsterdam"},
	{ID: "ec-brussels", IANAName: "Europe/Brussels", Label: "Brussels"},
	{ID: "ec-vienna", IANAName: "Europe/Vienna", Label: "Vienna"},
	{ID: "ec-zurich", IANAName: "Europe/Zurich", Label: "Zurich"},
	{ID: "ec-geneva", IANAName: "Europe/Zurich", Label: "Geneva"},
	{ID: "ec-milan", IANAName: "Europe/Rome", Label: "Milan"},
	{ID: "ec-munich", IANAName: "Europe/Berlin", Label: "Munich"},
	{ID: "ec-frankfurt", IANAName: "Europe/Berlin", Label: "Frankfurt"},
	{ID: "ec-prague", IANAName: "Europe/Prague", Label: "Prague"},
	{ID: "ec-warsaw", IANAName: "Europe/Warsaw", Label: "Warsaw"},
	{ID: "ec-budapest", IANAName: "Europe/Budapest", Label: "Budapest"},
	{ID: "ec-copenhagen", IANAName: "Europe/Copenhagen", Label: "Copenhagen"},
	{ID: "ec-stockholm", IANAName: "Europe/Stockholm", Label: "Stockholm"},
	{ID: "ec-oslo", IANAName: "Europe/Oslo", Label: "Oslo"},
	{ID: "ec-helsinki", IANAName: "Europe/Helsinki", Label: "Helsinki"},

	// Europe - Eastern
	{ID: "ee-athens", IANAName: "Europe/Athens", Label: "Athens"},
	{ID: "ee-istanbul", IANAName: "Europe/Istanbul", Label: "Istanbul"},
	{ID: "ee-bucharest", IANAName: "Europe/Bucharest", Label: "Bucharest"},
	{ID: "ee-sofia", IANAName: "Europe/Sofia", Label: "Sofia"},
	{ID: "ee-kyiv", IANAName: "Europe/Kyiv", Label: "Kyiv"},
	{ID: "ee-chisinau", IANAName: "Europe/Chisinau", Label: "Chișinău"},
	{ID: "ee-moscow", IANAName: "Europe/Moscow", Label: "Moscow"},
	{ID: "ee-stpetersburg", IANAName: "Europe/Moscow", Label: "St. Petersburg"},
	{ID: "ee-minsk", IANAName: "Europe/Minsk", Label: "Minsk"},
	{ID: "ee-riga", IANAName: "Europe/Riga", Label: "Riga"},
	{ID: "ee-tallinn", IANAName: "Europe/Tallinn", Label: "Tallinn"},
	{ID: "ee-vilnius", IANAName: "Europe/Vilnius", Label: "Vilnius"},

	// Australia & New Zealand
	{ID: "au-sydney", IANAName: "Australia/Sydney", Label: "Sydney"},
	{ID: "au-melbourne", IANAName: "Australia/Melbourne", Label: "Melbourne"},
	{ID: "au-brisbane", IANAName: "Australia/Brisbane", Label: "Brisbane"},
	{ID: "au-perth", IANAName: "Australia/Perth", Label: "Perth"},
	{ID: "au-adelaide", IANAName: "Australia/Adelaide", Label: "Adelaide"},
	{ID: "au-darwin", IANAName: "Australia/Darwin", Label: "Darwin"},
	{ID: "au-hobart", IANAName: "Australia/Hobart", Label: "Hobart"},
	{ID: "nz-auckland", IANAName: "Pacific/Auckland", Label: "Auckland"},
	{ID: "nz-wellington", IANAName: "Pacific/Auckland", Label: "Wellington"},

	// Pacific
	{ID: "pa-honolulu", IANAName: "Pacific/Honolulu", Label: "Honolulu"},
	{ID: "pa-fiji", IANAName: "Pacific/Fiji", Label: "Fiji"},
	{ID: "pa-guam", IANAName: "Pacific/Guam", Label: "Guam"},
	{ID: "pa-tahiti", IANAName: "Pacific/Tahiti", Label: "Tahiti"},
	{ID: "pa-samoa", IANAName: "Pacific/Pago_Pago", Label: "Samoa"},
	{ID: "pa-chatham", IANAName: "Pacific/Chatham", Label: "Chatham Islands"},

	// Canada - special timezones
	{ID: "ca-stjohns", IANAName: "America/St_Johns", Label: "St. John's (NL)"},
	{ID: "ca-halifax", IANAName: "America/Halifax", Label: "Halifax"},
	{ID: "ca-winnipeg", IANAName: "America/Winnipeg", Label: "Winnipeg"},
	{ID: "ca-edmonton", IANAName: "America/Edmonton", Label: "Edmonton"},
	{ID: "ca-calgary", IANAName: "America/Edmonton", Label: "Calgary"},

	// Russia (extended)
	{ID: "ru-vladivostok", IANAName: "Asia/Vladivostok", Label: "Vladivostok"},
	{ID: "ru-novosibirsk", IANAName: "Asia/Novosibirsk", Label: "Novosibirsk"},
	{ID: "ru-yekaterinburg", IANAName: "Asia/Yekaterinburg", Label: "Yekaterinburg"},
	{ID: "ru-kaliningrad", IANAName: "Europe/Kaliningrad", Label: "Kaliningrad"},
}

// All returns the full catalog in display order. The returned slice is a
// copy; callers may reorder it freely.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Search filters the catalog by a case-insensitive substring match over
// labels and IANA names. An empty or whitespace query returns everything.
func Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), q) ||
			strings.Contains(strings.ToLower(e.IANAName), q) {
			out = append(out, e)
		}
	}
	return out
}

// ByID returns the catalog entry with the given id.
func ByID(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// LabelFor returns the curated label for an IANA zone name. Uncatalogued
// zones fall back to the last path segment with underscores replaced by
// spaces; for names like America/Indiana/Knox this yields "Knox", which is
// a known lossy fallback kept for compatibility.
func LabelFor(ianaName string) string {
	for _, e := range entries {
		if e.IANAName == ianaName {
			return e.Label
		}
	}
	parts := strings.Split(ianaName, "/")
	city := parts[len(parts)-1]
	return strings.ReplaceAll(city, "_", " ")
}
