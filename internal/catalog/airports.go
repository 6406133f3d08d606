package catalog

// Region codes map to an ordered list of airports, busiest first. Order
// matters: expansion truncates from the front.
var regionAirports = map[string][]string{
	"PL": {"WAW", "KRK", "GDN", "WRO", "POZ", "KTW"},
	"DE": {"FRA", "MUC", "BER", "DUS", "HAM"},
	"CZ": {"PRG"},
	"SK": {"BTS"},
	"LT": {"VNO", "KUN"},
	"UA": {"KBP", "LWO"},
	"AT": {"VIE"},
	"NL": {"AMS"},
	"FR": {"CDG", "ORY", "NCE", "LYS"},
	"GB": {"LHR", "LGW", "MAN", "EDI"},
	"IT": {"FCO", "MXP", "VCE"},
	"ES": {"MAD", "BCN", "AGP"},

	"AE": {"DXB", "AUH"},
	"QA": {"DOH"},
	"TR": {"IST", "SAW"},

	"TH": {"BKK", "HKT", "CNX"},
	"SG": {"SIN"},
	"MY": {"KUL", "PEN"},
	"ID": {"CGK", "DPS"},
	"VN": {"SGN", "HAN", "DAD"},
	"JP": {"NRT", "HND", "KIX"},
	"KR": {"ICN"},
	"CN": {"PEK", "PVG", "CAN"},
	"IN": {"DEL", "BOM"},
	"US": {"JFK", "LAX", "ORD", "MIA"},
	"AU": {"SYD", "MEL", "BNE"},
}

// Neighboring regions considered when the caller opts into wider searches.
var neighborRegions = map[string][]string{
	"PL": {"DE", "CZ", "SK", "LT", "UA"},
	"DE": {"NL", "FR", "AT", "CZ", "PL"},
	"CZ": {"DE", "AT", "SK", "PL"},
	"SK": {"CZ", "AT", "PL", "UA"},
	"AT": {"DE", "CZ", "SK", "IT"},
	"LT": {"PL", "UA"},
	"UA": {"PL", "SK"},
	"FR": {"GB", "DE", "ES", "IT", "NL"},
	"GB": {"FR", "NL"},
	"IT": {"FR", "AT", "ES"},
	"ES": {"FR", "IT"},
	"NL": {"DE", "GB", "FR"},

	"TH": {"MY", "VN", "SG"},
	"MY": {"SG", "TH", "ID"},
	"SG": {"MY", "ID"},
	"VN": {"TH", "CN"},
	"ID": {"MY", "SG"},
	"JP": {"KR"},
	"KR": {"JP", "CN"},
}

// Regions whose airports qualify as multi-leg origins. All European: the
// product targets outbound long-haul trips from Europe.
var longHaulOriginRegions = []string{
	"PL", "DE", "CZ", "SK", "LT", "UA", "AT", "NL", "FR", "GB", "IT", "ES",
}

// Destinations far enough that a hub stopover can plausibly beat the direct
// fare.
var longHaulDestinationAirports = []string{
	"BKK", "HKT", "CNX",
	"SIN", "KUL", "PEN",
	"CGK", "DPS",
	"SGN", "HAN", "DAD",
	"NRT", "HND", "KIX", "ICN",
	"PEK", "PVG", "CAN",
	"DEL", "BOM",
	"JFK", "LAX", "ORD", "MIA",
	"SYD", "MEL", "BNE",
}
