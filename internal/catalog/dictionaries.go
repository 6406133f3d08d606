package catalog

// Display names returned in the response dictionaries. The upstream
// provider's own dictionary entries take precedence when present.
var carrierNames = map[string]string{
	"EK": "Emirates",
	"FZ": "flydubai",
	"QR": "Qatar Airways",
	"TK": "Turkish Airlines",
	"EY": "Etihad Airways",
	"SQ": "Singapore Airlines",
	"LO": "LOT Polish Airlines",
	"LH": "Lufthansa",
	"TG": "Thai Airways International",
	"MH": "Malaysia Airlines",
}

var aircraftNames = map[string]string{
	"388": "AIRBUS A380-800",
	"77W": "BOEING 777-300ER",
	"359": "AIRBUS A350-900",
	"789": "BOEING 787-9",
	"351": "AIRBUS A350-1000",
	"32N": "AIRBUS A320NEO",
	"738": "BOEING 737-800",
}

// Types assigned to synthesized segments, wide-bodies first.
var aircraftTypes = []string{"388", "77W", "359", "789", "351"}

var classMultipliers = map[string]float64{
	"ECONOMY":         1.0,
	"PREMIUM_ECONOMY": 1.5,
	"BUSINESS":        3.0,
	"FIRST":           5.0,
}
