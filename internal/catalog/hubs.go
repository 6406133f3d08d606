package catalog

// Curated long-haul connecting airports, in recommendation order. The
// layover-day range is descriptive hub metadata; candidate generation
// currently samples a fixed 2-3 day window regardless (see multileg.Tuning).
var hubs = []Hub{
	{
		Code:           "DXB",
		Name:           "Dubai International",
		City:           "Dubai",
		Country:        "United Arab Emirates",
		MinLayoverDays: 1,
		MaxLayoverDays: 4,
		Carriers:       []string{"EK", "FZ"},
		Attractions:    []string{"Burj Khalifa", "Dubai Mall", "Desert safari", "Palm Jumeirah"},
		AvgDailyCost:   120,
	},
	{
		Code:           "DOH",
		Name:           "Hamad International",
		City:           "Doha",
		Country:        "Qatar",
		MinLayoverDays: 1,
		MaxLayoverDays: 3,
		Carriers:       []string{"QR"},
		Attractions:    []string{"Museum of Islamic Art", "Souq Waqif", "The Pearl"},
		AvgDailyCost:   110,
	},
	{
		Code:           "IST",
		Name:           "Istanbul Airport",
		City:           "Istanbul",
		Country:        "Turkey",
		MinLayoverDays: 1,
		MaxLayoverDays: 4,
		Carriers:       []string{"TK"},
		Attractions:    []string{"Hagia Sophia", "Grand Bazaar", "Bosphorus cruise", "Topkapi Palace"},
		AvgDailyCost:   75,
	},
	{
		Code:           "AUH",
		Name:           "Zayed International",
		City:           "Abu Dhabi",
		Country:        "United Arab Emirates",
		MinLayoverDays: 1,
		MaxLayoverDays: 3,
		Carriers:       []string{"EY"},
		Attractions:    []string{"Sheikh Zayed Grand Mosque", "Louvre Abu Dhabi", "Yas Island"},
		AvgDailyCost:   105,
	},
	{
		Code:           "SIN",
		Name:           "Singapore Changi",
		City:           "Singapore",
		Country:        "Singapore",
		MinLayoverDays: 2,
		MaxLayoverDays: 5,
		Carriers:       []string{"SQ"},
		Attractions:    []string{"Gardens by the Bay", "Marina Bay Sands", "Sentosa", "Hawker centres"},
		AvgDailyCost:   130,
	},
}

// Deny rules. Gulf and Bosphorus hubs sit east of Europe, so routing
// westbound transatlantic or certain Oceania traffic through them is never
// recommended.
var hubRules = []HubRule{
	{
		Origins:      longHaulOriginRegions,
		Destinations: []string{"US"},
		DeniedHubs:   []string{"DXB", "DOH", "AUH", "IST", "SIN"},
	},
	{
		Origins:      longHaulOriginRegions,
		Destinations: []string{"AU"},
		DeniedHubs:   []string{"IST"},
	},
}
