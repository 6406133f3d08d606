package catalog

// Scheduled block times in minutes, keyed "FROM-TO". Lookups fall back to
// the reverse pair, then to a flat 8 hours.
var flightDurations = map[string]int{
	// Europe -> Gulf / Istanbul
	"WAW-DXB": 355, "KRK-DXB": 360, "FRA-DXB": 370, "PRG-DXB": 350,
	"VIE-DXB": 335, "LHR-DXB": 410, "CDG-DXB": 400, "AMS-DXB": 395,
	"WAW-DOH": 340, "FRA-DOH": 360, "PRG-DOH": 345, "LHR-DOH": 400,
	"WAW-IST": 140, "KRK-IST": 130, "FRA-IST": 175, "PRG-IST": 145,
	"VIE-IST": 125, "LHR-IST": 235, "CDG-IST": 210, "AMS-IST": 215,
	"WAW-AUH": 360, "FRA-AUH": 375, "LHR-AUH": 420,

	// Hubs -> Southeast Asia
	"DXB-BKK": 365, "DXB-HKT": 380, "DXB-SIN": 440, "DXB-KUL": 415,
	"DXB-CGK": 465, "DXB-DPS": 520, "DXB-SGN": 410, "DXB-HAN": 385,
	"DOH-BKK": 385, "DOH-HKT": 400, "DOH-SIN": 460, "DOH-KUL": 435,
	"IST-BKK": 555, "IST-HKT": 575, "IST-SIN": 635, "IST-KUL": 620,
	"AUH-BKK": 370, "AUH-SIN": 445, "AUH-KUL": 420,

	// Hubs -> East Asia / India / Oceania
	"DXB-NRT": 580, "DXB-ICN": 530, "DXB-PEK": 470, "DXB-DEL": 215,
	"DXB-BOM": 190, "DXB-SYD": 840, "DXB-MEL": 820,
	"DOH-NRT": 600, "DOH-DEL": 225, "DOH-SYD": 860,
	"IST-NRT": 690, "IST-ICN": 620, "IST-DEL": 390,
	"SIN-SYD": 465, "SIN-MEL": 440, "SIN-NRT": 425, "SIN-BKK": 145,

	// Europe -> Singapore leg (for SIN used as a hub)
	"WAW-SIN": 690, "FRA-SIN": 720, "LHR-SIN": 770, "CDG-SIN": 760,

	// Direct long-hauls, for reference timings in synthetic offers
	"WAW-BKK": 620, "FRA-BKK": 640, "LHR-BKK": 685, "PRG-BKK": 625,
	"WAW-HKT": 660, "WAW-KUL": 700, "WAW-NRT": 680, "WAW-SYD": 1250,
}

// Reference economy fares for flying the pair direct, in EUR.
var directPrices = map[string]float64{
	"WAW-BKK": 850, "KRK-BKK": 870, "GDN-BKK": 890, "FRA-BKK": 780,
	"MUC-BKK": 790, "PRG-BKK": 830, "VIE-BKK": 800, "LHR-BKK": 720,
	"CDG-BKK": 750, "AMS-BKK": 760,
	"WAW-HKT": 920, "FRA-HKT": 860, "LHR-HKT": 810,
	"WAW-CNX": 940,
	"WAW-SIN": 900, "FRA-SIN": 820, "LHR-SIN": 760,
	"WAW-KUL": 880, "FRA-KUL": 840,
	"WAW-CGK": 950, "WAW-DPS": 1020,
	"WAW-SGN": 890, "WAW-HAN": 870,
	"WAW-NRT": 980, "FRA-NRT": 920, "WAW-ICN": 930,
	"WAW-PEK": 760, "WAW-PVG": 790,
	"WAW-DEL": 680, "WAW-BOM": 700,
	"WAW-SYD": 1350, "FRA-SYD": 1280, "LHR-SYD": 1190,
	"WAW-MEL": 1380,
}

// Per-leg economy fares used to price hub itineraries, in EUR.
var legPrices = map[string]float64{
	// Europe -> hub
	"WAW-DXB": 320, "KRK-DXB": 330, "GDN-DXB": 345, "FRA-DXB": 290,
	"MUC-DXB": 295, "PRG-DXB": 315, "VIE-DXB": 300, "LHR-DXB": 270,
	"CDG-DXB": 285, "AMS-DXB": 290,
	"WAW-DOH": 310, "KRK-DOH": 320, "FRA-DOH": 285, "PRG-DOH": 305,
	"LHR-DOH": 265,
	"WAW-IST": 180, "KRK-IST": 170, "GDN-IST": 195, "FRA-IST": 190,
	"PRG-IST": 175, "VIE-IST": 165, "LHR-IST": 210, "CDG-IST": 200,
	"WAW-AUH": 325, "FRA-AUH": 300, "LHR-AUH": 280,
	"WAW-SIN": 520, "FRA-SIN": 480, "LHR-SIN": 450,

	// Hub -> destination
	"DXB-BKK": 380, "DXB-HKT": 405, "DXB-CNX": 420, "DXB-SIN": 430,
	"DXB-KUL": 410, "DXB-CGK": 450, "DXB-DPS": 490, "DXB-SGN": 400,
	"DXB-HAN": 390, "DXB-NRT": 520, "DXB-ICN": 490, "DXB-PEK": 440,
	"DXB-DEL": 240, "DXB-BOM": 230, "DXB-SYD": 720, "DXB-MEL": 710,
	"DOH-BKK": 370, "DOH-HKT": 395, "DOH-SIN": 425, "DOH-KUL": 405,
	"DOH-NRT": 530, "DOH-DEL": 245, "DOH-SYD": 730,
	"IST-BKK": 420, "IST-HKT": 445, "IST-SIN": 470, "IST-KUL": 455,
	"IST-NRT": 560, "IST-ICN": 530, "IST-DEL": 310,
	"AUH-BKK": 385, "AUH-SIN": 430, "AUH-KUL": 415,
	"SIN-BKK": 120, "SIN-KUL": 80, "SIN-CGK": 130, "SIN-DPS": 170,
	"SIN-SYD": 430, "SIN-MEL": 420, "SIN-NRT": 390,
}
