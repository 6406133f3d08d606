package models

// Data-source tags reported in response metadata.
const (
	DataSourceProvider = "provider"
	DataSourceMock     = "mock"
)

type Meta struct {
	Count               int      `json:"count"`
	DataSource          string   `json:"dataSource"`
	SearchedRoutes      []string `json:"searchedRoutes"`
	Timestamp           string   `json:"timestamp"`
	TotalPossibleRoutes int      `json:"totalPossibleRoutes"`
	EnhancedMultiLeg    bool     `json:"enhancedMultiLeg"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
	Aircraft map[string]string `json:"aircraft"`
}

type SearchResponse struct {
	Success      bool          `json:"success"`
	Flights      []FlightOffer `json:"flights"`
	Meta         Meta          `json:"meta"`
	Dictionaries Dictionaries  `json:"dictionaries"`
}

type ErrorResponse struct {
	Success   bool         `json:"success"`
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Fields    []FieldError `json:"fields,omitempty"`
	Timestamp string       `json:"timestamp"`
}
