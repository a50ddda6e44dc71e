package domain

type PropertyStatus string

const (
	PropertyActive      PropertyStatus = "Active"
	PropertyMaintenance PropertyStatus = "Maintenance"
	PropertyCleaning    PropertyStatus = "Cleaning"
)

type Property struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Status        PropertyStatus `json:"status"`
	OccupancyRate int            `json:"occupancy_rate"`
	NextCheckIn   string         `json:"next_check_in"`
	ImageURL      string         `json:"image_url"`
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

type Metric struct {
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Change      float64 `json:"change"`
	Trend       Trend   `json:"trend"`
	Description string  `json:"description,omitempty"`
}

type Listing struct {
	Property
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

type PricingDay struct {
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
	Occupancy int     `json:"occupancy"`
	Event     string  `json:"event,omitempty"`
}
