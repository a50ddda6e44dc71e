package domain

// Insight is a piece of model-generated text shown next to a view.
// Generated is false when the fixed fallback was substituted.
type Insight struct {
	Text      string `json:"text"`
	HTML      string `json:"html"`
	Generated bool   `json:"generated"`
}

type DashboardMode string

const (
	ModeBeginner DashboardMode = "beginner"
	ModePro      DashboardMode = "pro"
)

type ComplianceStatus string

const (
	ComplianceValid    ComplianceStatus = "Valid"
	ComplianceExpiring ComplianceStatus = "Expiring"
)

type Dashboard struct {
	Mode            DashboardMode    `json:"mode"`
	Metrics         []Metric         `json:"metrics"`
	Properties      []Property       `json:"properties"`
	Compliance      ComplianceStatus `json:"compliance"`
	ComplianceLabel string           `json:"compliance_label"`
	Briefing        Insight          `json:"briefing"`
	GrowthHint      string           `json:"growth_hint,omitempty"`
}

type PricingAnalysis struct {
	MinPrice     float64      `json:"min_price"`
	PetFriendly  bool         `json:"pet_friendly"`
	Days         []PricingDay `json:"days"`
	BelowMinimum []string     `json:"below_minimum"`
	Warning      bool         `json:"warning"`
	Analysis     Insight      `json:"analysis"`
}

type CoHostPitch struct {
	LeadName    string  `json:"lead_name"`
	LeadAddress string  `json:"lead_address"`
	Email       Insight `json:"email"`
	Sent        bool    `json:"sent"`
}
