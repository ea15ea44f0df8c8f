// ABOUTME: Wire types for the travel risk assessment API
// ABOUTME: Mirrors the backend's /user and /core JSON schemas

package client

// Role values used by the backend
const (
	RoleTraveler = "traveler"
	RoleAdmin    = "admin_hr"
)

// AuthTokens is the login response and the sole durable client-side state
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

// LoginInput is the credential payload for POST /user/login
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput is the account creation payload for POST /user/register
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Department  string `json:"department,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	EmployeeID  string `json:"employee_id,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// User is an account record as returned by the backend
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Department  string `json:"department,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	EmployeeID  string `json:"employee_id,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// TravelerProfile holds passport and health details, owned by one user
type TravelerProfile struct {
	ID                     string `json:"id"`
	User                   string `json:"user"`
	PassportNumber         string `json:"passport_number"`
	PassportIssuingCountry string `json:"passport_issuing_country"`
	PassportExpiryDate     string `json:"passport_expiry_date"`
	HealthConditions       string `json:"health_conditions,omitempty"`
	FrequentTraveler       bool   `json:"frequent_traveler"`
}

// ProfileInput is the create/update payload for /core/travelers/
type ProfileInput struct {
	PassportNumber         string `json:"passport_number"`
	PassportIssuingCountry string `json:"passport_issuing_country"`
	PassportExpiryDate     string `json:"passport_expiry_date"`
	HealthConditions       string `json:"health_conditions"`
	FrequentTraveler       bool   `json:"frequent_traveler"`
}

// Trip is a planned journey owned by one traveler
type Trip struct {
	ID                 int    `json:"id"`
	Traveler           int    `json:"traveler"`
	DestinationCountry string `json:"destination_country"`
	DestinationCity    string `json:"destination_city"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Purpose            string `json:"purpose"`
	Accommodation      string `json:"accommodation"`
	TransportMode      string `json:"transport_mode"`
	CreatedAt          string `json:"created_at"`
}

// TripInput is the creation payload for POST /core/trips/
type TripInput struct {
	Traveler           int    `json:"traveler"`
	DestinationCountry string `json:"destination_country"`
	DestinationCity    string `json:"destination_city"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Purpose            string `json:"purpose"`
	Accommodation      string `json:"accommodation"`
	TransportMode      string `json:"transport_mode"`
}

// TravelDates describes the analyzed trip window
type TravelDates struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	DurationDays int    `json:"duration_days"`
}

// TravelerSnapshot is the traveler context embedded in an analysis
type TravelerSnapshot struct {
	ID               int    `json:"id"`
	HealthConditions string `json:"health_conditions"`
	FrequentTraveler bool   `json:"frequent_traveler"`
}

// AgentReport is one specialist agent's contribution to an analysis
type AgentReport struct {
	AgentName string  `json:"agent_name"`
	Status    string  `json:"status"`
	RiskScore float64 `json:"risk_score"`
	RiskLevel string  `json:"risk_level"`
	Summary   string  `json:"summary,omitempty"`
}

// RiskAnalysis is the full AI-generated report for a trip
type RiskAnalysis struct {
	Status                      string                 `json:"status"`
	TripID                      int                    `json:"trip_id"`
	Destination                 string                 `json:"destination"`
	TravelDates                 TravelDates            `json:"travel_dates"`
	Traveler                    TravelerSnapshot       `json:"traveler"`
	OverallRiskScore            float64                `json:"overall_risk_score"`
	RiskLevel                   string                 `json:"risk_level"`
	RiskScoreBreakdown          map[string]float64     `json:"risk_score_breakdown"`
	TopRisks                    []string               `json:"top_risks"`
	AgentReports                map[string]AgentReport `json:"agent_reports"`
	ConsolidatedRecommendations []string               `json:"consolidated_recommendations"`
	ExecutiveSummary            string                 `json:"executive_summary"`
}

// RiskReport is the envelope returned by POST /core/trips/{id}/analyze-risk/
type RiskReport struct {
	Status      string       `json:"status"`
	Message     string       `json:"message"`
	Analysis    RiskAnalysis `json:"analysis"`
	ReportSaved bool         `json:"report_saved"`
}
