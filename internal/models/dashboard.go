package models

type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	PeriodAll    Period = "all"
)

func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case Period7Days, Period30Days, PeriodAll:
		return Period(s), true
	case "":
		return Period7Days, true
	}
	return "", false
}

// DashboardStats is the stats card payload. Nil change fields mean "no comparison".
type DashboardStats struct {
	TotalLeads       int      `json:"totalLeads"`
	Converted        int      `json:"converted"`
	Pending          int      `json:"pending"`
	Commission       float64  `json:"commission"`
	ChangeTotalLeads *float64 `json:"changeTotalLeads"`
	ChangeConverted  *float64 `json:"changeConverted"`
	ChangePending    *float64 `json:"changePending"`
	ChangeCommission *float64 `json:"changeCommission"`
}

type RecentActivityItem struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	DateTime    string `json:"dateTime"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CompanyName string `json:"companyName,omitempty"`
	LeadID      string `json:"leadId,omitempty"`
}

type LastLead struct {
	Date        string     `json:"date"`
	DateTime    string     `json:"dateTime"`
	Status      LeadStatus `json:"status"`
	CompanyName string     `json:"companyName"`
}

type RecentLeadItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CompanyName string   `json:"companyName"`
	LastLead    LastLead `json:"lastLead"`
}

// DashboardBundle is everything the dashboard page loads at once.
type DashboardBundle struct {
	Stats          *DashboardStats      `json:"stats"`
	RecentActivity []RecentActivityItem `json:"recentActivity"`
	RecentLeads    []RecentLeadItem     `json:"recentLeads"`
}
