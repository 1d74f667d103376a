package models

// CompanyProfile is the normalized registry (KVK) record returned to the lead form.
type CompanyProfile struct {
	CompanyName         string `json:"companyName"`
	StreetName          string `json:"streetName"`
	HouseNumber         string `json:"houseNumber"`
	HouseNumberAddition string `json:"houseNumberAddition"`
	HouseLetter         string `json:"houseLetter"`
	PostalCode          string `json:"postalCode"`
	Place               string `json:"place"`
}
