package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"affiliatehub/internal/models"
)

const DefaultKvkBaseURL = "https://api.kvk.nl"

var kvkNumberPattern = regexp.MustCompile(`^[0-9]{8}$`)

// ValidKvkNumber reports whether s is a Chamber of Commerce number (exactly 8 digits).
func ValidKvkNumber(s string) bool {
	return kvkNumberPattern.MatchString(s)
}

// LookupError carries the HTTP status the lookup endpoint should answer with.
type LookupError struct {
	Status  int
	Message string
	Details string
}

func (e *LookupError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("kvk lookup %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("kvk lookup %d: %s", e.Status, e.Message)
}

var ErrKvkNotConfigured = &LookupError{
	Status:  http.StatusServiceUnavailable,
	Message: "KVK lookup is not configured. Set KVK_API_KEY.",
}

// KvkClient talks to the KVK search and basic-profile APIs.
type KvkClient struct {
	BaseURL string
	ApiKey  string
	HTTP    *http.Client
}

func NewKvkClient(baseURL, apiKey string) *KvkClient {
	if baseURL == "" {
		baseURL = DefaultKvkBaseURL
	}
	return &KvkClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		ApiKey:  strings.TrimSpace(apiKey),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *KvkClient) Configured() bool {
	return c != nil && c.ApiKey != ""
}

type kvkSearchResponse struct {
	Resultaten []json.RawMessage `json:"resultaten"`
}

type kvkAddress struct {
	Straatnaam           string      `json:"straatnaam"`
	Huisnummer           json.Number `json:"huisnummer"`
	HuisnummerToevoeging string      `json:"huisnummerToevoeging"`
	Huisletter           string      `json:"huisletter"`
	Postcode             string      `json:"postcode"`
	Plaats               string      `json:"plaats"`
}

type kvkProfile struct {
	Naam     string `json:"naam"`
	Embedded struct {
		Hoofdvestiging struct {
			Adressen []kvkAddress `json:"adressen"`
		} `json:"hoofdvestiging"`
	} `json:"_embedded"`
}

// Lookup resolves a KVK number to the company name and main establishment address.
// Every failure is a *LookupError.
func (c *KvkClient) Lookup(ctx context.Context, kvkNumber string) (*models.CompanyProfile, error) {
	if !ValidKvkNumber(kvkNumber) {
		return nil, &LookupError{Status: http.StatusBadRequest, Message: "Invalid KVK number"}
	}
	if !c.Configured() {
		return nil, ErrKvkNotConfigured
	}

	q := url.Values{
		"kvkNummer":           {kvkNumber},
		"pagina":              {"1"},
		"resultatenPerPagina": {"1"},
	}
	var search kvkSearchResponse
	if err := c.getJSON(ctx, c.BaseURL+"/api/v2/zoeken?"+q.Encode(), &search); err != nil {
		return nil, err
	}
	if len(search.Resultaten) == 0 {
		return nil, &LookupError{Status: http.StatusNotFound, Message: "No company data found for the provided KVK number."}
	}

	var profile kvkProfile
	if err := c.getJSON(ctx, c.BaseURL+"/api/v1/basisprofielen/"+url.PathEscape(kvkNumber), &profile); err != nil {
		return nil, err
	}

	out := &models.CompanyProfile{CompanyName: profile.Naam}
	if addrs := profile.Embedded.Hoofdvestiging.Adressen; len(addrs) > 0 {
		a := addrs[0]
		out.StreetName = a.Straatnaam
		out.HouseNumber = a.Huisnummer.String()
		out.HouseNumberAddition = a.HuisnummerToevoeging
		out.HouseLetter = a.Huisletter
		out.PostalCode = a.Postcode
		out.Place = a.Plaats
	}
	return out, nil
}

func (c *KvkClient) getJSON(ctx context.Context, endpoint string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &LookupError{Status: http.StatusInternalServerError, Message: "Kon KVK-gegevens niet ophalen.", Details: err.Error()}
	}
	req.Header.Set("apikey", c.ApiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &LookupError{Status: http.StatusInternalServerError, Message: "Kon KVK-gegevens niet ophalen.", Details: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &LookupError{Status: http.StatusInternalServerError, Message: "Kon KVK-gegevens niet ophalen.", Details: err.Error()}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		log.Printf("[kvk][lookup] upstream rejected api key: %s", endpoint)
		return &LookupError{Status: http.StatusServiceUnavailable, Message: "KVK API key is missing or invalid."}
	case resp.StatusCode == http.StatusNotFound:
		return &LookupError{Status: http.StatusNotFound, Message: "Geen gegevens gevonden voor dit KVK-nummer."}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &LookupError{
			Status:  resp.StatusCode,
			Message: "Kon KVK-gegevens niet ophalen.",
			Details: fmt.Sprintf("upstream status %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &LookupError{Status: http.StatusInternalServerError, Message: "Kon KVK-gegevens niet ophalen.", Details: "decode response: " + err.Error()}
	}
	return nil
}

// AsLookupError unwraps err into a *LookupError, mapping anything else to 500.
func AsLookupError(err error) *LookupError {
	var le *LookupError
	if errors.As(err, &le) {
		return le
	}
	return &LookupError{Status: http.StatusInternalServerError, Message: "Kon KVK-gegevens niet ophalen.", Details: err.Error()}
}
