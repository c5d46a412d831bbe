package models

type CountryCount struct {
	CountryCode string `json:"countryCode"`
	Count       int    `json:"count"`
}

type CurrencyCount struct {
	CurrencyCode string `json:"currencyCode"`
	Count        int    `json:"count"`
}

// UserAnalytics is the dashboard summary from GET /users/analytics.
type UserAnalytics struct {
	TotalUsers       int             `json:"totalUsers"`
	TopCountryCodes  []CountryCount  `json:"topCountryCodes"`
	TopCurrencyCodes []CurrencyCount `json:"topCurrencyCodes"`
}

type UsersCount struct {
	TotalUsers int `json:"totalUsers"`
}
