package models

import (
	"bytes"
	"encoding/json"
)

// User is an end-user account of the product being administered.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"emailVerified"`
	PhotoURL      string    `json:"photoURL,omitempty"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	CreatedAt     Timestamp `json:"createdAt"`
	LastLogin     Timestamp `json:"lastLogin"`
	IsActive      bool      `json:"isActive"`
	CountryCode   string    `json:"countryCode"`
	CurrencyCode  string    `json:"currencyCode"`
	Disabled      bool      `json:"disabled"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalUsers  int  `json:"totalUsers"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// UsersPage is the payload of GET /users. The endpoint returns either a bare
// array or an object with data, count and pagination; both decode here.
type UsersPage struct {
	Data       []User      `json:"data"`
	Count      int         `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Total is the best known user count for the page.
func (p UsersPage) Total() int {
	switch {
	case p.Pagination != nil && p.Pagination.TotalUsers > 0:
		return p.Pagination.TotalUsers
	case p.Count > 0:
		return p.Count
	}
	return len(p.Data)
}

func (p *UsersPage) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var users []User
		if err := json.Unmarshal(b, &users); err != nil {
			return err
		}
		*p = UsersPage{Data: users, Count: len(users)}
		return nil
	}

	type plain UsersPage
	var out plain
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*p = UsersPage(out)
	return nil
}
