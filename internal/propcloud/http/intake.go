package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/service"
)

// joinWaitlistBody is the wire form of propcloudsdk.JoinWaitlistRequest as
// landing page forms actually post it: numbers may arrive as strings and
// text fields as numbers. Only email is checked, by the service.
type joinWaitlistBody struct {
	Email            json.RawMessage `json:"email"`
	FullName         *looseString    `json:"fullName"`
	CompanyName      *looseString    `json:"companyName"`
	PropertiesCount  looseCount      `json:"propertiesCount"`
	Phone            *looseString    `json:"phone"`
	Website          *looseString    `json:"website"`
	CurrentSoftware  *looseString    `json:"currentSoftware"`
	PainPoints       *looseString    `json:"painPoints"`
	MarketingConsent looseBool       `json:"marketingConsent"`
}

func (b joinWaitlistBody) input() service.JoinInput {
	// A non-string email is left empty so the service reports it invalid.
	var email string
	_ = json.Unmarshal(b.Email, &email)

	return service.JoinInput{
		Email:            email,
		FullName:         b.FullName.ptr(),
		CompanyName:      b.CompanyName.ptr(),
		PropertiesCount:  b.PropertiesCount.ptr(),
		Phone:            b.Phone.ptr(),
		Website:          b.Website.ptr(),
		CurrentSoftware:  b.CurrentSoftware.ptr(),
		PainPoints:       b.PainPoints.ptr(),
		MarketingConsent: bool(b.MarketingConsent),
	}
}

var errNotScalar = errors.New("expected a string, number or boolean")

// scalarText returns a JSON string's value, or the literal text of a number
// or boolean.
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", errNotScalar
	}
	switch data[0] {
	case '"':
		var s string
		err := json.Unmarshal(data, &s)
		return s, err
	case '{', '[':
		return "", errNotScalar
	}
	return string(data), nil
}

type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	v, err := scalarText(data)
	if err != nil {
		return err
	}
	*s = looseString(v)
	return nil
}

func (s *looseString) ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

// looseCount accepts 3, 3.0 or "3". Anything that is not a whole,
// non-negative number (including "10-20") counts as not provided.
type looseCount struct {
	n   int
	set bool
}

func (c *looseCount) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	v, err := scalarText(data)
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return nil
	}
	c.n, c.set = int(f), true
	return nil
}

func (c looseCount) ptr() *int {
	if !c.set {
		return nil
	}
	n := c.n
	return &n
}

// looseBool accepts true or "true", "on", "1" and the other forms
// strconv.ParseBool knows. Anything else is false.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	v, err := scalarText(data)
	if err != nil {
		return err
	}
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "on" || v == "yes" {
		*b = true
		return nil
	}
	parsed, _ := strconv.ParseBool(v)
	*b = looseBool(parsed)
	return nil
}
