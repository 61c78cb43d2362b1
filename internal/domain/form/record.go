package form

import (
	"fmt"
	"strings"
)

// RawRecord is a loosely typed patient record as returned by the remote
// service. Field names vary between self-profile and relative records, so
// values are read through the alias table below rather than directly.
type RawRecord map[string]interface{}

// fieldAliases maps each canonical field to its candidate source keys in
// precedence order. The first key present and non-empty wins.
var fieldAliases = map[string][]string{
	"email":       {"email", "emailaddress"},
	"mobileno":    {"mobileno", "mobilenumber"},
	"dateofbirth": {"dateofbirth", "dobad"},
}

// Str returns the value for key coerced to a string. Missing or non-string
// scalar values yield their natural string form; nil yields "".
func (r RawRecord) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; identifiers are integral.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// First returns the first non-empty value among the canonical field's
// aliases. Unknown canonical names fall back to a direct key lookup.
func (r RawRecord) First(canonical string) string {
	keys, ok := fieldAliases[canonical]
	if !ok {
		keys = []string{canonical}
	}
	for _, k := range keys {
		if v := r.Str(k); v != "" {
			return v
		}
	}
	return ""
}

// PatientRecord is the canonical, engine-internal shape of one patient.
// JSON tags match the wire field names the remote service uses, so the
// mobile client can post form state directly.
type PatientRecord struct {
	UserID      string `json:"userid,omitempty"`
	FirstName   string `json:"fname"`
	MiddleName  string `json:"mname"`
	LastName    string `json:"lname"`
	Email       string `json:"email"`
	CountryCode string `json:"countrycode"`
	MobileNo    string `json:"mobileno"`
	Gender      string `json:"gender"`
	RelationID  string `json:"relationid"`
	Address     string `json:"address"`
	DistrictID  string `json:"districtid"`
	VDCID       string `json:"vdcid"`
	WardNo      string `json:"wardno"`
	DateOfBirth string `json:"dateofbirth"`
	Age         string `json:"age"`
	AgeType     string `json:"agetype"`
}

// Hydrate maps a raw record onto the canonical shape. Absent or malformed
// source fields yield empty canonical values; Hydrate never fails.
func Hydrate(raw RawRecord) PatientRecord {
	rec := PatientRecord{
		UserID:      raw.Str("userid"),
		FirstName:   raw.Str("fname"),
		MiddleName:  raw.Str("mname"),
		LastName:    raw.Str("lname"),
		Email:       raw.First("email"),
		CountryCode: raw.Str("countrycode"),
		MobileNo:    raw.First("mobileno"),
		Gender:      raw.Str("gender"),
		RelationID:  raw.Str("relationid"),
		Address:     raw.Str("address"),
		DistrictID:  raw.Str("districtid"),
		VDCID:       raw.Str("vdcid"),
		WardNo:      raw.Str("wardno"),
		DateOfBirth: raw.First("dateofbirth"),
		Age:         raw.Str("age"),
		AgeType:     raw.Str("agetype"),
	}
	if rec.CountryCode == "" {
		rec.CountryCode = DefaultCountryCode
	}
	if rec.AgeType == "" {
		rec.AgeType = AgeUnitYears
	}
	return rec
}

// Payload assembles the write payload for the remote service: string fields
// trimmed, enumerations fixed to their defaults, plus the fixed marker that
// creates the record as a linked relative.
func (r PatientRecord) Payload() map[string]string {
	countryCode := r.CountryCode
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	ageType := r.AgeType
	if ageType == "" {
		ageType = AgeUnitYears
	}
	return map[string]string{
		"fname":         strings.TrimSpace(r.FirstName),
		"lname":         strings.TrimSpace(r.LastName),
		"mname":         strings.TrimSpace(r.MiddleName),
		"email":         strings.TrimSpace(r.Email),
		"mobileno":      strings.TrimSpace(r.MobileNo),
		"countrycode":   countryCode,
		"gender":        r.Gender,
		"relationid":    r.RelationID,
		"address":       strings.TrimSpace(r.Address),
		"districtid":    r.DistrictID,
		"vdcid":         r.VDCID,
		"wardno":        strings.TrimSpace(r.WardNo),
		"dateofbirth":   r.DateOfBirth,
		"age":           r.Age,
		"agetype":       ageType,
		"addtorelative": "Y",
	}
}
