package roster

import (
	"strings"

	"github.com/nirajan1211/MidasHealthCare/internal/domain/form"
)

// Roles a roster entry can carry, derived from the raw user_type string.
const (
	RoleSelf     = "self"
	RoleRelative = "relative"
	RolePatient  = "patient"
)

// RawRoster is the working shape of one roster snapshot from the remote
// service: the relative-shaped records plus the optional self-shaped record.
type RawRoster struct {
	List []form.RawRecord
	My   form.RawRecord
}

// Entry is the render-ready view of one roster member. Alias fields from the
// raw record are already collapsed onto canonical names, and the fields the
// edit form needs to seed itself are carried through.
type Entry struct {
	UserID      string `json:"userid"`
	FirstName   string `json:"fname"`
	MiddleName  string `json:"mname"`
	LastName    string `json:"lname"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	MobileNo    string `json:"mobileno"`
	CountryCode string `json:"countrycode"`
	Gender      string `json:"gender"`
	Role        string `json:"role"`
	RelationID  string `json:"relationid"`
	Address     string `json:"address"`
	DistrictID  string `json:"districtid"`
	VDCID       string `json:"vdcid"`
	WardNo      string `json:"wardno"`
	DateOfBirth string `json:"dateofbirth"`
	Age         string `json:"age"`
	AgeType     string `json:"agetype"`
}

// Normalize turns a raw roster snapshot into the deduplicated, display-ready
// sequence: the list records followed by the self record, collapsed so that
// only the first occurrence of each identity survives, in original order.
// Normalize is a pure function; calling it twice yields identical sequences.
func Normalize(raw RawRoster) []Entry {
	working := make([]form.RawRecord, 0, len(raw.List)+1)
	working = append(working, raw.List...)
	if len(raw.My) > 0 {
		working = append(working, raw.My)
	}

	entries := make([]Entry, 0, len(working))
	seen := make(map[string]bool, len(working))
	for _, rec := range working {
		e := newEntry(rec)
		if seen[e.UserID] {
			continue
		}
		seen[e.UserID] = true
		entries = append(entries, e)
	}
	return entries
}

func newEntry(rec form.RawRecord) Entry {
	first := rec.Str("fname")
	middle := rec.Str("mname")
	last := rec.Str("lname")
	return Entry{
		UserID:      rec.Str("userid"),
		FirstName:   first,
		MiddleName:  middle,
		LastName:    last,
		DisplayName: DisplayName(first, middle, last),
		Email:       rec.First("email"),
		MobileNo:    rec.First("mobileno"),
		CountryCode: rec.Str("countrycode"),
		Gender:      rec.Str("gender"),
		Role:        Role(rec.Str("user_type")),
		RelationID:  rec.Str("relationid"),
		Address:     rec.Str("address"),
		DistrictID:  rec.Str("districtid"),
		VDCID:       rec.Str("vdcid"),
		WardNo:      rec.Str("wardno"),
		DateOfBirth: rec.First("dateofbirth"),
		Age:         rec.Str("age"),
		AgeType:     rec.Str("agetype"),
	}
}

// Role maps the raw user_type string to a roster role, case-insensitively.
// Anything unrecognized, including an absent value, is a plain patient.
func Role(userType string) string {
	switch strings.ToLower(userType) {
	case RoleSelf:
		return RoleSelf
	case RoleRelative:
		return RoleRelative
	default:
		return RolePatient
	}
}

// DisplayName joins the non-blank name parts with single spaces. A record
// with no usable name parts renders as "Unknown User".
func DisplayName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Unknown User"
	}
	return strings.Join(parts, " ")
}
