package form

// Option is a label/value pair for a selectable form field.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const DefaultCountryCode = "977"

// Age units. Derived ages always use the largest non-zero unit.
const (
	AgeUnitYears  = "Years"
	AgeUnitMonths = "Months"
	AgeUnitDays   = "Days"
)

// Relation identifiers are enum-coded strings assigned by the remote service.
const (
	RelationSelf = "0"
)

var genderOptions = []Option{
	{Label: "Male", Value: "Male"},
	{Label: "Female", Value: "Female"},
	{Label: "Other", Value: "Other"},
}

var relationOptions = []Option{
	{Label: "Self", Value: "0"},
	{Label: "Father", Value: "1"},
	{Label: "Mother", Value: "2"},
	{Label: "Spouse", Value: "3"},
	{Label: "Son", Value: "4"},
	{Label: "Daughter", Value: "5"},
	{Label: "Brother", Value: "6"},
	{Label: "Sister", Value: "7"},
	{Label: "Grandfather", Value: "8"},
	{Label: "Grandmother", Value: "9"},
	{Label: "Other", Value: "10"},
}

var ageUnitOptions = []Option{
	{Label: "Years", Value: AgeUnitYears},
	{Label: "Months", Value: AgeUnitMonths},
	{Label: "Days", Value: AgeUnitDays},
}

var countryCodeOptions = []Option{
	{Label: "+977", Value: "977"},
	{Label: "+91", Value: "91"},
	{Label: "+1", Value: "1"},
}

// Genders returns the selectable gender options.
func Genders() []Option { return append([]Option(nil), genderOptions...) }

// Relations returns the selectable family-relationship options.
func Relations() []Option { return append([]Option(nil), relationOptions...) }

// AgeUnits returns the selectable age units.
func AgeUnits() []Option { return append([]Option(nil), ageUnitOptions...) }

// CountryCodes returns the selectable phone country codes.
func CountryCodes() []Option { return append([]Option(nil), countryCodeOptions...) }

func isValidGender(g string) bool {
	for _, o := range genderOptions {
		if o.Value == g {
			return true
		}
	}
	return false
}

func isValidAgeUnit(u string) bool {
	return u == AgeUnitYears || u == AgeUnitMonths || u == AgeUnitDays
}
