package form

import (
	"regexp"
	"strconv"
	"strings"
)

// ValidationErrors maps a wire field name to its user-facing message. It is
// always locally recoverable and never crosses the form boundary except as a
// per-field response body.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	nameRe    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe   = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	digitsRe  = regexp.MustCompile(`^[0-9]+$`)
	phoneNPRe = regexp.MustCompile(`^[0-9]{10}$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10,12}$`)
)

const (
	MinWardNo = 1
	MaxWardNo = 35
	MaxAge    = 150
)

// Validate applies every field rule to the record and returns the per-field
// error map. It is pure and synchronous; an empty map means the record is
// ready to submit.
func Validate(rec PatientRecord) ValidationErrors {
	errs := ValidationErrors{}

	validateName(errs, "fname", rec.FirstName, "First name")
	validateName(errs, "lname", rec.LastName, "Last name")
	if m := strings.TrimSpace(rec.MiddleName); m != "" && !nameRe.MatchString(m) {
		errs["mname"] = "Only letters and spaces are allowed"
	}

	if rec.Gender == "" {
		errs["gender"] = "Gender is required"
	} else if !isValidGender(rec.Gender) {
		errs["gender"] = "Gender must be Male, Female or Other"
	}

	if e := strings.TrimSpace(rec.Email); e != "" && !emailRe.MatchString(e) {
		errs["email"] = "Invalid email address"
	}

	validatePhone(errs, rec.CountryCode, rec.MobileNo)

	if rec.RelationID == "" {
		errs["relationid"] = "Relationship is required"
	}

	if rec.DistrictID == "" {
		errs["districtid"] = "District is required"
	}
	if rec.VDCID == "" {
		errs["vdcid"] = "VDC/Municipality is required"
	} else if rec.DistrictID != "" && !isMunicipalityOf(rec.DistrictID, rec.VDCID) {
		errs["vdcid"] = "VDC/Municipality does not belong to the selected district"
	}

	validateWardNo(errs, rec.WardNo)
	validateAge(errs, rec.Age, rec.AgeType)

	return errs
}

func validateName(errs ValidationErrors, field, value, label string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs[field] = "This field is required"
		return
	}
	if !nameRe.MatchString(value) {
		errs[field] = "Only letters and spaces are allowed"
		return
	}
	if len(value) < 2 {
		errs[field] = label + " must be at least 2 characters"
	}
}

func validatePhone(errs ValidationErrors, countryCode, number string) {
	number = strings.TrimSpace(number)
	if number == "" {
		errs["mobileno"] = "Phone number is required"
		return
	}
	if countryCode == DefaultCountryCode {
		if !phoneNPRe.MatchString(number) {
			errs["mobileno"] = "Phone number must be exactly 10 digits for Nepal (+977)"
		}
		return
	}
	if !phoneRe.MatchString(number) {
		errs["mobileno"] = "Phone number must be 10-12 digits"
	}
}

func validateWardNo(errs ValidationErrors, wardNo string) {
	wardNo = strings.TrimSpace(wardNo)
	if wardNo == "" {
		errs["wardno"] = "Ward number is required"
		return
	}
	if !digitsRe.MatchString(wardNo) {
		errs["wardno"] = "Ward number must be a valid number"
		return
	}
	n, _ := strconv.Atoi(wardNo)
	if n < MinWardNo {
		errs["wardno"] = "Ward number must be at least 1"
	} else if n > MaxWardNo {
		errs["wardno"] = "Ward number cannot exceed 35"
	}
}

func validateAge(errs ValidationErrors, age, ageType string) {
	age = strings.TrimSpace(age)
	if age == "" {
		return
	}
	if !digitsRe.MatchString(age) {
		errs["age"] = "Age must be a number"
		return
	}
	n, _ := strconv.Atoi(age)
	if n > MaxAge {
		errs["age"] = "Age cannot exceed 150 years"
		return
	}
	if ageType != "" && !isValidAgeUnit(ageType) {
		errs["agetype"] = "Age type must be Years, Months or Days"
	}
}
