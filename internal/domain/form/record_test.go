package form

import "testing"

func TestRawRecord_Str(t *testing.T) {
	raw := RawRecord{
		"userid": float64(1000596100),
		"fname":  "Ram",
		"age":    nil,
	}
	if got := raw.Str("userid"); got != "1000596100" {
		t.Errorf("Str(userid) = %q, want %q", got, "1000596100")
	}
	if got := raw.Str("fname"); got != "Ram" {
		t.Errorf("Str(fname) = %q", got)
	}
	if got := raw.Str("age"); got != "" {
		t.Errorf("Str(age) = %q, want empty for nil", got)
	}
	if got := raw.Str("missing"); got != "" {
		t.Errorf("Str(missing) = %q, want empty", got)
	}
}

func TestRawRecord_First(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawRecord
		canonical string
		want      string
	}{
		{"primary wins over alias", RawRecord{"email": "a@b.com", "emailaddress": "c@d.com"}, "email", "a@b.com"},
		{"alias when primary absent", RawRecord{"emailaddress": "c@d.com"}, "email", "c@d.com"},
		{"alias when primary empty", RawRecord{"email": "", "emailaddress": "c@d.com"}, "email", "c@d.com"},
		{"mobile alias", RawRecord{"mobilenumber": "9841000000"}, "mobileno", "9841000000"},
		{"birth date alias", RawRecord{"dobad": "1990/05/20"}, "dateofbirth", "1990/05/20"},
		{"no alias table entry", RawRecord{"gender": "Male"}, "gender", "Male"},
		{"nothing present", RawRecord{}, "email", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.First(tt.canonical); got != tt.want {
				t.Errorf("First(%q) = %q, want %q", tt.canonical, got, tt.want)
			}
		})
	}
}

func TestHydrate_Defaults(t *testing.T) {
	rec := Hydrate(RawRecord{})
	if rec.CountryCode != DefaultCountryCode {
		t.Errorf("CountryCode = %q, want %q", rec.CountryCode, DefaultCountryCode)
	}
	if rec.AgeType != AgeUnitYears {
		t.Errorf("AgeType = %q, want %q", rec.AgeType, AgeUnitYears)
	}
}

func TestHydrate_SelfProfileAliases(t *testing.T) {
	raw := RawRecord{
		"userid":       "42",
		"fname":        "Ram",
		"lname":        "Thapa",
		"emailaddress": "ram@example.com",
		"mobilenumber": "9841000000",
		"dobad":        "1990/05/20",
	}
	rec := Hydrate(raw)
	if rec.Email != "ram@example.com" {
		t.Errorf("Email = %q", rec.Email)
	}
	if rec.MobileNo != "9841000000" {
		t.Errorf("MobileNo = %q", rec.MobileNo)
	}
	if rec.DateOfBirth != "1990/05/20" {
		t.Errorf("DateOfBirth = %q", rec.DateOfBirth)
	}
}

func TestPayload(t *testing.T) {
	rec := validRecord()
	rec.FirstName = "  Sita "
	rec.Email = " sita@example.com "
	payload := rec.Payload()

	if payload["fname"] != "Sita" {
		t.Errorf("fname = %q, want trimmed", payload["fname"])
	}
	if payload["email"] != "sita@example.com" {
		t.Errorf("email = %q, want trimmed", payload["email"])
	}
	if payload["addtorelative"] != "Y" {
		t.Errorf("addtorelative = %q, want Y", payload["addtorelative"])
	}
	if _, ok := payload["userid"]; ok {
		t.Error("payload must not carry the record's userid; identity is stamped by the transport")
	}
}

func TestPayload_EnumDefaults(t *testing.T) {
	payload := PatientRecord{}.Payload()
	if payload["countrycode"] != DefaultCountryCode {
		t.Errorf("countrycode = %q, want %q", payload["countrycode"], DefaultCountryCode)
	}
	if payload["agetype"] != AgeUnitYears {
		t.Errorf("agetype = %q, want %q", payload["agetype"], AgeUnitYears)
	}
}
