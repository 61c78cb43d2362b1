package form

import (
	"strconv"
	"time"
)

// Engine holds one patient record's draft state for the duration of a form
// session: the canonical record, the municipality options keyed to the last
// selected district, and the per-field validation errors. All operations are
// synchronous and touch no I/O.
type Engine struct {
	rec        PatientRecord
	subRegions []Option
	errs       ValidationErrors
	now        func() time.Time
}

// NewEngine starts a form session. An empty raw record begins the create
// flow; a populated one is hydrated for the edit flow. Municipality options
// are preloaded for a hydrated district so an existing selection stays valid.
func NewEngine(raw RawRecord) *Engine {
	e := &Engine{
		rec:  Hydrate(raw),
		errs: ValidationErrors{},
		now:  time.Now,
	}
	if e.rec.DistrictID != "" {
		e.subRegions = MunicipalitiesFor(e.rec.DistrictID)
	}
	return e
}

// Record returns a copy of the current draft.
func (e *Engine) Record() PatientRecord {
	return e.rec
}

// SetRecord replaces the draft wholesale, e.g. from a bound form body.
// District options follow the new district; derived state is not recomputed.
func (e *Engine) SetRecord(rec PatientRecord) {
	e.rec = rec
	e.subRegions = MunicipalitiesFor(rec.DistrictID)
}

// SubRegionOptions returns the municipality options for the currently
// selected district.
func (e *Engine) SubRegionOptions() []Option {
	return append([]Option(nil), e.subRegions...)
}

// Errors returns the validation errors recorded by the last Submit.
func (e *Engine) Errors() ValidationErrors {
	out := ValidationErrors{}
	for k, v := range e.errs {
		out[k] = v
	}
	return out
}

// OnRegionChange selects a district. A known district yields its municipality
// options; an empty or unknown one yields none. Either way the previously
// selected municipality is cleared along with any error attached to it.
func (e *Engine) OnRegionChange(districtID string) []Option {
	e.rec.DistrictID = districtID
	e.rec.VDCID = ""
	delete(e.errs, "vdcid")

	d, ok := DistrictByID(districtID)
	if !ok {
		e.subRegions = []Option{}
		return []Option{}
	}
	e.subRegions = append([]Option(nil), d.Municipalities...)
	return e.SubRegionOptions()
}

// OnBirthDateChange sets the birth date and recomputes the age pair from it,
// reporting the largest non-zero unit. The derivation is one-way: editing the
// age fields never feeds back into the birth date. An unparseable date or an
// all-zero difference leaves the age fields untouched. Returns the record's
// age pair after the operation.
func (e *Engine) OnBirthDateChange(birthDate string) (string, string) {
	e.rec.DateOfBirth = birthDate

	parts, ok := CalculateAge(birthDate, e.now())
	if !ok {
		return e.rec.Age, e.rec.AgeType
	}
	if value, unit, found := parts.Largest(); found {
		e.rec.Age = strconv.Itoa(value)
		e.rec.AgeType = unit
		delete(e.errs, "age")
	}
	return e.rec.Age, e.rec.AgeType
}

// Validate applies the field rules to the current draft without recording
// the result.
func (e *Engine) Validate() ValidationErrors {
	return Validate(e.rec)
}

// Submit validates the draft. On failure the error map is recorded and
// returned with no other side effects; on success the assembled write
// payload is returned and the session's errors are cleared. The network
// write itself belongs to the transport collaborator.
func (e *Engine) Submit() (map[string]string, ValidationErrors) {
	errs := Validate(e.rec)
	if len(errs) > 0 {
		e.errs = errs
		return nil, errs
	}
	e.errs = ValidationErrors{}
	return e.rec.Payload(), nil
}
