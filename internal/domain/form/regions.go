package form

// District is one administrative district and its VDC/municipality options.
// The table is static configuration data, loaded once and never mutated.
type District struct {
	ID             string   `json:"districtid"`
	Name           string   `json:"name"`
	Municipalities []Option `json:"municipalities"`
}

var districts = []District{
	{
		ID:   "1",
		Name: "Kathmandu",
		Municipalities: []Option{
			{Label: "Kathmandu Metropolitan City", Value: "1147"},
			{Label: "Budhanilkantha Municipality", Value: "1148"},
			{Label: "Shankharapur Municipality", Value: "1149"},
			{Label: "Nagarjun Municipality", Value: "1150"},
			{Label: "Tarakeshwar Municipality", Value: "1151"},
			{Label: "Tokha Municipality", Value: "1152"},
			{Label: "Kirtipur Municipality", Value: "1153"},
			{Label: "Madhyapur Thimi Municipality", Value: "1154"},
			{Label: "Bhaktapur Municipality", Value: "1155"},
			{Label: "Suryabinayak Municipality", Value: "1156"},
			{Label: "Changunarayan Municipality", Value: "1157"},
		},
	},
	{
		ID:   "2",
		Name: "Lalitpur",
		Municipalities: []Option{
			{Label: "Lalitpur Metropolitan City", Value: "2147"},
			{Label: "Godawari Municipality", Value: "2148"},
			{Label: "Mahalaxmi Municipality", Value: "2149"},
			{Label: "Konjyosom Rural Municipality", Value: "2150"},
			{Label: "Bagmati Rural Municipality", Value: "2151"},
		},
	},
	{
		ID:   "3",
		Name: "Bhaktapur",
		Municipalities: []Option{
			{Label: "Bhaktapur Municipality", Value: "3147"},
			{Label: "Changunarayan Municipality", Value: "3148"},
			{Label: "Madhyapur Thimi Municipality", Value: "3149"},
			{Label: "Suryabinayak Municipality", Value: "3150"},
		},
	},
	{
		ID:   "45",
		Name: "Achham",
		Municipalities: []Option{
			{Label: "Mangalsen Municipality", Value: "4501"},
			{Label: "Kamalbazar Municipality", Value: "4502"},
			{Label: "Sanfebagar Municipality", Value: "4503"},
		},
	},
}

// Districts returns the full district table.
func Districts() []District {
	return append([]District(nil), districts...)
}

// DistrictByID looks up a district. The second return is false for an empty
// or unknown id.
func DistrictByID(id string) (District, bool) {
	for _, d := range districts {
		if d.ID == id {
			return d, true
		}
	}
	return District{}, false
}

// MunicipalitiesFor returns the VDC/municipality options of a district, or
// an empty slice when the district is unknown.
func MunicipalitiesFor(districtID string) []Option {
	d, ok := DistrictByID(districtID)
	if !ok {
		return []Option{}
	}
	return append([]Option(nil), d.Municipalities...)
}

func isMunicipalityOf(districtID, vdcID string) bool {
	d, ok := DistrictByID(districtID)
	if !ok {
		return false
	}
	for _, m := range d.Municipalities {
		if m.Value == vdcID {
			return true
		}
	}
	return false
}
