package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadOrigin represents the acquisition channel of a lead
type LeadOrigin int

const (
	LeadOriginSetting       LeadOrigin = 0
	LeadOriginDirectBooking LeadOrigin = 1
	LeadOriginTikTok        LeadOrigin = 2
	LeadOriginReferral      LeadOrigin = 3
	LeadOriginInstagram     LeadOrigin = 4
	LeadOriginYouTube       LeadOrigin = 5
)

var leadOriginNames = []string{"Setting", "DirectBooking", "TikTok", "Referral", "Instagram", "YouTube"}

var leadOriginAliases = map[string]int{
	"Agenda Directa": int(LeadOriginDirectBooking),
	"Direct Booking": int(LeadOriginDirectBooking),
}

// LeadOrigins lists every origin in declaration order
func LeadOrigins() []LeadOrigin {
	origins := make([]LeadOrigin, len(leadOriginNames))
	for i := range leadOriginNames {
		origins[i] = LeadOrigin(i)
	}
	return origins
}

func (o LeadOrigin) String() string {
	return nameOf(leadOriginNames, int(o))
}

func (o LeadOrigin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *LeadOrigin) UnmarshalJSON(data []byte) error {
	i, err := decodeName(data, "origin", leadOriginNames, leadOriginAliases)
	if err != nil {
		return err
	}
	*o = LeadOrigin(i)
	return nil
}

func (o LeadOrigin) Value() (driver.Value, error) {
	return int64(o), nil
}

func (o *LeadOrigin) Scan(value interface{}) error {
	if value == nil {
		*o = LeadOriginSetting
		return nil
	}
	i, err := scanCode(value, "origin", len(leadOriginNames))
	if err != nil {
		return err
	}
	*o = LeadOrigin(i)
	return nil
}
