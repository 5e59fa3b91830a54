package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// FollowUp records whether a lead needs a follow-up contact
type FollowUp int

const (
	FollowUpNotApplicable FollowUp = 0
	FollowUpYes           FollowUp = 1
	FollowUpNo            FollowUp = 2
)

var followUpNames = []string{"NotApplicable", "Yes", "No"}

var followUpAliases = map[string]int{
	"N/A": int(FollowUpNotApplicable),
	"Si":  int(FollowUpYes),
	"Sí":  int(FollowUpYes),
}

func (f FollowUp) String() string {
	return nameOf(followUpNames, int(f))
}

func (f FollowUp) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *FollowUp) UnmarshalJSON(data []byte) error {
	i, err := decodeName(data, "follow_up", followUpNames, followUpAliases)
	if err != nil {
		return err
	}
	*f = FollowUp(i)
	return nil
}

func (f FollowUp) Value() (driver.Value, error) {
	return int64(f), nil
}

func (f *FollowUp) Scan(value interface{}) error {
	if value == nil {
		*f = FollowUpNotApplicable
		return nil
	}
	i, err := scanCode(value, "follow_up", len(followUpNames))
	if err != nil {
		return err
	}
	*f = FollowUp(i)
	return nil
}
