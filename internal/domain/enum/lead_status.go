package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadStatus represents where a lead is in the contact cycle
type LeadStatus int

const (
	LeadStatusNew       LeadStatus = 0
	LeadStatusContacted LeadStatus = 1
	LeadStatusClosed    LeadStatus = 2
)

var leadStatusNames = []string{"New", "Contacted", "Closed"}

var leadStatusAliases = map[string]int{
	"Nuevo":      int(LeadStatusNew),
	"Contactado": int(LeadStatusContacted),
	"Cerrado":    int(LeadStatusClosed),
}

func (s LeadStatus) String() string {
	return nameOf(leadStatusNames, int(s))
}

// ParseLeadStatus resolves a status name or alias
func ParseLeadStatus(str string) (LeadStatus, error) {
	i, err := lookupName(str, "status", leadStatusNames, leadStatusAliases)
	return LeadStatus(i), err
}

func (s LeadStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LeadStatus) UnmarshalJSON(data []byte) error {
	i, err := decodeName(data, "status", leadStatusNames, leadStatusAliases)
	if err != nil {
		return err
	}
	*s = LeadStatus(i)
	return nil
}

func (s LeadStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *LeadStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStatusNew
		return nil
	}
	i, err := scanCode(value, "status", len(leadStatusNames))
	if err != nil {
		return err
	}
	*s = LeadStatus(i)
	return nil
}
