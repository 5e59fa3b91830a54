package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func init() {
	// Money travels as JSON numbers, matching what the dashboard sends
	decimal.MarshalJSONWithoutQuotes = true
}

// Lead represents a prospect moving through the scheduling, qualification,
// offer and close funnel
type Lead struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Contact and intake profile
	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255" json:"email,omitempty"`
	Phone          string `gorm:"size:50" json:"phone,omitempty"`
	Country        string `gorm:"size:100" json:"country,omitempty"`
	Website        string `gorm:"size:255" json:"website,omitempty"`
	DecisionMaker  string `gorm:"type:text" json:"decision_maker,omitempty"`
	AdSpend        string `gorm:"size:100" json:"ad_spend,omitempty"`
	MonthlyRevenue string `gorm:"size:100" json:"monthly_revenue,omitempty"`
	MainProblem    string `gorm:"type:text" json:"main_problem,omitempty"`

	// Classification
	Qualification *enum.Qualification `gorm:"type:smallint" json:"qualification,omitempty"`
	Origin        enum.LeadOrigin     `gorm:"type:smallint;not null;default:0" json:"origin"`
	Status        enum.LeadStatus     `gorm:"type:smallint;not null;default:0" json:"status"`

	// Scheduling and tracking
	CallDate          *time.Time        `gorm:"index" json:"call_date,omitempty"`
	WhatsappConfirmed enum.Confirmation `gorm:"type:smallint;not null;default:0" json:"whatsapp_confirmed"`
	Attended          enum.Confirmation `gorm:"type:smallint;not null;default:0" json:"attended"`
	NoAttendReason    string            `gorm:"type:text" json:"no_attend_reason,omitempty"`
	FollowUp          enum.FollowUp     `gorm:"type:smallint;not null;default:0" json:"follow_up"`
	OfferMade         bool              `gorm:"not null;default:false" json:"offer_made"`
	SecondCall        bool              `gorm:"not null;default:false" json:"second_call"`

	// Financials
	Bought           bool               `gorm:"not null;default:false" json:"bought"`
	PaymentMethod    enum.PaymentMethod `gorm:"type:smallint;not null;default:0" json:"payment_method"`
	CollectedAmount  decimal.Decimal    `gorm:"type:numeric(14,2);not null;default:0" json:"collected_amount"`
	Revenue          decimal.Decimal    `gorm:"type:numeric(14,2);not null;default:0" json:"revenue"`
	SetterCommission decimal.Decimal    `gorm:"type:numeric(14,2);not null;default:0" json:"setter_commission"`
	CloserCommission decimal.Decimal    `gorm:"type:numeric(14,2);not null;default:0" json:"closer_commission"`
	FirstPaymentDate *time.Time         `gorm:"index" json:"first_payment_date,omitempty"`

	// Personnel
	SetterID  *uuid.UUID `gorm:"type:uuid;index" json:"setter_id,omitempty"`
	CloserID  *uuid.UUID `gorm:"type:uuid;index" json:"closer_id,omitempty"`
	TriagerID *uuid.UUID `gorm:"type:uuid;index" json:"triager_id,omitempty"`

	// Notes and AI output
	Notes        string          `gorm:"type:text" json:"notes"`
	ChatAnalysis string          `gorm:"type:text" json:"chat_analysis,omitempty"`
	Value        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"value"`
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}

// Clone returns a copy that shares no pointers with the receiver
func (l *Lead) Clone() Lead {
	c := *l
	c.Qualification = clonePtr(l.Qualification)
	c.CallDate = clonePtr(l.CallDate)
	c.FirstPaymentDate = clonePtr(l.FirstPaymentDate)
	c.SetterID = clonePtr(l.SetterID)
	c.CloserID = clonePtr(l.CloserID)
	c.TriagerID = clonePtr(l.TriagerID)
	return c
}

// IsSale reports whether the lead converted and has a payment date to attribute it to
func (l *Lead) IsSale() bool {
	return l.Bought && l.FirstPaymentDate != nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
