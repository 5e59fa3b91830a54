package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// LeadRequest represents a lead create or full-replace request. Dates are
// accepted as YYYY-MM-DD or RFC3339 and resolved in the business timezone by
// the handler.
type LeadRequest struct {
	ID string `json:"id" binding:"omitempty,max=64"`

	Name           string `json:"name" binding:"required,max=255"`
	Email          string `json:"email" binding:"omitempty,email,max=255"`
	Phone          string `json:"phone" binding:"omitempty,max=50"`
	Country        string `json:"country" binding:"omitempty,max=100"`
	Website        string `json:"website" binding:"omitempty,max=255"`
	DecisionMaker  string `json:"decision_maker"`
	AdSpend        string `json:"ad_spend" binding:"omitempty,max=100"`
	MonthlyRevenue string `json:"monthly_revenue" binding:"omitempty,max=100"`
	MainProblem    string `json:"main_problem"`

	Qualification *enum.Qualification `json:"qualification"`
	Origin        enum.LeadOrigin     `json:"origin"`
	Status        enum.LeadStatus     `json:"status"`

	CallDate          *string           `json:"call_date" copier:"-"`
	WhatsappConfirmed enum.Confirmation `json:"whatsapp_confirmed"`
	Attended          enum.Confirmation `json:"attended"`
	NoAttendReason    string            `json:"no_attend_reason"`
	FollowUp          enum.FollowUp     `json:"follow_up"`
	OfferMade         bool              `json:"offer_made"`
	SecondCall        bool              `json:"second_call"`

	Bought           bool               `json:"bought"`
	PaymentMethod    enum.PaymentMethod `json:"payment_method"`
	CollectedAmount  decimal.Decimal    `json:"collected_amount"`
	Revenue          decimal.Decimal    `json:"revenue"`
	SetterCommission decimal.Decimal    `json:"setter_commission"`
	CloserCommission decimal.Decimal    `json:"closer_commission"`
	FirstPaymentDate *string            `json:"first_payment_date" copier:"-"`

	SetterID  *uuid.UUID `json:"setter_id"`
	CloserID  *uuid.UUID `json:"closer_id"`
	TriagerID *uuid.UUID `json:"triager_id"`

	Notes        string          `json:"notes"`
	ChatAnalysis string          `json:"chat_analysis"`
	Value        decimal.Decimal `json:"value"`
}

// LeadFilterRequest represents lead list and metrics query parameters
type LeadFilterRequest struct {
	Range         string `form:"range"`
	Start         string `form:"start"`
	End           string `form:"end"`
	Search        string `form:"search"`
	SearchCountry bool   `form:"search_country"`
	Status        string `form:"status"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// RangeRequest represents the period selection used by metrics endpoints
type RangeRequest struct {
	Range string `form:"range"`
	Start string `form:"start"`
	End   string `form:"end"`
}

// ChatAnalysisRequest carries a screenshot as a data URL or raw base64
type ChatAnalysisRequest struct {
	Image string `json:"image" binding:"required"`
}
