package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/internal/domain/enum"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// LeadDraft holds the editable fields of a lead. ID is optional; one is
// generated when empty.
type LeadDraft struct {
	ID string

	Name           string
	Email          string
	Phone          string
	Country        string
	Website        string
	DecisionMaker  string
	AdSpend        string
	MonthlyRevenue string
	MainProblem    string

	Qualification *enum.Qualification
	Origin        enum.LeadOrigin
	Status        enum.LeadStatus

	CallDate          *time.Time
	WhatsappConfirmed enum.Confirmation
	Attended          enum.Confirmation
	NoAttendReason    string
	FollowUp          enum.FollowUp
	OfferMade         bool
	SecondCall        bool

	Bought           bool
	PaymentMethod    enum.PaymentMethod
	CollectedAmount  decimal.Decimal
	Revenue          decimal.Decimal
	SetterCommission decimal.Decimal
	CloserCommission decimal.Decimal
	FirstPaymentDate *time.Time

	SetterID  *uuid.UUID
	CloserID  *uuid.UUID
	TriagerID *uuid.UUID

	Notes        string
	ChatAnalysis string
	Value        decimal.Decimal
}

// LeadCopyOption copies lead fields between requests, drafts and entities.
// Pointer fields whose types implement sql.Scanner are copied by value
// through explicit converters.
var LeadCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: (*uuid.UUID)(nil),
			DstType: (*uuid.UUID)(nil),
			Fn: func(src interface{}) (interface{}, error) {
				return clonePtr(src.(*uuid.UUID)), nil
			},
		},
		{
			SrcType: (*enum.Qualification)(nil),
			DstType: (*enum.Qualification)(nil),
			Fn: func(src interface{}) (interface{}, error) {
				return clonePtr(src.(*enum.Qualification)), nil
			},
		},
	},
}

// CopyLeadFields copies same-named lead fields from src into dst
func CopyLeadFields(dst, src interface{}) error {
	return copier.CopyWithOption(dst, src, LeadCopyOption)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// normalize trims free-text identity fields in place
func normalize(l *entity.Lead) {
	l.ID = strings.TrimSpace(l.ID)
	l.Name = strings.TrimSpace(l.Name)
	l.Email = strings.TrimSpace(l.Email)
	l.Country = strings.TrimSpace(l.Country)
}

// validateLead checks the invariants a lead must hold before it enters the
// in-memory set
func validateLead(l *entity.Lead, staff StaffDirectory) error {
	var fieldErrors []apperror.FieldError

	if l.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}

	money := []struct {
		field string
		value decimal.Decimal
	}{
		{"collected_amount", l.CollectedAmount},
		{"revenue", l.Revenue},
		{"setter_commission", l.SetterCommission},
		{"closer_commission", l.CloserCommission},
		{"value", l.Value},
	}
	for _, m := range money {
		if m.value.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: m.field, Message: m.field + " must not be negative"})
		}
	}

	if staff != nil {
		refs := []struct {
			field string
			id    *uuid.UUID
		}{
			{"setter_id", l.SetterID},
			{"closer_id", l.CloserID},
			{"triager_id", l.TriagerID},
		}
		for _, ref := range refs {
			if ref.id != nil && !staff.Exists(*ref.id) {
				fieldErrors = append(fieldErrors, apperror.FieldError{Field: ref.field, Message: "unknown staff member"})
			}
		}
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
