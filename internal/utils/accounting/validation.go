package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// ValidateLines rejects a line set that cannot be aggregated safely. Every line must belong to
// organizationID, carry a known account type and non-negative amounts, and every journal entry
// (lines sharing an EntryID) must balance and share one transaction date.
// The first problem found is returned as a *apperrors.ValidationError.
func ValidateLines(organizationID string, lines []domain.JournalLine) error {
	type entryTotals struct {
		debit, credit decimal.Decimal
		first         domain.JournalLine
	}
	entries := make(map[string]*entryTotals)
	order := make([]string, 0)

	for _, l := range lines {
		ref := l.LineID
		if ref == "" {
			ref = l.EntryID
		}

		if err := validate.Struct(l); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				fe := fieldErrs[0]
				return apperrors.NewValidationError(ref, fe.Field(), fmt.Sprintf("failed on '%s' rule (value %v)", fe.Tag(), fe.Value()))
			}
			return apperrors.NewValidationError(ref, "line", err.Error())
		}
		if l.TransactionDate.IsZero() {
			return apperrors.NewValidationError(ref, "TransactionDate", "is required")
		}
		if l.OrganizationID != organizationID {
			return apperrors.NewValidationError(ref, "OrganizationID",
				fmt.Sprintf("line belongs to organization %s, expected %s", l.OrganizationID, organizationID))
		}
		if l.Debit.IsNegative() {
			return apperrors.NewValidationError(ref, "Debit", "must not be negative")
		}
		if l.Credit.IsNegative() {
			return apperrors.NewValidationError(ref, "Credit", "must not be negative")
		}

		totals, ok := entries[l.EntryID]
		if !ok {
			totals = &entryTotals{debit: decimal.Zero, credit: decimal.Zero, first: l}
			entries[l.EntryID] = totals
			order = append(order, l.EntryID)
		} else if !sameDay(totals.first, l) {
			return apperrors.NewValidationError(l.EntryID, "TransactionDate", "lines of one entry must share the transaction date")
		}
		totals.debit = totals.debit.Add(l.Debit)
		totals.credit = totals.credit.Add(l.Credit)
	}

	for _, id := range order {
		t := entries[id]
		if !t.debit.Equal(t.credit) {
			return apperrors.NewValidationError(id, "Lines",
				fmt.Sprintf("unbalanced entry: debit %s != credit %s", t.debit.String(), t.credit.String()))
		}
	}
	return nil
}

func sameDay(a, b domain.JournalLine) bool {
	ay, am, ad := a.TransactionDate.UTC().Date()
	by, bm, bd := b.TransactionDate.UTC().Date()
	return ay == by && am == bm && ad == bd
}
