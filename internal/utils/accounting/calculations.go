package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the account-type sign convention to a single line.
//
//	asset, expense            -> debit - credit
//	liability, equity, income -> credit - debit
func CalculateSignedAmount(line domain.JournalLine) (decimal.Decimal, error) {
	switch line.AccountType {
	case domain.Asset, domain.Expense:
		return line.Debit.Sub(line.Credit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return line.Credit.Sub(line.Debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account %s", line.AccountType, line.AccountLabel())
	}
}

// signed is CalculateSignedAmount for lines that already passed validation.
func signed(line domain.JournalLine) decimal.Decimal {
	v, err := CalculateSignedAmount(line)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// ValidateJournalBalance checks that the lines of one journal entry balance: sum(debit) == sum(credit).
func ValidateJournalBalance(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal must have at least two lines")
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("line amounts must not be negative for account %s", l.AccountLabel())
		}
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal entries do not balance: debit %s, credit %s", debits.String(), credits.String())
	}
	return nil
}
