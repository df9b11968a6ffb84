package ledger

import (
	"sort"

	"fjacquet/split-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// CalculateSettlements derives, independently for each month, the transfer
// list that zeroes that month's balances. There is no cross-month netting.
func (l *Ledger) CalculateSettlements(balancesByMonth map[string]models.BalanceMap) map[string][]models.Settlement {
	settlementsByMonth := make(map[string][]models.Settlement, len(balancesByMonth))
	for month, balances := range balancesByMonth {
		settlementsByMonth[month] = SettleBalances(balances)
	}
	return settlementsByMonth
}

// SettleBalances reduces one month's balance map to a list of transfers
// that, once applied, bring every balance to zero. Every emitted amount is
// strictly positive; zero-balance participants emit nothing.
//
// The current strategy is the greedy front-insert heuristic. It is isolated
// here so an optimal matcher (full re-sort per iteration, or min-cost flow)
// could replace it without touching any caller.
func SettleBalances(balances models.BalanceMap) []models.Settlement {
	return settleGreedyFrontInsert(balances)
}

// party is one side of an open position while matching. amount is always a
// positive magnitude, for debtors the negated balance.
type party struct {
	name   string
	amount decimal.Decimal
}

// settleGreedyFrontInsert implements greedy largest-first matching with the
// front-insert step: after a partial match the reduced party goes back to
// the FRONT of its list rather than being re-sorted. This can emit more
// transfers than the minimum on adversarial inputs; it is kept for
// behavioral compatibility. See SettleBalances for the substitution point.
func settleGreedyFrontInsert(balances models.BalanceMap) []models.Settlement {
	// Partition in sorted-name order so the magnitude sort below has a
	// deterministic starting order. The tie-break is an implementation
	// detail, not a contract.
	names := make([]string, 0, len(balances))
	for name := range balances {
		names = append(names, name)
	}
	sort.Strings(names)

	var creditors, debtors []party
	for _, name := range names {
		balance := balances[name]
		switch {
		case balance.IsPositive():
			creditors = append(creditors, party{name: name, amount: balance})
		case balance.IsNegative():
			debtors = append(debtors, party{name: name, amount: balance.Neg()})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].amount.GreaterThan(creditors[j].amount)
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].amount.GreaterThan(debtors[j].amount)
	})

	var settlements []models.Settlement
	for len(creditors) > 0 && len(debtors) > 0 {
		creditor := creditors[0]
		debtor := debtors[0]
		creditors = creditors[1:]
		debtors = debtors[1:]

		amount := decimal.Min(creditor.amount, debtor.amount)
		settlements = append(settlements, models.Settlement{
			Debtor:   debtor.name,
			Creditor: creditor.name,
			Amount:   amount,
		})

		switch creditor.amount.Cmp(debtor.amount) {
		case 1:
			creditors = append([]party{{name: creditor.name, amount: creditor.amount.Sub(amount)}}, creditors...)
		case -1:
			debtors = append([]party{{name: debtor.name, amount: debtor.amount.Sub(amount)}}, debtors...)
		}
		// Equal magnitudes retire both parties.
	}

	return settlements
}
