package domain

import "fmt"

// ExpenseCategory labels an expense record.
type ExpenseCategory string

// Expense categories
const (
	ExpenseGeneral       ExpenseCategory = "GENERAL"
	ExpenseFood          ExpenseCategory = "FOOD"
	ExpenseGrocery       ExpenseCategory = "GROCERY"
	ExpenseHouse         ExpenseCategory = "HOUSE"
	ExpenseEntertainment ExpenseCategory = "ENTERTAINMENT"
	ExpenseSocial        ExpenseCategory = "SOCIAL"
	ExpenseShopping      ExpenseCategory = "SHOPPING"
	ExpenseSubscription  ExpenseCategory = "SUBSCRIPTION"
	ExpenseHealth        ExpenseCategory = "HEALTH"
	ExpenseTravel        ExpenseCategory = "TRAVEL"
)

// IncomeCategory labels an income record.
type IncomeCategory string

// Income categories
const (
	IncomeGeneral    IncomeCategory = "GENERAL"
	IncomeSalary     IncomeCategory = "SALARY"
	IncomeSecondhand IncomeCategory = "SECONDHAND"
	IncomeGift       IncomeCategory = "GIFT"
	IncomeInvestment IncomeCategory = "INVESTMENT"
	IncomeLease      IncomeCategory = "LEASE"
)

var expenseCategories = []ExpenseCategory{
	ExpenseGeneral, ExpenseFood, ExpenseGrocery, ExpenseHouse, ExpenseEntertainment,
	ExpenseSocial, ExpenseShopping, ExpenseSubscription, ExpenseHealth, ExpenseTravel,
}

var incomeCategories = []IncomeCategory{
	IncomeGeneral, IncomeSalary, IncomeSecondhand, IncomeGift, IncomeInvestment, IncomeLease,
}

// ExpenseCategories returns every expense category in declaration order.
func ExpenseCategories() []ExpenseCategory {
	out := make([]ExpenseCategory, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IncomeCategories returns every income category in declaration order.
func IncomeCategories() []IncomeCategory {
	out := make([]IncomeCategory, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

// ParseExpenseCategory matches name exactly against the expense labels.
func ParseExpenseCategory(name string) (ExpenseCategory, error) {
	for _, c := range expenseCategories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not an expense category", ErrUnknownCategory, name)
}

// ParseIncomeCategory matches name exactly against the income labels.
func ParseIncomeCategory(name string) (IncomeCategory, error) {
	for _, c := range incomeCategories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not an income category", ErrUnknownCategory, name)
}

// CategoryNames lists the labels valid for kind.
func CategoryNames(kind Kind) ([]string, error) {
	switch kind {
	case KindExpense:
		names := make([]string, len(expenseCategories))
		for i, c := range expenseCategories {
			names[i] = string(c)
		}
		return names, nil
	case KindIncome:
		names := make([]string, len(incomeCategories))
		for i, c := range incomeCategories {
			names[i] = string(c)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}
