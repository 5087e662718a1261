package service

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
)

// PayrollService reconciles a barber's pay for a period: base salary plus
// accumulated commission, net of outstanding salary debts.
type PayrollService struct {
	barberRepo      repository.BarberRepository
	transactionRepo repository.TransactionRepository
	debtRepo        repository.SalaryDebtRepository
}

func NewPayrollService(
	barberRepo repository.BarberRepository,
	transactionRepo repository.TransactionRepository,
	debtRepo repository.SalaryDebtRepository,
) *PayrollService {
	return &PayrollService{
		barberRepo:      barberRepo,
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

// SalaryStatement is the reconciliation result for one barber and period.
// PayableAmount is floored at zero: a barber whose debts exceed earnings
// owes nothing through payroll, the surplus stays on the debt ledger.
type SalaryStatement struct {
	BarberID         uuid.UUID          `json:"barber_id"`
	BarberName       string             `json:"barber_name"`
	PeriodStart      time.Time          `json:"period_start"`
	PeriodEnd        time.Time          `json:"period_end"`
	BaseSalary       money.Money        `json:"base_salary"`
	CommissionTotal  money.Money        `json:"commission_total"`
	TransactionCount int                `json:"transaction_count"`
	DebtTotal        money.Money        `json:"debt_total"`
	PayableAmount    money.Money        `json:"payable_amount"`
	UnpaidDebts      []entity.SalaryDebt `json:"unpaid_debts,omitempty"`
}

// Reconcile computes the salary statement for one barber over [start, end).
// It is a pure read: nothing is marked paid.
func (s *PayrollService) Reconcile(ctx context.Context, barberID uuid.UUID, start, end time.Time) (*SalaryStatement, error) {
	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, apperror.NewNotFoundError("Barber")
	}

	return s.reconcileBarber(ctx, barber, start, end)
}

// ReconcileAll computes statements for every active barber over [start, end)
func (s *PayrollService) ReconcileAll(ctx context.Context, start, end time.Time) ([]SalaryStatement, error) {
	barbers, _, err := s.barberRepo.List(ctx, &repository.BarberFilterParams{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	statements := make([]SalaryStatement, 0, len(barbers))
	for i := range barbers {
		statement, err := s.reconcileBarber(ctx, &barbers[i], start, end)
		if err != nil {
			return nil, err
		}
		statements = append(statements, *statement)
	}

	return statements, nil
}

// Payout reconciles the period and settles debts covered by the barber's
// earnings. Debts are settled oldest first and only in full; a debt larger
// than the remaining earnings stays outstanding.
func (s *PayrollService) Payout(ctx context.Context, barberID uuid.UUID, start, end time.Time) (*SalaryStatement, error) {
	statement, err := s.Reconcile(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	earnings := statement.BaseSalary.Add(statement.CommissionTotal)

	var settled []uuid.UUID
	for _, debt := range statement.UnpaidDebts {
		if earnings.Cmp(debt.Amount) < 0 {
			break
		}
		earnings = earnings.Sub(debt.Amount)
		settled = append(settled, debt.ID)
	}

	if len(settled) > 0 {
		if err := s.debtRepo.MarkPaid(ctx, settled, time.Now()); err != nil {
			return nil, err
		}
	}

	return statement, nil
}

func (s *PayrollService) reconcileBarber(ctx context.Context, barber *entity.Barber, start, end time.Time) (*SalaryStatement, error) {
	transactions, err := s.transactionRepo.ListByBarberAndRange(ctx, barber.ID, start, end)
	if err != nil {
		return nil, err
	}

	commission := money.Zero
	for i := range transactions {
		commission = commission.Add(transactions[i].TotalCommission)
	}

	base := money.Zero
	if barber.CompensationType.EarnsBaseSalary() {
		// Base salary is a flat per-period amount, not pro-rated by days
		// worked.
		base = barber.BaseSalary
	}

	debts, err := s.debtRepo.ListUnpaidByBarber(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	debtTotal := money.Zero
	for i := range debts {
		debtTotal = debtTotal.Add(debts[i].Amount)
	}

	payable := base.Add(commission).Sub(debtTotal)
	if payable.IsNegative() {
		payable = money.Zero
	}

	return &SalaryStatement{
		BarberID:         barber.ID,
		BarberName:       barber.Name,
		PeriodStart:      start,
		PeriodEnd:        end,
		BaseSalary:       base,
		CommissionTotal:  commission,
		TransactionCount: len(transactions),
		DebtTotal:        debtTotal,
		PayableAmount:    payable,
		UnpaidDebts:      debts,
	}, nil
}
