package payslip

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"school-erp/internal/domain"
	"school-erp/internal/payhistory"
	payhistoryerrors "school-erp/internal/payhistory/errors"
	paysliperrors "school-erp/internal/payslip/errors"
	"school-erp/internal/settings"
	"school-erp/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// History resolves a single payment from either source.
type History interface {
	Resolve(ctx context.Context, id string) (payhistory.Entry, error)
	ResolveRun(ctx context.Context, runID, employeeID string) (payhistory.Entry, error)
}

// Settings supplies the institution identity printed on the payslip.
type Settings interface {
	Get(ctx context.Context) (settings.SettingsResponse, error)
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	BuildPayslip(ctx context.Context, id string, requester domain.Requester, employeeID string) (Payslip, error)
	Verify(ctx context.Context, reference string, requester domain.Requester) (Payslip, error)
}

type service struct {
	history  History
	settings Settings
	logger   *zap.Logger
}

func NewService(history History, institution Settings, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{history: history, settings: institution, logger: l}
}

// BuildPayslip accepts a payroll record id, a run detail id, or a run id. For
// a run id the employee is employeeID, or the requester when empty.
func (s *service) BuildPayslip(
	ctx context.Context,
	id string,
	requester domain.Requester,
	employeeID string,
) (Payslip, error) {
	entry, err := s.history.Resolve(ctx, id)
	if errors.Is(err, payhistoryerrors.ErrEntryNotFound) {
		if employeeID == "" {
			employeeID = requester.EmployeeID
		}
		entry, err = s.history.ResolveRun(ctx, id, employeeID)
	}
	if err != nil {
		if errors.Is(err, payhistoryerrors.ErrEntryNotFound) {
			return Payslip{}, paysliperrors.ErrRecordNotFound
		}
		return Payslip{}, err
	}

	return s.build(ctx, entry, requester)
}

// Verify re-resolves the payment a reference points at and checks the stored
// amounts still produce the same check value.
func (s *service) Verify(ctx context.Context, reference string, requester domain.Requester) (Payslip, error) {
	source, id, check, ok := ParseReference(reference)
	if !ok {
		return Payslip{}, paysliperrors.ErrRecordNotFound
	}

	entry, err := s.history.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, payhistoryerrors.ErrEntryNotFound) {
			return Payslip{}, paysliperrors.ErrRecordNotFound
		}
		return Payslip{}, err
	}

	if entry.Source != source || checksum(entry.Source, entry.ID, entry.GrossPay, entry.NetPay) != check {
		contextutil.GetLogger(ctx, s.logger).Warn("payslip reference mismatch",
			zap.String("reference", reference),
			zap.String("entry_id", entry.ID),
		)
		return Payslip{}, paysliperrors.ErrRecordNotFound
	}

	return s.build(ctx, entry, requester)
}

func (s *service) build(ctx context.Context, entry payhistory.Entry, requester domain.Requester) (Payslip, error) {
	if !requester.CanAccessEmployee(entry.EmployeeID) {
		return Payslip{}, paysliperrors.ErrAccessDenied
	}

	brand, err := s.settings.Get(ctx)
	if err != nil {
		return Payslip{}, err
	}

	if entry.Source == payhistory.SourceManual {
		if _, err := decodeSnapshot(entry.Snapshot); err != nil {
			contextutil.GetLogger(ctx, s.logger).Warn("manual run snapshot unreadable, using run figures",
				zap.String("entry_id", entry.ID),
				zap.String("run_id", entry.ReferenceID),
				zap.Error(err),
			)
		}
	}

	return Assemble(entry, brand), nil
}

// Assemble projects a history entry and branding into a payslip.
func Assemble(e payhistory.Entry, brand settings.SettingsResponse) Payslip {
	p := Payslip{
		Reference:   Reference(e),
		Source:      e.Source,
		Status:      e.Status,
		StatusLabel: statusLabel(e),
		Institution: Branding(brand),
		Employee: EmployeeIdentity{
			ID:         e.EmployeeID,
			Name:       e.EmployeeName,
			Department: e.DepartmentName,
		},
		PeriodLabel: PeriodLabel(e.PeriodStart, e.PeriodEnd),
		PeriodStart: e.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   e.PeriodEnd.Format("2006-01-02"),
		GrossPay:    e.GrossPay.StringFixed(2),
		NetPay:      e.NetPay.StringFixed(2),
		RunNumber:   e.RunNumber,
		IssuedAt:    e.IssuedAt.Format("2006-01-02"),
	}

	var totalDeductions decimal.Decimal
	switch e.Source {
	case payhistory.SourceFormal:
		p.Earnings = []LineItem{{Label: "Basic salary", Amount: p.GrossPay}}
		p.Deductions = []LineItem{
			{Label: taxLabel(e.TaxRate), Amount: e.Taxes.Decimal.StringFixed(2)},
			{Label: "Fixed deductions", Amount: e.Deductions.StringFixed(2)},
		}
		totalDeductions = e.Taxes.Decimal.Add(e.Deductions)
	default:
		p.Earnings, p.Deductions = snapshotItems(e)
		totalDeductions = e.Deductions
		if e.DaysPaid.Valid {
			p.DaysPaid = e.DaysPaid.Decimal.StringFixed(2)
		}
	}
	p.TotalDeductions = totalDeductions.StringFixed(2)

	return p
}

type snapshotLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type snapshotBody struct {
	Earnings   []snapshotLine `json:"earnings"`
	Deductions []snapshotLine `json:"deductions"`
}

// decodeSnapshot returns an empty body for an absent snapshot and for one
// that does not decode, never a partially filled one.
func decodeSnapshot(raw json.RawMessage) (snapshotBody, error) {
	if len(raw) == 0 {
		return snapshotBody{}, nil
	}
	var snap snapshotBody
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snapshotBody{}, err
	}
	return snap, nil
}

// snapshotItems uses the itemized earnings and deductions frozen in a manual
// run's snapshot when present, otherwise one line each for the run figures.
func snapshotItems(e payhistory.Entry) (earnings, deductions []LineItem) {
	snap, _ := decodeSnapshot(e.Snapshot)

	earnings = toItems(snap.Earnings)
	if len(earnings) == 0 {
		earnings = []LineItem{{Label: "Gross pay", Amount: e.GrossPay.StringFixed(2)}}
	}
	deductions = toItems(snap.Deductions)
	if len(deductions) == 0 {
		deductions = []LineItem{{Label: "Deductions", Amount: e.Deductions.StringFixed(2)}}
	}
	return earnings, deductions
}

func toItems(lines []snapshotLine) []LineItem {
	var items []LineItem
	for _, l := range lines {
		if l.Label == "" {
			continue
		}
		items = append(items, LineItem{Label: l.Label, Amount: l.Amount.StringFixed(2)})
	}
	return items
}

func taxLabel(rate decimal.NullDecimal) string {
	if !rate.Valid {
		return "Income tax"
	}
	return "Income tax (" + rate.Decimal.Mul(decimal.NewFromInt(100)).Round(2).String() + "%)"
}

func statusLabel(e payhistory.Entry) string {
	if e.Source == payhistory.SourceManual {
		return "Finalized (manual run)"
	}
	return "Issued"
}

// PeriodLabel is "January 2025" for a whole calendar month and a date range
// otherwise.
func PeriodLabel(start, end time.Time) string {
	monthEnd := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location())
	if start.Day() == 1 && end.Year() == start.Year() && end.Month() == start.Month() && end.Day() == monthEnd.Day() {
		return start.Format("January 2006")
	}
	return start.Format("02 Jan 2006") + " - " + end.Format("02 Jan 2006")
}
