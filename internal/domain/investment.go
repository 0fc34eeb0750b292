package domain

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// daysPerPeriod is the length of one profitability period
const daysPerPeriod = 30

// periodPrecision is the number of decimal places kept when converting days to periods
const periodPrecision = 10

// Investment is a single position taken in an Asset.
// It is Active until Withdraw records a withdrawal date, after which its value is frozen.
type Investment struct {
	id           uuid.UUID
	initialValue decimal.Decimal
	asset        *Asset
	purchaseDate Date
	withdrawDate *Date
	resolver     EffectiveDateResolver
}

// InvestmentOption configures an Investment at construction
type InvestmentOption func(*Investment)

// WithResolver sets the resolver used for "today" (defaults to SystemResolver)
func WithResolver(resolver EffectiveDateResolver) InvestmentOption {
	return func(inv *Investment) {
		if resolver != nil {
			inv.resolver = resolver
		}
	}
}

// WithID forces the investment identifier instead of generating one
func WithID(id uuid.UUID) InvestmentOption {
	return func(inv *Investment) { inv.id = id }
}

// NewInvestment opens an Active position.
// Fails with ErrInvalidArgument when the value is not positive, the asset is missing,
// the purchase date is unset, in the future, or after the asset's maturity date.
func NewInvestment(initialValue decimal.Decimal, asset *Asset, purchaseDate Date, opts ...InvestmentOption) (*Investment, error) {
	inv, err := buildInvestment(uuid.New(), initialValue, asset, purchaseDate, opts)
	if err != nil {
		return nil, err
	}

	if purchaseDate.After(inv.resolver.Resolve(nil)) {
		return nil, fmt.Errorf("%w: purchase date %s cannot be in the future", ErrInvalidArgument, purchaseDate)
	}
	return inv, nil
}

// RestoreInvestment rebuilds a persisted investment, possibly already withdrawn
func RestoreInvestment(id uuid.UUID, initialValue decimal.Decimal, asset *Asset, purchaseDate Date, withdrawDate *Date, opts ...InvestmentOption) (*Investment, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: investment id cannot be nil", ErrInvalidArgument)
	}

	inv, err := buildInvestment(id, initialValue, asset, purchaseDate, opts)
	if err != nil {
		return nil, err
	}

	if withdrawDate != nil && !withdrawDate.IsZero() {
		if withdrawDate.Before(purchaseDate) {
			return nil, fmt.Errorf("%w: withdraw date %s cannot be before purchase date %s", ErrInvalidArgument, *withdrawDate, purchaseDate)
		}
		inv.withdrawDate = datePtr(*withdrawDate)
	}
	return inv, nil
}

func buildInvestment(id uuid.UUID, initialValue decimal.Decimal, asset *Asset, purchaseDate Date, opts []InvestmentOption) (*Investment, error) {
	if initialValue.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: initial value must be greater than zero", ErrInvalidArgument)
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset cannot be nil", ErrInvalidArgument)
	}
	if purchaseDate.IsZero() {
		return nil, fmt.Errorf("%w: purchase date cannot be empty", ErrInvalidArgument)
	}
	if maturity, ok := asset.MaturityDate(); ok && purchaseDate.After(maturity) {
		return nil, fmt.Errorf("%w: purchase date cannot be after maturity date", ErrInvalidArgument)
	}

	inv := &Investment{
		id:           id,
		initialValue: initialValue,
		asset:        asset,
		purchaseDate: purchaseDate,
		resolver:     SystemResolver(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.id == uuid.Nil {
		return nil, fmt.Errorf("%w: investment id cannot be nil", ErrInvalidArgument)
	}
	return inv, nil
}

// ID returns the investment identifier
func (i *Investment) ID() uuid.UUID { return i.id }

// InitialValue returns the principal
func (i *Investment) InitialValue() decimal.Decimal { return i.initialValue }

// Asset returns the referenced asset
func (i *Investment) Asset() *Asset { return i.asset }

// PurchaseDate returns the date the position was opened
func (i *Investment) PurchaseDate() Date { return i.purchaseDate }

// WithdrawDate returns the withdrawal date and whether the investment is withdrawn
func (i *Investment) WithdrawDate() (Date, bool) {
	if i.withdrawDate == nil {
		return Date{}, false
	}
	return *i.withdrawDate, true
}

// IsWithdrawn reports whether the investment left the active set through withdrawal
func (i *Investment) IsWithdrawn() bool { return i.withdrawDate != nil }

// Withdraw moves the investment from Active to Withdrawn.
// A nil effective date is resolved to today through the investment's resolver.
func (i *Investment) Withdraw(effective *Date) error {
	if i.IsWithdrawn() {
		return fmt.Errorf("%w: investment %s is already withdrawn", ErrIllegalState, i.id)
	}

	date := i.resolver.Resolve(effective)
	if date.Before(i.purchaseDate) {
		return fmt.Errorf("%w: withdraw date %s cannot be before purchase date %s", ErrInvalidArgument, date, i.purchaseDate)
	}

	i.withdrawDate = datePtr(date)
	return nil
}

// CurrentValue returns the compounded value rounded to cents.
// A withdrawn investment ignores asOf and is valued at its withdrawal date;
// an active one is valued at asOf, or today when asOf is nil.
func (i *Investment) CurrentValue(asOf *Date) decimal.Decimal {
	if i.withdrawDate != nil {
		return i.ValueAt(*i.withdrawDate)
	}
	return i.ValueAt(i.resolver.Resolve(asOf))
}

// FutureValue projects the value at the asset's maturity date.
// When the asset has no maturity the caller-supplied horizon is used;
// with neither, ErrNoHorizon is returned.
func (i *Investment) FutureValue(horizon *Date) (decimal.Decimal, error) {
	if maturity, ok := i.asset.MaturityDate(); ok {
		return i.ValueAt(maturity), nil
	}
	if horizon != nil && !horizon.IsZero() {
		return i.ValueAt(*horizon), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %w: asset %q has no maturity date", ErrInvalidArgument, ErrNoHorizon, i.asset.name)
}

// ValueAt applies 30-day compounding up to date and rounds half-up to cents:
//
//	value = initialValue * (1 + profitability) ^ (days / 30)
//
// Periods are fractional. A date before the purchase date counts as zero elapsed days.
func (i *Investment) ValueAt(date Date) decimal.Decimal {
	days := i.purchaseDate.DaysUntil(date)
	if days < 0 {
		days = 0
	}

	periods := decimal.NewFromInt(int64(days)).DivRound(decimal.NewFromInt(daysPerPeriod), periodPrecision)
	base := i.asset.profitability.Add(decimal.NewFromInt(1))
	compound := decimal.NewFromFloat(math.Pow(base.InexactFloat64(), periods.InexactFloat64()))

	return i.initialValue.Mul(compound).Round(2)
}

// String renders the investment the way reports list it
func (i *Investment) String() string {
	return fmt.Sprintf("Initial value = R$ %s | %s", i.initialValue.StringFixed(2), i.asset)
}
