package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is the per-user aggregate owning every investment ever added.
// Investments live in one map keyed by id; the active and history views are
// derived from each investment's withdrawal state on read.
type Wallet struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	investments map[uuid.UUID]*Investment
	order       []uuid.UUID // insertion order
}

// NewWallet creates an empty wallet for a user
func NewWallet(ownerID uuid.UUID) (*Wallet, error) {
	return RestoreWallet(uuid.New(), ownerID, nil)
}

// RestoreWallet rebuilds a persisted wallet; investments keep the given order
func RestoreWallet(id, ownerID uuid.UUID, investments []*Investment) (*Wallet, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: wallet id cannot be nil", ErrInvalidArgument)
	}
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: wallet owner cannot be nil", ErrInvalidArgument)
	}

	w := &Wallet{
		id:          id,
		ownerID:     ownerID,
		investments: make(map[uuid.UUID]*Investment, len(investments)),
	}
	for _, inv := range investments {
		if err := w.AddInvestment(inv); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// ID returns the wallet identifier
func (w *Wallet) ID() uuid.UUID { return w.id }

// OwnerID returns the owning user identifier
func (w *Wallet) OwnerID() uuid.UUID { return w.ownerID }

// AddInvestment adds an investment to the wallet.
// Fails with ErrAlreadyExists if the id is already present, active or withdrawn.
func (w *Wallet) AddInvestment(inv *Investment) error {
	if inv == nil {
		return fmt.Errorf("%w: investment cannot be nil", ErrInvalidArgument)
	}
	if _, exists := w.investments[inv.id]; exists {
		return fmt.Errorf("%w: investment %s already exists in the wallet", ErrAlreadyExists, inv.id)
	}

	w.investments[inv.id] = inv
	w.order = append(w.order, inv.id)
	return nil
}

// RemoveInvestment deletes an active investment from the wallet.
// Absent or withdrawn investments are left untouched; removal never moves anything to history.
func (w *Wallet) RemoveInvestment(inv *Investment) {
	if inv == nil {
		return
	}
	current, ok := w.investments[inv.id]
	if !ok || current.IsWithdrawn() {
		return
	}

	delete(w.investments, inv.id)
	for idx, id := range w.order {
		if id == inv.id {
			w.order = append(w.order[:idx], w.order[idx+1:]...)
			break
		}
	}
}

// Investment looks up an investment by id in either view
func (w *Wallet) Investment(id uuid.UUID) (*Investment, error) {
	inv, ok := w.investments[id]
	if !ok {
		return nil, fmt.Errorf("%w: investment %s in wallet %s", ErrNotFound, id, w.id)
	}
	return inv, nil
}

// WithdrawInvestment withdraws the investment with the given id.
// Afterwards it shows up in HistoryInvestments instead of ActiveInvestments.
func (w *Wallet) WithdrawInvestment(id uuid.UUID, effective *Date) error {
	inv, err := w.Investment(id)
	if err != nil {
		return err
	}
	return inv.Withdraw(effective)
}

// Investments returns every investment in insertion order
func (w *Wallet) Investments() []*Investment {
	return w.filter(func(*Investment) bool { return true })
}

// ActiveInvestments returns the investments not yet withdrawn, in insertion order
func (w *Wallet) ActiveInvestments() []*Investment {
	return w.filter(func(inv *Investment) bool { return !inv.IsWithdrawn() })
}

// HistoryInvestments returns the withdrawn investments, in insertion order
func (w *Wallet) HistoryInvestments() []*Investment {
	return w.filter(func(inv *Investment) bool { return inv.IsWithdrawn() })
}

func (w *Wallet) filter(keep func(*Investment) bool) []*Investment {
	result := make([]*Investment, 0, len(w.order))
	for _, id := range w.order {
		if inv := w.investments[id]; keep(inv) {
			result = append(result, inv)
		}
	}
	return result
}

// IsEmpty reports whether the wallet holds no investments at all
func (w *Wallet) IsEmpty() bool { return len(w.investments) == 0 }

// TotalBalance sums the current value of active investments as of asOf (today when nil)
// and the frozen value of every withdrawn investment.
// Each investment is rounded to cents before summing.
func (w *Wallet) TotalBalance(asOf *Date) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range w.Investments() {
		total = total.Add(inv.CurrentValue(asOf))
	}
	return total
}

// FutureBalance sums the projected maturity value of active investments.
// horizon is used for assets without a maturity date; withdrawn investments contribute nothing.
func (w *Wallet) FutureBalance(horizon *Date) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inv := range w.ActiveInvestments() {
		value, err := inv.FutureValue(horizon)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to project investment %s: %w", inv.id, err)
		}
		total = total.Add(value)
	}
	return total, nil
}

// ClassifyByCategoryPercentage returns the share of each asset type in investments, in percent.
// Every type is present (zero when absent); an empty input yields an empty map.
func ClassifyByCategoryPercentage(investments []*Investment) map[AssetType]float64 {
	result := make(map[AssetType]float64)
	if len(investments) == 0 {
		return result
	}

	counts := make(map[AssetType]int, len(assetTypes))
	for _, inv := range investments {
		counts[inv.asset.assetType]++
	}

	total := float64(len(investments))
	for _, t := range assetTypes {
		result[t] = float64(counts[t]) / total * 100.0
	}
	return result
}

// ClassifyByCategoryPercentage is the wallet-scoped form of the package function
func (w *Wallet) ClassifyByCategoryPercentage(investments []*Investment) map[AssetType]float64 {
	return ClassifyByCategoryPercentage(investments)
}

// FilterByType keeps the investments whose asset has the given type
func FilterByType(investments []*Investment, assetType AssetType) []*Investment {
	result := make([]*Investment, 0, len(investments))
	for _, inv := range investments {
		if inv.asset.assetType == assetType {
			result = append(result, inv)
		}
	}
	return result
}

// FilterByPurchaseDate keeps the investments purchased strictly after from and strictly before to
func FilterByPurchaseDate(investments []*Investment, from, to Date) []*Investment {
	result := make([]*Investment, 0, len(investments))
	for _, inv := range investments {
		if inv.purchaseDate.After(from) && inv.purchaseDate.Before(to) {
			result = append(result, inv)
		}
	}
	return result
}
