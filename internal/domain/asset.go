package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType represents the category of an investable instrument
type AssetType string

const (
	AssetTypeCDB           AssetType = "CDB"
	AssetTypeLCI           AssetType = "LCI"
	AssetTypeLCA           AssetType = "LCA"
	AssetTypeCRI           AssetType = "CRI"
	AssetTypeCRA           AssetType = "CRA"
	AssetTypeTesouroDireto AssetType = "TESOURO_DIRETO"
)

// assetTypes is the closed enumeration in report order
var assetTypes = []AssetType{
	AssetTypeCDB,
	AssetTypeLCI,
	AssetTypeLCA,
	AssetTypeCRI,
	AssetTypeCRA,
	AssetTypeTesouroDireto,
}

// AssetTypes returns every asset type in its canonical order
func AssetTypes() []AssetType {
	types := make([]AssetType, len(assetTypes))
	copy(types, assetTypes)
	return types
}

// Valid reports whether t belongs to the enumeration
func (t AssetType) Valid() bool {
	for _, known := range assetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseAssetType parses a type name case-insensitively; spaces are accepted for underscores
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown asset type %q", ErrInvalidArgument, s)
	}
	return t, nil
}

// Asset is an immutable description of an investable instrument.
// Profitability is the growth rate applied per 30-day period.
type Asset struct {
	id            uuid.UUID
	name          string
	assetType     AssetType
	profitability decimal.Decimal
	maturityDate  *Date // nil when the asset has no maturity
}

// NewAsset creates an asset with a fresh identifier.
// Fails with ErrInvalidArgument on a blank name, an unknown type or a non-positive rate.
func NewAsset(name string, assetType AssetType, profitability decimal.Decimal, maturityDate *Date) (*Asset, error) {
	return RestoreAsset(uuid.New(), name, assetType, profitability, maturityDate)
}

// RestoreAsset rebuilds a persisted asset, enforcing the same rules as NewAsset
func RestoreAsset(id uuid.UUID, name string, assetType AssetType, profitability decimal.Decimal, maturityDate *Date) (*Asset, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: asset id cannot be nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: asset name cannot be blank", ErrInvalidArgument)
	}
	if !assetType.Valid() {
		return nil, fmt.Errorf("%w: unknown asset type %q", ErrInvalidArgument, assetType)
	}
	if profitability.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: asset profitability must be greater than zero", ErrInvalidArgument)
	}

	asset := &Asset{
		id:            id,
		name:          name,
		assetType:     assetType,
		profitability: profitability,
	}
	if maturityDate != nil && !maturityDate.IsZero() {
		asset.maturityDate = datePtr(*maturityDate)
	}
	return asset, nil
}

// ID returns the asset identifier
func (a *Asset) ID() uuid.UUID { return a.id }

// Name returns the display label
func (a *Asset) Name() string { return a.name }

// Type returns the asset category
func (a *Asset) Type() AssetType { return a.assetType }

// Profitability returns the 30-day periodic rate
func (a *Asset) Profitability() decimal.Decimal { return a.profitability }

// MaturityDate returns the maturity date and whether the asset has one
func (a *Asset) MaturityDate() (Date, bool) {
	if a.maturityDate == nil {
		return Date{}, false
	}
	return *a.maturityDate, true
}

// String renders the asset the way reports list it
func (a *Asset) String() string {
	maturity := "none"
	if m, ok := a.MaturityDate(); ok {
		maturity = m.Slash()
	}
	return fmt.Sprintf("Asset name = %s | Type: %s | Asset profitability = %s%% | Asset maturity date = %s",
		a.name, a.assetType, a.profitability.Mul(decimal.NewFromInt(100)).StringFixed(2), maturity)
}
