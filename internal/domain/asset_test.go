package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset_Validation(t *testing.T) {
	maturity := NewDate(2030, 1, 1)

	tests := []struct {
		name          string
		assetName     string
		assetType     AssetType
		profitability decimal.Decimal
		wantErr       bool
		errMsg        string
	}{
		{
			name:          "Valid asset",
			assetName:     "CDB Banco Inter",
			assetType:     AssetTypeCDB,
			profitability: decimal.RequireFromString("0.01"),
		},
		{
			name:          "Blank name should fail",
			assetName:     "   ",
			assetType:     AssetTypeCDB,
			profitability: decimal.RequireFromString("0.01"),
			wantErr:       true,
			errMsg:        "asset name cannot be blank",
		},
		{
			name:          "Empty name should fail",
			assetName:     "",
			assetType:     AssetTypeLCI,
			profitability: decimal.RequireFromString("0.01"),
			wantErr:       true,
			errMsg:        "asset name cannot be blank",
		},
		{
			name:          "Zero profitability should fail",
			assetName:     "LCI Banco XYZ",
			assetType:     AssetTypeLCI,
			profitability: decimal.Zero,
			wantErr:       true,
			errMsg:        "profitability must be greater than zero",
		},
		{
			name:          "Negative profitability should fail",
			assetName:     "LCI Banco XYZ",
			assetType:     AssetTypeLCI,
			profitability: decimal.RequireFromString("-0.05"),
			wantErr:       true,
			errMsg:        "profitability must be greater than zero",
		},
		{
			name:          "Unknown type should fail",
			assetName:     "Stock",
			assetType:     AssetType("EQUITY"),
			profitability: decimal.RequireFromString("0.01"),
			wantErr:       true,
			errMsg:        "unknown asset type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := NewAsset(tt.assetName, tt.assetType, tt.profitability, &maturity)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, asset)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, asset.ID())
			assert.Equal(t, tt.assetName, asset.Name())
			assert.Equal(t, tt.assetType, asset.Type())
			assert.True(t, tt.profitability.Equal(asset.Profitability()))
		})
	}
}

func TestAsset_MaturityIsOptionalAndCopied(t *testing.T) {
	noMaturity, err := NewAsset("Tesouro Selic", AssetTypeTesouroDireto, decimal.RequireFromString("0.009"), nil)
	require.NoError(t, err)
	_, ok := noMaturity.MaturityDate()
	assert.False(t, ok)

	maturity := NewDate(2030, 1, 1)
	asset, err := NewAsset("CDB", AssetTypeCDB, decimal.RequireFromString("0.01"), &maturity)
	require.NoError(t, err)

	maturity = NewDate(1999, 1, 1)
	got, ok := asset.MaturityDate()
	assert.True(t, ok)
	assert.Equal(t, NewDate(2030, 1, 1), got, "asset must not alias the caller's date")
}

func TestAsset_String(t *testing.T) {
	maturity := NewDate(2030, 1, 15)
	asset, err := NewAsset("CDB Banco Inter", AssetTypeCDB, decimal.RequireFromString("0.015"), &maturity)
	require.NoError(t, err)

	assert.Equal(t, "Asset name = CDB Banco Inter | Type: CDB | Asset profitability = 1.50% | Asset maturity date = 15/01/2030", asset.String())
}

func TestRestoreAsset_NilID(t *testing.T) {
	_, err := RestoreAsset(uuid.Nil, "CDB", AssetTypeCDB, decimal.RequireFromString("0.01"), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseAssetType(t *testing.T) {
	got, err := ParseAssetType("tesouro direto")
	require.NoError(t, err)
	assert.Equal(t, AssetTypeTesouroDireto, got)

	got, err = ParseAssetType("cdb")
	require.NoError(t, err)
	assert.Equal(t, AssetTypeCDB, got)

	_, err = ParseAssetType("crypto")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAssetTypes_ReturnsCopy(t *testing.T) {
	types := AssetTypes()
	require.Len(t, types, 6)
	types[0] = "MUTATED"
	assert.Equal(t, AssetTypeCDB, AssetTypes()[0])
}
