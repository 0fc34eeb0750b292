package walletv1

// Money values are decimal strings with two places; dates are YYYY-MM-DD.
// Empty strings mean "not set".

type Asset struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Profitability string `json:"profitability"`
	MaturityDate  string `json:"maturity_date,omitempty"`
}

type Investment struct {
	Id            string `json:"id"`
	AssetId       string `json:"asset_id"`
	AssetName     string `json:"asset_name"`
	AssetType     string `json:"asset_type"`
	Profitability string `json:"profitability"`
	InitialValue  string `json:"initial_value"`
	PurchaseDate  string `json:"purchase_date"`
	WithdrawDate  string `json:"withdraw_date,omitempty"`
	MaturityDate  string `json:"maturity_date,omitempty"`
	CurrentValue  string `json:"current_value"`
	Status        string `json:"status"`
}

type CreateAssetRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Profitability string `json:"profitability"`
	MaturityDate  string `json:"maturity_date,omitempty"`
}

type CreateAssetResponse struct {
	Asset *Asset `json:"asset"`
}

type ListAssetsRequest struct{}

type ListAssetsResponse struct {
	Assets []*Asset `json:"assets"`
}

type CreateWalletRequest struct {
	OwnerId string `json:"owner_id"`
}

type CreateWalletResponse struct {
	WalletId string `json:"wallet_id"`
	OwnerId  string `json:"owner_id"`
}

type GetWalletRequest struct {
	OwnerId string `json:"owner_id"`
	AsOf    string `json:"as_of,omitempty"`
}

type GetWalletResponse struct {
	WalletId string        `json:"wallet_id"`
	OwnerId  string        `json:"owner_id"`
	Active   []*Investment `json:"active"`
	History  []*Investment `json:"history"`
}

type AddInvestmentRequest struct {
	OwnerId      string `json:"owner_id"`
	AssetId      string `json:"asset_id"`
	InitialValue string `json:"initial_value"`
	PurchaseDate string `json:"purchase_date,omitempty"`
}

type AddInvestmentResponse struct {
	Investment *Investment `json:"investment"`
}

type RemoveInvestmentRequest struct {
	OwnerId      string `json:"owner_id"`
	InvestmentId string `json:"investment_id"`
}

type RemoveInvestmentResponse struct{}

type WithdrawInvestmentRequest struct {
	OwnerId      string `json:"owner_id"`
	InvestmentId string `json:"investment_id"`
	WithdrawDate string `json:"withdraw_date,omitempty"`
}

type WithdrawInvestmentResponse struct {
	Investment *Investment `json:"investment"`
}

type GetInvestmentRequest struct {
	OwnerId      string `json:"owner_id"`
	InvestmentId string `json:"investment_id"`
	AsOf         string `json:"as_of,omitempty"`
}

type GetInvestmentResponse struct {
	Investment *Investment `json:"investment"`
}

type ListInvestmentsRequest struct {
	OwnerId string `json:"owner_id"`
	Status  string `json:"status,omitempty"` // ACTIVE, HISTORY or ALL (default)
	Type    string `json:"type,omitempty"`
	From    string `json:"from,omitempty"` // exclusive
	To      string `json:"to,omitempty"`   // exclusive
	AsOf    string `json:"as_of,omitempty"`
}

type ListInvestmentsResponse struct {
	Investments []*Investment `json:"investments"`
}

type GetBalanceRequest struct {
	OwnerId string `json:"owner_id"`
	AsOf    string `json:"as_of,omitempty"`
	Horizon string `json:"horizon,omitempty"`
}

type GetBalanceResponse struct {
	AsOf          string `json:"as_of"`
	TotalBalance  string `json:"total_balance"`
	FutureBalance string `json:"future_balance"`
}

type GetReportRequest struct {
	OwnerId string `json:"owner_id"`
	AsOf    string `json:"as_of,omitempty"`
	Horizon string `json:"horizon,omitempty"`
}

type GetReportResponse struct {
	WalletId          string             `json:"wallet_id"`
	AsOf              string             `json:"as_of"`
	Active            []*Investment      `json:"active"`
	History           []*Investment      `json:"history"`
	TotalBalance      string             `json:"total_balance"`
	FutureBalance     string             `json:"future_balance"`
	ActiveByCategory  map[string]float64 `json:"active_by_category"`
	HistoryByCategory map[string]float64 `json:"history_by_category"`
	Text              string             `json:"text"`
}
