// Min-API records. Field names follow the vendor lower snake case.
package schemas

// AvailableCoinList is one coin the blockchain dataset covers.
type AvailableCoinList struct {
	ID                int32  `json:"id"`
	Symbol            string `json:"symbol"`
	PartnerSymbol     string `json:"partner_symbol"`
	DataAvailableFrom int64  `json:"data_available_from"`
}

// HistoricalDaily is one day of aggregated on-chain activity for a coin.
type HistoricalDaily struct {
	ID                          int32   `json:"id"`
	Time                        int64   `json:"time"`
	Symbol                      string  `json:"symbol"`
	ZeroBalanceAddressesAllTime int64   `json:"zero_balance_addresses_all_time"`
	UniqueAddressesAllTime      int64   `json:"unique_addresses_all_time"`
	NewAddresses                int64   `json:"new_addresses"`
	ActiveAddresses             int64   `json:"active_addresses"`
	TransactionCount            int64   `json:"transaction_count"`
	TransactionCountAllTime     int64   `json:"transaction_count_all_time"`
	LargeTransactionCount       int64   `json:"large_transaction_count"`
	AverageTransactionValue     float64 `json:"average_transaction_value"`
	BlockHeight                 int64   `json:"block_height"`
	Hashrate                    float64 `json:"hashrate"`
	Difficulty                  float64 `json:"difficulty"`
	BlockTime                   float64 `json:"block_time"`
	BlockSize                   float64 `json:"block_size"`
}

// SupplyBand is a balance range with its address count and volume.
type SupplyBand struct {
	From           float64 `json:"from"`
	To             float64 `json:"to"`
	TotalVolume    float64 `json:"totalVolume"`
	AddressesCount int64   `json:"addressesCount"`
}

// BalanceDistribution is one day of wallet balance bands.
type BalanceDistribution struct {
	ID                  int32        `json:"id"`
	Symbol              string       `json:"symbol"`
	PartnerSymbol       string       `json:"partner_symbol"`
	Time                int64        `json:"time"`
	BalanceDistribution []SupplyBand `json:"balance_distribution"`
}
