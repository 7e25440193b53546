package schemas

// PreviousAssetSymbol is a symbol the asset was listed under before.
type PreviousAssetSymbol struct {
	Symbol               *string `json:"SYMBOL"`
	SymbolUsageStartDate *int64  `json:"SYMBOL_USAGE_START_DATE"`
	SymbolUsageEndDate   *int64  `json:"SYMBOL_USAGE_END_DATE"`
	Description          *string `json:"DESCRIPTION"`
}

// AssetAlternativeID is the asset's identifier on another data provider.
type AssetAlternativeID struct {
	Name *string `json:"NAME"`
	ID   *string `json:"ID"`
}

// AssetIndustry is an industry the asset is classified under.
type AssetIndustry struct {
	AssetIndustry *string `json:"ASSET_INDUSTRY"`
	Justification *string `json:"JUSTIFICATION"`
}

// SpecialAddress is a labelled on-chain address such as a burn address.
type SpecialAddress struct {
	Name        *string `json:"NAME"`
	Blockchain  *string `json:"BLOCKCHAIN"`
	Address     *string `json:"ADDRESS"`
	Description *string `json:"DESCRIPTION"`
}

// InstrumentStatusCounts counts the instruments of a market by status.
type InstrumentStatusCounts struct {
	Active    int64  `json:"ACTIVE"`
	Ignored   int64  `json:"IGNORED"`
	Retired   int64  `json:"RETIRED"`
	Expired   int64  `json:"EXPIRED"`
	Undefined *int64 `json:"undefined"`
}
