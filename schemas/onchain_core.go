package schemas

// OCCoreSupportedPlatforms describes a chain the asset is issued on.
type OCCoreSupportedPlatforms struct {
	Blockchain           *string `json:"BLOCKCHAIN"`
	BridgeOperator       *string `json:"BRIDGE_OPERATOR"`
	TokenStandard        *string `json:"TOKEN_STANDARD"`
	SmartContractAddress *string `json:"SMART_CONTRACT_ADDRESS"`
	ExplorerURL          *string `json:"EXPLORER_URL"`
	Decimals             *int32  `json:"DECIMALS"`
	IsAssetIssuer        *bool   `json:"IS_ASSET_ISSUER"`
	TradingAs            *string `json:"TRADING_AS"`
	LaunchDate           *int64  `json:"LAUNCH_DATE"`
}

// OCCoreETHTrace is a call trace reported with a block.
type OCCoreETHTrace struct {
	Type                string  `json:"TYPE"`
	ID                  string  `json:"ID"`
	TraceType           *string `json:"TRACE_TYPE"`
	Address             []int32 `json:"ADDRESS,omitempty"`
	ActionFrom          *string `json:"ACTION_FROM"`
	ActionCallType      *string `json:"ACTION_CALL_TYPE"`
	ActionGas           *string `json:"ACTION_GAS"`
	ActionInit          *string `json:"ACTION_INIT"`
	ActionInput         *string `json:"ACTION_INPUT"`
	ActionTo            *string `json:"ACTION_TO"`
	ActionValue         *string `json:"ACTION_VALUE"`
	ActionAuthor        *string `json:"ACTION_AUTHOR"`
	ActionRewardType    *string `json:"ACTION_REWARD_TYPE"`
	ActionAddress       *string `json:"ACTION_ADDRESS"`
	ActionRefundAddress *string `json:"ACTION_REFUND_ADDRESS"`
	ActionBalance       *string `json:"ACTION_BALANCE"`
	ResultAddress       *string `json:"RESULT_ADDRESS"`
	ResultCode          *string `json:"RESULT_CODE"`
	ResultGasUsed       *string `json:"RESULT_GAS_USED"`
	ResultOutput        *string `json:"RESULT_OUTPUT"`
	Subtraces           *int32  `json:"SUBTRACES"`
	Error               *string `json:"ERROR"`
	Status              *string `json:"STATUS"`
}

// OCCoreETHMetadata is the header data of an Ethereum block.
type OCCoreETHMetadata struct {
	Type             string   `json:"TYPE"`
	Number           int64    `json:"NUMBER"`
	Timestamp        int64    `json:"TIMESTAMP"`
	Hash             string   `json:"HASH"`
	ParentHash       string   `json:"PARENT_HASH"`
	Nonce            string   `json:"NONCE"`
	Sha3Uncles       string   `json:"SHA3_UNCLES"`
	LogsBloom        string   `json:"LOGS_BLOOM"`
	TransactionsRoot string   `json:"TRANSACTIONS_ROOT"`
	StateRoot        string   `json:"STATE_ROOT"`
	MerkleRoot       *string  `json:"MERKLE_ROOT"`
	ReceiptsRoot     string   `json:"RECEIPTS_ROOT"`
	Miner            string   `json:"MINER"`
	MixHash          string   `json:"MIX_HASH"`
	Difficulty       int64    `json:"DIFFICULTY"`
	TotalDifficulty  string   `json:"TOTAL_DIFFICULTY"`
	ChainWork        *string  `json:"CHAIN_WORK"`
	Size             int64    `json:"SIZE"`
	Weight           *int64   `json:"WEIGHT"`
	BlockTime        float64  `json:"BLOCK_TIME"`
	MedianTime       *float64 `json:"MEDIAN_TIME"`
	BlobGasUsed      int64    `json:"BLOB_GAS_USED"`
	ExcessBlobGas    int64    `json:"EXCESS_BLOB_GAS"`
	ExtraData        string   `json:"EXTRA_DATA"`
	GasLimit         string   `json:"GAS_LIMIT"`
	GasUsed          string   `json:"GAS_USED"`
	TransactionCount int64    `json:"TRANSACTION_COUNT"`
	BaseFeePerGas    string   `json:"BASE_FEE_PER_GAS"`
	WithdrawalsRoot  string   `json:"WITHDRAWALS_ROOT"`
}

// OCCoreETHTransactionAccessList is one EIP-2930 access list entry.
type OCCoreETHTransactionAccessList struct {
	Type        *string  `json:"TYPE"`
	Address     *string  `json:"ADDRESS"`
	StorageKeys []string `json:"Storage_KEYS,omitempty"`
}

// OCCoreETHTransactionBlob is one blob carried by a transaction.
type OCCoreETHTransactionBlob struct {
	Type                        *string  `json:"TYPE"`
	Index                       *int32   `json:"INDEX"`
	VersionedHash               *string  `json:"VERSIONED_HASH"`
	KzgCommitment               *string  `json:"KZG_COMMITMENT"`
	KzgProof                    *string  `json:"KZG_PROOF"`
	KzgCommitmentInclusionProof []string `json:"KZG_COMMITMENT_INCLUSION_PROOF,omitempty"`
	Size                        *int32   `json:"SIZE"`
	Data                        *string  `json:"DATA"`
}

// OCCoreETHTransactionLog is one event log emitted by a transaction.
type OCCoreETHTransactionLog struct {
	Type    *string  `json:"TYPE"`
	Address *string  `json:"ADDRESS"`
	Index   *int32   `json:"INDEX"`
	Data    *string  `json:"DATA"`
	Topics  []string `json:"TOPICS,omitempty"`
	Removed *bool    `json:"REMOVED"`
}

// OCCoreETHTransaction is a transaction included in a block.
type OCCoreETHTransaction struct {
	Type                     string                           `json:"TYPE"`
	Hash                     string                           `json:"HASH"`
	TransactionType          int32                            `json:"TRANSACTION_TYPE"`
	Nonce                    int64                            `json:"NONCE"`
	Index                    int32                            `json:"INDEX"`
	FromAddress              string                           `json:"FROM_ADDRESS"`
	ToAddress                string                           `json:"TO_ADDRESS"`
	Value                    string                           `json:"VALUE"`
	Gas                      int64                            `json:"GAS"`
	LogsBloom                *string                          `json:"LOGS_BLOOM"`
	L1GasUsed                *int32                           `json:"L1_GAS_USED"`
	L1Fee                    *int32                           `json:"L1_FEE"`
	L1GasPrice               *int32                           `json:"L1_GAS_PRICE"`
	DepositNonce             *int64                           `json:"DEPOSIT_NONCE"`
	DepositReceiptVersion    *int32                           `json:"DEPOSIT_RECEIPT_VERSION"`
	GasPrice                 int64                            `json:"GAS_PRICE"`
	Input                    string                           `json:"INPUT"`
	ReceiptBlobGasPrice      *int64                           `json:"RECEIPT_BLOB_GAS_PRICE"`
	ReceiptBlobGasUsed       *int64                           `json:"RECEIPT_BLOB_GAS_USED"`
	ReceiptCumulativeGasUsed *int64                           `json:"RECEIPT_CUMULATIVE_GAS_USED"`
	ReceiptGasUsed           *int64                           `json:"RECEIPT_GAS_USED"`
	ReceiptContactAddress    *string                          `json:"RECEIPT_CONTACT_ADDRESS"`
	ReceiptRoot              *string                          `json:"RECEIPT_ROOT"`
	ReceiptStatus            int32                            `json:"RECEIPT_STATUS"`
	MaxFeePerGas             *int64                           `json:"MAX_FEE_PER_GAS"`
	MaxPriorityFeePerGas     *int64                           `json:"MAX_PRIORITY_FEE_PER_GAS"`
	MaxFeePerBlobGas         *int64                           `json:"MAX_FEE_PER_BLOB_GAS"`
	ReceiptEffectiveGasPrice *int64                           `json:"RECEIPT_EFFECTIVE_GAS_PRICE"`
	AccessList               []OCCoreETHTransactionAccessList `json:"ACCESS_LIST,omitempty"`
	Blobs                    []OCCoreETHTransactionBlob       `json:"BLOBS,omitempty"`
	EcdsaV                   *int32                           `json:"ECDSA_V"`
	EcdsaR                   *string                          `json:"ECDSA_R"`
	EcdsaS                   *string                          `json:"ECDSA_S"`
	YParity                  *string                          `json:"Y_PARITY"`
	Traces                   []OCCoreETHTrace                 `json:"TRACES,omitempty"`
	Logs                     []OCCoreETHTransactionLog        `json:"LOGS,omitempty"`
	Hex                      *string                          `json:"HEX"`
	SourceHash               *string                          `json:"SOURCE_HASH"`
	Mint                     *int32                           `json:"MINT"`
}

// OCCoreETHUncle references an uncle block.
type OCCoreETHUncle struct {
	Type string `json:"TYPE"`
}

// OCCoreETHWithdrawal is a validator withdrawal included in a block.
type OCCoreETHWithdrawal struct {
	Type           string  `json:"TYPE"`
	Index          int32   `json:"INDEX"`
	ValidatorIndex int32   `json:"VALIDATOR_INDEX"`
	Address        string  `json:"ADDRESS"`
	Amount         float64 `json:"AMOUNT"`
	Unit           string  `json:"UNIT"`
}

// OCCoreETHBlock is a fully processed Ethereum block.
type OCCoreETHBlock struct {
	Type              string                 `json:"TYPE"`
	AssetID           int32                  `json:"ASSET_ID"`
	Symbol            string                 `json:"SYMBOL"`
	ProviderKey       string                 `json:"PROVIDER_KEY"`
	ChainID           int32                  `json:"CHAIN_ID"`
	IsPartOfReorg     bool                   `json:"IS_PART_OF_REORG"`
	Number            int64                  `json:"NUMBER"`
	Timestamp         int64                  `json:"TIMESTAMP"`
	ReceivedTimestamp int64                  `json:"RECEIVED_TIMESTAMP"`
	Metadata          OCCoreETHMetadata      `json:"METADATA"`
	Transactions      []OCCoreETHTransaction `json:"TRANSACTIONS,omitempty"`
	OrphanTraces      []OCCoreETHTrace       `json:"ORPHAN_TRACES,omitempty"`
	Uncles            []OCCoreETHUncle       `json:"UNCLES,omitempty"`
	Withdrawals       []OCCoreETHWithdrawal  `json:"WITHDRAWALS,omitempty"`
}

// ChainAssetSummary describes the chain a summary was requested for.
type ChainAssetSummary struct {
	Type       string `json:"TYPE"`
	ID         int32  `json:"ID"`
	Symbol     string `json:"SYMBOL"`
	AssetType  string `json:"ASSET_TYPE"`
	Name       string `json:"NAME"`
	LogoURL    string `json:"LOGO_URL"`
	LaunchDate *int64 `json:"LAUNCH_DATE"`
}

// SupportedAsset is an asset issued on a chain.
type SupportedAsset struct {
	Type                       string                     `json:"TYPE"`
	ID                         int32                      `json:"ID"`
	Symbol                     string                     `json:"SYMBOL"`
	AssetType                  string                     `json:"ASSET_TYPE"`
	Name                       string                     `json:"NAME"`
	LogoURL                    *string                    `json:"LOGO_URL"`
	LaunchDate                 *int64                     `json:"LAUNCH_DATE"`
	FilteredSupportedPlatforms []OCCoreSupportedPlatforms `json:"FILTERED_SUPPORTED_PLATFORMS,omitempty"`
}

// OCCoreAssetByChain summarizes the assets issued on one chain.
type OCCoreAssetByChain struct {
	ChainAssetSummary ChainAssetSummary `json:"CHAIN_ASSET_SUMMARY"`
	AssetsSupported   []SupportedAsset  `json:"ASSETS_SUPPORTED"`
}

// OCCoreSecurityMetric is a security score published for the asset.
type OCCoreSecurityMetric struct {
	Name         string  `json:"NAME"`
	OverallScore float64 `json:"OVERALL_SCORE"`
	OverallRank  float64 `json:"OVERALL_RANK"`
	UpdatedAt    int64   `json:"UPDATED_AT"`
}

// OCCoreReservesBreakdown is one reserve line of a stablecoin or wrapped asset.
type OCCoreReservesBreakdown struct {
	ReserveType      string  `json:"RESERVE_TYPE"`
	HoldingAddresses string  `json:"HOLDING_ADDRESSES"`
	Percentage       float64 `json:"PERCENTAGE"`
	Description      string  `json:"DESCRIPTION"`
	Comments         string  `json:"COMMENTS"`
}

// OCCoreDocumentURLs links a whitepaper or other document.
type OCCoreDocumentURLs struct {
	Type    string  `json:"TYPE"`
	Version int32   `json:"VERSION"`
	URL     string  `json:"URL"`
	Comment *string `json:"COMMENT"`
}

// OCCorePriceConversionAsset is the quote asset prices were converted to.
type OCCorePriceConversionAsset struct {
	ID        int32  `json:"ID"`
	Symbol    string `json:"SYMBOL"`
	AssetType string `json:"ASSET_TYPE"`
}

// OCCoreToplistRank holds the price and market-cap figures the asset is ranked by.
type OCCoreToplistRank struct {
	CreatedOn                                   int64    `json:"CREATED_ON"`
	LaunchDate                                  int64    `json:"LAUNCH_DATE"`
	PriceUSD                                    *float64 `json:"PRICE_USD"`
	CirculatingMktCapUSD                        *float64 `json:"CIRCULATING_MKT_CAP_USD"`
	TotalMktCapUSD                              *float64 `json:"TOTAL_MKT_CAP_USD"`
	SpotMoving24HourQuoteVolumeTopTierDirectUSD *float64 `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_TOP_TIER_DIRECT_USD"`
	SpotMoving24HourQuoteVolumeDirectUSD        *float64 `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_DIRECT_USD"`
	SpotMoving24HourQuoteVolumeTopTierUSD       *float64 `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_TOP_TIER_USD"`
	SpotMoving24HourQuoteVolumeUSD              *float64 `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_USD"`
	SpotMoving24HourChangeUSD                   *float64 `json:"SPOT_MOVING_24_HOUR_CHANGE_USD"`
	SpotMoving24HourChangePercentageUSD         *float64 `json:"SPOT_MOVING_24_HOUR_CHANGE_PERCENTAGE_USD"`
	SpotMoving7DayQuoteVolumeTopTierDirectUSD   *float64 `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_TOP_TIER_DIRECT_USD"`
	SpotMoving7DayQuoteVolumeDirectUSD          *float64 `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_DIRECT_USD"`
	SpotMoving7DayQuoteVolumeTopTierUSD         *float64 `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_TOP_TIER_USD"`
	SpotMoving7DayQuoteVolumeUSD                *float64 `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_USD"`
	SpotMoving7DayChangeUSD                     *float64 `json:"SPOT_MOVING_7_DAY_CHANGE_USD"`
	SpotMoving7DayChangePercentageUSD           *float64 `json:"SPOT_MOVING_7_DAY_CHANGE_PERCENTAGE_USD"`
	SpotMoving30DayQuoteVolumeTopTierDirectUSD  *float64 `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_TOP_TIER_DIRECT_USD"`
	SpotMoving30DayQuoteVolumeDirectUSD         *float64 `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_DIRECT_USD"`
	SpotMoving30DayQuoteVolumeTopTierUSD        *float64 `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_TOP_TIER_USD"`
	SpotMoving30DayQuoteVolumeUSD               *float64 `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_USD"`
	SpotMoving30DayChangeUSD                    *float64 `json:"SPOT_MOVING_30_DAY_CHANGE_USD"`
	SpotMoving30DayChangePercentageUSD          *float64 `json:"SPOT_MOVING_30_DAY_CHANGE_PERCENTAGE_USD"`
}

// OCCoreProjectLeader is a person leading the project.
type OCCoreProjectLeader struct {
	LeaderType string `json:"LEADER_TYPE"`
	FullName   string `json:"FULL_NAME"`
}

// OCCoreContactDetails is a contact channel of the project.
type OCCoreContactDetails struct {
	ContactType   string `json:"CONTACT_TYPE"`
	ContactMedium string `json:"CONTACT_MEDIUM"`
	FullName      string `json:"FULL_NAME"`
	Address       string `json:"ADDRESS"`
	Comments      string `json:"COMMENTS"`
}

// OCCoreAssetByAddress is asset data looked up by contract address.
type OCCoreAssetByAddress struct {
	ID                                           int32                       `json:"ID"`
	Type                                         string                      `json:"TYPE"`
	IDLegacy                                     int32                       `json:"ID_LEGACY"`
	IDParentAsset                                int32                       `json:"ID_PARENT_ASSET"`
	IsAssetIssuer                                *int32                      `json:"IS_ASSET_ISSUER"`
	Symbol                                       string                      `json:"SYMBOL"`
	Uri                                          string                      `json:"URI"`
	AssetType                                    string                      `json:"ASSET_TYPE"`
	AssetIssuerName                              *string                     `json:"ASSET_ISSUER_NAME"`
	ParentAssetSymbol                            *string                     `json:"PARENT_ASSET_SYMBOL"`
	RootAssetID                                  int32                       `json:"ROOT_ASSET_ID"`
	RootAssetSymbol                              string                      `json:"ROOT_ASSET_SYMBOL"`
	RootAssetType                                string                      `json:"ROOT_ASSET_TYPE"`
	CreatedOn                                    int64                       `json:"CREATED_ON"`
	UpdatedOn                                    int64                       `json:"UPDATED_ON"`
	PublicNotice                                 *string                     `json:"PUBLIC_NOTICE"`
	Name                                         string                      `json:"NAME"`
	LogoURL                                      string                      `json:"LOGO_URL"`
	LaunchDate                                   int64                       `json:"LAUNCH_DATE"`
	PeriousAssetSymbols                          []PreviousAssetSymbol       `json:"PERIOUS_ASSET_SYMBOLS,omitempty"`
	AssetAlternativeIDs                          []AssetAlternativeID        `json:"ASSET_ALTERNATIVE_IDS,omitempty"`
	AssetDescriptionSnippet                      *string                     `json:"ASSET_DESCRIPTION_SNIPPET"`
	SupportedPlatforms                           []OCCoreSupportedPlatforms  `json:"SUPPORTED_PLATFORMS,omitempty"`
	AssetSecurityMetrics                         []OCCoreSecurityMetric      `json:"ASSET_SECURITY_METRICS,omitempty"`
	SupplyMax                                    float64                     `json:"SUPPLY_MAX"`
	SupplyIssued                                 *float64                    `json:"SUPPLY_ISSUED"`
	SupplyTotal                                  *float64                    `json:"SUPPLY_TOTAL"`
	SupplyCirculating                            *float64                    `json:"SUPPLY_CIRCULATING"`
	SupplyFuture                                 float64                     `json:"SUPPLY_FUTURE"`
	SupplyLocked                                 *float64                    `json:"SUPPLY_LOCKED"`
	SuppyBurnt                                   *float64                    `json:"SUPPY_BURNT"`
	SupplyStaked                                 *float64                    `json:"SUPPLY_STAKED"`
	BurnAddresses                                []SpecialAddress            `json:"BURN_ADDRESSES,omitempty"`
	LockedAddresses                              []SpecialAddress            `json:"LOCKED_ADDRESSES,omitempty"`
	ReservesBreakdown                            []OCCoreReservesBreakdown   `json:"RESERVES_BREAKDOWN,omitempty"`
	WebsiteURL                                   *string                     `json:"WEBSITE_URL"`
	BlogURL                                      *string                     `json:"BLOG_URL"`
	WhitePaperURL                                *string                     `json:"WHITE_PAPER_URL"`
	OtherDocumentURLs                            []OCCoreDocumentURLs        `json:"OTHER_DOCUMENT_URLS,omitempty"`
	AssetIndustries                              []AssetIndustry             `json:"ASSET_INDUSTRIES,omitempty"`
	PriceUSD                                     float64                     `json:"PRICE_USD"`
	PriceUSDSource                               string                      `json:"PRICE_USD_SOURCE"`
	PriceUSDLastUpdateTs                         int64                       `json:"PRICE_USD_LAST_UPDATE_TS"`
	PriceConversionAsset                         *OCCorePriceConversionAsset `json:"PRICE_CONVERSION_ASSET"`
	PriceConversionRate                          *float64                    `json:"PRICE_CONVERSION_RATE"`
	PriceConversionValue                         *float64                    `json:"PRICE_CONVERSION_VALUE"`
	PriceConversionSource                        *string                     `json:"PRICE_CONVERSION_SOURCE"`
	PriceConversionLastUpdateTs                  *int64                      `json:"PRICE_CONVERSION_LAST_UPDATE_TS"`
	MktCapPenalty                                *float64                    `json:"MKT_CAP_PENALTY"`
	CirculatingMktCapUSD                         float64                     `json:"CIRCULATING_MKT_CAP_USD"`
	TotalMktCapUSD                               float64                     `json:"TOTAL_MKT_CAP_USD"`
	CirculatingMktCapConversion                  *float64                    `json:"CIRCULATING_MKT_CAP_CONVERSION"`
	TotalMktCapConversion                        *float64                    `json:"TOTAL_MKT_CAP_CONVERSION"`
	SpotMoving24HourQuoteVolumeTopTierDirectUSD  float64                     `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_TOP_TIER_DIRECT_USD"`
	SpotMoving24HourQuoteVolumeDirectUSD         float64                     `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_DIRECT_USD"`
	SpotMoving24HourQuoteVolumeTopTierUSD        float64                     `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_TOP_TIER_USD"`
	SpotMoving24HourQuoteVolumeUSD               float64                     `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_USD"`
	SpotMoving24HourQuoteVolumeTopTierConversion *float64                    `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_TOP_TIER_CONVERSION"`
	SpotMoving24HourQuoteVolumeConversion        *float64                    `json:"SPOT_MOVING_24_HOUR_QUOTE_VOLUME_CONVERSION"`
	SpotMoving7DayQuoteVolumeTopTierDirectUSD    float64                     `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_TOP_TIER_DIRECT_USD"`
	SpotMoving7DayQuoteVolumeDirectUSD           float64                     `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_DIRECT_USD"`
	SpotMoving7DayQuoteVolumeTopTierUSD          float64                     `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_TOP_TIER_USD"`
	SpotMoving7DayQuoteVolumeUSD                 float64                     `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_USD"`
	SpotMoving7DayQuoteVolumeTopTierConversion   *float64                    `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_TOP_TIER_CONVERSION"`
	SpotMoving7DayQuoteVolumeConversion          *float64                    `json:"SPOT_MOVING_7_DAY_QUOTE_VOLUME_CONVERSION"`
	SpotMoving30DayQuoteVolumeTopTierDirectUSD   float64                     `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_TOP_TIER_DIRECT_USD"`
	SpotMoving30DayQuoteVolumeDirectUSD          float64                     `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_DIRECT_USD"`
	SpotMoving30DayQuoteVolumeTopTierUSD         float64                     `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_TOP_TIER_USD"`
	SpotMoving30DayQuoteVolumeUSD                float64                     `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_USD"`
	SpotMoving30DayQuoteVolumeTopTierConversion  *float64                    `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_TOP_TIER_CONVERSION"`
	SpotMoving30DayQuoteVolumeConversion         *float64                    `json:"SPOT_MOVING_30_DAY_QUOTE_VOLUME_CONVERSION"`
	SpotMoving24HourChangeUSD                    float64                     `json:"SPOT_MOVING_24_HOUR_CHANGE_USD"`
	SpotMoving24HourChangePercentageUSD          float64                     `json:"SPOT_MOVING_24_HOUR_CHANGE_PERCENTAGE_USD"`
	SpotMoving24HourChangeConversion             *float64                    `json:"SPOT_MOVING_24_HOUR_CHANGE_CONVERSION"`
	SpotMoving24HourChangePercentageConversion   *float64                    `json:"SPOT_MOVING_24_HOUR_CHANGE_PERCENTAGE_CONVERSION"`
	SpotMoving7DayChangeUSD                      float64                     `json:"SPOT_MOVING_7_DAY_CHANGE_USD"`
	SpotMoving7DayChangePercentageUSD            float64                     `json:"SPOT_MOVING_7_DAY_CHANGE_PERCENTAGE_USD"`
	SpotMoving7DayChangeConversion               *float64                    `json:"SPOT_MOVING_7_DAY_CHANGE_CONVERSION"`
	SpotMoving7DayChangePercentageConversion     *float64                    `json:"SPOT_MOVING_7_DAY_CHANGE_PERCENTAGE_CONVERSION"`
	SpotMoving30DayChangeUSD                     float64                     `json:"SPOT_MOVING_30_DAY_CHANGE_USD"`
	SpotMoving30DayChangePercentageUSD           float64                     `json:"SPOT_MOVING_30_DAY_CHANGE_PERCENTAGE_USD"`
	SpotMoving30DayChangeConversion              *float64                    `json:"SPOT_MOVING_30_DAY_CHANGE_CONVERSION"`
	SpotMoving30DayChangePercentageConversion    *float64                    `json:"SPOT_MOVING_30_DAY_CHANGE_PERCENTAGE_CONVERSION"`
	ToplistBaseRank                              *OCCoreToplistRank          `json:"TOPLIST_BASE_RANK"`
	AssetDescription                             string                      `json:"ASSET_DESCRIPTION"`
	AssetDescriptionSummary                      string                      `json:"ASSET_DESCRIPTION_SUMMARY"`
	ProjectLeaders                               []OCCoreProjectLeader       `json:"PROJECT_LEADERS,omitempty"`
	AssociatedContactDetails                     *OCCoreContactDetails       `json:"ASSOCIATED_CONTACT_DETAILS"`
	SEOTitle                                     string                      `json:"SEO_TITLE"`
	SEODescription                               string                      `json:"SEO_DESCRIPTION"`
}

// OCCoreSupply is one day of supply figures for an asset.
type OCCoreSupply struct {
	Unit              string   `json:"UNIT"`
	Type              string   `json:"TYPE"`
	AssetID           int32    `json:"ASSET_ID"`
	Symbol            string   `json:"SYMBOL"`
	Timestamp         int64    `json:"TIMESTAMP"`
	SupplyCirculating *float64 `json:"SUPPLY_CIRCULATING"`
	SupplyTotal       *float64 `json:"SUPPLY_TOTAL"`
	SupplyBurnt       *float64 `json:"SUPPLY_BURNT"`
	SupplyMax         *float64 `json:"SUPPLY_MAX"`
	SupplyStaked      *float64 `json:"SUPPLY_STAKED"`
	SupplyFuture      *float64 `json:"SUPPLY_FUTURE"`
	SupplyIssued      *float64 `json:"SUPPLY_ISSUED"`
	SupplyLocked      *float64 `json:"SUPPLY_LOCKED"`
}
