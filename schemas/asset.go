package schemas

// ConsensusMechanism names a consensus mechanism of the asset.
type ConsensusMechanism struct {
	Name *string `json:"NAME"`
}

// ConsensusAlgorithmType names a consensus algorithm of the asset.
type ConsensusAlgorithmType struct {
	Name        *string `json:"NAME"`
	Description *string `json:"DESCRIPTION"`
}

// HashingAlgorithmType names a hashing algorithm of the asset.
type HashingAlgorithmType struct {
	Name *string `json:"NAME"`
}

// AssetMetadata is the reference data of a single asset.
type AssetMetadata struct {
	ID                      int32                    `json:"ID"`
	Type                    string                   `json:"TYPE"`
	IDLegacy                *int32                   `json:"ID_LEGACY"`
	IDParentAsset           *int32                   `json:"ID_PARENT_ASSET"`
	IDAssetIssuer           *int32                   `json:"ID_ASSET_ISSUER"`
	Symbol                  string                   `json:"SYMBOL"`
	Uri                     string                   `json:"URI"`
	AssetType               string                   `json:"ASSET_TYPE"`
	AssetIssuerName         *string                  `json:"ASSET_ISSUER_NAME"`
	ParentAssetSymbol       *string                  `json:"PARENT_ASSET_SYMBOL"`
	CreatedOn               int64                    `json:"CREATED_ON"`
	UpdatedOn               int64                    `json:"UPDATED_ON"`
	PublicNotice            *string                  `json:"PUBLIC_NOTICE"`
	Name                    string                   `json:"NAME"`
	LogoURL                 string                   `json:"LOGO_URL"`
	LaunchDate              int64                    `json:"LAUNCH_DATE"`
	PreviousAssetSymbols    []PreviousAssetSymbol    `json:"PREVIOUS_ASSET_SYMBOLS,omitempty"`
	AssetAlternativeIDs     []AssetAlternativeID     `json:"ASSET_ALTERNATIVE_IDS,omitempty"`
	AssetDescriptionSnippet *string                  `json:"ASSET_DESCRIPTION_SNIPPET"`
	AssetDecimalPoints      *int32                   `json:"ASSET_DECIMAL_POINTS"`
	SupplyMax               float64                  `json:"SUPPLY_MAX"`
	SupplyIssued            *float64                 `json:"SUPPLY_ISSUED"`
	SupplyTotal             *float64                 `json:"SUPPLY_TOTAL"`
	SupplyCirculating       *float64                 `json:"SUPPLY_CIRCULATING"`
	SupplyFuture            float64                  `json:"SUPPLY_FUTURE"`
	SupplyLocked            *float64                 `json:"SUPPLY_LOCKED"`
	SuppyBurnt              *float64                 `json:"SUPPY_BURNT"`
	SupplyStaked            *float64                 `json:"SUPPLY_STAKED"`
	LastBlockMint           *float64                 `json:"LAST_BLOCK_MINT"`
	LastBlockBurn           *float64                 `json:"LAST_BLOCK_BURN"`
	BurnAddresses           []SpecialAddress         `json:"BURN_ADDRESSES,omitempty"`
	LockedAddresses         []SpecialAddress         `json:"LOCKED_ADDRESSES,omitempty"`
	AssetIndustries         []AssetIndustry          `json:"ASSET_INDUSTRIES,omitempty"`
	ConsensusMechanisms     []ConsensusMechanism     `json:"CONSENSUS_MECHANISMS,omitempty"`
	ConsensusAlgorithmTypes []ConsensusAlgorithmType `json:"CONSENSUS_ALGORITHM_TYPES,omitempty"`
	HashingAlgorithmTypes   []HashingAlgorithmType   `json:"HASHING_ALGORITHM_TYPES,omitempty"`
}

// AssetEvent is a notable event in an asset history (fork, rebrand, incident).
type AssetEvent struct {
	Type                    string `json:"TYPE"`
	ID                      int32  `json:"ID"`
	AssetID                 int32  `json:"ASSET_ID"`
	EventType               string `json:"EVENT_TYPE"`
	AnnouncedOn             int64  `json:"ANNOUNCED_ON"`
	ImplementationStartDate int64  `json:"IMPLEMENTATION_START_DATE"`
	ImplementationEndDate   *int64 `json:"IMPLEMENTATION_END_DATE"`
	Name                    string `json:"NAME"`
	Description             string `json:"DESCRIPTION"`
	CreatedOn               int64  `json:"CREATED_ON"`
	UpdatedOn               *int64 `json:"UPDATED_ON"`
}

// AssetCodeRepository holds the metrics of one code repository.
type AssetCodeRepository struct {
	URL                string `json:"URL"`
	Contributors       int32  `json:"CONTRIBUTORS"`
	Forks              int32  `json:"FORKS"`
	Stars              int32  `json:"STARS"`
	Subscribers        int32  `json:"SUBSCRIBERS"`
	OpenIssues         *int32 `json:"OPEN_ISSUES"`
	ClosedIssues       int32  `json:"CLOSED_ISSUES"`
	OpenPullRequests   int32  `json:"OPEN_PULL_REQUESTS"`
	ClosedPullRequests int32  `json:"CLOSED_PULL_REQUESTS"`
}

// AssetCodeRepoMetrics is one day of code repository activity.
type AssetCodeRepoMetrics struct {
	Unit                    string                `json:"UNIT"`
	Timestamp               int64                 `json:"TIMESTAMP"`
	Type                    string                `json:"TYPE"`
	AssetID                 int32                 `json:"ASSET_ID"`
	AssetSymbol             string                `json:"ASSET_SYMBOL"`
	TotalContributors       int32                 `json:"TOTAL_CONTRIBUTORS"`
	TotalForks              int32                 `json:"TOTAL_FORKS"`
	TotalStars              int32                 `json:"TOTAL_STARS"`
	TotalSubscribers        int32                 `json:"TOTAL_SUBSCRIBERS"`
	TotalOpenIssues         *int32                `json:"TOTAL_OPEN_ISSUES"`
	TotalClosedIssues       int32                 `json:"TOTAL_CLOSED_ISSUES"`
	TotalOpenPullRequests   int32                 `json:"TOTAL_OPEN_PULL_REQUESTS"`
	TotalClosedPullRequests int32                 `json:"TOTAL_CLOSED_PULL_REQUESTS"`
	CodeRepositories        []AssetCodeRepository `json:"CODE_REPOSITORIES"`
}

// AssetDiscordServer holds the metrics of one Discord server.
type AssetDiscordServer struct {
	URL                *string `json:"URL"`
	Name               *string `json:"NAME"`
	TotalMembers       *int32  `json:"TOTAL_MEMBERS"`
	CurrentActiveUsers *int32  `json:"CURRENT_ACTIVE_USERS"`
	PremiumSubscribers *int32  `json:"PREMIUM_SUBSCRIBERS"`
}

// AssetDiscord is one day of Discord metrics across the servers of an asset.
type AssetDiscord struct {
	Unit                    string               `json:"UNIT"`
	Timestamp               int64                `json:"TIMESTAMP"`
	Type                    string               `json:"TYPE"`
	AssetID                 int32                `json:"ASSET_ID"`
	AssetSymbol             string               `json:"ASSET_SYMBOL"`
	TotalMembers            *int32               `json:"TOTAL_MEMBERS"`
	TotalCurrentActiveUsers *int32               `json:"TOTAL_CURRENT_ACTIVE_USERS"`
	TotalPremiumSubscribers *int32               `json:"TOTAL_PREMIUM_SUBSCRIBERS"`
	DiscordServers          []AssetDiscordServer `json:"DISCORD_SERVERS,omitempty"`
}

// AssetSubreddit holds the metrics of one subreddit.
type AssetSubreddit struct {
	URL                    *string  `json:"URL"`
	Name                   *string  `json:"NAME"`
	CurrentActiveUsers     *int32   `json:"CURRENT_ACTIVE_USERS"`
	AveragePostsPerDay     *float32 `json:"AVERAGE_POSTS_PER_DAY"`
	AveragePostsPerHour    *float32 `json:"AVERAGE_POSTS_PER_HOUR"`
	AverageCommentsPerDay  *float32 `json:"AVERAGE_COMMENTS_PER_DAY"`
	AverageCommentsPerHour *float32 `json:"AVERAGE_COMMENTS_PER_HOUR"`
	Subscribers            *int32   `json:"SUBSCRIBERS"`
}

// AssetReddit is one day of subreddit metrics.
type AssetReddit struct {
	Unit                        string           `json:"UNIT"`
	Timestamp                   int64            `json:"TIMESTAMP"`
	Type                        string           `json:"TYPE"`
	AssetID                     int32            `json:"ASSET_ID"`
	AssetSymbol                 string           `json:"ASSET_SYMBOL"`
	TotalSubscribers            int32            `json:"TOTAL_SUBSCRIBERS"`
	TotalActiveUsers            int32            `json:"TOTAL_ACTIVE_USERS"`
	TotalAveragePostsPerDay     float64          `json:"TOTAL_AVERAGE_POSTS_PER_DAY"`
	TotalAveragePostsPerHour    float64          `json:"TOTAL_AVERAGE_POSTS_PER_HOUR"`
	TotalAverageCommentsPerDay  float64          `json:"TOTAL_AVERAGE_COMMENTS_PER_DAY"`
	TotalAverageCommentsPerHour float64          `json:"TOTAL_AVERAGE_COMMENTS_PER_HOUR"`
	Subreddits                  []AssetSubreddit `json:"SUBREDDITS,omitempty"`
}

// AssetTelegramGroup holds the metrics of one Telegram group.
type AssetTelegramGroup struct {
	URL      string `json:"URL"`
	Name     string `json:"NAME"`
	Username string `json:"USERNAME"`
	Members  int32  `json:"MEMBERS"`
}

// AssetTelegram is one day of Telegram group metrics.
type AssetTelegram struct {
	Unit           string               `json:"UNIT"`
	Timestamp      int64                `json:"TIMESTAMP"`
	Type           string               `json:"TYPE"`
	AssetID        int32                `json:"ASSET_ID"`
	AssetSymbol    string               `json:"ASSET_SYMBOL"`
	TotalMembers   int32                `json:"TOTAL_MEMBERS"`
	TelegramGroups []AssetTelegramGroup `json:"TELEGRAM_GROUPS"`
}

// AssetTwitterAccount holds the metrics of one Twitter account.
type AssetTwitterAccount struct {
	URL          *string `json:"URL"`
	Name         *string `json:"NAME"`
	Username     *string `json:"USERNAME"`
	Verified     *bool   `json:"VERIFIED"`
	VerifiedType *string `json:"VERIFIED_TYPE"`
	Following    *int32  `json:"FOLLOWING"`
	Followers    *int32  `json:"FOLLOWERS"`
	Favourites   *int32  `json:"FAVOURITES"`
	Lists        *int32  `json:"LISTS"`
	Statuses     *int32  `json:"STATUSES"`
}

// AssetTwitter is one day of X (Twitter) account metrics.
type AssetTwitter struct {
	Unit            string                `json:"UNIT"`
	Timestamp       int64                 `json:"TIMESTAMP"`
	Type            string                `json:"TYPE"`
	AssetID         int32                 `json:"ASSET_ID"`
	AssetSymbol     string                `json:"ASSET_SYMBOL"`
	TotalFollowing  int32                 `json:"TOTAL_FOLLOWING"`
	TotalFollowers  int32                 `json:"TOTAL_FOLLOWERS"`
	TotalFavourites int32                 `json:"TOTAL_FAVOURITES"`
	TotalLists      int32                 `json:"TOTAL_LISTS"`
	TotalStatuses   int32                 `json:"TOTAL_STATUSES"`
	TwitterAccounts []AssetTwitterAccount `json:"TWITTER_ACCOUNTS,omitempty"`
}
