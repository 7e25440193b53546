package schemas

// NewsStatus filters sources and categories by status.
type NewsStatus int

const (
	NewsStatusActive NewsStatus = iota
	NewsStatusInactive
	newsStatusCount
)

var newsStatusNames = [newsStatusCount]string{
	NewsStatusActive:   "ACTIVE",
	NewsStatusInactive: "INACTIVE",
}

// String returns the vendor spelling of m.
func (m NewsStatus) String() string {
	if m < 0 || m >= newsStatusCount {
		return ""
	}
	return newsStatusNames[m]
}

// NewsLang is an article language.
type NewsLang int

const (
	NewsLangEN NewsLang = iota
	NewsLangES
	NewsLangTR
	NewsLangFR
	NewsLangJP
	NewsLangPT
	newsLangCount
)

var newsLangNames = [newsLangCount]string{
	NewsLangEN: "EN",
	NewsLangES: "ES",
	NewsLangTR: "TR",
	NewsLangFR: "FR",
	NewsLangJP: "JP",
	NewsLangPT: "PT",
}

// String returns the vendor spelling of m.
func (m NewsLang) String() string {
	if m < 0 || m >= newsLangCount {
		return ""
	}
	return newsLangNames[m]
}

// NewsSourceID identifies a news publisher.
type NewsSourceID int

const (
	NewsSourceCoinDesk NewsSourceID = iota
	NewsSourceCoinTelegraph
	NewsSourceBitcoinMagazine
	NewsSourceCryptoGlobe
	NewsSourceCoinGape
	NewsSourceBlockworks
	NewsSourceTheDailyHodl
	NewsSourceCryptoSlate
	NewsSourceCryptoPotato
	NewsSourceDecrypt
	NewsSourceCryptoBriefing
	NewsSourceTheBlock
	NewsSourceBitcoinDotCom
	NewsSourceNewsBTC
	NewsSourceUToday
	NewsSourceBitcoinist
	NewsSourceCoinpedia
	NewsSourceCryptonomist
	NewsSourceCryptoNewsReview
	NewsSourceCCData
	NewsSourceCryptoknowmics
	NewsSourceCCN
	NewsSourceFinanceMagnates
	NewsSourceETHNewsDotCom
	NewsSourceCryptoVest
	NewsSourceCryptoInsider
	NewsSourceHuobiBlog
	NewsSourceCoinSpeaker
	NewsSourceCoinJoker
	NewsSourceNintyNineBitcoins
	NewsSourceCointelligence
	NewsSourceOKXInsights
	NewsSourceCryptoCoreMedia
	NewsSourceBitcoinerx
	NewsSourceAMBCrypto
	NewsSourceCoinpaprika
	NewsSourceLiveBitcoinNews
	NewsSourceCryptoCompare
	NewsSourceBitDegree
	NewsSourceTheCoinRepublic
	NewsSourceChaindd
	NewsSourceChaintimes
	NewsSourceTheCoinRise
	NewsSourceCryptoNewsZ
	NewsSourceYahooFinanceBitcoin
	NewsSourceVauldInsights
	NewsSourceZyCrypto
	NewsSourceKrakenBlog
	NewsSourceCoincu
	NewsSourceDailyCoin
	NewsSourceTrustNodes
	NewsSourceCoinnounce
	NewsSourceCoinEdition
	NewsSourceBitcoinSistemi
	NewsSourceTheNewsCrypto
	NewsSourceForbesDigitalAssets
	NewsSourceCryptonews
	NewsSourceTimesNext
	NewsSourceEthereumWorldNews
	NewsSourceCryptoCoinDotNews
	NewsSourceBTCPulse
	NewsSourceBloombergCrypto
	NewsSourceCoinOtag
	NewsSourceCryptoDotNews
	NewsSourceChainwire
	NewsSourceCryptoIntelligence
	NewsSourceCoinpaper
	NewsSourceBitfinexBlog
	NewsSourceTheCryptoBasic
	NewsSourceNFTDotNews
	NewsSourceBlokt
	NewsSourceBitcoinWorld
	NewsSourceCryptoDaily
	NewsSourceTimesTabloid
	NewsSourceCoinTurkNews
	NewsSourceInvezz
	NewsSourceSeekingAlpha
	NewsSourceFinbold
	NewsSourceFinancialTimesCrypto
	NewsSourceCryptopolitan
	NewsSourceNullTx
	NewsSourceTipRanks
	NewsSourceTheDefiant
	newsSourceIDCount
)

var newsSourceIDNames = [newsSourceIDCount]string{
	NewsSourceCoinDesk:             "coindesk",
	NewsSourceCoinTelegraph:        "cointelegraph",
	NewsSourceBitcoinMagazine:      "bitcoinmagazine",
	NewsSourceCryptoGlobe:          "cryptoglobe",
	NewsSourceCoinGape:             "coingape",
	NewsSourceBlockworks:           "blockworks",
	NewsSourceTheDailyHodl:         "dailyhodl",
	NewsSourceCryptoSlate:          "cryptoslate",
	NewsSourceCryptoPotato:         "cryptopotato",
	NewsSourceDecrypt:              "decrypt",
	NewsSourceCryptoBriefing:       "cryptobriefing",
	NewsSourceTheBlock:             "theblock",
	NewsSourceBitcoinDotCom:        "bitcoin.com",
	NewsSourceNewsBTC:              "newsbtc",
	NewsSourceUToday:               "utoday",
	NewsSourceBitcoinist:           "bitcoinist",
	NewsSourceCoinpedia:            "coinpedia",
	NewsSourceCryptonomist:         "cryptonomist",
	NewsSourceCryptoNewsReview:     "cryptonewsreview",
	NewsSourceCCData:               "ccdata",
	NewsSourceCryptoknowmics:       "cryptokowmics",
	NewsSourceCCN:                  "ccn",
	NewsSourceFinanceMagnates:      "financemagnates",
	NewsSourceETHNewsDotCom:        "ethnews.com",
	NewsSourceCryptoVest:           "cryptovest",
	NewsSourceCryptoInsider:        "cryptoinsider",
	NewsSourceHuobiBlog:            "huobi",
	NewsSourceCoinSpeaker:          "coinspeaker",
	NewsSourceCoinJoker:            "coinjoker",
	NewsSourceNintyNineBitcoins:    "99bitcoins",
	NewsSourceCointelligence:       "cointelligence",
	NewsSourceOKXInsights:          "okexinsights",
	NewsSourceCryptoCoreMedia:      "cryptocoremedia",
	NewsSourceBitcoinerx:           "bitcoinerx",
	NewsSourceAMBCrypto:            "ambcrypto",
	NewsSourceCoinpaprika:          "coinpaprika",
	NewsSourceLiveBitcoinNews:      "livebitcoinnews",
	NewsSourceCryptoCompare:        "cryptocompare",
	NewsSourceBitDegree:            "bitdegree",
	NewsSourceTheCoinRepublic:      "coinrepublic",
	NewsSourceChaindd:              "chaindd",
	NewsSourceChaintimes:           "chaintimes",
	NewsSourceTheCoinRise:          "thecoinrise",
	NewsSourceCryptoNewsZ:          "cryptonewsz",
	NewsSourceYahooFinanceBitcoin:  "yahoofinance",
	NewsSourceVauldInsights:        "vauld_insights",
	NewsSourceZyCrypto:             "zycrypto",
	NewsSourceKrakenBlog:           "krakenblog",
	NewsSourceCoincu:               "coincu",
	NewsSourceDailyCoin:            "dailycoin",
	NewsSourceTrustNodes:           "trustnodes",
	NewsSourceCoinnounce:           "coinnounce",
	NewsSourceCoinEdition:          "coinquora",
	NewsSourceBitcoinSistemi:       "bitcoinsistemi",
	NewsSourceTheNewsCrypto:        "thenewscrypto",
	NewsSourceForbesDigitalAssets:  "forbes",
	NewsSourceCryptonews:           "cryptonews",
	NewsSourceTimesNext:            "timesnext",
	NewsSourceEthereumWorldNews:    "ethereumworldnews",
	NewsSourceCryptoCoinDotNews:    "cryptocoinnews",
	NewsSourceBTCPulse:             "btcpulse",
	NewsSourceBloombergCrypto:      "bloomberg_crypto_",
	NewsSourceCoinOtag:             "coinotag",
	NewsSourceCryptoDotNews:        "crypto_news",
	NewsSourceChainwire:            "chainwire",
	NewsSourceCryptoIntelligence:   "cryptointelligence",
	NewsSourceCoinpaper:            "coinpaper",
	NewsSourceBitfinexBlog:         "bitfinexblog",
	NewsSourceTheCryptoBasic:       "thecryptobasic",
	NewsSourceNFTDotNews:           "nft_news",
	NewsSourceBlokt:                "blokt",
	NewsSourceBitcoinWorld:         "bitcoinworld",
	NewsSourceCryptoDaily:          "cryptodaily",
	NewsSourceTimesTabloid:         "timestabloid",
	NewsSourceCoinTurkNews:         "cointurken",
	NewsSourceInvezz:               "invezz",
	NewsSourceSeekingAlpha:         "seekingalpha",
	NewsSourceFinbold:              "finbold",
	NewsSourceFinancialTimesCrypto: "financial_times_",
	NewsSourceCryptopolitan:        "cryptopolitan",
	NewsSourceNullTx:               "themerkle",
	NewsSourceTipRanks:             "tipranks",
	NewsSourceTheDefiant:           "thedefiant",
}

// String returns the vendor spelling of m.
func (m NewsSourceID) String() string {
	if m < 0 || m >= newsSourceIDCount {
		return ""
	}
	return newsSourceIDNames[m]
}

// NewsSourceType is how a source is ingested.
type NewsSourceType int

const (
	NewsSourceTypeRSS NewsSourceType = iota
	NewsSourceTypeAPI
	NewsSourceTypeTwitter
	newsSourceTypeCount
)

var newsSourceTypeNames = [newsSourceTypeCount]string{
	NewsSourceTypeRSS:     "RSS",
	NewsSourceTypeAPI:     "API",
	NewsSourceTypeTwitter: "TWITTER",
}

// String returns the vendor spelling of m.
func (m NewsSourceType) String() string {
	if m < 0 || m >= newsSourceTypeCount {
		return ""
	}
	return newsSourceTypeNames[m]
}

// SpotInstrumentStatus filters mapped instruments by lifecycle state.
type SpotInstrumentStatus int

const (
	InstrumentStatusActive SpotInstrumentStatus = iota
	InstrumentStatusIgnored
	InstrumentStatusRetired
	InstrumentStatusExpired
	InstrumentStatusReadyForDecommissioning
	spotInstrumentStatusCount
)

var spotInstrumentStatusNames = [spotInstrumentStatusCount]string{
	InstrumentStatusActive:                  "ACTIVE",
	InstrumentStatusIgnored:                 "IGNORED",
	InstrumentStatusRetired:                 "RETIRED",
	InstrumentStatusExpired:                 "EXPIRED",
	InstrumentStatusReadyForDecommissioning: "READY_FOR_DECOMMISSIONING",
}

// String returns the vendor spelling of m.
func (m SpotInstrumentStatus) String() string {
	if m < 0 || m >= spotInstrumentStatusCount {
		return ""
	}
	return spotInstrumentStatusNames[m]
}
