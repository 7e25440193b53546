package schemas

import "fmt"

// Market is a vendor market selector. Each implementation is a closed enum
// whose String method returns the exact spelling the vendor expects in the
// market query parameter. Several spellings are irregular and must not be
// derived from the identifier.
type Market interface {
	fmt.Stringer
	isMarket()
}

// SpotMarket is a spot exchange.
type SpotMarket int

const (
	SpotAAX SpotMarket = iota
	SpotAbcc
	SpotACX
	SpotAidosmarket
	SpotAlphaex
	SpotArchax
	SpotAscendex
	SpotAtaix
	SpotBackpack
	SpotBequant
	SpotBgogo
	SpotBibox365
	SpotBigone
	SpotBilaxy
	SpotBinance
	SpotBinanceaggregate
	SpotBinancetr
	SpotBinanceusa
	SpotBingx
	SpotBisq
	SpotBIT
	SpotBit2c
	SpotBitbank
	SpotBitbay
	SpotBitbns
	SpotBitbuy
	SpotBitci
	SpotBitexbook
	SpotBitfex
	SpotBitfinex
	SpotBitflyer
	SpotBitflyereu
	SpotBitflyerfx
	SpotBitflyerus
	SpotBitforex
	SpotBitget
	SpotBithumbglobal
	SpotBithumbkorea
	SpotBitinka
	SpotBitkub
	SpotBitmart
	SpotBitmex
	SpotBitpanda
	SpotBitrue
	SpotBitso
	SpotBitstamp
	SpotBittrex
	SpotBitvavo
	SpotBkex
	SpotBlackturtle
	SpotBleutrade
	SpotBlockchaincom
	SpotBtcalpha
	SpotBtcbox
	SpotBtcex
	SpotBtcmarkets
	SpotBtcturk
	SpotBtse
	SpotBuda
	SpotBullish
	SpotBuyucoin
	SpotBwexchange
	SpotBybit
	SpotBydfi
	SpotCatex
	SpotCexio
	SpotCoinbase
	SpotCoinbaseinternational
	SpotCoincheck
	SpotCoincorner
	SpotCoindcx
	SpotCoindeal
	SpotCoinex
	SpotCoinfalcon
	SpotCoinfield
	SpotCoinjar
	SpotCoinmate
	SpotCoinone
	SpotCoinsbit
	SpotCoinspro
	SpotCointiger
	SpotCoinw
	SpotCoss
	SpotCrex24
	SpotCrosstower
	SpotCryptocarbon
	SpotCryptodotcom
	SpotCryptopia
	SpotCryptsy
	SpotCube
	SpotCurrency
	SpotDcoin
	SpotDdex
	SpotDecoin
	SpotDeribit
	SpotDigifinex
	SpotErisx
	SpotEtoro
	SpotExmo
	SpotFcoin
	SpotFoxbit
	SpotFTX
	SpotFtxus
	SpotGarantex
	SpotGateio
	SpotGemini
	SpotGlobitex
	SpotGopax
	SpotGraviex
	SpotHashkey
	SpotHitbtc
	SpotHuobijapan
	SpotHuobipro
	SpotIndependentreserve
	SpotIndodax
	SpotIndoex
	SpotINX
	SpotItbit
	SpotKorbit
	SpotKraken
	SpotKucoin
	SpotKuna
	SpotLatoken
	SpotLbank
	SpotLiqnet
	SpotLiquid
	SpotLitebit
	SpotLmax
	SpotLuno
	SpotLykke
	SpotMercadobtc
	SpotMercatox
	SpotMexc
	SpotMock
	SpotMtgox
	SpotNdax
	SpotNominex
	SpotOkcoin
	SpotOkex
	SpotOnetrading
	SpotOSL
	SpotOslhongkong
	SpotP2pb2b
	SpotPancakeswap
	SpotParamountdax
	SpotParibu
	SpotPhemex
	SpotPoloniex
	SpotProbit
	SpotSafetrade
	SpotSigenpro
	SpotSimex
	SpotSwitcheo
	SpotTherocktrading
	SpotTidefi
	SpotTimex
	SpotTokenomy
	SpotTradeogre
	SpotUniswap
	SpotUnocoin
	SpotUpbit
	SpotValr
	SpotVitex
	SpotWazirx
	SpotWhitebit
	SpotWOO
	SpotXcoex
	SpotXtpub
	SpotYellow
	SpotYobit
	SpotZaif
	SpotZbdotcom
	SpotZBG
	SpotZebitex
	SpotZonda
	spotMarketCount
)

var spotMarketNames = [spotMarketCount]string{
	SpotAAX:                   "aax",
	SpotAbcc:                  "abcc",
	SpotACX:                   "acx",
	SpotAidosmarket:           "aidosmarket",
	SpotAlphaex:               "alphaex",
	SpotArchax:                "archax",
	SpotAscendex:              "ascendex",
	SpotAtaix:                 "ataix",
	SpotBackpack:              "backpack",
	SpotBequant:               "bequant",
	SpotBgogo:                 "bgogo",
	SpotBibox365:              "bibox365",
	SpotBigone:                "bigone",
	SpotBilaxy:                "bilaxy",
	SpotBinance:               "binance",
	SpotBinanceaggregate:      "binanceaggreagate",
	SpotBinancetr:             "binancetr",
	SpotBinanceusa:            "binanceusa",
	SpotBingx:                 "bingx",
	SpotBisq:                  "bisq",
	SpotBIT:                   "bit",
	SpotBit2c:                 "bit2c",
	SpotBitbank:               "bitbank",
	SpotBitbay:                "bitbay",
	SpotBitbns:                "bitbns",
	SpotBitbuy:                "bitbuy",
	SpotBitci:                 "bitci",
	SpotBitexbook:             "bitexbook",
	SpotBitfex:                "bitfex",
	SpotBitfinex:              "bitfinex",
	SpotBitflyer:              "bitflyer",
	SpotBitflyereu:            "bitflyereu",
	SpotBitflyerfx:            "bitflyerfx",
	SpotBitflyerus:            "bitflyerus",
	SpotBitforex:              "bitforex",
	SpotBitget:                "bitget",
	SpotBithumbglobal:         "bithumbglobal",
	SpotBithumbkorea:          "bithumbkorea",
	SpotBitinka:               "bitinka",
	SpotBitkub:                "bitkub",
	SpotBitmart:               "bitmart",
	SpotBitmex:                "bitmex",
	SpotBitpanda:              "bitpanda",
	SpotBitrue:                "bitrue",
	SpotBitso:                 "bitso",
	SpotBitstamp:              "bitstamp",
	SpotBittrex:               "bittrex",
	SpotBitvavo:               "bitvavo",
	SpotBkex:                  "bkex",
	SpotBlackturtle:           "blackturtle",
	SpotBleutrade:             "bleutrade",
	SpotBlockchaincom:         "blockchaindotcom",
	SpotBtcalpha:              "btcalpha",
	SpotBtcbox:                "btcbox",
	SpotBtcex:                 "btcex",
	SpotBtcmarkets:            "btcmarkets",
	SpotBtcturk:               "btcturk",
	SpotBtse:                  "btse",
	SpotBuda:                  "buda",
	SpotBullish:               "bullish",
	SpotBuyucoin:              "buyucoin",
	SpotBwexchange:            "bwexchange",
	SpotBybit:                 "bybit",
	SpotBydfi:                 "bydfi",
	SpotCatex:                 "catex",
	SpotCexio:                 "cexio",
	SpotCoinbase:              "coinbase",
	SpotCoinbaseinternational: "coinbaseinternational",
	SpotCoincheck:             "coincheck",
	SpotCoincorner:            "coincorner",
	SpotCoindcx:               "coindcx",
	SpotCoindeal:              "coindeal",
	SpotCoinex:                "coinex",
	SpotCoinfalcon:            "coinfalcon",
	SpotCoinfield:             "coinfield",
	SpotCoinjar:               "coinjar",
	SpotCoinmate:              "coinmate",
	SpotCoinone:               "coinone",
	SpotCoinsbit:              "coinsbit",
	SpotCoinspro:              "coinspro",
	SpotCointiger:             "cointiger",
	SpotCoinw:                 "coinw",
	SpotCoss:                  "coss",
	SpotCrex24:                "crex24",
	SpotCrosstower:            "crosstower",
	SpotCryptocarbon:          "cryptocarbon",
	SpotCryptodotcom:          "cryptodotcom",
	SpotCryptopia:             "cryptopia",
	SpotCryptsy:               "cryptsy",
	SpotCube:                  "cube",
	SpotCurrency:              "currency",
	SpotDcoin:                 "dcoin",
	SpotDdex:                  "ddex",
	SpotDecoin:                "decoin",
	SpotDeribit:               "deribit",
	SpotDigifinex:             "digifinex",
	SpotErisx:                 "erisx",
	SpotEtoro:                 "etoro",
	SpotExmo:                  "exmo",
	SpotFcoin:                 "fcoin",
	SpotFoxbit:                "foxbit",
	SpotFTX:                   "ftx",
	SpotFtxus:                 "ftxus",
	SpotGarantex:              "garantex",
	SpotGateio:                "gateio",
	SpotGemini:                "gemini",
	SpotGlobitex:              "globitex",
	SpotGopax:                 "gopax",
	SpotGraviex:               "graviex",
	SpotHashkey:               "hashkey",
	SpotHitbtc:                "hitbtc",
	SpotHuobijapan:            "huobijapan",
	SpotHuobipro:              "huobipro",
	SpotIndependentreserve:    "independentreserve",
	SpotIndodax:               "indodax",
	SpotIndoex:                "indoex",
	SpotINX:                   "inx",
	SpotItbit:                 "itbit",
	SpotKorbit:                "korbit",
	SpotKraken:                "kraken",
	SpotKucoin:                "kucoin",
	SpotKuna:                  "kuna",
	SpotLatoken:               "latoken",
	SpotLbank:                 "lbank",
	SpotLiqnet:                "liqnet",
	SpotLiquid:                "liquid",
	SpotLitebit:               "litebit",
	SpotLmax:                  "lmax",
	SpotLuno:                  "luno",
	SpotLykke:                 "lykke",
	SpotMercadobtc:            "mercadobtc",
	SpotMercatox:              "mercatox",
	SpotMexc:                  "mexc",
	SpotMock:                  "mock",
	SpotMtgox:                 "mtgox",
	SpotNdax:                  "ndax",
	SpotNominex:               "nominex",
	SpotOkcoin:                "okcoin",
	SpotOkex:                  "okex",
	SpotOnetrading:            "onetrading",
	SpotOSL:                   "osl",
	SpotOslhongkong:           "oslhongkong",
	SpotP2pb2b:                "p2pb2b",
	SpotPancakeswap:           "pancakeswap",
	SpotParamountdax:          "paramountdax",
	SpotParibu:                "paribu",
	SpotPhemex:                "phemex",
	SpotPoloniex:              "poloniex",
	SpotProbit:                "probit",
	SpotSafetrade:             "safetrade",
	SpotSigenpro:              "sigenpro",
	SpotSimex:                 "simex",
	SpotSwitcheo:              "switcheo",
	SpotTherocktrading:        "therocktrading",
	SpotTidefi:                "tidefi",
	SpotTimex:                 "timex",
	SpotTokenomy:              "tokenomy",
	SpotTradeogre:             "tradeogre",
	SpotUniswap:               "uniswap",
	SpotUnocoin:               "unocoin",
	SpotUpbit:                 "upbit",
	SpotValr:                  "valr",
	SpotVitex:                 "vitex",
	SpotWazirx:                "waxirx",
	SpotWhitebit:              "whitebit",
	SpotWOO:                   "woo",
	SpotXcoex:                 "xcoex",
	SpotXtpub:                 "xtpub",
	SpotYellow:                "yellow",
	SpotYobit:                 "yobit",
	SpotZaif:                  "zaif",
	SpotZbdotcom:              "zbdotcom",
	SpotZBG:                   "zbg",
	SpotZebitex:               "zebitex",
	SpotZonda:                 "zonda",
}

// String returns the vendor spelling of m.
func (m SpotMarket) String() string {
	if m < 0 || m >= spotMarketCount {
		return ""
	}
	return spotMarketNames[m]
}

func (SpotMarket) isMarket() {}

// FuturesMarket is a futures exchange.
type FuturesMarket int

const (
	FuturesBinance FuturesMarket = iota
	FuturesBitfinex
	FuturesBitget
	FuturesBitmex
	FuturesBtcex
	FuturesBybit
	FuturesCoinbase
	FuturesCoinbaseinternational
	FuturesCrosstower
	FuturesCryptodotcom
	FuturesDeribit
	FuturesDydxv4
	FuturesFTX
	FuturesKraken
	FuturesMock
	FuturesOkex
	futuresMarketCount
)

var futuresMarketNames = [futuresMarketCount]string{
	FuturesBinance:               "binance",
	FuturesBitfinex:              "bitfinex",
	FuturesBitget:                "bitget",
	FuturesBitmex:                "bitmex",
	FuturesBtcex:                 "btcex",
	FuturesBybit:                 "bybit",
	FuturesCoinbase:              "coinbase",
	FuturesCoinbaseinternational: "coinbaseinternational",
	FuturesCrosstower:            "crosstower",
	FuturesCryptodotcom:          "cryptodotcom",
	FuturesDeribit:               "deribit",
	FuturesDydxv4:                "dydxv4",
	FuturesFTX:                   "ftx",
	FuturesKraken:                "kraken",
	FuturesMock:                  "mock",
	FuturesOkex:                  "okex",
}

// String returns the vendor spelling of m.
func (m FuturesMarket) String() string {
	if m < 0 || m >= futuresMarketCount {
		return ""
	}
	return futuresMarketNames[m]
}

func (FuturesMarket) isMarket() {}

// OptionsMarket is an options exchange.
type OptionsMarket int

const (
	OptionsDeribit OptionsMarket = iota
	OptionsOkex
	optionsMarketCount
)

var optionsMarketNames = [optionsMarketCount]string{
	OptionsDeribit: "deribit",
	OptionsOkex:    "okex",
}

// String returns the vendor spelling of m.
func (m OptionsMarket) String() string {
	if m < 0 || m >= optionsMarketCount {
		return ""
	}
	return optionsMarketNames[m]
}

func (OptionsMarket) isMarket() {}

// DerIndicesMarket is a derivatives index market.
type DerIndicesMarket int

const (
	DerIndicesBinance DerIndicesMarket = iota
	DerIndicesBitget
	DerIndicesBitmex
	DerIndicesBtcex
	DerIndicesBybit
	DerIndicesCoinbaseinternational
	DerIndicesCrosstower
	DerIndicesCryptodotcom
	DerIndicesDeribit
	DerIndicesDydxv4
	DerIndicesFTX
	DerIndicesKraken
	DerIndicesMock
	DerIndicesOkex
	derIndicesMarketCount
)

var derIndicesMarketNames = [derIndicesMarketCount]string{
	DerIndicesBinance:               "binance",
	DerIndicesBitget:                "bitget",
	DerIndicesBitmex:                "bitmex",
	DerIndicesBtcex:                 "btcex",
	DerIndicesBybit:                 "bybit",
	DerIndicesCoinbaseinternational: "coinbaseinternational",
	DerIndicesCrosstower:            "crosstower",
	DerIndicesCryptodotcom:          "cryptodotcom",
	DerIndicesDeribit:               "deribit",
	DerIndicesDydxv4:                "dydxv4",
	DerIndicesFTX:                   "ftx",
	DerIndicesKraken:                "kraken",
	DerIndicesMock:                  "mock",
	DerIndicesOkex:                  "okex",
}

// String returns the vendor spelling of m.
func (m DerIndicesMarket) String() string {
	if m < 0 || m >= derIndicesMarketCount {
		return ""
	}
	return derIndicesMarketNames[m]
}

func (DerIndicesMarket) isMarket() {}

// OCDEXMarket is an on-chain AMM protocol.
type OCDEXMarket int

const (
	OCDEXBalancerv2 OCDEXMarket = iota
	OCDEXCurve
	OCDEXPancakeswapv2
	OCDEXPancakeswapv3
	OCDEXSushiswapv2
	OCDEXSushiswapv3
	OCDEXUniswapv1
	OCDEXUniswapv2
	OCDEXUniswapv3
	oCDEXMarketCount
)

var oCDEXMarketNames = [oCDEXMarketCount]string{
	OCDEXBalancerv2:    "balancerv2",
	OCDEXCurve:         "curve",
	OCDEXPancakeswapv2: "pancakeswapv2",
	OCDEXPancakeswapv3: "pancakeswapv3",
	OCDEXSushiswapv2:   "sushiswapv2",
	OCDEXSushiswapv3:   "sushiswapv3",
	OCDEXUniswapv1:     "uniswapv1",
	OCDEXUniswapv2:     "uniswapv2",
	OCDEXUniswapv3:     "uniswapv3",
}

// String returns the vendor spelling of m.
func (m OCDEXMarket) String() string {
	if m < 0 || m >= oCDEXMarketCount {
		return ""
	}
	return oCDEXMarketNames[m]
}

func (OCDEXMarket) isMarket() {}

// IndicesMarket is an index family.
type IndicesMarket int

const (
	IndicesCADLI IndicesMarket = iota
	IndicesCCIX
	IndicesCCXRP
	IndicesCCXRPPERP
	indicesMarketCount
)

var indicesMarketNames = [indicesMarketCount]string{
	IndicesCADLI:     "cadli",
	IndicesCCIX:      "ccix",
	IndicesCCXRP:     "CCXRP",
	IndicesCCXRPPERP: "CCXRPPERP",
}

// String returns the vendor spelling of m.
func (m IndicesMarket) String() string {
	if m < 0 || m >= indicesMarketCount {
		return ""
	}
	return indicesMarketNames[m]
}

func (IndicesMarket) isMarket() {}
