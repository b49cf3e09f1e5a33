package services

import "github.com/zelcry/zelcry-api/internal/models"

// Lista estática de impacto de las 20 principales criptomonedas. El job de
// reseed la vuelca periódicamente en crypto_asset_details.
var impactSeedData = []models.CryptoAssetDetails{
	{
		CoinID:          "bitcoin",
		Name:            "Bitcoin",
		Symbol:          "BTC",
		EnergyScore:     3,
		GovernanceScore: 8,
		UtilityScore:    9,
		Description:     "Bitcoin is the first and most well-known cryptocurrency, created in 2009. It operates on a proof-of-work consensus mechanism.",
	},
	{
		CoinID:          "ethereum",
		Name:            "Ethereum",
		Symbol:          "ETH",
		EnergyScore:     8,
		GovernanceScore: 7,
		UtilityScore:    10,
		Description:     "Ethereum is a decentralized platform for smart contracts and decentralized applications. It recently transitioned to proof-of-stake.",
	},
	{
		CoinID:          "cardano",
		Name:            "Cardano",
		Symbol:          "ADA",
		EnergyScore:     9,
		GovernanceScore: 9,
		UtilityScore:    8,
		Description:     "Cardano is a proof-of-stake blockchain platform focused on sustainability and scalability, with strong academic research foundation.",
	},
	{
		CoinID:          "solana",
		Name:            "Solana",
		Symbol:          "SOL",
		EnergyScore:     7,
		GovernanceScore: 6,
		UtilityScore:    9,
		Description:     "Solana is a high-performance blockchain known for fast transaction speeds and low fees, popular for DeFi and NFT applications.",
	},
	{
		CoinID:          "polkadot",
		Name:            "Polkadot",
		Symbol:          "DOT",
		EnergyScore:     8,
		GovernanceScore: 9,
		UtilityScore:    8,
		Description:     "Polkadot is a multi-chain platform that enables different blockchains to interoperate and share information securely.",
	},
	{
		CoinID:          "binancecoin",
		Name:            "BNB",
		Symbol:          "BNB",
		EnergyScore:     7,
		GovernanceScore: 5,
		UtilityScore:    9,
		Description:     "BNB is the native token of the Binance ecosystem, used for trading fees and powering the BNB Chain.",
	},
	{
		CoinID:          "ripple",
		Name:            "XRP",
		Symbol:          "XRP",
		EnergyScore:     9,
		GovernanceScore: 4,
		UtilityScore:    8,
		Description:     "XRP is designed for fast, low-cost international payments and is used by financial institutions worldwide.",
	},
	{
		CoinID:          "dogecoin",
		Name:            "Dogecoin",
		Symbol:          "DOGE",
		EnergyScore:     4,
		GovernanceScore: 6,
		UtilityScore:    5,
		Description:     "Dogecoin started as a meme cryptocurrency but has grown into a popular community-driven digital currency.",
	},
	{
		CoinID:          "tron",
		Name:            "TRON",
		Symbol:          "TRX",
		EnergyScore:     7,
		GovernanceScore: 6,
		UtilityScore:    7,
		Description:     "TRON is a blockchain platform focused on building a decentralized internet and digital entertainment ecosystem.",
	},
	{
		CoinID:          "chainlink",
		Name:            "Chainlink",
		Symbol:          "LINK",
		EnergyScore:     8,
		GovernanceScore: 7,
		UtilityScore:    9,
		Description:     "Chainlink is a decentralized oracle network that connects smart contracts with real-world data.",
	},
	{
		CoinID:          "avalanche-2",
		Name:            "Avalanche",
		Symbol:          "AVAX",
		EnergyScore:     9,
		GovernanceScore: 8,
		UtilityScore:    8,
		Description:     "Avalanche is a fast, eco-friendly blockchain platform for decentralized applications and custom blockchain networks.",
	},
	{
		CoinID:          "polygon",
		Name:            "Polygon",
		Symbol:          "MATIC",
		EnergyScore:     8,
		GovernanceScore: 7,
		UtilityScore:    9,
		Description:     "Polygon is a scaling solution for Ethereum, offering faster and cheaper transactions while maintaining security.",
	},
	{
		CoinID:          "stellar",
		Name:            "Stellar",
		Symbol:          "XLM",
		EnergyScore:     9,
		GovernanceScore: 7,
		UtilityScore:    7,
		Description:     "Stellar is designed for fast, low-cost cross-border payments and financial inclusion.",
	},
	{
		CoinID:          "algorand",
		Name:            "Algorand",
		Symbol:          "ALGO",
		EnergyScore:     10,
		GovernanceScore: 8,
		UtilityScore:    8,
		Description:     "Algorand is a carbon-negative blockchain that focuses on speed, security, and decentralization with pure proof-of-stake.",
	},
	{
		CoinID:          "uniswap",
		Name:            "Uniswap",
		Symbol:          "UNI",
		EnergyScore:     8,
		GovernanceScore: 9,
		UtilityScore:    9,
		Description:     "Uniswap is the largest decentralized exchange protocol on Ethereum, enabling permissionless token swaps.",
	},
	{
		CoinID:          "cosmos",
		Name:            "Cosmos",
		Symbol:          "ATOM",
		EnergyScore:     8,
		GovernanceScore: 9,
		UtilityScore:    8,
		Description:     "Cosmos is an ecosystem of interconnected blockchains designed to scale and interoperate with each other.",
	},
	{
		CoinID:          "litecoin",
		Name:            "Litecoin",
		Symbol:          "LTC",
		EnergyScore:     4,
		GovernanceScore: 6,
		UtilityScore:    7,
		Description:     "Litecoin is a peer-to-peer cryptocurrency created as the silver to Bitcoin's gold, offering faster transaction times.",
	},
	{
		CoinID:          "hedera-hashgraph",
		Name:            "Hedera",
		Symbol:          "HBAR",
		EnergyScore:     10,
		GovernanceScore: 6,
		UtilityScore:    8,
		Description:     "Hedera is an enterprise-grade public network using hashgraph consensus, known for its energy efficiency.",
	},
	{
		CoinID:          "internet-computer",
		Name:            "Internet Computer",
		Symbol:          "ICP",
		EnergyScore:     7,
		GovernanceScore: 7,
		UtilityScore:    7,
		Description:     "Internet Computer is a blockchain that aims to extend the functionality of the internet with smart contracts.",
	},
	{
		CoinID:          "near",
		Name:            "NEAR Protocol",
		Symbol:          "NEAR",
		EnergyScore:     9,
		GovernanceScore: 8,
		UtilityScore:    8,
		Description:     "NEAR is a climate-neutral, sharded proof-of-stake blockchain designed for usability and scalability.",
	},
}
