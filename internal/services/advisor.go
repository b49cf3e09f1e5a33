package services

import (
	"fmt"
	"strings"

	"github.com/zelcry/zelcry-api/internal/models"
)

// AdvisorDetailsStore define las consultas sobre perfiles de impacto que usa el asesor
type AdvisorDetailsStore interface {
	GetDetails(coinID string) (*models.CryptoAssetDetails, error)
	TopByEnergy() (*models.CryptoAssetDetails, error)
	TopByGovernance() (*models.CryptoAssetDetails, error)
	RecommendLowRisk(limit int) ([]models.CryptoAssetDetails, error)
	RecommendMediumRisk(limit int) ([]models.CryptoAssetDetails, error)
	RecommendHighRisk(limit int) ([]models.CryptoAssetDetails, error)
}

// AdvisorRequest es todo el contexto del usuario que el asesor puede usar
type AdvisorRequest struct {
	Message       string
	UserName      string
	RiskTolerance string
	XPPoints      int
	Assets        []models.PortfolioAsset
}

// advisorRule es un par (predicado, handler) del motor de reglas
type advisorRule struct {
	matches func(message string) bool
	respond func(req AdvisorRequest) string
}

// Advisor responde preguntas con un motor de reglas determinista: las
// categorías se evalúan en un orden fijo y gana la primera que matchea, por
// lo que las categorías anteriores tapan a las posteriores cuando las
// palabras clave se superponen.
type Advisor struct {
	store      AdvisorDetailsStore
	topGainers func(limit int) []models.MarketCoin
	rules      []advisorRule
}

// NewAdvisor crea el asesor con su cascada de reglas en orden de prioridad
func NewAdvisor(store AdvisorDetailsStore) *Advisor {
	a := &Advisor{
		store:      store,
		topGainers: GetTopGainers,
	}

	// El orden de esta lista es el orden de evaluación
	a.rules = []advisorRule{
		{keywordsMatcher("portfolio", "my coins", "what do i have"), a.portfolioResponse},
		{keywordsMatcher("risk", "should i invest", "recommend for me"), a.riskResponse},
		{keywordsMatcher("sustainable", "green", "eco-friendly", "energy", "environment"), a.sustainabilityResponse},
		{keywordsMatcher("governance", "decentralized", "community", "voting"), a.governanceResponse},
		{keywordsMatcher("trending", "hot", "popular", "gainer", "movers"), a.trendingResponse},
		{keywordsMatcher("what is", "tell me about", "explain"), a.coinInfoResponse},
		{keywordsMatcher("diversify", "diversification", "balance", "spread"), a.diversificationResponse},
		{keywordsMatcher("help", "what can you do", "features", "assist"), a.helpResponse},
		{keywordsMatcher("compare", "vs", "versus", "difference between"), a.compareResponse},
	}

	return a
}

// Answer evalúa la cascada de reglas y devuelve la primera respuesta que
// aplica, o la respuesta por defecto
func (a *Advisor) Answer(req AdvisorRequest) string {
	message := strings.ToLower(req.Message)

	for _, rule := range a.rules {
		if rule.matches(message) {
			return rule.respond(req)
		}
	}

	return a.fallbackResponse(req)
}

func keywordsMatcher(keywords ...string) func(string) bool {
	return func(message string) bool {
		for _, keyword := range keywords {
			if strings.Contains(message, keyword) {
				return true
			}
		}
		return false
	}
}

func (a *Advisor) portfolioResponse(req AdvisorRequest) string {
	if len(req.Assets) == 0 {
		return "You don't have any coins in your portfolio yet. Start by adding sustainable cryptocurrencies that match your risk tolerance!"
	}

	coins := make([]string, 0, len(req.Assets))
	sustainable := 0
	for _, asset := range req.Assets {
		coins = append(coins, fmt.Sprintf("%s (%s)", asset.CoinName, asset.Quantity.String()))

		details, err := a.store.GetDetails(asset.CoinID)
		if err == nil && details != nil && details.EnergyScore >= 7 {
			sustainable++
		}
	}

	response := fmt.Sprintf("📊 Your portfolio contains: %s. ", strings.Join(coins, ", "))
	if sustainable > 0 {
		response += fmt.Sprintf("🌱 %d of your coins are sustainable! Great job!", sustainable)
	} else {
		response += "Consider adding some eco-friendly coins like Algorand or Cardano!"
	}
	return response
}

func (a *Advisor) riskResponse(req AdvisorRequest) string {
	switch req.RiskTolerance {
	case models.RiskLow:
		coins, err := a.store.RecommendLowRisk(3)
		if err == nil && len(coins) > 0 {
			return fmt.Sprintf("🛡️ Based on your LOW risk tolerance, I recommend these stable, sustainable options: %s. They have strong governance and proven utility.", joinNames(coins))
		}
		return "For low risk, focus on established coins with high sustainability scores like Ethereum (after PoS transition) or Cardano."

	case models.RiskMedium:
		coins, err := a.store.RecommendMediumRisk(3)
		if err == nil && len(coins) > 0 {
			return fmt.Sprintf("⚖️ With MEDIUM risk tolerance, consider: %s. These offer balanced growth potential with good sustainability.", joinNames(coins))
		}
		return "For medium risk, mix established coins (BTC, ETH) with promising sustainable projects (ADA, ALGO, DOT)."

	default:
		coins, err := a.store.RecommendHighRisk(3)
		if err == nil && len(coins) > 0 {
			return fmt.Sprintf("🚀 For HIGH risk tolerance, explore: %s. High potential with strong utility and sustainability!", joinNames(coins))
		}
		return "For high risk, consider innovative sustainable projects like Solana, Avalanche, or NEAR Protocol."
	}
}

func (a *Advisor) sustainabilityResponse(req AdvisorRequest) string {
	top, err := a.store.TopByEnergy()
	if err != nil || top == nil {
		return "🌿 Top sustainable cryptocurrencies:\n• Algorand - Carbon negative\n• Cardano - Proof-of-stake\n• Ethereum - Now PoS after The Merge\n• Stellar - Low energy consensus\n\nThese use significantly less energy than Bitcoin!"
	}

	response := fmt.Sprintf("🌱 The most sustainable cryptocurrency is %s (%s) with an energy efficiency score of %d/10.\n\n",
		top.Name, strings.ToUpper(top.Symbol), top.EnergyScore)
	response += fmt.Sprintf("Why it's eco-friendly: %s...\n\n", truncate(top.Description, 150))
	response += "Other sustainable options: Cardano (ADA), Stellar (XLM), Hedera (HBAR), and Algorand (ALGO) are all carbon-neutral or carbon-negative!"
	return response
}

func (a *Advisor) governanceResponse(req AdvisorRequest) string {
	top, err := a.store.TopByGovernance()
	if err != nil || top == nil {
		return "For strong governance, look for:\n• On-chain voting systems\n• Active community participation\n• Transparent decision-making\n• Stake-based voting rights\n\nProjects like Cardano, Polkadot, and Cosmos excel here!"
	}

	response := fmt.Sprintf("🗳️ %s (%s) leads in governance with a score of %d/10.\n\n",
		top.Name, strings.ToUpper(top.Symbol), top.GovernanceScore)
	response += "Strong governance means:\n✅ Community-driven decisions\n✅ Transparent voting mechanisms\n✅ True decentralization\n✅ Stakeholder participation\n\n"
	response += "Other decentralized projects: Polkadot, Cosmos, Uniswap, and Cardano all have excellent governance models!"
	return response
}

func (a *Advisor) trendingResponse(req AdvisorRequest) string {
	gainers := a.topGainers(5)
	if len(gainers) == 0 {
		return "I'm having trouble fetching trending coins. Check the dashboard's 'Market Movers' section for the latest data!"
	}

	response := "📈 Top 24h gainers:\n\n"
	for i, coin := range gainers {
		response += fmt.Sprintf("%d. %s (%s): +%.2f%% at $%.2f\n",
			i+1, coin.Name, strings.ToUpper(coin.Symbol), coin.PriceChangePercentage24h, coin.CurrentPrice)
	}
	response += "\n⚠️ Remember: High volatility = high risk! Always research before investing and never invest more than you can afford to lose."
	return response
}

func (a *Advisor) coinInfoResponse(req AdvisorRequest) string {
	message := strings.ToLower(req.Message)

	var foundCoin string
	for _, coin := range coinDescriptionOrder {
		if strings.Contains(message, coin) {
			foundCoin = coin
			break
		}
	}

	if foundCoin == "" {
		return "I can tell you about: Bitcoin, Ethereum, Cardano, Solana, Polkadot, Algorand, Avalanche, Polygon, Chainlink, Stellar, XRP, NEAR, Cosmos, and more!\n\nJust ask: 'Tell me about [coin name]' or 'What is [coin name]?' 💡"
	}

	response := coinDescriptions[foundCoin]

	details, err := a.store.GetDetails(foundCoin)
	if err == nil && details != nil {
		response += fmt.Sprintf("\n\n📊 Impact Score: %.1f/10\n", details.ImpactScore())
		response += fmt.Sprintf("• Energy: %d/10\n", details.EnergyScore)
		response += fmt.Sprintf("• Governance: %d/10\n", details.GovernanceScore)
		response += fmt.Sprintf("• Utility: %d/10", details.UtilityScore)
	}

	return response
}

func (a *Advisor) diversificationResponse(req AdvisorRequest) string {
	numCoins := len(req.Assets)
	response := "📊 Diversification tips for your portfolio:\n\n"

	switch {
	case numCoins == 0:
		response += "Start with 3-5 coins from different categories:\n"
	case numCoins < 3:
		response += fmt.Sprintf("You have %d coin(s). Consider adding 2-3 more for better diversification:\n", numCoins)
	case numCoins < 5:
		response += fmt.Sprintf("You have %d coins - good start! Ideal is 5-10 for balance:\n", numCoins)
	case numCoins < 10:
		response += fmt.Sprintf("You have %d coins - well diversified! 🎉\n\nYour mix should include:\n", numCoins)
	default:
		response += fmt.Sprintf("You have %d coins - excellent diversification! 🌟\n\nEnsure you have:\n", numCoins)
	}

	response += "1. 🪙 Store of value (Bitcoin)\n"
	response += "2. ⚡ Smart contract platform (Ethereum, Cardano)\n"
	response += "3. 🌱 Sustainable option (Algorand, Stellar)\n"
	response += "4. 🚀 Growth potential (Solana, Avalanche)\n"
	response += "5. 🔗 Infrastructure (Chainlink, Polkadot)\n\n"
	response += "💡 Never put all eggs in one basket! Aim for 40% established, 40% mid-cap, 20% high-growth."
	return response
}

func (a *Advisor) helpResponse(req AdvisorRequest) string {
	response := "🤖 I'm Beacon, your AI crypto advisor! Here's how I can help:\n\n"
	response += "📊 PORTFOLIO ANALYSIS\n• 'Analyze my portfolio'\n• 'How diversified am I?'\n\n"
	response += "🌱 SUSTAINABILITY\n• 'Most sustainable coin?'\n• 'Green crypto options'\n\n"
	response += "🎯 PERSONALIZED ADVICE\n• 'Recommend coins for my risk level'\n• 'Should I invest in [coin]?'\n\n"
	response += "📈 MARKET INSIGHTS\n• 'What's trending?'\n• 'Show top gainers'\n\n"
	response += "📚 EDUCATION\n• 'What is Bitcoin?'\n• 'Explain proof-of-stake'\n\n"
	response += "💡 STRATEGY\n• 'How to diversify?'\n• 'Best governance coins?'\n\n"
	response += fmt.Sprintf("Your risk level: %s | Ask me anything!", req.RiskTolerance)
	return response
}

func (a *Advisor) compareResponse(req AdvisorRequest) string {
	response := "🔍 To compare cryptocurrencies, visit the Crypto Details page for each coin and look at:\n\n"
	response += "• Impact scores (energy, governance, utility)\n• Price trends and market cap\n• 30-day charts\n• Sustainability explanations\n\n"
	response += "💡 Quick comparison:\n"
	response += "• Bitcoin: Store of value, high energy use\n"
	response += "• Ethereum: Smart contracts, now eco-friendly\n"
	response += "• Cardano: Sustainable, academic approach\n"
	response += "• Solana: Fast, growing ecosystem\n"
	response += "• Algorand: Carbon-negative, instant finality"
	return response
}

func (a *Advisor) fallbackResponse(req AdvisorRequest) string {
	response := fmt.Sprintf("Hey %s! 👋 I'm Beacon, your AI-powered crypto advisor.\n\n", req.UserName)
	response += "I noticed you're asking about crypto! Here's what I can help with:\n\n"
	response += "🎯 Personalized Recommendations - Based on your risk tolerance and goals\n"
	response += "🌱 Sustainable Investing - Find eco-friendly cryptocurrencies\n"
	response += "📊 Portfolio Analysis - Understand your investments\n"
	response += "📈 Market Insights - Track trends and top movers\n"
	response += "📚 Crypto Education - Learn about different coins\n"
	response += "💡 Strategic Guidance - Diversification and risk management\n\n"
	response += "Try asking:\n"
	response += "• 'What's the most sustainable coin?'\n"
	response += "• 'Recommend coins for my risk level'\n"
	response += "• 'What's trending today?'\n"
	response += "• 'How should I diversify?'\n"
	response += "• 'Tell me about Bitcoin'\n\n"
	response += fmt.Sprintf("Your profile: %s risk | %d XP ⚡", req.RiskTolerance, req.XPPoints)
	return response
}

func joinNames(coins []models.CryptoAssetDetails) string {
	names := make([]string, len(coins))
	for i, coin := range coins {
		names[i] = coin.Name
	}
	return strings.Join(names, ", ")
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}

// Orden de búsqueda de monedas dentro del mensaje
var coinDescriptionOrder = []string{
	"bitcoin", "ethereum", "cardano", "solana", "polkadot", "algorand",
	"avalanche", "polygon", "chainlink", "stellar", "xrp", "near", "cosmos",
}

var coinDescriptions = map[string]string{
	"bitcoin":   "Bitcoin (BTC) 🪙 - The original cryptocurrency, created in 2009 by Satoshi Nakamoto. It's digital gold - a store of value running on proof-of-work. While energy-intensive, it has the strongest brand and adoption. Market cap leader.",
	"ethereum":  "Ethereum (ETH) ⚡ - The world's programmable blockchain! After 'The Merge' in 2022, it switched to proof-of-stake, cutting energy use by 99.95%. Powers DeFi, NFTs, and smart contracts. Second-largest crypto by market cap.",
	"cardano":   "Cardano (ADA) 🌱 - An academic, peer-reviewed blockchain built by researchers. Proof-of-stake from day one! Known for sustainability, strong governance, and slow but steady development. Popular in Africa for financial inclusion.",
	"solana":    "Solana (SOL) ⚡ - The 'Ethereum killer' known for blazing-fast transactions (65,000 TPS!) and low fees. Great for NFTs and DeFi. Had some network outages but improving. Proof-of-history consensus.",
	"polkadot":  "Polkadot (DOT) 🔗 - A multi-chain network that connects different blockchains! Think of it as blockchain interoperability. Created by Ethereum co-founder. Strong governance through Council and parachain auctions.",
	"algorand":  "Algorand (ALGO) 🌍 - Carbon-NEGATIVE blockchain! Pure proof-of-stake with instant finality. Used by governments and institutions. Created by Turing Award winner. Fast, secure, and truly decentralized.",
	"avalanche": "Avalanche (AVAX) 🏔️ - Fast, eco-friendly blockchain (4,500 TPS) with sub-second finality. Compatible with Ethereum! Popular for DeFi and enterprise applications. Uses novel Avalanche consensus.",
	"polygon":   "Polygon (MATIC) 🔷 - Ethereum's scaling solution! Makes ETH faster and cheaper while maintaining security. Widely adopted by major brands. Carbon-neutral and growing fast in the DeFi space.",
	"chainlink": "Chainlink (LINK) 🔗 - The leading decentralized oracle network. Connects smart contracts to real-world data (prices, weather, sports scores). Critical infrastructure for DeFi. Not a blockchain itself but essential!",
	"stellar":   "Stellar (XLM) 💫 - Designed for cross-border payments and financial inclusion. Fast, cheap transactions (5 seconds, $0.00001 fee!). Partners with IBM and MoneyGram. Energy-efficient consensus.",
	"xrp":       "XRP (Ripple) 💸 - Built for banks and payment providers for fast international transfers. Ultra-fast (3-5 seconds) and energy-efficient. Facing SEC lawsuit but widely used by financial institutions.",
	"near":      "NEAR Protocol (NEAR) 🌉 - Climate-neutral, developer-friendly blockchain. Sharded proof-of-stake for scalability. Easy onboarding with human-readable addresses. Growing ecosystem of dApps.",
	"cosmos":    "Cosmos (ATOM) 🌌 - The 'Internet of Blockchains'! Enables different chains to communicate via IBC protocol. Proof-of-stake with strong governance. Powers many Layer-1 blockchains.",
}
