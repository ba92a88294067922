package model

// Default watchlist mirroring the symbols the dashboard tracks. The boards
// group indices by region; macro tickers feed the overview metric row; FRED
// ids cover the rates, credit and inflation views.

// DefaultIndices returns the tracked global equity indices.
func DefaultIndices() []Symbol {
	return []Symbol{
		{Name: "S&P 500", Ticker: "^GSPC", Kind: KindIndex, Region: RegionUS},
		{Name: "NASDAQ", Ticker: "^IXIC", Kind: KindIndex, Region: RegionUS},
		{Name: "Russell 2000", Ticker: "^RUT", Kind: KindIndex, Region: RegionUS},
		{Name: "STOXX 600", Ticker: "^STOXX", Kind: KindIndex, Region: RegionEurope},
		{Name: "DAX", Ticker: "^GDAXI", Kind: KindIndex, Region: RegionEurope},
		{Name: "FTSE 100", Ticker: "^FTSE", Kind: KindIndex, Region: RegionEurope},
		{Name: "CAC 40", Ticker: "^FCHI", Kind: KindIndex, Region: RegionEurope},
		{Name: "Nikkei 225", Ticker: "^N225", Kind: KindIndex, Region: RegionAsia},
		{Name: "Hang Seng", Ticker: "^HSI", Kind: KindIndex, Region: RegionAsia},
		{Name: "Shanghai Comp", Ticker: "000001.SS", Kind: KindIndex, Region: RegionAsia},
		{Name: "KOSPI", Ticker: "^KS11", Kind: KindIndex, Region: RegionAsia},
		{Name: "ASX 200", Ticker: "^AXJO", Kind: KindIndex, Region: RegionAsia},
	}
}

// DefaultFXPairs returns the tracked currency pairs.
func DefaultFXPairs() []Symbol {
	return []Symbol{
		{Name: "EUR/USD", Ticker: "EURUSD=X", Kind: KindFX},
		{Name: "GBP/USD", Ticker: "GBPUSD=X", Kind: KindFX},
		{Name: "USD/JPY", Ticker: "USDJPY=X", Kind: KindFX},
		{Name: "USD/CHF", Ticker: "USDCHF=X", Kind: KindFX},
		{Name: "AUD/USD", Ticker: "AUDUSD=X", Kind: KindFX},
		{Name: "USD/CAD", Ticker: "USDCAD=X", Kind: KindFX},
		{Name: "NZD/USD", Ticker: "NZDUSD=X", Kind: KindFX},
		{Name: "EUR/GBP", Ticker: "EURGBP=X", Kind: KindFX},
		{Name: "EUR/JPY", Ticker: "EURJPY=X", Kind: KindFX},
		{Name: "GBP/JPY", Ticker: "GBPJPY=X", Kind: KindFX},
	}
}

// DefaultMacroTickers returns the Yahoo macro gauges for the overview row.
func DefaultMacroTickers() []Symbol {
	return []Symbol{
		{Name: "UST 10Y", Ticker: "^TNX", Kind: KindMacro},
		{Name: "VIX", Ticker: "^VIX", Kind: KindMacro},
		{Name: "MOVE", Ticker: "^MOVE", Kind: KindMacro},
		{Name: "DXY", Ticker: "DX-Y.NYB", Kind: KindMacro},
		{Name: "GOLD", Ticker: "GC=F", Kind: KindMacro},
		{Name: "WTI CRUDE", Ticker: "CL=F", Kind: KindMacro},
	}
}

// DefaultFREDSeries returns the tracked FRED series: the eleven treasury
// tenors plus spreads, real yields, breakevens and credit OAS.
func DefaultFREDSeries() []Symbol {
	return []Symbol{
		{Name: "UST 1M", Ticker: "DGS1MO", Kind: KindFRED},
		{Name: "UST 3M", Ticker: "DGS3MO", Kind: KindFRED},
		{Name: "UST 6M", Ticker: "DGS6MO", Kind: KindFRED},
		{Name: "UST 1Y", Ticker: "DGS1", Kind: KindFRED},
		{Name: "UST 2Y", Ticker: "DGS2", Kind: KindFRED},
		{Name: "UST 3Y", Ticker: "DGS3", Kind: KindFRED},
		{Name: "UST 5Y", Ticker: "DGS5", Kind: KindFRED},
		{Name: "UST 7Y", Ticker: "DGS7", Kind: KindFRED},
		{Name: "UST 10Y", Ticker: "DGS10", Kind: KindFRED},
		{Name: "UST 20Y", Ticker: "DGS20", Kind: KindFRED},
		{Name: "UST 30Y", Ticker: "DGS30", Kind: KindFRED},
		{Name: "2s10s Spread", Ticker: "T10Y2Y", Kind: KindFRED},
		{Name: "10Y Real Yield", Ticker: "DFII10", Kind: KindFRED},
		{Name: "10Y Breakeven", Ticker: "T10YIE", Kind: KindFRED},
		{Name: "IG OAS", Ticker: "BAMLC0A0CM", Kind: KindFRED},
		{Name: "HY OAS", Ticker: "BAMLH0A0HYM2", Kind: KindFRED},
	}
}

// DefaultWatchlist returns every symbol the service refreshes.
func DefaultWatchlist() []Symbol {
	var out []Symbol
	out = append(out, DefaultIndices()...)
	out = append(out, DefaultFXPairs()...)
	out = append(out, DefaultMacroTickers()...)
	out = append(out, DefaultFREDSeries()...)
	return out
}
