package types

/////////////////////////////////////////////////////////////////////////////
// TOKENIZER STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	InputSize  int `json:"input_size"`
	TotalWords int `json:"total_words"`
	Letters    int `json:"letters"`
	Delimiters int `json:"delimiters"`
}

/////////////////////////////////////////////////////////////////////////////
// SCAN STATS
/////////////////////////////////////////////////////////////////////////////

type ScanStats struct {
	TotalWords   int            `json:"total_words"`
	IllegalWords int            `json:"illegal_words"`
	CharHits     map[string]int `json:"char_hits"`
}

// IllegalPercent is the share of illegal words, 0 when there are no words.
func (s ScanStats) IllegalPercent() float64 {
	if s.TotalWords == 0 {
		return 0
	}
	return float64(s.IllegalWords) / float64(s.TotalWords) * 100
}

// Report gathers everything produced by one run.
type Report struct {
	Illegal    string     `json:"illegal"`
	Words      []Word     `json:"words"`
	Matches    []Match    `json:"matches"`
	TokenStats TokenStats `json:"token_stats"`
	ScanStats  ScanStats  `json:"scan_stats"`
}
