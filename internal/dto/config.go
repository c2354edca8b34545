package dto

// ConfigResponse carries the third-party API credentials relayed to the
// frontend. Field names match what the pages expect.
type ConfigResponse struct {
	FinnhubAPIKey string `json:"finnhubApiKey"`
	GeminiAPIKey  string `json:"geminiApiKey"`
	Configured    bool   `json:"configured"`
}
