package models

type CheckoutResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type FinalizeResponse struct {
	DownloadID  string `json:"downloadId"`
	DownloadURL string `json:"downloadUrl"`
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}

type CheckoutStatusResponse struct {
	SenderEmail string `json:"senderEmail"`
	FileCount   string `json:"fileCount"`
	TotalPages  string `json:"totalPages"`
}

type PricingResponse struct {
	PublishableKey string `json:"publishableKey"`
	PriceDisplay   string `json:"priceDisplay"`
}

type PrecheckResponse struct {
	OK         bool     `json:"ok"`
	Violations []string `json:"violations,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
