package domain

type WebhookAck struct {
	Received bool `json:"received"`
}

type HealthStatus struct {
	Status string `json:"status"`
}
