package response

type HealthResponse struct {
	Status          string `json:"status"`
	Timestamp       string `json:"timestamp"`
	OpenVaultStatus string `json:"openvault_status"`
}
