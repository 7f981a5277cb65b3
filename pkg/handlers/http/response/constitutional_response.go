package response

type ConstitutionalAIResponse struct {
	Original            string   `json:"original"`
	Revised             string   `json:"revised"`
	Critiques           []string `json:"critiques"`
	RevisionCount       int      `json:"revision_count"`
	Principles          []string `json:"principles"`
	AppliedSuccessfully bool     `json:"applied_successfully"`
}
