package response

type SafetyAnalysisResponse struct {
	Safe       bool                     `json:"safe"`
	Score      float64                  `json:"score"`
	Violations []map[string]interface{} `json:"violations"`
	Metadata   map[string]interface{}   `json:"metadata"`
}

// Normalize replaces nil collections so the serialized response always
// carries `violations` and `metadata` fields.
func (r *SafetyAnalysisResponse) Normalize() {
	if r.Violations == nil {
		r.Violations = []map[string]interface{}{}
	}
	if r.Metadata == nil {
		r.Metadata = map[string]interface{}{}
	}
}

type BatchAnalysisResult struct {
	Index      int                      `json:"index"`
	Error      string                   `json:"error,omitempty"`
	Safe       bool                     `json:"safe"`
	Score      float64                  `json:"score"`
	Violations []map[string]interface{} `json:"violations"`
	Metadata   map[string]interface{}   `json:"metadata"`
}

type BatchAnalysisResponse struct {
	Results []BatchAnalysisResult `json:"results"`
}
