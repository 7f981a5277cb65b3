package request

import "strings"

const defaultAnalysisMode = "comprehensive"

// SafetyAnalysisRequest only carries the field shape; whether a text or
// mode is acceptable is decided upstream.
type SafetyAnalysisRequest struct {
	Text                    string `json:"text"`
	Mode                    string `json:"mode,omitempty"`
	IncludeInterpretability bool   `json:"include_interpretability,omitempty"`
	Context                 string `json:"context,omitempty"`
	PolicyID                string `json:"policy_id,omitempty"`
}

func (r *SafetyAnalysisRequest) Validate() error {
	if strings.TrimSpace(r.Mode) == "" {
		r.Mode = defaultAnalysisMode
	}

	return nil
}
