package request

const defaultMaxRevisions = 3

// ConstitutionalAIRequest only carries the field shape; principle names
// and revision limits are interpreted upstream.
type ConstitutionalAIRequest struct {
	Text         string   `json:"text"`
	Principles   []string `json:"principles,omitempty"`
	MaxRevisions int      `json:"max_revisions,omitempty"`
}

func (r *ConstitutionalAIRequest) Validate() error {
	if len(r.Principles) == 0 {
		r.Principles = []string{"harmlessness", "helpfulness"}
	}

	if r.MaxRevisions == 0 {
		r.MaxRevisions = defaultMaxRevisions
	}

	return nil
}
