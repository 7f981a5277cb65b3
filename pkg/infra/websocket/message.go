package websocket

const (
	AnalyzeMessageType        = "analyze"
	AnalysisResultMessageType = "analysis_result"
)

// InboundMessage is one client frame on the safety monitoring socket.
type InboundMessage struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// OutboundMessage is the reply emitted for each handled analyze frame.
type OutboundMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}
