package models

import "time"

// Severity orders alerts by urgency.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns the sort rank for a severity, lower is more urgent.
// Unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// AlertType identifies which rule tier produced an alert.
type AlertType string

const (
	AlertTypeSentiment    AlertType = "sentiment"
	AlertTypeTrend        AlertType = "trend"
	AlertTypeVolume       AlertType = "volume"
	AlertTypeCorrelation  AlertType = "correlation"
	AlertTypeConfidence   AlertType = "confidence"
	AlertTypeDistribution AlertType = "distribution"
)

// Alert is one triggered rule instance. Alerts are ephemeral and
// recomputed on every evaluation; no identity is kept across calls.
type Alert struct {
	Symbol       string    `json:"symbol"`
	Type         AlertType `json:"type"`
	Severity     Severity  `json:"severity"`
	Message      string    `json:"message"`
	Threshold    float64   `json:"threshold"`
	CurrentValue float64   `json:"current_value"`
	TriggeredAt  time.Time `json:"triggered_at"`
}
