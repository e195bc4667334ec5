package model

import "strings"

// Priority 는 분류 결과 라벨 (high | medium | low)
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityOrder 는 정규화 시 부분 문자열 매칭 우선순위
var priorityOrder = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority maps a free-text model reply onto a Priority.
// The reply is trimmed and lowercased, then checked for "high", "medium" and
// "low" in that order; the first substring match wins. A reply matching none
// of them yields PriorityLow.
func ParsePriority(reply string) Priority {
	normalized := strings.ToLower(strings.TrimSpace(reply))
	for _, p := range priorityOrder {
		if strings.Contains(normalized, string(p)) {
			return p
		}
	}
	return PriorityLow
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Severity 는 FIR 저장소가 온체인에 기록하는 정수 척도 (high=3, medium=2, low=1)
func (p Priority) Severity() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

type ClassifyRequest struct {
	IncidentDescription string `json:"incidentDescription"`
}

type ClassifyResponse struct {
	Priority Priority `json:"priority"`
}
