package core

import "time"

const (
	HeraldName    = "HeraldBot"
	HeraldVersion = "0.1.0"
)

// Outcome classifies how a dispatch pass ended.
type Outcome string

const (
	OutcomeCommand  Outcome = "command"
	OutcomeListener Outcome = "listener"
	OutcomeFallback Outcome = "fallback"
	OutcomeIgnored  Outcome = "ignored"
	OutcomeFault    Outcome = "fault"
)

// DispatchRecord is one journaled dispatch pass.
type DispatchRecord struct {
	Conversation string
	Message      string
	Outcome      Outcome
	Detail       string
	CreatedAt    time.Time
}
