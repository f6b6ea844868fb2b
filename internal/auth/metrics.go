package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes, used as the "outcome" metric label.
const (
	OutcomeValid        = "valid"
	OutcomeMissing      = "missing"
	OutcomeMalformed    = "malformed"
	OutcomeExpired      = "expired"
	OutcomeBadSignature = "bad_signature"
)

var sessionResolutions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shield_session_resolutions_total",
		Help: "Session cookie resolutions by outcome.",
	},
	[]string{"outcome"},
)
