package application

import "expvar"

// Counters published under /debug/vars.
var (
	claimsSucceeded = expvar.NewInt("claims_succeeded")
	claimsRejected  = expvar.NewInt("claims_rejected")
	claimsFailed    = expvar.NewInt("claims_failed")
	pointsCredited  = expvar.NewInt("points_credited")
	chatRelayed     = expvar.NewInt("chat_relayed")
	chatFailed      = expvar.NewInt("chat_failed")
)
