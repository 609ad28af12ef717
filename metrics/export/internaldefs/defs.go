package internaldefs

import (
	sessionkit "github.com/apexboard/sessionkit"
)

// CounterDef defines a public type used by the sessionkit APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   sessionkit.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by the sessionkit APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   sessionkit.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session core.
var CounterDefs = []CounterDef{
	{ID: sessionkit.MetricLoginSuccess, Name: "sessionkit_login_success_total", Help: "Successful login exchanges."},
	{ID: sessionkit.MetricLoginFailure, Name: "sessionkit_login_failure_total", Help: "Failed login exchanges."},
	{ID: sessionkit.MetricLoginInFlightRejected, Name: "sessionkit_login_in_flight_rejected_total", Help: "Login or register calls rejected because another exchange was pending."},
	{ID: sessionkit.MetricLoginCooldownRejected, Name: "sessionkit_login_cooldown_rejected_total", Help: "Login attempts rejected by the failure cooldown."},
	{ID: sessionkit.MetricRegisterSuccess, Name: "sessionkit_register_success_total", Help: "Successful registrations."},
	{ID: sessionkit.MetricRegisterFailure, Name: "sessionkit_register_failure_total", Help: "Failed registrations."},
	{ID: sessionkit.MetricResetRequest, Name: "sessionkit_reset_request_total", Help: "Password reset requests."},
	{ID: sessionkit.MetricResetVerifyFailure, Name: "sessionkit_reset_verify_failure_total", Help: "Failed reset code verifications."},
	{ID: sessionkit.MetricResetConfirmSuccess, Name: "sessionkit_reset_confirm_success_total", Help: "Successful password reset confirmations."},
	{ID: sessionkit.MetricResetConfirmFailure, Name: "sessionkit_reset_confirm_failure_total", Help: "Failed password reset confirmations."},
	{ID: sessionkit.MetricLogout, Name: "sessionkit_logout_total", Help: "Completed logout operations."},
	{ID: sessionkit.MetricRemoteLogoutFailure, Name: "sessionkit_remote_logout_failure_total", Help: "Logouts where the backend call failed after local clear."},
	{ID: sessionkit.MetricSessionSaved, Name: "sessionkit_session_saved_total", Help: "Session records written to the durable slot."},
	{ID: sessionkit.MetricSessionCleared, Name: "sessionkit_session_cleared_total", Help: "Session records removed from the durable slot."},
	{ID: sessionkit.MetricSessionCorruptRecovered, Name: "sessionkit_session_corrupt_recovered_total", Help: "Hydrations that recovered from an undecodable slot payload."},
	{ID: sessionkit.MetricSessionExpiredObserved, Name: "sessionkit_session_expired_observed_total", Help: "Guard evaluations that found a present but expired session record."},
	{ID: sessionkit.MetricGuardRender, Name: "sessionkit_guard_render_total", Help: "Guard decisions that allowed a route to render."},
	{ID: sessionkit.MetricGuardLoginRedirect, Name: "sessionkit_guard_login_redirect_total", Help: "Guard decisions that redirected to the login route."},
	{ID: sessionkit.MetricGuardRoleRedirect, Name: "sessionkit_guard_role_redirect_total", Help: "Guard decisions that redirected a wrong-role navigation."},
	{ID: sessionkit.MetricGuardPending, Name: "sessionkit_guard_pending_total", Help: "Guard evaluations before hydration resolved."},
}

// HistogramDefs is an exported constant or variable used by the session core.
var HistogramDefs = []HistogramDef{
	{ID: sessionkit.MetricGuardLatency, Name: "sessionkit_guard_latency_seconds", Help: "Guard evaluation latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the session core.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the session core.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets widens a snapshot bucket slice to the fixed bucket count,
// zero-filling missing entries.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form both
// exposition formats expect.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
