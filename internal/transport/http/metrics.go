package httptransport

import "expvar"

var (
	metricSessionCreateTotal  = expvar.NewInt("session_create_total")
	metricSessionCreateErrors = expvar.NewInt("session_create_errors_total")

	metricCallSubmitTotal  = expvar.NewInt("call_submit_total")
	metricCallSubmitErrors = expvar.NewInt("call_submit_errors_total")

	metricAdviceTotal       = expvar.NewInt("advice_total")
	metricAdviceErrorsTotal = expvar.NewInt("advice_errors_total")
	metricExplainTotal      = expvar.NewInt("explain_total")

	metricEventStreamsTotal  = expvar.NewInt("session_event_streams_total")
	metricEventStreamsActive = expvar.NewInt("session_event_streams_active")
)
