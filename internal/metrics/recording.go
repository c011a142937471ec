package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordingViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbbrooms_recording_views_total",
		Help: "Total number of recording list requests by caller view",
	}, []string{"view"})

	recordingsFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbbrooms_recordings_fetched_total",
		Help: "Total number of recordings fetched from the recording source by caller view",
	}, []string{"view"})

	recordingsHiddenTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbbrooms_recordings_hidden_total",
		Help: "Total number of fetched recordings filtered out of the response by caller view",
	}, []string{"view"})

	bbbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bbbrooms_bbb_requests_total",
		Help: "Total number of BigBlueButton API calls by call and result",
	}, []string{"call", "result"})
)

// ObserveRecordingView records one pass of the recording list pipeline.
func ObserveRecordingView(canManage bool, fetched, visible int) {
	view := viewLabel(canManage)
	recordingViewsTotal.WithLabelValues(view).Inc()
	recordingsFetchedTotal.WithLabelValues(view).Add(float64(fetched))
	if hidden := fetched - visible; hidden > 0 {
		recordingsHiddenTotal.WithLabelValues(view).Add(float64(hidden))
	}
}

// IncBBBRequest records a BigBlueButton API call. result is "success" or "error".
func IncBBBRequest(call string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	bbbRequestsTotal.WithLabelValues(call, result).Inc()
}

func viewLabel(canManage bool) string {
	if canManage {
		return "managed"
	}
	return "public"
}
