package publication

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var prometheusPublicationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trackpub_publications_total",
	Help: "Total number of track publications added to a registry",
}, []string{"locality", "kind"})

var prometheusPublicationsActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "trackpub_publications_active",
	Help: "Number of track publications currently held by registries",
}, []string{"locality", "kind"})

var prometheusSubscriptionsActive = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "trackpub_subscriptions_active",
	Help: "Number of remote publications with an attached track",
})

var prometheusPublicationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "trackpub_publication_duration_seconds",
	Help:    "Time between publishing and unpublishing a track",
	Buckets: []float64{1, 60, 5 * 60, 15 * 60, 30 * 60, 45 * 60, 60 * 60, 120 * 60},
})

var prometheusInvalidDescriptorsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trackpub_invalid_descriptors_total",
	Help: "Total number of track descriptors rejected by the factory",
})

const (
	localityLocal  = "local"
	localityRemote = "remote"
)
