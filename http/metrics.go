package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var listingsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fyyur",
		Name:      "listings_created_total",
		Help:      "Venues, artists and shows listed through the site.",
	},
	[]string{"kind"},
)
