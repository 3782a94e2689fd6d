package issuer

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	issued prometheus.Counter
	bad    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tokens_issued_total",
			Help: "Number of tokens issued",
		}),
		bad: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bad_token_requests_total",
			Help: "Number of token requests refused",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.issued, m.bad)
	}
	return m
}
