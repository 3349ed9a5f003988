package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	WebhookResults *prometheus.CounterVec
	LightCommands  *prometheus.CounterVec
}

// New builds the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WebhookResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plexhue_webhook_results_total",
			Help: "Webhook calls by semantic result status.",
		}, []string{"status"}),
		LightCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plexhue_light_commands_total",
			Help: "State commands sent to the Hue bridge.",
		}, []string{"state", "outcome"}),
	}
	reg.MustRegister(m.WebhookResults, m.LightCommands)
	return m
}
