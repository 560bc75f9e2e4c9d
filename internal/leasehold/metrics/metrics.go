// Package metrics holds the Prometheus collectors for invitation and
// tenancy operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Redemption outcomes, used as the "outcome" label.
const (
	OutcomeAccepted = "accepted"
	OutcomeNotFound = "not_found"
	OutcomeExpired  = "expired"
	OutcomeUsed     = "already_used"
	OutcomeOccupied = "property_occupied"
	OutcomeInvalid  = "validation_error"
	OutcomeErrored  = "error"
)

// How a tenancy ended, used as the "via" label.
const (
	EndedByRemoval   = "removal"
	EndedByAgreement = "agreement"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	InvitationsIssued  prometheus.Counter
	InvitationsRevoked prometheus.Counter
	InvitationsPurged  prometheus.Counter
	Redemptions        *prometheus.CounterVec
	RedemptionDuration prometheus.Histogram
	TenanciesEnded     *prometheus.CounterVec
	AccessDenied       *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		InvitationsIssued: f.NewCounter(prometheus.CounterOpts{
			Name: "leasehold_invitations_issued_total",
			Help: "Total number of invitations issued",
		}),
		InvitationsRevoked: f.NewCounter(prometheus.CounterOpts{
			Name: "leasehold_invitations_revoked_total",
			Help: "Total number of invitations revoked by a landlord",
		}),
		InvitationsPurged: f.NewCounter(prometheus.CounterOpts{
			Name: "leasehold_invitations_purged_total",
			Help: "Total number of stale invitations removed by housekeeping",
		}),
		Redemptions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leasehold_invitation_redemptions_total",
			Help: "Invitation redemption attempts by outcome",
		}, []string{"outcome"}),
		RedemptionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "leasehold_invitation_redemption_duration_seconds",
			Help:    "Duration of invitation redemptions, password hashing included",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		TenanciesEnded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leasehold_tenancies_ended_total",
			Help: "Tenancies terminated, by landlord removal or by agreement of both parties",
		}, []string{"via"}),
		AccessDenied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leasehold_access_denied_total",
			Help: "Gate decisions that denied an action",
		}, []string{"action"}),
	}
}

func (m *Metrics) IncInvitationIssued() {
	if m == nil {
		return
	}
	m.InvitationsIssued.Inc()
}

func (m *Metrics) IncInvitationRevoked() {
	if m == nil {
		return
	}
	m.InvitationsRevoked.Inc()
}

func (m *Metrics) AddInvitationsPurged(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.InvitationsPurged.Add(float64(n))
}

// ObserveRedemption records one redemption attempt that started at start.
func (m *Metrics) ObserveRedemption(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Redemptions.WithLabelValues(outcome).Inc()
	m.RedemptionDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncTenancyEnded(via string) {
	if m == nil {
		return
	}
	m.TenanciesEnded.WithLabelValues(via).Inc()
}

func (m *Metrics) IncAccessDenied(action string) {
	if m == nil {
		return
	}
	m.AccessDenied.WithLabelValues(action).Inc()
}
