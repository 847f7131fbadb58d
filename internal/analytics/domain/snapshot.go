package analytics

import (
	"time"

	catalog "ispdesk/internal/catalog/domain"
	clients "ispdesk/internal/clients/domain"
)

// Snapshot is a derived, point-in-time aggregate summary of the client
// registry. It is a read-only projection, never a second source of truth.
type Snapshot struct {
	TakenAt         time.Time                    `json:"taken_at"`
	TotalClients    int                          `json:"total_clients"`
	ActiveClients   int                          `json:"active_clients"`
	InactiveClients int                          `json:"inactive_clients"`
	ClientsByClass  map[clients.AccountClass]int `json:"clients_by_class"`
	ServicesByKind  map[catalog.ServiceKind]int  `json:"services_by_kind"`
	TotalRevenue    float64                      `json:"total_revenue"`
	AverageBalance  float64                      `json:"average_balance"`
}

// Compute folds over the clients and recomputes every figure from
// scratch. Nothing is maintained incrementally; the cost is linear in
// the total number of services and payments.
func Compute(list []*clients.Client, takenAt time.Time) Snapshot {
	snap := Snapshot{
		TakenAt:        takenAt,
		ClientsByClass: make(map[clients.AccountClass]int),
		ServicesByKind: make(map[catalog.ServiceKind]int),
	}

	for _, c := range list {
		if c == nil {
			continue
		}
		snap.TotalClients++
		if c.Active() {
			snap.ActiveClients++
		} else {
			snap.InactiveClients++
		}
		snap.ClientsByClass[c.Class()]++
		for _, s := range c.Services() {
			snap.ServicesByKind[s.Kind()]++
		}
		for _, p := range c.Payments() {
			snap.TotalRevenue += p.Amount()
		}
	}

	if snap.TotalClients > 0 {
		var balances float64
		for _, c := range list {
			if c != nil {
				balances += c.Balance()
			}
		}
		snap.AverageBalance = balances / float64(snap.TotalClients)
	}
	return snap
}
