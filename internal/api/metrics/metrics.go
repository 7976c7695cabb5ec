// Package metrics defines and registers the custom Prometheus metrics for the
// orders API. It is the single source of truth for metric names, labels, and
// help strings. All metrics register with the default registry at init time;
// HTTP-level metrics come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orders_api"

// OrdersCreatedTotal counts successfully created orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrdersUpdatedTotal counts successful order updates.
// Label:
//   - status: the status applied by the update (e.g. "preparing")
var OrdersUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_updated_total",
		Help:      "Total number of order updates, by resulting status.",
	},
	[]string{"status"},
)

// AssemblyErrorsTotal counts order assemblies that failed because a product
// reference did not resolve against the catalog.
var AssemblyErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assembly_errors_total",
		Help:      "Total number of order assemblies aborted by an unresolvable product reference.",
	},
)

// UsersCreatedTotal counts successfully registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)
