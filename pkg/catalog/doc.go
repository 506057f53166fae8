// Package catalog turns raw model records from the Gatewayz API into the
// ranking rows shown on the dashboard.
//
// Every derived field (category, provider, token and value estimates, trend)
// is a pure function of the raw record, so Reconcile is deterministic and
// idempotent. When live data is loading or unavailable, Reconcile returns the
// static fallback dataset instead of failing.
//
//	models, err := client.GetModels(ctx)
//	rows := catalog.Reconcile(catalog.FromFetch(models, err))
//	rows = catalog.AdjustModels(rows, catalog.TimeRangeWeek)
//	rows = catalog.Top(catalog.FilterCategory(rows, catalog.CategoryCode), 20)
package catalog
