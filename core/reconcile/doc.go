// Package reconcile ingests order exports from heterogeneous upstream systems
// and reconciles them into one canonical, queryable snapshot.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Adapter: source-specific logic that parses one export format and normalizes
//    its records (field names, date encodings, status codes) into UnifiedOrder.
//    See feature/systema and feature/systemb.
//
// 2. Engine: reads every source through a source.Fetcher, concatenates the
//    normalized records in adapter order, sorts them stably by order date and
//    publishes the result as an immutable Snapshot.
//
// 3. Queries: GetAll, GetByID and SearchByStatus, served from the current
//    snapshot without locks or I/O.
//
// # Failure Model
//
// A missing export is not an error: the source contributes zero records and a
// warning is logged. A malformed export aborts Load with a *LoadError and no
// snapshot is published; the caller decides whether to halt startup. Unmappable
// status codes become StatusUnknown and unparseable dates are passed through raw.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(fetcher, logger, systema.NewAdapter(cfg.SystemAFile), systemb.NewAdapter(cfg.SystemBFile))
//	if _, err := engine.Load(ctx); err != nil {
//	    logger.Fatal("Failed to load orders", zap.Error(err))
//	}
//	order, ok := engine.GetByID("a1")
package reconcile
