// Package store keeps a SQLite ledger of batch runs and the outcome of every
// processed document.
//
// A [Ledger] implements batch.Recorder:
//
//	ledger, err := store.Open("runs.db")
//	if err != nil {
//	    return err
//	}
//	defer ledger.Close()
//
//	summary, err := batch.New("pdfs", "output", batch.WithRecorder(ledger)).Run(ctx)
//
//	docs, err := ledger.Documents(ctx, summary.RunID)
//
// Runs are identified by random UUIDs. The database uses WAL journaling and
// a single connection, so concurrent workers are serialized.
package store
