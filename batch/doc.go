// Package batch infers the outline of every PDF in a directory and writes
// the results to an output directory.
//
// Files are processed concurrently, up to a worker limit. A file that fails
// is logged and recorded, and never stops the rest of the batch:
//
//	p := batch.New("pdfs", "output",
//	    batch.WithWorkers(4),
//	    batch.WithFormats(render.FormatJSON, render.FormatMarkdown),
//	)
//	summary, err := p.Run(ctx)
//	if errors.Is(err, batch.ErrSourceCreated) {
//	    fmt.Println("place your PDF files in pdfs/ and run again")
//	}
//
// Each input <name>.pdf produces <name>.json, plus <name>.md and
// <name>.html when those formats are requested. Outcomes can be persisted
// by a [Recorder], such as the run ledger in the store package.
package batch
