// Package grab provides the orchestration around the imgur scraper.
//
// # Manager
//
// The Manager runs the two pipelines of the tool:
//
//  1. Fetch: validate an album link, download the page, extract the
//     direct image URLs and time the pass
//  2. Amend: append a suffix to every line of a link list file and write
//     the result to a new file
//
// # Basic Usage
//
//	manager := grab.NewManager(settings, func(event grab.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	album, err := manager.FetchAlbum(ctx, "https://imgur.com/a/Xk3fQ9z")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range album.Images {
//	    fmt.Println(u)
//	}
//	fmt.Println(album.Summary()) // "Found 12 images in 340 ms"
//
// # Concurrency
//
// A single album is fetched and parsed synchronously. FetchAll runs several
// albums side by side, limited by settings.MaxConcurrentAlbums (default 1).
//
// # Errors
//
// Nothing is retried. A transport or file failure ends the pipeline run
// that hit it and is returned to the caller, who decides whether to ask
// the user again.
package grab
