// Package imgur extracts direct image URLs from imgur album pages.
//
// imgur does not list every album image as an <img> tag. The page instead
// embeds the album as a run of JSON-like objects, one per image, each
// starting with its hash:
//
//	"count":3,"images":[{"hash":"abC123","title":"..."},{"hash":"xyZ789",...
//
// The hash of each object appended to the imgur prefix is the image's direct
// URL. The page renders this block twice; only the first copy is read.
//
// # Pipeline
//
//  1. ExtractImageBlock isolates the text after the first marker
//  2. SplitRecords cuts that text into one record per image
//  3. ExtractHash pulls the hash out of each record
//  4. Builder.BuildURLs prefixes each hash, validates and deduplicates
//
// Scraper runs all four steps:
//
//	scraper := imgur.NewScraper(imgur.DefaultScraperConfig())
//	urls := scraper.Scrape(pageHTML)
//	for _, u := range urls {
//	    fmt.Println(u) // e.g. "https://imgur.com/abC123"
//	}
//
// # Fragility
//
// None of this is a general HTML or JSON parser. It depends on an
// undocumented page layout and will return no URLs if imgur changes it.
package imgur
