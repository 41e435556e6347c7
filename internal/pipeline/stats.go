package pipeline

// Stats tracks aggregate counters across a batch run.
type Stats struct {
	Total     int // files discovered
	Processed int // watermarked and written
	Failed    int // skipped due to a per-file error
}
