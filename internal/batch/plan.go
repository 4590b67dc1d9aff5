package batch

// PlannedJob is a source-to-destination mapping computed without touching the
// filesystem.
type PlannedJob struct {
	Source string
	Output string
}

// PreviewLimit caps how many planned mappings a dry run prints.
const PreviewLimit = 5

// Preview returns up to limit planned mappings plus the count of jobs beyond
// the preview. It performs no writes.
func Preview(jobs []Job, limit int) ([]PlannedJob, int, error) {
	if limit <= 0 || limit > len(jobs) {
		limit = len(jobs)
	}
	planned := make([]PlannedJob, 0, limit)
	for _, job := range jobs[:limit] {
		output, err := job.OutputPath()
		if err != nil {
			return nil, 0, err
		}
		planned = append(planned, PlannedJob{Source: job.Source, Output: output})
	}
	return planned, len(jobs) - limit, nil
}
