package output

// ScoreTSVHeader is the canonical header row for text/TSV score output.
// Keep this as the single source of truth; all writers should use it.
const ScoreTSVHeader = "sequence_id\tsites_considered\tmatches_dark\tmatches_light\tdarkness_score"
