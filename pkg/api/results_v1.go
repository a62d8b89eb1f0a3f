// pkg/api/results_v1.go
package api

// ModelV1 is the stable JSON schema for persisted classifier models. The
// key layout matches existing ebony_model.json artifacts; keep fields,
// names, and types stable and add new fields only with ",omitempty".
type ModelV1 struct {
	Length    int      `json:"length"`
	Positions []SiteV1 `json:"positions"`
}

// SiteV1 is one informative position in a persisted model.
type SiteV1 struct {
	Pos         int    `json:"pos"`
	DarkAllele  string `json:"dark_allele"`
	LightAllele string `json:"light_allele"`
}

// ScoreV1 is the stable JSON schema for reported score results.
// DarknessScore is rounded to 3 decimals at conversion time; both match
// counts equal to zero flags a low-confidence neutral score.
type ScoreV1 struct {
	SequenceID      string  `json:"sequence_id"`
	SitesConsidered int     `json:"sites_considered"`
	MatchesDark     int     `json:"matches_dark"`
	MatchesLight    int     `json:"matches_light"`
	DarknessScore   float64 `json:"darkness_score"`
}
