package engine

// CatalogVersion is bumped whenever catalog entries or template policies
// change in a way downstream consumers can observe.
const CatalogVersion = "assistance-v1"

const (
	CategoryPush      = "push"
	CategoryPull      = "pull"
	CategorySingleLeg = "single_leg"
	CategoryPosterior = "posterior"
	CategoryCore      = "core"
)

// CatalogEntry is static, read-only reference data. Reps is a string to
// support "low-high" ranges and "AMRAP".
type CatalogEntry struct {
	ID       string
	Name     string
	Category string
	Sets     int
	Reps     string
	LoadHint string
	Tags     []string
}

// assistanceCatalog is ordered within each category: selection always takes
// the first match, so ordering is part of the contract.
var assistanceCatalog = []CatalogEntry{
	// Push.
	{ID: "dips", Name: "Dips", Category: CategoryPush, Sets: 5, Reps: "10-15", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "pushups", Name: "Push-Ups", Category: CategoryPush, Sets: 5, Reps: "15-20", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "db_bench", Name: "DB Bench Press", Category: CategoryPush, Sets: 5, Reps: "10-15", LoadHint: "moderate", Tags: []string{"dumbbell"}},
	{ID: "cg_bench", Name: "Close-Grip Bench", Category: CategoryPush, Sets: 3, Reps: "8-12", LoadHint: "60% bench TM", Tags: []string{"barbell"}},
	{ID: "ohp_db", Name: "DB Shoulder Press", Category: CategoryPush, Sets: 3, Reps: "10-12", LoadHint: "moderate", Tags: []string{"dumbbell"}},
	{ID: "triceps_pd", Name: "Triceps Pushdown", Category: CategoryPush, Sets: 3, Reps: "12-20", LoadHint: "light", Tags: []string{"cable"}},

	// Pull.
	{ID: "chinups", Name: "Chin-Ups", Category: CategoryPull, Sets: 5, Reps: "10", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "pullups", Name: "Pull-Ups", Category: CategoryPull, Sets: 5, Reps: "AMRAP", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "db_row", Name: "DB Row", Category: CategoryPull, Sets: 5, Reps: "10-12", LoadHint: "heavy", Tags: []string{"dumbbell"}},
	{ID: "bb_row", Name: "Barbell Row", Category: CategoryPull, Sets: 4, Reps: "8-10", LoadHint: "moderate", Tags: []string{"barbell"}},
	{ID: "face_pull", Name: "Face Pull", Category: CategoryPull, Sets: 3, Reps: "15-20", LoadHint: "light", Tags: []string{"cable"}},
	{ID: "lat_pulldown", Name: "Lat Pulldown", Category: CategoryPull, Sets: 3, Reps: "10-15", LoadHint: "moderate", Tags: []string{"machine"}},

	// Single leg / quad.
	{ID: "leg_press", Name: "Leg Press", Category: CategorySingleLeg, Sets: 5, Reps: "12-15", LoadHint: "machine", Tags: []string{"machine"}},
	{ID: "db_split_squat", Name: "DB Split Squat", Category: CategorySingleLeg, Sets: 3, Reps: "10-12", LoadHint: "moderate", Tags: []string{"dumbbell"}},
	{ID: "walking_lunge", Name: "Walking Lunge", Category: CategorySingleLeg, Sets: 3, Reps: "12-20", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "stepup", Name: "Step-Up", Category: CategorySingleLeg, Sets: 3, Reps: "10-12", LoadHint: "moderate", Tags: []string{"dumbbell"}},

	// Posterior chain.
	{ID: "leg_curl", Name: "Leg Curl", Category: CategoryPosterior, Sets: 5, Reps: "10-12", LoadHint: "machine", Tags: []string{"machine"}},
	{ID: "good_morning", Name: "Good Morning", Category: CategoryPosterior, Sets: 5, Reps: "10-12", LoadHint: "35% squat TM", Tags: []string{"barbell"}},
	{ID: "rdl", Name: "Romanian Deadlift", Category: CategoryPosterior, Sets: 3, Reps: "8-12", LoadHint: "45% deadlift TM", Tags: []string{"barbell"}},
	{ID: "back_ext", Name: "Back Extension", Category: CategoryPosterior, Sets: 3, Reps: "10-15", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "ghr", Name: "Glute-Ham Raise", Category: CategoryPosterior, Sets: 3, Reps: "8-12", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "kb_swing", Name: "KB Swing", Category: CategoryPosterior, Sets: 3, Reps: "15-20", LoadHint: "moderate", Tags: []string{"kettlebell"}},

	// Core.
	{ID: "hlr", Name: "Hanging Leg Raise", Category: CategoryCore, Sets: 5, Reps: "12-15", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "ab_wheel", Name: "Ab Wheel", Category: CategoryCore, Sets: 3, Reps: "10-15", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "plank", Name: "Weighted Plank", Category: CategoryCore, Sets: 3, Reps: "30-60", LoadHint: "bodyweight", Tags: []string{"bodyweight"}},
	{ID: "cable_crunch", Name: "Cable Crunch", Category: CategoryCore, Sets: 3, Reps: "12-20", LoadHint: "light", Tags: []string{"cable"}},
	{ID: "pallof", Name: "Pallof Press", Category: CategoryCore, Sets: 3, Reps: "10-12", LoadHint: "light", Tags: []string{"cable"}},
}

// CatalogByCategory returns the ordered entries for one category.
func CatalogByCategory(category string) []CatalogEntry {
	var out []CatalogEntry
	for _, e := range assistanceCatalog {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// CatalogEntryByID looks up a single entry; ok is false for unknown ids.
func CatalogEntryByID(id string) (CatalogEntry, bool) {
	for _, e := range assistanceCatalog {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}
