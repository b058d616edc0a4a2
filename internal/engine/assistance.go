package engine

import (
	"sync"

	"github.com/misterclayt0n/forja/internal/models"
)

const (
	TemplateBBB                = "bbb"
	TemplateTriumvirate        = "triumvirate"
	TemplatePeriodizationBible = "periodization_bible"
	TemplateBodyweight         = "bodyweight"
	TemplateJackShit           = "jack_shit"
)

// TemplateIDs lists the known templates in display order.
var TemplateIDs = []string{
	TemplateBBB,
	TemplateTriumvirate,
	TemplatePeriodizationBible,
	TemplateBodyweight,
	TemplateJackShit,
}

// assistancePolicy is a declarative selection rule: ordered categories per
// main lift, an optional pick cap, an optional tag filter, or nothing at all.
// Keeping this a table (instead of branching per template at call sites)
// means a new template is one entry, not five scattered conditionals.
type assistancePolicy struct {
	categories map[string][]string
	pickCount  int // 0 means one pick per listed category
	tagFilter  string
	empty      bool
}

var templatePolicies = map[string]assistancePolicy{
	TemplateBBB: {
		// Supplemental volume carries the day; assistance stays minimal.
		categories: map[string][]string{
			models.LiftPress:    {CategoryPull, CategoryCore},
			models.LiftBench:    {CategoryPull, CategoryCore},
			models.LiftDeadlift: {CategoryCore},
			models.LiftSquat:    {CategoryPosterior},
		},
	},
	TemplateTriumvirate: {
		// Exactly two picks: the main lift is the third movement.
		categories: map[string][]string{
			models.LiftPress:    {CategoryPush, CategoryPull},
			models.LiftBench:    {CategoryPush, CategoryPull},
			models.LiftDeadlift: {CategoryPosterior, CategoryCore},
			models.LiftSquat:    {CategorySingleLeg, CategoryPosterior},
		},
		pickCount: 2,
	},
	TemplatePeriodizationBible: {
		categories: map[string][]string{
			models.LiftPress:    {CategoryPush, CategoryPull, CategoryCore},
			models.LiftBench:    {CategoryPush, CategoryPull, CategoryCore},
			models.LiftDeadlift: {CategoryPosterior, CategorySingleLeg, CategoryCore},
			models.LiftSquat:    {CategorySingleLeg, CategoryCore, CategoryPosterior},
		},
	},
	TemplateBodyweight: {
		categories: map[string][]string{
			models.LiftPress:    {CategoryPull, CategoryPush, CategoryCore},
			models.LiftBench:    {CategoryPull, CategoryPush, CategoryCore},
			models.LiftDeadlift: {CategoryPosterior, CategoryCore},
			models.LiftSquat:    {CategoryPosterior, CategoryCore},
		},
		tagFilter: "bodyweight",
	},
	TemplateJackShit: {empty: true},
}

// defaultCategories is the fallback for templates with no policy entry:
// a two-category pick split by upper/lower day.
var defaultCategories = map[string][]string{
	models.LiftPress:    {CategoryPush, CategoryPull},
	models.LiftBench:    {CategoryPush, CategoryPull},
	models.LiftDeadlift: {CategorySingleLeg, CategoryCore},
	models.LiftSquat:    {CategorySingleLeg, CategoryCore},
}

// IsKnownTemplate reports whether id has an explicit policy.
func IsKnownTemplate(id string) bool {
	_, ok := templatePolicies[id]
	return ok
}

func firstMatching(category, tagFilter string) (CatalogEntry, bool) {
	for _, e := range CatalogByCategory(category) {
		if tagFilter == "" || hasTag(e, tagFilter) {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

func hasTag(e CatalogEntry, tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func toItem(e CatalogEntry) models.AssistanceItem {
	return models.AssistanceItem{
		ID:       e.ID,
		Name:     e.Name,
		Category: e.Category,
		Sets:     e.Sets,
		Reps:     e.Reps,
		LoadHint: e.LoadHint,
	}
}

// assistCache memoizes per (templateID, lift) resolution. It is explicit and
// test-visible rather than hidden in call-site state.
var assistCache = struct {
	mu sync.Mutex
	m  map[string][]models.AssistanceItem
}{m: make(map[string][]models.AssistanceItem)}

// AssistanceCacheSize returns the number of memoized selections.
func AssistanceCacheSize() int {
	assistCache.mu.Lock()
	defer assistCache.mu.Unlock()
	return len(assistCache.m)
}

// ResetAssistanceCache clears the memo, mainly for tests.
func ResetAssistanceCache() {
	assistCache.mu.Lock()
	defer assistCache.mu.Unlock()
	assistCache.m = make(map[string][]models.AssistanceItem)
}

// SelectAssistance resolves the ordered assistance picks for a template and
// main lift. Selection is deterministic: the first catalog entry of each
// category in the policy's order. A category with no matching entry is
// omitted; an intentionally empty policy yields an empty list, which is a
// valid terminal state.
func SelectAssistance(templateID, mainLift string) []models.AssistanceItem {
	key := templateID + "/" + mainLift

	assistCache.mu.Lock()
	if cached, ok := assistCache.m[key]; ok {
		assistCache.mu.Unlock()
		out := make([]models.AssistanceItem, len(cached))
		copy(out, cached)
		return out
	}
	assistCache.mu.Unlock()

	items := resolveAssistance(templateID, mainLift)

	assistCache.mu.Lock()
	assistCache.m[key] = items
	assistCache.mu.Unlock()

	out := make([]models.AssistanceItem, len(items))
	copy(out, items)
	return out
}

func resolveAssistance(templateID, mainLift string) []models.AssistanceItem {
	policy, ok := templatePolicies[templateID]
	if !ok {
		policy = assistancePolicy{categories: defaultCategories}
	}
	if policy.empty {
		return []models.AssistanceItem{}
	}

	categories := policy.categories[mainLift]
	items := make([]models.AssistanceItem, 0, len(categories))
	for _, cat := range categories {
		entry, found := firstMatching(cat, policy.tagFilter)
		if !found {
			continue
		}
		items = append(items, toItem(entry))
		if policy.pickCount > 0 && len(items) == policy.pickCount {
			break
		}
	}
	return items
}
