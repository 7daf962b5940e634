package domain

// Feature is a navigation entry of the product
type Feature string

const (
	FeatureDashboard       Feature = "dashboard"
	FeatureExplore         Feature = "explore"
	FeatureMyBookings      Feature = "my_bookings"
	FeatureProgress        Feature = "progress"
	FeatureNutrition       Feature = "nutrition"
	FeatureAICoach         Feature = "ai_coach"
	FeatureSchedule        Feature = "schedule"
	FeatureAvailability    Feature = "availability"
	FeatureServices        Feature = "services"
	FeatureClasses         Feature = "classes"
	FeatureClients         Feature = "clients"
	FeatureMembers         Feature = "members"
	FeatureWorkoutBuilder  Feature = "workout_builder"
	FeatureAnalytics       Feature = "analytics"
	FeatureMarketing       Feature = "marketing"
	FeatureContentStudio   Feature = "content_studio"
	FeatureStaffManagement Feature = "staff_management"
)

// Tier is the minimum entitlement level a feature requires
type Tier int

const (
	TierFree Tier = iota
	TierBasic
	TierPremium
)

func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierPremium:
		return "premium"
	default:
		return "free"
	}
}

// Visibility tells the UI whether to render a feature or its upsell placeholder
type Visibility string

const (
	VisibilityEnabled Visibility = "enabled"
	VisibilityLocked  Visibility = "locked"
)

// FeatureSpec is a catalogue entry: a feature and the tier it needs
type FeatureSpec struct {
	Feature Feature
	Tier    Tier
}

var featureCatalogue = map[AccountType][]FeatureSpec{
	AccountUser: {
		{FeatureDashboard, TierFree},
		{FeatureExplore, TierFree},
		{FeatureMyBookings, TierFree},
		{FeatureProgress, TierBasic},
		{FeatureNutrition, TierPremium},
		{FeatureAICoach, TierPremium},
	},
	AccountCoach: {
		{FeatureDashboard, TierFree},
		{FeatureSchedule, TierFree},
		{FeatureAvailability, TierFree},
		{FeatureServices, TierFree},
		{FeatureClients, TierBasic},
		{FeatureWorkoutBuilder, TierBasic},
		{FeatureAnalytics, TierPremium},
		{FeatureContentStudio, TierPremium},
	},
	AccountGym: {
		{FeatureDashboard, TierFree},
		{FeatureSchedule, TierFree},
		{FeatureClasses, TierFree},
		{FeatureMembers, TierBasic},
		{FeatureStaffManagement, TierBasic},
		{FeatureAnalytics, TierPremium},
		{FeatureMarketing, TierPremium},
	},
}

// CatalogueFor returns the ordered feature list of an account type, nil if unknown.
func CatalogueFor(accountType string) []FeatureSpec {
	t, ok := ParseAccountType(accountType)
	if !ok {
		return nil
	}
	specs := featureCatalogue[t]
	out := make([]FeatureSpec, len(specs))
	copy(out, specs)
	return out
}

// EntitlementTier derives the effective tier from plan and subscription status.
// A trial grants premium parity.
func EntitlementTier(plan, status string) Tier {
	p := ParsePlan(plan)
	isTrial := ParseSubscriptionStatus(status) == SubscriptionTrial

	switch {
	case p == PlanPremium || isTrial:
		return TierPremium
	case p == PlanBasic:
		return TierBasic
	default:
		return TierFree
	}
}

// ResolveVisibleFeatures maps an account's entitlement to the visibility of each
// feature of its account type. Locked features stay in the map so the navigation
// entry remains visible. Unknown account types yield an empty map.
func ResolveVisibleFeatures(accountType, plan, status string) map[Feature]Visibility {
	specs := CatalogueFor(accountType)
	tier := EntitlementTier(plan, status)

	result := make(map[Feature]Visibility, len(specs))
	for _, entry := range specs {
		if tier >= entry.Tier {
			result[entry.Feature] = VisibilityEnabled
		} else {
			result[entry.Feature] = VisibilityLocked
		}
	}
	return result
}
