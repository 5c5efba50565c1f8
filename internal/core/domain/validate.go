package domain

import "fmt"

// ValidationError reports a structurally invalid campaign spec. It is
// raised before any remote call is made, so a failed validation has no
// side effects.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid campaign spec: %s: %s", e.Field, e.Reason)
}

// Objectives and call-to-action types accepted by the Marketing API.
var (
	ValidObjectives = []string{
		"OUTCOME_TRAFFIC", "OUTCOME_AWARENESS", "OUTCOME_ENGAGEMENT",
		"OUTCOME_LEADS", "OUTCOME_SALES", "OUTCOME_APP_PROMOTION",
	}
	ValidCallToActions = []string{
		"LEARN_MORE", "SIGN_UP", "DOWNLOAD", "SHOP_NOW", "BOOK_NOW",
		"GET_OFFER", "SUBSCRIBE", "CONTACT_US", "APPLY_NOW",
		"WATCH_MORE", "INSTALL_MOBILE_APP",
	}
)

// Normalize fills unset fields with the Marketing API defaults used by
// the ad set and creative payloads. It returns a copy; the caller's
// spec is not mutated.
func (s CampaignSpec) Normalize() CampaignSpec {
	if s.Objective == "" {
		s.Objective = "OUTCOME_TRAFFIC"
	}
	if s.OptimizationGoal == "" {
		s.OptimizationGoal = "LINK_CLICKS"
	}
	if s.BillingEvent == "" {
		s.BillingEvent = "IMPRESSIONS"
	}
	if s.BidStrategy == "" {
		s.BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	}
	if s.Creative.CallToAction == "" {
		s.Creative.CallToAction = "LEARN_MORE"
	}
	if s.Creative.Name == "" && s.Name != "" {
		s.Creative.Name = s.Name + " - Creative"
	}
	if s.Targeting.AgeMin == 0 {
		s.Targeting.AgeMin = 18
	}
	if s.Targeting.AgeMax == 0 {
		s.Targeting.AgeMax = 65
	}
	if len(s.Targeting.Countries) == 0 {
		s.Targeting.Countries = []string{"US"}
	}
	if len(s.Targeting.Platforms) == 0 {
		s.Targeting.Platforms = []string{"facebook", "instagram"}
	}
	return s
}

// Validate checks the spec for structural problems that would be
// rejected by any client, live or simulated. Remote-availability
// concerns such as an unreachable image file are deliberately out of
// scope here so dry runs accept them.
func (s CampaignSpec) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if s.AdSetName == "" {
		return &ValidationError{Field: "ad_set_name", Reason: "required"}
	}
	if s.DailyBudgetCents <= 0 {
		return &ValidationError{Field: "daily_budget_cents", Reason: "must be positive"}
	}
	if s.Objective != "" && !contains(ValidObjectives, s.Objective) {
		return &ValidationError{Field: "objective", Reason: fmt.Sprintf("unknown objective %q", s.Objective)}
	}
	if t := s.Targeting; t.AgeMin != 0 && t.AgeMax != 0 && t.AgeMin > t.AgeMax {
		return &ValidationError{Field: "targeting", Reason: "age_min exceeds age_max"}
	}
	return s.Creative.Validate()
}

// Validate checks the creative copy and asset references. The image
// path only has to be present; whether it is readable is a live-client
// concern.
func (c CreativeSpec) Validate() error {
	if c.ImagePath == "" {
		return &ValidationError{Field: "creative.image_path", Reason: "required"}
	}
	if c.PrimaryText == "" {
		return &ValidationError{Field: "creative.primary_text", Reason: "required"}
	}
	if c.Headline == "" {
		return &ValidationError{Field: "creative.headline", Reason: "required"}
	}
	if c.Link == "" {
		return &ValidationError{Field: "creative.link", Reason: "required"}
	}
	if c.CallToAction != "" && !contains(ValidCallToActions, c.CallToAction) {
		return &ValidationError{Field: "creative.call_to_action", Reason: fmt.Sprintf("unknown call to action %q", c.CallToAction)}
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
