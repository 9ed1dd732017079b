package flow

import (
	"context"
	"errors"
	"time"

	"github.com/diversion-social/diversion-go/domain"
)

// ErrNoSelection is returned by Submit when nothing has been selected.
var ErrNoSelection = errors.New("no sub-interests selected")

// BannerDuration is how long the destination screen shows the success
// banner carried by NavState before dismissing it.
const BannerDuration = 3 * time.Second

// Phase is the onboarding flow's current screen state.
type Phase string

const (
	// PhaseBrowsingCategories is the interest category list.
	PhaseBrowsingCategories Phase = "BrowsingCategories"

	// PhaseViewingSubInterests is the sub-interest list of one category.
	PhaseViewingSubInterests Phase = "ViewingSubInterests"

	// PhaseSubmitting is the in-flight batch add.
	PhaseSubmitting Phase = "Submitting"
)

// NavState is the transient state carried across the navigation back to
// the category screen after a successful batch add. It is consumed
// exactly once; a refresh or back-navigation does not see it again.
type NavState struct {
	ShowSuccessMessage bool
	AddedCount         int
}

// InterestCatalog is the slice of the API the onboarding flow reads the
// taxonomy through.
type InterestCatalog interface {
	List(ctx context.Context) ([]domain.Interest, error)
	Get(ctx context.Context, id int) (*domain.Interest, error)
}

// SelectionAccess is the slice of the API the onboarding flow manages the
// user's selections through.
type SelectionAccess interface {
	List(ctx context.Context) ([]domain.UserInterest, error)
	Add(ctx context.Context, subInterestID int) (*domain.UserInterest, error)
}

// Onboarding drives the interest-selection sequence: browse categories,
// open one, toggle sub-interests, submit the batch, and return to the
// category screen with a success banner. Not safe for concurrent use;
// drive it from a single UI goroutine.
type Onboarding struct {
	catalog    InterestCatalog
	selections SelectionAccess

	phase    Phase
	interest *domain.Interest
	selected []int

	nav *NavState

	// interestCount is the "my interests" annotation on the category
	// screen. Loaded independently of the categories; -1 means unknown.
	interestCount int
}

// NewOnboarding creates the flow in the category-browsing phase.
func NewOnboarding(catalog InterestCatalog, selections SelectionAccess) *Onboarding {
	return &Onboarding{
		catalog:       catalog,
		selections:    selections,
		phase:         PhaseBrowsingCategories,
		interestCount: -1,
	}
}

// Phase returns the flow's current phase.
func (o *Onboarding) Phase() Phase {
	return o.phase
}

// BrowseCategories loads the interest categories. The "my interests"
// count shown alongside is refreshed separately via RefreshInterestCount
// and its failure never fails the category list.
func (o *Onboarding) BrowseCategories(ctx context.Context) ([]domain.Interest, error) {
	interests, err := o.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	o.phase = PhaseBrowsingCategories
	o.interest = nil
	o.selected = nil
	return interests, nil
}

// RefreshInterestCount reloads the number of interests the user already
// has. Callers treat an error as "count unknown" and render the category
// list regardless.
func (o *Onboarding) RefreshInterestCount(ctx context.Context) (int, error) {
	mine, err := o.selections.List(ctx)
	if err != nil {
		o.interestCount = -1
		return 0, err
	}
	o.interestCount = len(mine)
	return o.interestCount, nil
}

// InterestCount returns the last loaded "my interests" count and whether
// one is known.
func (o *Onboarding) InterestCount() (int, bool) {
	return o.interestCount, o.interestCount >= 0
}

// OpenCategory navigates into one category's sub-interest list and
// clears any previous selection.
func (o *Onboarding) OpenCategory(ctx context.Context, interestID int) (*domain.Interest, error) {
	interest, err := o.catalog.Get(ctx, interestID)
	if err != nil {
		return nil, err
	}
	o.phase = PhaseViewingSubInterests
	o.interest = interest
	o.selected = nil
	return interest, nil
}

// Back returns from the sub-interest list to category browsing,
// discarding the local selection.
func (o *Onboarding) Back() {
	o.phase = PhaseBrowsingCategories
	o.interest = nil
	o.selected = nil
}

// Toggle adds the sub-interest to the local selection, or removes it if
// already selected. Selection order is preserved: submission applies
// items in the order they were picked.
func (o *Onboarding) Toggle(subInterestID int) {
	for i, id := range o.selected {
		if id == subInterestID {
			o.selected = append(o.selected[:i], o.selected[i+1:]...)
			return
		}
	}
	o.selected = append(o.selected, subInterestID)
}

// Selected returns a copy of the current selection in pick order.
func (o *Onboarding) Selected() []int {
	out := make([]int, len(o.selected))
	copy(out, o.selected)
	return out
}

// Submit applies the selection as one add call per sub-interest,
// sequentially. On success the flow navigates back to the category
// screen carrying a one-shot NavState with the added count.
//
// On failure the flow stays on the sub-interest screen and returns the
// per-item results together with the failing call's error: items added
// before the failure remain added, and later items are never attempted.
func (o *Onboarding) Submit(ctx context.Context) ([]BatchResult, error) {
	if len(o.selected) == 0 {
		return nil, ErrNoSelection
	}

	o.phase = PhaseSubmitting
	results, err := RunSequential(ctx, o.selected, func(ctx context.Context, subInterestID int) error {
		_, addErr := o.selections.Add(ctx, subInterestID)
		return addErr
	})
	if err != nil {
		o.phase = PhaseViewingSubInterests
		return results, err
	}

	added := Applied(results)
	o.nav = &NavState{ShowSuccessMessage: true, AddedCount: added}
	o.phase = PhaseBrowsingCategories
	o.interest = nil
	o.selected = nil
	return results, nil
}

// ConsumeNavState returns the pending transient navigation state and
// clears it, so only the first reader of the destination screen sees the
// banner.
func (o *Onboarding) ConsumeNavState() (NavState, bool) {
	if o.nav == nil {
		return NavState{}, false
	}
	nav := *o.nav
	o.nav = nil
	return nav, true
}
