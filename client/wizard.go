package client

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Step is a review wizard state.
type Step int

const (
	StepSelectContext Step = 1 // pick hall, date, meal period
	StepSelectDishes  Step = 2 // pick dishes off the loaded menu
	StepWriteReviews  Step = 3 // rate each selected dish
)

var (
	ErrNoPeriodSelected = errors.New("select a meal period first")
	ErrNoDishesSelected = errors.New("select at least one dish")
)

// SubmissionError reports which dish's POST failed mid-batch. Earlier
// tuples in the batch have already been recorded and are not rolled
// back; later tuples were never sent.
type SubmissionError struct {
	DishID uint
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submitting rating for dish %d: %v", e.DishID, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Wizard drives the three-step review flow: context, dishes, reviews.
// Transitions are linear with back-steps; each forward transition is
// guarded, and network stages strictly serialize (periods resolved
// before the menu loads, menu loaded before anything submits).
type Wizard struct {
	api *Client

	step    Step
	hall    string
	date    Date
	periods []string
	period  string
	menu    *Menu
	draft   *ReviewDraft
}

func NewWizard(api *Client) *Wizard {
	return &Wizard{
		api:     api,
		step:    StepSelectContext,
		periods: []string{},
		draft:   NewReviewDraft(),
	}
}

// StartAtDish opens the wizard directly on the review step with one dish
// pre-selected, for deep links carrying a dish id. The menu is still
// fetched so the dish's display metadata is available; a fetch failure
// leaves the selection intact.
func StartAtDish(ctx context.Context, api *Client, hall string, date Date, period string, dishID uint) (*Wizard, error) {
	w := NewWizard(api)
	w.hall = hall
	w.date = date
	w.period = period
	w.draft.Select(dishID)
	w.step = StepWriteReviews

	menu, err := api.LoadMenu(ctx, hall, date, period)
	if err != nil {
		log.Printf("deep link menu fetch failed: %v", err)
		return w, nil
	}
	w.menu = menu
	return w, nil
}

func (w *Wizard) Step() Step          { return w.step }
func (w *Wizard) Hall() string        { return w.hall }
func (w *Wizard) Date() Date          { return w.date }
func (w *Wizard) Periods() []string   { return w.periods }
func (w *Wizard) Period() string      { return w.period }
func (w *Wizard) Menu() *Menu         { return w.menu }
func (w *Wizard) Draft() *ReviewDraft { return w.draft }

// SetContext changes the hall/date pair and re-resolves the valid meal
// periods. The previous selection survives only if the new period set
// still contains it; otherwise the first available period (or nothing)
// is selected. Resolution failure fails open to "no periods available".
func (w *Wizard) SetContext(ctx context.Context, hall string, date Date) {
	w.hall = hall
	w.date = date

	periods, err := w.api.HallMealPeriods(ctx, hall, date)
	if err != nil {
		log.Printf("resolving meal periods for %s: %v", hall, err)
		periods = []string{}
	}
	w.periods = periods
	w.period = ReconcilePeriod(w.period, periods)
}

// SelectPeriod picks one of the resolved periods.
func (w *Wizard) SelectPeriod(period string) error {
	for _, p := range w.periods {
		if p == period {
			w.period = period
			return nil
		}
	}
	return fmt.Errorf("meal period %q is not served then", period)
}

// Next advances one step if the current step's guard passes. Guard
// failures (and menu fetch failures) keep the wizard where it is.
func (w *Wizard) Next(ctx context.Context) error {
	switch w.step {
	case StepSelectContext:
		if len(w.periods) == 0 || w.period == "" {
			return ErrNoPeriodSelected
		}
		menu, err := w.api.LoadMenu(ctx, w.hall, w.date, w.period)
		if err != nil {
			return err
		}
		w.menu = menu
		w.step = StepSelectDishes
		return nil

	case StepSelectDishes:
		if w.draft.Len() == 0 {
			return ErrNoDishesSelected
		}
		w.step = StepWriteReviews
		return nil

	default:
		return nil
	}
}

// Back returns to the immediately preceding step.
func (w *Wizard) Back() {
	if w.step > StepSelectContext {
		w.step--
	}
}

// Submit validates every draft entry up front and then posts the
// ratings one by one, in selection order. Validation failure means zero
// network calls. A failing POST aborts the rest of the batch; ratings
// already accepted stay recorded. On full success the draft is
// discarded.
func (w *Wizard) Submit(ctx context.Context) error {
	submissions, err := w.draft.Submissions()
	if err != nil {
		return err
	}

	for _, submission := range submissions {
		if err := w.api.SubmitRating(ctx, submission); err != nil {
			return &SubmissionError{DishID: submission.DishID, Err: err}
		}
	}

	w.draft = NewReviewDraft()
	return nil
}
