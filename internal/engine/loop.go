package engine

import (
	"context"

	"github.com/dmitrymomot/saaskit/pkg/statemachine"

	"github.com/rcliao/uaforge/internal/corpus"
	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/score"
)

// State is a state of the acceptance loop.
type State = statemachine.StringState

const (
	Drafting  State = "drafting"
	Scoring   State = "scoring"
	Accepted  State = "accepted"
	Exhausted State = "exhausted"
)

var (
	eventDraft    = statemachine.StringEvent("draft")
	eventEvaluate = statemachine.StringEvent("evaluate")
)

type outcome struct {
	state      State
	text       string
	deviceType model.DeviceType
	score      float64
	attempts   int
}

// loopRun is the data threaded through one machine's guards and actions.
type loopRun struct {
	corpus *corpus.Corpus
	pref   model.Preference
	scorer *score.Scorer
	out    outcome
}

// newMachine builds a fresh Drafting -> Scoring -> Accepted | Exhausted
// machine. Evaluate transitions are tried in order: accept, redraft, give up.
func (e *Engine) newMachine() statemachine.StateMachine {
	return statemachine.MustNew(Drafting,
		statemachine.WithTransition(Drafting, Scoring, eventDraft,
			statemachine.WithActions(e.draft, e.scoreDraft, e.notify)),
		statemachine.WithTransition(Scoring, Accepted, eventEvaluate,
			statemachine.WithGuard(e.passes),
			statemachine.WithAction(e.notify)),
		statemachine.WithTransition(Scoring, Drafting, eventEvaluate,
			statemachine.WithGuard(e.canRetry),
			statemachine.WithActions(e.logRejected, e.notify)),
		statemachine.WithTransition(Scoring, Exhausted, eventEvaluate,
			statemachine.WithAction(e.notify)),
	)
}

// run drives one machine to a terminal state. Every draft is a fresh draw;
// the last draft is kept when the budget runs out.
func (e *Engine) run(ctx context.Context, c *corpus.Corpus, pref model.Preference, scorer *score.Scorer) (outcome, error) {
	r := &loopRun{corpus: c, pref: pref, scorer: scorer}
	sm := e.newMachine()

	for {
		var ev statemachine.Event
		switch sm.Current() {
		case Drafting:
			ev = eventDraft
		case Scoring:
			ev = eventEvaluate
		default:
			r.out.state = sm.Current().(State)
			return r.out, nil
		}
		if err := sm.Fire(ctx, ev, r); err != nil {
			return outcome{}, err
		}
	}
}

func (e *Engine) draft(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	r := data.(*loopRun)
	dt := e.platform(r.pref)
	text, err := e.asm.Draft(r.corpus, dt)
	if err != nil {
		return err
	}
	r.out.attempts++
	r.out.text, r.out.deviceType = text, dt
	return nil
}

func (e *Engine) scoreDraft(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	r := data.(*loopRun)
	r.out.score = r.scorer.Score(r.out.text)
	return nil
}

func (e *Engine) passes(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	return data.(*loopRun).out.score >= e.threshold
}

func (e *Engine) canRetry(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	return data.(*loopRun).out.attempts < e.maxTries
}

func (e *Engine) logRejected(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	out := data.(*loopRun).out
	e.log.Debug("draft rejected",
		"device_type", out.deviceType, "attempt", out.attempts, "score", out.score)
	return nil
}

func (e *Engine) notify(_ context.Context, from, to statemachine.State, _ statemachine.Event, data any) error {
	if e.observe != nil {
		e.observe(from.(State), to.(State), data.(*loopRun).out.attempts)
	}
	return nil
}

// platform resolves a preference for one attempt. Both flips a fair coin
// each time.
func (e *Engine) platform(pref model.Preference) model.DeviceType {
	switch pref {
	case model.PreferAndroid:
		return model.Android
	case model.PreferIOS:
		return model.IOS
	}
	if e.rng.Intn(2) == 0 {
		return model.Android
	}
	return model.IOS
}
