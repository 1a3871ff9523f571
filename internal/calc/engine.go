package calc

import (
	"fmt"
	"sort"
)

// Engine dispatches actions to their registered calculations. It is
// stateless between calls; construct once and share freely.
type Engine struct {
	calcs map[WindowAction]Calculation
}

// NewEngine builds an engine with the full action catalog registered.
func NewEngine() *Engine {
	e := &Engine{calcs: make(map[WindowAction]Calculation)}

	e.Register(ActionMaximize, maximizeCalculation{})

	// Halves cycle through the configured sizes on repeat.
	e.Register(ActionLeftHalf, CycleInThirds{Base: halfCalculation{edge: EdgeLeft}})
	e.Register(ActionRightHalf, CycleInThirds{Base: halfCalculation{edge: EdgeRight}})
	e.Register(ActionTopHalf, CycleInThirds{Base: halfCalculation{edge: EdgeTop}})
	e.Register(ActionBottomHalf, CycleInThirds{Base: halfCalculation{edge: EdgeBottom}})

	e.Register(ActionTopLeftQuarter, quarterCalculation{})
	e.Register(ActionTopRightQuarter, quarterCalculation{right: true})
	e.Register(ActionBottomLeftQuarter, quarterCalculation{bottom: true})
	e.Register(ActionBottomRightQuarter, quarterCalculation{right: true, bottom: true})

	e.Register(ActionFirstThird, OrientationSplit{Base: thirdCalculation{pos: thirdFirst, num: 1, den: 3}})
	e.Register(ActionCenterThird, OrientationSplit{Base: thirdCalculation{pos: thirdCenter, num: 1, den: 3}})
	e.Register(ActionLastThird, OrientationSplit{Base: thirdCalculation{pos: thirdLast, num: 1, den: 3}})
	e.Register(ActionFirstTwoThirds, OrientationSplit{Base: thirdCalculation{pos: thirdFirst, num: 2, den: 3}})
	e.Register(ActionLastTwoThirds, OrientationSplit{Base: thirdCalculation{pos: thirdLast, num: 2, den: 3}})

	for action, grid := range gridInstances {
		e.Register(action, OrientationSplit{Base: grid})
	}

	return e
}

// Register installs a calculation for an action, replacing any previous
// registration.
func (e *Engine) Register(action WindowAction, c Calculation) {
	e.calcs[action] = c
}

// Actions returns the registered action names, sorted.
func (e *Engine) Actions() []WindowAction {
	actions := make([]WindowAction, 0, len(e.calcs))
	for a := range e.calcs {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// Calculate resolves the action's calculation, applies edge gaps to the
// frame, runs the calculation, and insets interior edges by the window
// gap. An unregistered action is a caller error.
func (e *Engine) Calculate(p CalculationParams) (RectResult, error) {
	c, ok := e.calcs[p.Action]
	if !ok {
		return RectResult{}, fmt.Errorf("no calculation registered for action %q", p.Action)
	}

	p.VisibleFrame = p.Settings.EdgeGaps.Apply(p.VisibleFrame)
	res := c.CalculateRect(p)
	if p.Action != ActionMaximize {
		res.Rect = applyGap(res.Rect, p.VisibleFrame, p.Settings.GapSize)
	}
	if res.ResultingAction == "" {
		res.ResultingAction = p.Action
	}
	return res, nil
}
