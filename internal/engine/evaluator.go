package engine

import (
	"fmt"
	"time"

	"booking-admission/internal/domain/interval"
	"booking-admission/internal/domain/rule"
)

// Violation names the rule that denied a candidate interval and why.
type Violation struct {
	Rule   *rule.Rule
	Reason string
}

// evaluate runs every rule type in the fixed order days_of_week →
// operating_hours → min_duration → max_duration → blackout_dates,
// short-circuiting on the first deny. The returned error means a payload
// variant did not match its declared type, which is a configuration fault,
// not a rule outcome.
func evaluate(iv interval.Interval, chain Chain, rules *RuleSet, loc *time.Location) (*Violation, error) {
	date := iv.Start().In(loc)

	for _, t := range rule.EvaluationOrder() {
		applicable := rules.For(chain, t, date)
		if len(applicable) == 0 {
			continue
		}

		var (
			v   *Violation
			err error
		)
		switch t {
		case rule.TypeDaysOfWeek:
			v, err = evaluateDaysOfWeek(iv, applicable, loc)
		case rule.TypeOperatingHours:
			v, err = evaluateOperatingHours(iv, applicable, loc)
		case rule.TypeMinDuration:
			v, err = evaluateMinDuration(iv, applicable)
		case rule.TypeMaxDuration:
			v, err = evaluateMaxDuration(iv, applicable)
		case rule.TypeBlackoutDates:
			v, err = evaluateBlackoutDates(iv, applicable, loc)
		}
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}

// evaluateDaysOfWeek lets the nearest level that declares a restriction
// govern; broader levels are ignored once a closer one exists. Every weekday
// the interval spans must be inside the governing allowed set.
func evaluateDaysOfWeek(iv interval.Interval, rules []*rule.Rule, loc *time.Location) (*Violation, error) {
	governing := rules[0]
	payload, ok := governing.Payload().(rule.DaysOfWeek)
	if !ok {
		return nil, payloadMismatch(governing)
	}

	// Same-level rules compose by union of their allowed sets.
	allowed := payload.Days
	for _, r := range rules[1:] {
		if r.Level() != governing.Level() {
			break
		}
		p, ok := r.Payload().(rule.DaysOfWeek)
		if !ok {
			return nil, payloadMismatch(r)
		}
		allowed |= p.Days
	}

	for _, date := range iv.DatesIn(loc) {
		if !allowed.Has(date.Weekday()) {
			return &Violation{
				Rule: governing,
				Reason: fmt.Sprintf("%s falls on %s, outside the bookable days %s",
					date.Format("2006-01-02"), date.Weekday(), allowed),
			}, nil
		}
	}
	return nil, nil
}

// evaluateOperatingHours checks, per spanned civil date, that the interval's
// clock span fits a window of the nearest level with a rule covering that
// weekday. Same-level windows compose by union: fitting any one of them is
// enough. A date no rule covers carries no constraint.
func evaluateOperatingHours(iv interval.Interval, rules []*rule.Rule, loc *time.Location) (*Violation, error) {
	for _, date := range iv.DatesIn(loc) {
		weekday := date.Weekday()

		var covering []*rule.Rule
		for _, r := range rules {
			p, ok := r.Payload().(rule.OperatingHours)
			if !ok {
				return nil, payloadMismatch(r)
			}
			if !p.Days.Has(weekday) {
				continue
			}
			if len(covering) > 0 && r.Level() != covering[0].Level() {
				break
			}
			covering = append(covering, r)
		}
		if len(covering) == 0 {
			continue
		}

		startMin, endMin, ok := iv.ClockSpanOn(date, loc)
		if !ok {
			continue
		}

		fits := false
		for _, r := range covering {
			window := r.Payload().(rule.OperatingHours)
			if startMin >= window.Start.Minutes() && endMin <= window.End.Minutes() {
				fits = true
				break
			}
		}
		if !fits {
			governing := covering[0]
			window := governing.Payload().(rule.OperatingHours)
			return &Violation{
				Rule: governing,
				Reason: fmt.Sprintf("requested hours on %s fall outside the operating window %s-%s",
					date.Format("2006-01-02"), window.Start, window.End),
			}, nil
		}
	}
	return nil, nil
}

// evaluateMinDuration composes bounds across levels by taking the tightest:
// the largest minimum wins.
func evaluateMinDuration(iv interval.Interval, rules []*rule.Rule) (*Violation, error) {
	var (
		tightest *rule.Rule
		floor    float64
	)
	for _, r := range rules {
		p, ok := r.Payload().(rule.MinDuration)
		if !ok {
			return nil, payloadMismatch(r)
		}
		if tightest == nil || p.Hours() > floor {
			tightest = r
			floor = p.Hours()
		}
	}

	if tightest != nil && iv.Hours() < floor {
		bound := tightest.Payload().(rule.MinDuration)
		return &Violation{
			Rule:   tightest,
			Reason: fmt.Sprintf("duration %.1fh is below the minimum of %s", iv.Hours(), bound.DurationBound),
		}, nil
	}
	return nil, nil
}

// evaluateMaxDuration composes bounds across levels by taking the tightest:
// the smallest maximum wins.
func evaluateMaxDuration(iv interval.Interval, rules []*rule.Rule) (*Violation, error) {
	var (
		tightest *rule.Rule
		ceiling  float64
	)
	for _, r := range rules {
		p, ok := r.Payload().(rule.MaxDuration)
		if !ok {
			return nil, payloadMismatch(r)
		}
		if tightest == nil || p.Hours() < ceiling {
			tightest = r
			ceiling = p.Hours()
		}
	}

	if tightest != nil && iv.Hours() > ceiling {
		bound := tightest.Payload().(rule.MaxDuration)
		return &Violation{
			Rule:   tightest,
			Reason: fmt.Sprintf("duration %.1fh exceeds the maximum of %s", iv.Hours(), bound.DurationBound),
		}, nil
	}
	return nil, nil
}

// evaluateBlackoutDates composes by union: a hit at any level blocks.
func evaluateBlackoutDates(iv interval.Interval, rules []*rule.Rule, loc *time.Location) (*Violation, error) {
	dates := iv.DatesIn(loc)
	for _, r := range rules {
		p, ok := r.Payload().(rule.BlackoutDates)
		if !ok {
			return nil, payloadMismatch(r)
		}
		for _, date := range dates {
			if p.Contains(date) {
				return &Violation{
					Rule:   r,
					Reason: fmt.Sprintf("%s is a blackout date", date.Format("2006-01-02")),
				}, nil
			}
		}
	}
	return nil, nil
}

func payloadMismatch(r *rule.Rule) error {
	return fmt.Errorf("rule %s: payload does not match type %s", r.ID(), r.RuleType())
}
