/*
Copyright 2026 the Energy Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

var (
	// ErrDuplicateScenario is returned when a scenario name is registered twice.
	ErrDuplicateScenario = errors.New("duplicate scenario")

	// ErrUnknownScenario is returned for a name that was never registered.
	ErrUnknownScenario = errors.New("unknown scenario")
)

// ScenarioFunc is one named test case over the shared fixture.
type ScenarioFunc func(ctx context.Context, c ClientInterface, f *Fixture) error

// Scenario describes a registered test case.
type Scenario struct {
	Name        string
	Description string
	// DependsOn names scenarios whose fixture state this one consumes.
	// They must be registered first.
	DependsOn []string
	// Skip, if set, returns a reason when the scenario cannot run.
	Skip func(f *Fixture) string
	Run  ScenarioFunc
}

// Outcome is the result class of a scenario.
type Outcome string

const (
	OutcomePassed       Outcome = "passed"
	OutcomeFailed       Outcome = "failed"
	OutcomePrecondition Outcome = "precondition"
	OutcomeSkipped      Outcome = "skipped"
)

// Result records one scenario execution.
type Result struct {
	Name     string
	Outcome  Outcome
	Err      error
	Reason   string
	Duration time.Duration
}

// Report is the outcome of a run, in execution order.
type Report struct {
	Results []Result
}

// Failed reports whether any scenario failed or hit a precondition failure.
func (r *Report) Failed() bool {
	return r.Count(OutcomeFailed)+r.Count(OutcomePrecondition) > 0
}

// Count returns the number of results with the given outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0

	for i := range r.Results {
		if r.Results[i].Outcome == outcome {
			n++
		}
	}

	return n
}

// Result looks up the result for a scenario.
func (r *Report) Result(name string) (Result, bool) {
	for i := range r.Results {
		if r.Results[i].Name == name {
			return r.Results[i], true
		}
	}

	return Result{}, false
}

// RunOptions selects what a run executes.
type RunOptions struct {
	// Only restricts the run to the named scenarios. Empty runs everything.
	Only []string
	// SkipDependencies runs exactly the selected scenarios without pulling
	// in the scenarios they depend on.
	SkipDependencies bool
}

// Runner executes registered scenarios strictly sequentially, in
// registration order.
type Runner struct {
	scenarios []Scenario
	index     map[string]int
	timeout   time.Duration
	log       logr.Logger
}

// NewRunner creates an empty runner. Each scenario gets timeout to finish.
func NewRunner(timeout time.Duration, log logr.Logger) *Runner {
	return &Runner{
		index:   map[string]int{},
		timeout: timeout,
		log:     log,
	}
}

// NewDefaultRunner creates a runner with every conformance scenario.
func NewDefaultRunner(timeout time.Duration, log logr.Logger) (*Runner, error) {
	r := NewRunner(timeout, log)

	for _, scenario := range DefaultScenarios() {
		if err := r.Register(scenario); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// DefaultScenarios returns the conformance scenarios in execution order.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:        ScenarioResetUnauthorized,
			Description: "Reset without credentials is refused with 401.",
			Run:         ResetUnauthorized,
		},
		{
			Name:        ScenarioResetAuthorized,
			Description: "Login issues a token that authorizes a reset.",
			Skip:        requireCredentials,
			Run:         ResetAuthorized,
		},
		{
			Name:        ScenarioEnergyIDsStable,
			Description: "Listing energy ids twice returns the same set.",
			Run:         EnergyIDsStable,
		},
		{
			Name:        ScenarioBuyAllEnergy,
			Description: "Every listed energy type can be bought at the default quantity.",
			Run:         BuyAllEnergy,
		},
		{
			Name:        ScenarioListAndVerifyOrders,
			Description: "Every bought order is listed and resolves with its quantity.",
			DependsOn:   []string{ScenarioBuyAllEnergy},
			Run:         ListAndVerifyOrders,
		},
		{
			Name:        ScenarioCountOrdersBeforeNow,
			Description: "Count the orders created before the current time.",
			DependsOn:   []string{ScenarioListAndVerifyOrders},
			Run:         CountOrdersBeforeNow,
		},
		{
			Name:        ScenarioUnauthorizedLogin,
			Description: "Invalid credentials are refused with 401 Unauthorized.",
			Run:         UnauthorizedLogin,
		},
		{
			Name:        ScenarioBadBuyRequest,
			Description: "A negative quantity is refused with 400 Bad Request.",
			Run:         BadBuyRequest,
		},
		{
			Name:        ScenarioBuyBoundaryQuantities,
			Description: "Quantities -1 and 0 are refused alike.",
			Run:         BuyBoundaryQuantities,
		},
	}
}

func requireCredentials(f *Fixture) string {
	if f.Credentials.Username == "" || f.Credentials.Password == "" {
		return "no credentials configured"
	}

	return ""
}

// Register adds a scenario. Dependencies must already be registered, which
// makes registration order a valid execution order.
func (r *Runner) Register(scenario Scenario) error {
	if _, ok := r.index[scenario.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateScenario, scenario.Name)
	}

	for _, dependency := range scenario.DependsOn {
		if _, ok := r.index[dependency]; !ok {
			return fmt.Errorf("%w: %s depends on %s, which is not registered before it", ErrUnknownScenario, scenario.Name, dependency)
		}
	}

	r.index[scenario.Name] = len(r.scenarios)
	r.scenarios = append(r.scenarios, scenario)

	return nil
}

// Scenarios returns the registered scenarios in execution order.
func (r *Runner) Scenarios() []Scenario {
	out := make([]Scenario, len(r.scenarios))
	copy(out, r.scenarios)

	return out
}

// selection resolves the scenarios a run executes.
func (r *Runner) selection(options RunOptions) (map[string]bool, error) {
	selected := map[string]bool{}

	if len(options.Only) == 0 {
		for _, scenario := range r.scenarios {
			selected[scenario.Name] = true
		}

		return selected, nil
	}

	var visit func(name string)

	visit = func(name string) {
		if selected[name] {
			return
		}

		selected[name] = true

		if options.SkipDependencies {
			return
		}

		for _, dependency := range r.scenarios[r.index[name]].DependsOn {
			visit(dependency)
		}
	}

	for _, name := range options.Only {
		if _, ok := r.index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
		}

		visit(name)
	}

	return selected, nil
}

// Run executes the selected scenarios against c, threading f through them.
// A scenario whose dependency ran and did not pass is skipped.
func (r *Runner) Run(ctx context.Context, c ClientInterface, f *Fixture, options RunOptions) (*Report, error) {
	selected, err := r.selection(options)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	outcomes := map[string]Outcome{}

	for _, scenario := range r.scenarios {
		if !selected[scenario.Name] {
			continue
		}

		result := r.runOne(ctx, c, f, scenario, outcomes)
		outcomes[scenario.Name] = result.Outcome

		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (r *Runner) runOne(ctx context.Context, c ClientInterface, f *Fixture, scenario Scenario, outcomes map[string]Outcome) Result {
	log := r.log.WithValues("scenario", scenario.Name)

	result := Result{
		Name: scenario.Name,
	}

	if err := ctx.Err(); err != nil {
		result.Outcome = OutcomeSkipped
		result.Reason = err.Error()

		return result
	}

	for _, dependency := range scenario.DependsOn {
		if outcome, ok := outcomes[dependency]; ok && outcome != OutcomePassed {
			result.Outcome = OutcomeSkipped
			result.Reason = fmt.Sprintf("dependency %s %s", dependency, outcome)

			log.Info("scenario skipped", "reason", result.Reason)

			return result
		}
	}

	if scenario.Skip != nil {
		if reason := scenario.Skip(f); reason != "" {
			result.Outcome = OutcomeSkipped
			result.Reason = reason

			log.Info("scenario skipped", "reason", result.Reason)

			return result
		}
	}

	log.Info("scenario started")

	scenarioCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	err := scenario.Run(scenarioCtx, c, f)
	result.Duration = time.Since(start)
	result.Err = err

	switch {
	case err == nil:
		result.Outcome = OutcomePassed

		log.Info("scenario passed", "duration", result.Duration)
	case IsPrecondition(err):
		result.Outcome = OutcomePrecondition

		log.Error(err, "scenario precondition failed", "duration", result.Duration)
	default:
		result.Outcome = OutcomeFailed

		log.Error(err, "scenario failed", "duration", result.Duration)
	}

	return result
}
