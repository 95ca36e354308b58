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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/energy-qa/energy-conformance/test/api"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var errRunFailed = errors.New("conformance run failed")

type options struct {
	scenarios      []string
	noDependencies bool
	list           bool
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringSliceVar(&o.scenarios, "scenario", nil, "Run only the named scenarios, may be repeated.")
	f.BoolVar(&o.noDependencies, "no-deps", false, "Do not pull in the scenarios a selected scenario depends on.")
	f.BoolVar(&o.list, "list", false, "List scenarios in execution order and exit.")
}

func listScenarios(out io.Writer, runner *api.Runner) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	for _, scenario := range runner.Scenarios() {
		fmt.Fprintf(w, "%s\t%s\n", scenario.Name, scenario.Description)
	}

	w.Flush()
}

func printReport(out io.Writer, report *api.Report) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	for _, result := range report.Results {
		switch result.Outcome {
		case api.OutcomePassed:
			fmt.Fprintf(w, "PASS\t%s\t%s\n", result.Name, result.Duration)
		case api.OutcomeFailed:
			fmt.Fprintf(w, "FAIL\t%s\t%v\n", result.Name, result.Err)
		case api.OutcomePrecondition:
			fmt.Fprintf(w, "PRECONDITION\t%s\t%v\n", result.Name, result.Err)
		case api.OutcomeSkipped:
			fmt.Fprintf(w, "SKIP\t%s\t%s\n", result.Name, result.Reason)
		}
	}

	w.Flush()

	fmt.Fprintf(out, "\n%d passed, %d failed, %d precondition, %d skipped\n",
		report.Count(api.OutcomePassed),
		report.Count(api.OutcomeFailed),
		report.Count(api.OutcomePrecondition),
		report.Count(api.OutcomeSkipped))
}

// run parses args into flags and executes the selected scenarios, writing
// the report to out. Configuration is validated only after flags are applied.
func run(ctx context.Context, flags *pflag.FlagSet, args []string, out io.Writer) error {
	config := api.ReadTestConfig()

	var o options

	config.AddFlags(flags)
	o.AddFlags(flags)

	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := config.Validate(); err != nil {
		return err
	}

	log.SetLogger(zap.New(zap.UseDevMode(config.DebugLogging)))

	logger := log.Log.WithName("init")

	runner, err := api.NewDefaultRunner(config.TestTimeout, log.Log.WithName("runner"))
	if err != nil {
		return err
	}

	if o.list {
		listScenarios(out, runner)

		return nil
	}

	fixture := api.NewFixture(config, log.Log.WithName("fixture"))

	client, err := api.NewAPIClientWithConfig(config, api.WithLogger(log.Log.WithName("client")), api.WithRunID(fixture.RunID))
	if err != nil {
		return err
	}

	logger.Info("conformance run starting", "baseURL", config.BaseURL, "runID", fixture.RunID)

	report, err := runner.Run(ctx, client, fixture, api.RunOptions{
		Only:             o.scenarios,
		SkipDependencies: o.noDependencies,
	})
	if err != nil {
		return err
	}

	printReport(out, report)

	if report.Failed() {
		return errRunFailed
	}

	return nil
}

func main() {
	ctx := cr.SetupSignalHandler()

	if err := run(ctx, pflag.CommandLine, os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
