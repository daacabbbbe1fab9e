package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/paudelnirajan/zenco-companion/internal/doctor"
	"github.com/paudelnirajan/zenco-companion/internal/execx"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/settings"
	"github.com/paudelnirajan/zenco-companion/internal/update"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			runner := execx.RealRunner{}
			ctx := cmd.Context()

			_, _ = fmt.Fprint(out, messages.DoctorHealthCheck)

			results := []doctor.Result{
				doctor.CheckZenco(newProbe().Check(ctx)),
				doctor.CheckPython(ctx, runner),
				doctor.CheckPipx(ctx, runner),
				doctor.CheckBrew(ctx, runner),
				doctor.CheckSettings(settings.NewStore()),
				updateResult(cmd),
			}

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorSummaryFail))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSummaryOK))
			return nil
		},
	}
}

// updateResult runs the release check as a doctor check. Network problems
// and rate limits degrade to warnings; doctor stays usable offline.
func updateResult(cmd *cobra.Command) doctor.Result {
	r := doctor.Result{CheckName: messages.DoctorCheckNameUpdate}
	if strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != "" {
		r.Status = doctor.StatusWarn
		r.Message = fmt.Sprintf(messages.DoctorUpdateSkippedFmt, update.EnvNoNetwork)
		return r
	}

	result, err := checkForUpdate(cmd.Context(), Version)
	switch {
	case err != nil && update.IsRateLimitError(err):
		r.Status = doctor.StatusWarn
		r.Message = messages.DoctorUpdateRateLimited
	case err != nil:
		r.Status = doctor.StatusWarn
		r.Message = fmt.Sprintf(messages.DoctorUpdateFailedFmt, err)
		r.Recommendation = messages.DoctorUpdateFailedRecommend
	case result.CurrentIsDev:
		r.Status = doctor.StatusWarn
		r.Message = fmt.Sprintf(messages.DoctorUpdateDevBuildFmt, result.Latest)
	case result.Outdated:
		r.Status = doctor.StatusWarn
		r.Message = fmt.Sprintf(messages.DoctorUpdateAvailableFmt, result.Latest, result.Current)
		r.Recommendation = messages.DoctorUpdateAvailableRecommend
	default:
		r.Status = doctor.StatusOK
		r.Message = fmt.Sprintf(messages.DoctorUpToDateFmt, result.Current)
	}
	return r
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
