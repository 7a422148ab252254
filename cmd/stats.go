package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/logging"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/rewards"
	"github.com/abhisek/reasontree/internal/store"
	"github.com/abhisek/reasontree/internal/ui/components"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		actx := loadContext(cmd.Context(), s)
		st := actx.Tracker.Stats()

		fmt.Println("Learning")
		fmt.Println(strings.Repeat("─", 40))
		rows := [][2]string{
			{"Lessons completed", fmt.Sprint(st.TotalLessons)},
			{"Games played", fmt.Sprint(st.TotalGames)},
			{"Total score", fmt.Sprint(st.TotalScore)},
			{"Answers", fmt.Sprintf("%d (%d correct)", st.TotalAttempts, st.CorrectAnswers)},
			{"Accuracy", fmt.Sprintf("%d%%", st.Accuracy)},
			{"Streak", fmt.Sprintf("%d (best %d)", st.CurrentStreak, st.BestStreak)},
			{"Sessions", fmt.Sprint(st.SessionCount)},
			{"Minutes played", fmt.Sprint(st.TotalTimeSpent)},
			{"Achievements", fmt.Sprintf("%d of %d", st.Achievements, len(progress.Achievements))},
		}
		for _, r := range rows {
			fmt.Printf("%-20s  %s\n", r[0], r[1])
		}

		fmt.Println()
		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 40))
		for _, sk := range []progress.Skill{
			progress.SkillAddition, progress.SkillSubtraction,
			progress.SkillPatternRecognition, progress.SkillLogicalThinking,
		} {
			fmt.Printf("%-20s  %d\n", sk, st.Skills.Get(sk))
		}

		fmt.Println()
		printTree(actx)
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the reward tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		printTree(loadContext(cmd.Context(), s))
		return nil
	},
}

// loadContext restores the stored state without starting a session.
func loadContext(ctx context.Context, repo store.Repo) *app.AppContext {
	actx := app.NewAppContext(ctx, app.Options{Repo: repo, Logger: logging.Discard()})
	actx.Load()
	return actx
}

func printTree(actx *app.AppContext) {
	st := actx.Engine.State()
	g := actx.Engine.GrowthProgress()

	fmt.Println(components.RenderTree(st.Stage))
	fmt.Println()
	fmt.Printf("%s %s\n", st.Stage.Icon(), st.Stage.DisplayName())
	fmt.Printf("%-20s  %d\n", "Leaves", st.Leaves)
	fmt.Printf("%-20s  %d\n", "Flowers", st.Flowers)
	fmt.Printf("%-20s  %d\n", "Sparks", st.Sparks)
	fmt.Printf("%-20s  %s\n", "Zones", strings.Join(st.UnlockedZones, ", "))
	if g.Next != nil {
		fmt.Printf("%-20s  %d%% (%d leaves to %s)\n", "Growth", g.Percent, g.LeavesUntilNext, g.Next.Stage.DisplayName())
	} else {
		fmt.Printf("%-20s  fully grown\n", "Growth")
	}

	recent := actx.Engine.RecentRewards(5)
	if len(recent) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent rewards")
	fmt.Println(strings.Repeat("─", 40))
	for _, ev := range recent {
		fmt.Printf("%-19s  %s\n", ev.At.Local().Format("2006-01-02 15:04:05"), describeReward(ev))
	}
}

func describeReward(ev rewards.RewardEvent) string {
	switch ev.Type {
	case rewards.EventZone:
		return "unlocked " + ev.Zone
	default:
		return fmt.Sprintf("+%d %s", ev.Count, ev.Type)
	}
}
