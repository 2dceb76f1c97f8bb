package slim

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"slim/internal/engine"
	"slim/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile the energy model runs on",
}

var (
	profileSex         string
	profileAge         int
	profileHeight      float64
	profileWeight      float64
	profileActivity    string
	profileSustainable bool
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileSex != "" && profileSex != string(engine.SexMale) && profileSex != string(engine.SexFemale) {
			return fmt.Errorf("invalid --sex %q (male or female)", profileSex)
		}
		if profileActivity != "" {
			if _, ok := engine.ActivityMultipliers[profileActivity]; !ok {
				return fmt.Errorf("invalid --activity %q (sedentary, light, moderate, active, or very_active)", profileActivity)
			}
		}
		if profileAge < 0 || profileAge > 130 {
			return fmt.Errorf("invalid --age %d", profileAge)
		}
		if profileHeight < 0 || profileWeight < 0 {
			return fmt.Errorf("height and weight must be non-negative")
		}

		return withStore(func(st *store.Store) error {
			p, err := st.GetProfile()
			if errors.Is(err, store.ErrNoProfile) {
				p = &store.Profile{}
			} else if err != nil {
				return err
			}

			if cmd.Flags().Changed("sex") {
				p.Sex = profileSex
			}
			if cmd.Flags().Changed("age") {
				p.Age = profileAge
			}
			if cmd.Flags().Changed("height") {
				p.HeightCM = profileHeight
			}
			if cmd.Flags().Changed("weight") {
				p.WeightKg = profileWeight
			}
			if cmd.Flags().Changed("activity") {
				p.ActivityLevel = profileActivity
			}
			if cmd.Flags().Changed("sustainable") {
				p.SustainabilityMode = profileSustainable
			}

			if err := st.SaveProfile(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile and derived TDEE",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			p, err := st.GetProfile()
			if errors.Is(err, store.ErrNoProfile) {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run: slim profile set")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sex: %s\n", orUnset(p.Sex))
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Height: %.1f cm\n", p.HeightCM)
			fmt.Fprintf(out, "Baseline weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(out, "Activity: %s\n", orUnset(p.ActivityLevel))
			fmt.Fprintf(out, "Sustainability mode: %v\n", p.SustainabilityMode)

			ep := engine.Profile{
				Sex:           engine.Sex(p.Sex),
				Age:           p.Age,
				HeightCM:      p.HeightCM,
				WeightKg:      p.WeightKg,
				ActivityLevel: p.ActivityLevel,
			}
			fmt.Fprintf(out, "TDEE at baseline weight: %.0f kcal/day\n", engine.TDEE(ep, p.WeightKg))
			return nil
		})
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "male or female")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Baseline weight in kg")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level")
	profileSetCmd.Flags().BoolVar(&profileSustainable, "sustainable", false, "Cap advice at a sustainable pace")
}
