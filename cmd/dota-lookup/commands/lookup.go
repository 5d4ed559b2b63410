package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/handlers"
	dotaService "github.com/KirkDiggler/dota-bot-discord/internal/services/dota"
)

var showTalents bool

var heroCmd = &cobra.Command{
	Use:   "hero [talents] <name>",
	Short: "Show a hero, or its talent tree with --talents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, dotaCfg, err := newProvider()
		if err != nil {
			return err
		}

		name, talents := provider.DotaLookup.HeroName(args)
		if name == "" {
			return printUnrecognized(cmd)
		}

		hero, err := provider.DotaLookup.Hero(cmd.Context(), name)
		if err != nil {
			return lookupError(cmd, err)
		}

		if talents || showTalents {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), handlers.RenderTalents(hero))
			return err
		}

		return printEmbed(cmd, handlers.RenderHero(hero, dotaCfg.ImageURLs))
	},
}

var itemCmd = &cobra.Command{
	Use:   "item <name>",
	Short: "Show an item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, dotaCfg, err := newProvider()
		if err != nil {
			return err
		}

		name := provider.DotaLookup.ItemName(args)
		if name == "" {
			return printUnrecognized(cmd)
		}

		item, err := provider.DotaLookup.Item(cmd.Context(), name)
		if err != nil {
			return lookupError(cmd, err)
		}

		return printEmbed(cmd, handlers.RenderItem(item, dotaCfg.ImageURLs))
	},
}

var abilityCmd = &cobra.Command{
	Use:   "ability <name>",
	Short: "Show an ability",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, dotaCfg, err := newProvider()
		if err != nil {
			return err
		}

		name := provider.DotaLookup.AbilityName(args)
		if name == "" {
			return printUnrecognized(cmd)
		}

		ability, err := provider.DotaLookup.Ability(cmd.Context(), name)
		if err != nil {
			return lookupError(cmd, err)
		}

		return printEmbed(cmd, handlers.RenderAbility(ability, dotaCfg.ImageURLs))
	},
}

func init() {
	heroCmd.Flags().BoolVarP(&showTalents, "talents", "t", false, "Show the talent tree instead of the hero")
}

// lookupError prints the bot's reply for unknown names and passes anything
// else through.
func lookupError(cmd *cobra.Command, err error) error {
	if dotaService.IsUnrecognized(err) {
		return printUnrecognized(cmd)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("datafeed timed out after %s: %w", timeout, err)
	}
	return err
}

func printUnrecognized(cmd *cobra.Command) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), handlers.UnrecognizedMessage)
	return err
}

func printEmbed(cmd *cobra.Command, embed *discordgo.MessageEmbed) error {
	if outputJSON {
		return writeJSON(cmd.OutOrStdout(), embed)
	}
	return writeText(cmd.OutOrStdout(), embed)
}
