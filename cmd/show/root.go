package show

import (
	"fmt"

	cmdUtil "github.com/axelroques/ditto/cmd/util"
	"github.com/axelroques/ditto/lib/common"
	"github.com/axelroques/ditto/lib/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	showCmdConfig = &common.Config{}
	showRank      = 0
	showLetters   = false
	ShowCmd       = &cobra.Command{
		Use:     "show",
		Short:   "Mine a database and draw its cover",
		Long:    `Mine a database and draw the resulting cover in the terminal, one line per sequence, with the cells of one pattern highlighted. Patterns are selected by their rank in cover order (longest first).`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	cmdUtil.SetupMiningFlags(ShowCmd)

	// add flags
	key := "rank"
	ShowCmd.Flags().Int(key, 0, cmdUtil.WrapString("Rank in cover order of the highlighted pattern (0 = longest)"))

	key = "letters"
	ShowCmd.Flags().Bool(key, false, cmdUtil.WrapString("Print the symbol of every covered cell"))
}

func processConfig(cmd *cobra.Command, _ []string) error {
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}
	conf, err := cmdUtil.GetConfig()
	if err != nil {
		return err
	}
	*showCmdConfig = *conf
	showRank = viper.GetInt("rank")
	showLetters = viper.GetBool("letters")
	return nil
}

func run(_ *cobra.Command, _ []string) error {
	eng, err := cmdUtil.MineDatabase(showCmdConfig)
	if err != nil {
		return err
	}

	ct := eng.CodeTable()
	grid, err := render.Grid(eng.GetCover(ct), ct, showRank, showLetters)
	if err != nil {
		return err
	}
	fmt.Println(grid)
	return nil
}
