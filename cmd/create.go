package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pump_base/internal/common"
	"pump_base/internal/view"
)

var (
	createName        string
	createTicker      string
	createDescription string
	createJSON        bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "创建一个新代币并输出结果",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := awaitCtx(cmd)
		ctrl := newController()
		defer ctrl.Close()

		ctrl.Start()
		if err := ctrl.Await(ctx); err != nil {
			return fmt.Errorf("加载代币列表失败: %w", err)
		}

		if err := ctrl.OpenCreate(); err != nil {
			return err
		}
		form := ctrl.Form()
		form.SetName(createName)
		form.SetTicker(createTicker)
		form.SetDescription(createDescription)
		if err := ctrl.Submit(); err != nil {
			return err
		}
		if err := ctrl.Await(ctx); err != nil {
			return fmt.Errorf("创建代币失败: %w", err)
		}

		// 新代币在存储的最前面，按创建时间排序时排在第一位
		if err := ctrl.SetSort(common.SORT_CREATION); err != nil {
			return err
		}
		snap := ctrl.View()
		if len(snap.Tokens) == 0 {
			return fmt.Errorf("创建代币失败: 列表为空")
		}
		token := snap.Tokens[0]

		if createJSON {
			return writeJSON(cmd.OutOrStdout(), token)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "launched %s ($%s) by %s\n", token.Name, token.Ticker, token.Creator)
		fmt.Fprintf(cmd.OutOrStdout(), "id: %s  mcap: %s  total tokens: %d\n", token.ID, view.FormatMarketCap(token.MarketCap), snap.Total)
		return nil
	},
}

func init() {
	flags := createCmd.Flags()
	flags.StringVar(&createName, "name", "", "代币名称")
	flags.StringVar(&createTicker, "ticker", "", "ticker，自动转为大写并截断到 8 个字符")
	flags.StringVar(&createDescription, "description", "", "代币描述")
	flags.BoolVar(&createJSON, "json", false, "以 JSON 输出")
}
