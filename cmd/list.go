package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"pump_base/internal/common"
	"pump_base/internal/model"
	"pump_base/internal/view"
)

var (
	listQuery string
	listSort  string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "按搜索词过滤并排序后输出代币列表",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, err := common.ParseSortOption(listSort)
		if err != nil {
			return err
		}

		ctrl := newController()
		defer ctrl.Close()

		ctrl.Start()
		if err := ctrl.Await(awaitCtx(cmd)); err != nil {
			return fmt.Errorf("加载代币列表失败: %w", err)
		}
		ctrl.SetQuery(listQuery)
		if err := ctrl.SetSort(sortBy); err != nil {
			return err
		}

		snap := ctrl.View()
		if listJSON {
			return writeJSON(cmd.OutOrStdout(), snap.Tokens)
		}
		if snap.Empty {
			fmt.Fprintln(cmd.OutOrStdout(), "no tokens found ser")
			return nil
		}
		return writeTable(cmd.OutOrStdout(), snap.Tokens, time.Now())
	},
}

func init() {
	flags := listCmd.Flags()
	flags.StringVarP(&listQuery, "query", "q", "", "按名称或 ticker 搜索，不区分大小写")
	flags.StringVarP(&listSort, "sort", "s", string(common.DEFAULT_SORT), "排序: bump, creation, lastReply, marketCap")
	flags.BoolVar(&listJSON, "json", false, "以 JSON 输出")
}

func writeTable(w io.Writer, tokens []model.Token, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tNAME\tCREATOR\tMCAP\tREPLIES\tCURVE\tAGE")
	for i := range tokens {
		t := &tokens[i]
		fmt.Fprintf(tw, "$%s\t%s\t%s\t%s\t%d\t%d%%\t%s\n",
			t.Ticker, t.Name, t.Creator, view.FormatMarketCap(t.MarketCap), t.Replies, t.Progress, view.TimeAgo(t.CreatedAt, now))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// awaitCtx 命令未设置 context 时使用后台 context
func awaitCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
