package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/interfaces/cli/output"
	"github.com/codearena/arena-admin/internal/shared/biztime"
	"github.com/codearena/arena-admin/internal/shared/constants"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

const timeLayout = "2006-01-02 15:04"

func listView[T any](res *dto.ListResult[T], head []string, row func(T) []string) output.View {
	body := make([][]string, 0, len(res.Items))
	for _, item := range res.Items {
		body = append(body, row(item))
	}

	return output.View{
		Value:  res,
		Head:   head,
		Body:   body,
		Status: fmt.Sprintf("page %d of %d, %d total", res.Page, utils.TotalPages(res.Total, res.PageSize), res.Total),
	}
}

func itemView[T any](item T, head []string, row func(T) []string) output.View {
	return output.View{Value: item, Head: head, Body: [][]string{row(item)}}
}

func sliceView[T any](items []T, head []string, row func(T) []string) output.View {
	body := make([][]string, 0, len(items))
	for _, item := range items {
		body = append(body, row(item))
	}
	return output.View{Value: items, Head: head, Body: body}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return biztime.FormatInBizTimezone(t, timeLayout)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

func itoa(n int) string { return strconv.Itoa(n) }

// listFlags are the paging and search flags every list command takes.
type listFlags struct {
	page     int
	pageSize int
	search   string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", constants.DefaultPageSize, "Items per page")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Search text")
}

func (f *listFlags) query() dto.ListQuery {
	return dto.ListQuery{Page: f.page, PageSize: f.pageSize, Search: strings.TrimSpace(f.search)}
}

// optionalBool returns nil unless the flag was set explicitly.
func optionalBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}
