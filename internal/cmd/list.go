package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rhartono/fitout-tracker/internal/items/view"
)

var (
	listSearch string
	listPhase  string
	listVendor string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the item list to stdout",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "free-text search")
	listCmd.Flags().StringVar(&listPhase, "phase", "", "filter by phase")
	listCmd.Flags().StringVar(&listVendor, "vendor", "", "filter by vendor")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	defer log.Sync()

	uc.SetSearch(listSearch)
	uc.SetPhase(listPhase)
	uc.SetVendor(listVendor)

	list, err := uc.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching items: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM#\tNAME\tVENDOR\tQTY\tPHASE\tUNIT $\tEXPECTED\tDELIVERED\tLATE")
	for _, it := range list {
		vm := view.Build(it)
		late := ""
		if vm.Shipping.IsLate {
			late = fmt.Sprintf("%d days", vm.Shipping.LateByDays)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			vm.ItemNumber, vm.ItemName, vm.Vendor, vm.Qty, vm.Phase,
			view.Currency(vm.UnitPrice),
			vm.ExpectedDelivery, vm.DeliveredDate, late)
	}
	return w.Flush()
}
