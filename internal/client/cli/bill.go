package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/ledgersync/internal/client/ledger"
	"github.com/iudanet/ledgersync/internal/models"
)

var billTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// parseBillTime accepts RFC3339 or a local date with optional time.
func parseBillTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range billTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, use YYYY-MM-DD, 'YYYY-MM-DD HH:MM' or RFC3339", s)
}

func (c *Cli) billCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bill",
		GroupID: "ledger",
		Short:   "Manage bills of the active book",
	}

	add := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record income or expense",
		Example: `  ledgersync bill add 12.50 --category food
  ledgersync bill add 3000 --type income --category salary --time 2024-03-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBillAdd(cmd, args[0])
		},
	}
	add.Flags().String("book", "", "Book id (defaults to the active book)")
	add.Flags().StringP("type", "t", "expenditure", "income or expenditure")
	add.Flags().StringP("category", "c", "", "Category")
	add.Flags().StringP("remark", "r", "", "Remark")
	add.Flags().String("time", "", "When it happened (default now)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List bills, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBillList(cmd)
		},
	}
	list.Flags().String("book", "", "Book id (defaults to the active book)")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ledger.DeleteBill(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.io.Printf("✓ Bill %s deleted\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, list, rm)
	return cmd
}

func (c *Cli) runBillAdd(cmd *cobra.Command, amount string) error {
	ctx := cmd.Context()
	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	bookID, err := c.bookID(cmd, session)
	if err != nil {
		return err
	}

	money, err := models.ParseMoney(amount)
	if err != nil {
		return err
	}
	typeFlag, _ := cmd.Flags().GetString("type")
	billType, err := models.ParseBillType(typeFlag)
	if err != nil {
		return err
	}
	timeFlag, _ := cmd.Flags().GetString("time")
	when, err := parseBillTime(timeFlag)
	if err != nil {
		return err
	}
	category, _ := cmd.Flags().GetString("category")
	remark, _ := cmd.Flags().GetString("remark")

	bill, err := c.ledger.CreateBill(ctx, session.UserID, bookID, ledger.BillInput{
		Time:     when,
		Category: category,
		Remark:   remark,
		Money:    money,
		Type:     billType,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Bill recorded: %s\n", billView{bill}.Signed())
	c.io.Printf("ID: %s\n", bill.ID)
	return nil
}

func (c *Cli) runBillList(cmd *cobra.Command) error {
	ctx := cmd.Context()
	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	bookID, err := c.bookID(cmd, session)
	if err != nil {
		return err
	}

	bills, err := c.ledger.ListBills(ctx, bookID)
	if err != nil {
		return err
	}
	if len(bills) == 0 {
		c.io.Println("No bills found.")
		return nil
	}

	var total models.Money
	for _, b := range bills {
		if err := billTmpl.Execute(c.io, billView{b}); err != nil {
			return err
		}
		total += models.Money(b.Type) * b.Money
	}

	c.io.Println()
	c.io.Printf("%d bill(s), balance %s\n", len(bills), total)
	return nil
}
