package console

import (
	"fmt"
	"io"

	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/DRSN-tech/shopping-cart/internal/usecase"
)

const (
	msgEmptyCart         = "SHOPPING CART IS EMPTY"
	msgDescriptionsLabel = "Item Descriptions"
)

func renderSummary(w io.Writer, res *usecase.CartSummaryRes) {
	fmt.Fprintln(w, res.Header)
	fmt.Fprintf(w, "Number of Items: %d\n", res.ItemCount)

	if res.IsEmpty() {
		fmt.Fprintln(w, msgEmptyCart)
		return
	}

	for _, line := range res.CostLines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "Total: $%s\n", domain.FormatMoney(res.Total))
}

func renderDescriptions(w io.Writer, res *usecase.ItemDescriptionsRes) {
	fmt.Fprintln(w, res.Header)
	fmt.Fprintln(w, msgDescriptionsLabel)

	for _, line := range res.DescriptionLines {
		fmt.Fprintln(w, line)
	}
}
